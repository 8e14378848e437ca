// This file is part of hasm15 - https://github.com/arbora/hasm15
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"strings"
)

// Kind identifies one of the fixed error conditions pass 1 can report.
type Kind int

// The fixed set of error kinds pass 1 can report.
const (
	EndMacroOutsideMacro Kind = iota
	UndefinedMacroUse
	DuplicateMacro
	ReservedLabel
	DuplicateLabel
	InvalidSyntax
)

func (k Kind) String() string {
	switch k {
	case EndMacroOutsideMacro:
		return "EndMacroOutsideMacro"
	case UndefinedMacroUse:
		return "UndefinedMacroUse"
	case DuplicateMacro:
		return "DuplicateMacro"
	case ReservedLabel:
		return "ReservedLabel"
	case DuplicateLabel:
		return "DuplicateLabel"
	case InvalidSyntax:
		return "InvalidSyntax"
	default:
		return "UnknownError"
	}
}

// Error is a single diagnostic produced by pass 1, tied to a source line.
type Error struct {
	Line int
	Kind Kind
	Name string // offending name, when relevant; empty otherwise
	Msg  string
}

func (e Error) String() string {
	if e.Name != "" {
		return fmt.Sprintf("%d: %s: %s (%s)", e.Line, e.Kind, e.Msg, e.Name)
	}
	return fmt.Sprintf("%d: %s: %s", e.Line, e.Kind, e.Msg)
}

// ErrorList aggregates the diagnostics accumulated by a single pass-1 run.
// It implements error. Accumulation stops once MaxErrors is reached; see
// context.go.
type ErrorList []Error

func (e ErrorList) Error() string {
	lines := make([]string, len(e))
	for i, err := range e {
		lines[i] = err.String()
	}
	return strings.Join(lines, "\n")
}
