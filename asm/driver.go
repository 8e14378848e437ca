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
	"io"
	"strings"
)

// EntryRef is a resolved entry request: a label exported via ".entry" and
// the address it was bound to. Address is 0 if the label was never defined.
type EntryRef struct {
	Name    string
	Address int
}

// Result collects everything the driver produced from a source file.
type Result struct {
	Errors ErrorList

	// Expanded is the macro-expanded source, one post-substitution line
	// per original or macro-body line, in output order. This is the .am
	// artefact.
	Expanded string

	CodeLines int
	DataLines int

	// Words, Externals and Entries are populated only when Errors is
	// empty: pass 2 does not run otherwise.
	Words     []ObjectWord
	Externals []ExternalRef
	Entries   []EntryRef
}

// Run performs pass 1 over r, and — only if pass 1 reports no errors —
// pass 2. The returned error
// is non-nil only on a fatal I/O failure reading r; assembly-level
// diagnostics are reported through Result.Errors.
func Run(r io.Reader, opts ...Option) (*Result, error) {
	ctx := newContext(opts...)

	lines, err := preprocess(ctx, r)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Errors:    ctx.errs,
		Expanded:  renderExpanded(lines),
		CodeLines: ctx.codeLines,
		DataLines: ctx.dataLines,
	}
	if len(ctx.errs) > 0 {
		return res, nil
	}

	words, externals := encode(ctx, lines)
	ctx.symbols.resolveEntries()
	sorted := ctx.symbols.sortedEntries()

	res.Words = words
	res.Externals = externals
	res.Entries = make([]EntryRef, len(sorted))
	for i, e := range sorted {
		res.Entries[i] = EntryRef{Name: e.Name, Address: e.Address}
	}
	return res, nil
}

func renderExpanded(lines []expandedLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.text)
		b.WriteByte('\n')
	}
	return b.String()
}
