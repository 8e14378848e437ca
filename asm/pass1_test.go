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
	"strings"
	"testing"
)

func firstKind(t *testing.T, src string) Kind {
	t.Helper()
	res := run(t, src)
	if len(res.Errors) == 0 {
		t.Fatalf("expected at least one error for %q, got none", src)
	}
	return res.Errors[0].Kind
}

func TestPass1_EndMacroOutsideMacro(t *testing.T) {
	if k := firstKind(t, "endmacr\n"); k != EndMacroOutsideMacro {
		t.Errorf("kind = %v, want EndMacroOutsideMacro", k)
	}
}

func TestPass1_UndefinedMacroUse(t *testing.T) {
	if k := firstKind(t, "NOSUCHMACRO\n"); k != UndefinedMacroUse {
		t.Errorf("kind = %v, want UndefinedMacroUse", k)
	}
}

func TestPass1_DuplicateMacro(t *testing.T) {
	src := "macr GREET\nprn #1\nendmacr\nmacr GREET\nprn #2\nendmacr\n"
	if k := firstKind(t, src); k != DuplicateMacro {
		t.Errorf("kind = %v, want DuplicateMacro", k)
	}
}

func TestPass1_ReservedLabel(t *testing.T) {
	if k := firstKind(t, "mov: stop\n"); k != ReservedLabel {
		t.Errorf("kind = %v, want ReservedLabel", k)
	}
}

func TestPass1_InvalidSyntax_UnknownMnemonic(t *testing.T) {
	if k := firstKind(t, "frobnicate r1\n"); k != InvalidSyntax {
		t.Errorf("kind = %v, want InvalidSyntax", k)
	}
}

func TestPass1_InvalidSyntax_DataOddList(t *testing.T) {
	if k := firstKind(t, ".data 1, 2,\n"); k != InvalidSyntax {
		t.Errorf("kind = %v, want InvalidSyntax", k)
	}
}

func TestPass1_InvalidSyntax_UnclosedString(t *testing.T) {
	if k := firstKind(t, `.string "unterminated`+"\n"); k != InvalidSyntax {
		t.Errorf("kind = %v, want InvalidSyntax", k)
	}
}

// A run with more failing lines than maxErrors records exactly maxErrors
// diagnostics and no further, even when the source keeps failing past that
// point.
func TestPass1_ErrorCap(t *testing.T) {
	src := ""
	for i := 0; i < 20; i++ {
		src += "frobnicate\n"
	}
	res, err := Run(strings.NewReader(src), MaxErrors(5))
	if err != nil {
		t.Fatalf("Run returned fatal error: %v", err)
	}
	if len(res.Errors) != 5 {
		t.Errorf("got %d errors, want 5 (capped)", len(res.Errors))
	}
}
