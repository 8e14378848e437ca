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
	"reflect"
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	data := []struct {
		line string
		want []string
	}{
		{"LABEL:", []string{"LABEL", ":"}},
		{"mov r1,r2", []string{"mov", "r1", ",", "r2"}},
		{"", nil},
		{"   ", nil},
		{"; a full line comment", nil},
		{"mov r1, r2 ; trailing comment", []string{"mov", "r1", ",", "r2"}},
		{".data 1, 2, 3", []string{".data", "1", ",", "2", ",", "3"}},
		{`.string "ab"`, []string{".string", `"ab"`}},
		{"rts", []string{"rts"}},
	}
	for _, d := range data {
		got := Tokens(d.line)
		if !reflect.DeepEqual(got, d.want) {
			t.Errorf("Tokens(%q) = %#v, want %#v", d.line, got, d.want)
		}
	}
}

func TestTokenAtAndCount(t *testing.T) {
	line := "mov r1, r2"
	if n := TokenCount(line); n != 4 {
		t.Errorf("TokenCount = %d, want 4", n)
	}
	if tok := TokenAt(line, 0); tok != "mov" {
		t.Errorf("TokenAt(0) = %q, want mov", tok)
	}
	if tok := TokenAt(line, 2); tok != "," {
		t.Errorf("TokenAt(2) = %q, want ,", tok)
	}
	if tok := TokenAt(line, 99); tok != "" {
		t.Errorf("TokenAt(99) = %q, want empty", tok)
	}
}

// TestTokensIdempotent checks that re-tokenizing a reconstructed line
// (tokens joined with single spaces) yields the same token sequence, and
// that ',' / ':' always tokenize as singletons.
func TestTokensIdempotent(t *testing.T) {
	lines := []string{
		"mov r1, r2",
		"LOOP: add r1, r2",
		"*r3",
		"jmp LABEL",
		".data 1, 2, 3",
	}
	for _, line := range lines {
		first := Tokens(line)
		rejoined := strings.Join(first, " ")
		second := Tokens(rejoined)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("not idempotent: %q -> %#v -> %q -> %#v", line, first, rejoined, second)
		}
		for _, tok := range first {
			if len(tok) > 1 && strings.ContainsAny(tok, ",:") {
				t.Errorf("separator not tokenized as a singleton: %q", tok)
			}
		}
	}
}
