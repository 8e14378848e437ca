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

import "testing"

func TestSymbolTableLabels(t *testing.T) {
	st := newSymbolTable()
	if !st.addLabel("LOOP", 100) {
		t.Fatal("addLabel failed unexpectedly")
	}
	if st.addLabel("LOOP", 105) {
		t.Error("duplicate label insertion should fail")
	}
	addr, ok := st.label("LOOP")
	if !ok || addr != 100 {
		t.Errorf("label(LOOP) = %d, %v; want 100, true", addr, ok)
	}
	if _, ok := st.label("NOPE"); ok {
		t.Error("label lookup found an undefined name")
	}
}

func TestSymbolTableEntries(t *testing.T) {
	st := newSymbolTable()
	st.addLabel("B", 102)
	st.addLabel("A", 101)
	st.requestEntry("B")
	st.requestEntry("A")
	st.requestEntry("UNDEFINED")

	st.resolveEntries()
	sorted := st.sortedEntries()

	if len(sorted) != 3 {
		t.Fatalf("got %d entries, want 3", len(sorted))
	}
	// Ascending by address; the undefined one resolves to 0 and sorts first.
	want := []entryRequest{{"UNDEFINED", 0}, {"A", 101}, {"B", 102}}
	for i, e := range want {
		if sorted[i] != e {
			t.Errorf("entry[%d] = %#v, want %#v", i, sorted[i], e)
		}
	}
}
