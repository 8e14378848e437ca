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

import "sort"

// entryRequest marks a label for export. Address is resolved from the
// label table at the end of pass 2; it is 0 until then, and stays 0 if the
// label was never defined.
type entryRequest struct {
	Name    string
	Address int
}

// symbolTable holds the two sets the assembler tracks: labels (name to
// address) and entry requests (name to address, resolved in pass 2).
type symbolTable struct {
	labels  map[string]int
	order   []string // label names in definition order, for deterministic iteration
	entries []*entryRequest
}

func newSymbolTable() *symbolTable {
	return &symbolTable{labels: make(map[string]int)}
}

// addLabel inserts name at address addr. ok is false if name is already
// present; the table is left unchanged in that case.
func (s *symbolTable) addLabel(name string, addr int) (ok bool) {
	if _, exists := s.labels[name]; exists {
		return false
	}
	s.labels[name] = addr
	s.order = append(s.order, name)
	return true
}

// label returns the address bound to name, if any.
func (s *symbolTable) label(name string) (int, bool) {
	addr, ok := s.labels[name]
	return addr, ok
}

// requestEntry records that name should be exported. Duplicate requests for
// the same name are kept as separate entries, mirroring a source that lists
// ".entry" more than once for the same label; the entries file will then
// simply contain it twice, sorted together.
func (s *symbolTable) requestEntry(name string) {
	s.entries = append(s.entries, &entryRequest{Name: name})
}

// resolveEntries fills in the address of every entry request from the
// label table. Entries whose label was never defined are left at address 0.
func (s *symbolTable) resolveEntries() {
	for _, e := range s.entries {
		if addr, ok := s.labels[e.Name]; ok {
			e.Address = addr
		}
	}
}

// sortedEntries returns the entry requests sorted by ascending address,
// stably with respect to original request order for ties.
func (s *symbolTable) sortedEntries() []entryRequest {
	out := make([]entryRequest, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}
