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

// macro is a named ordered sequence of raw source lines, substituted
// textually wherever its name is invoked.
type macro struct {
	name  string
	lines []string
}

// macroTable stores macros by name. The zero value is not usable; use
// newMacroTable.
type macroTable struct {
	byName map[string]*macro
}

func newMacroTable() *macroTable {
	return &macroTable{byName: make(map[string]*macro)}
}

// define creates a new, empty macro named name. It fails if name is
// already defined.
func (t *macroTable) define(name string) (*macro, bool) {
	if _, ok := t.byName[name]; ok {
		return nil, false
	}
	m := &macro{name: name}
	t.byName[name] = m
	return m, true
}

// append appends a raw source line to m, in encounter order.
func (t *macroTable) append(m *macro, line string) {
	m.lines = append(m.lines, line)
}

// lookup returns the macro named name, if defined.
func (t *macroTable) lookup(name string) (*macro, bool) {
	m, ok := t.byName[name]
	return m, ok
}
