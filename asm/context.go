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

// Option configures a context. Options are applied in order, so later
// options override earlier ones.
type Option func(*context)

// StartIC overrides the address of the first word emitted by either pass.
// Defaults to 100.
func StartIC(addr int) Option {
	return func(c *context) { c.startIC = addr }
}

// MaxErrors overrides how many pass-1 errors are recorded; later errors are
// dropped while the pass keeps scanning. Defaults to 10.
func MaxErrors(n int) Option {
	return func(c *context) { c.maxErrors = n }
}

// WordBits overrides the machine word width used to mask emitted values.
// Defaults to 15.
func WordBits(bits int) Option {
	return func(c *context) { c.wordMask = (1 << uint(bits)) - 1 }
}

// context is the single mutable value threaded through pass 1 and pass 2,
// per the "single assembler context" design note: it owns the macro table,
// the symbol table, the instruction counter, the size counters and the
// accumulated error list, so that neither pass relies on package-level
// state.
type context struct {
	macros  *macroTable
	symbols *symbolTable

	ic        int
	codeLines int
	dataLines int

	errs ErrorList

	startIC   int
	maxErrors int
	wordMask  int
}

func newContext(opts ...Option) *context {
	c := &context{
		macros:    newMacroTable(),
		symbols:   newSymbolTable(),
		startIC:   defaultStartIC,
		maxErrors: defaultMaxErrors,
		wordMask:  (1 << defaultWordBits) - 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ic = c.startIC
	return c
}

// fail records a pass-1 diagnostic at the given source line. Pass 1 keeps
// scanning the whole file regardless of error count (errors are never
// fatal within pass 1), but stops recording new diagnostics once
// maxErrors is reached, so a badly malformed file doesn't produce an
// unbounded cascade of noise.
func (c *context) fail(line int, kind Kind, name, msg string) {
	if len(c.errs) >= c.maxErrors {
		return
	}
	c.errs = append(c.errs, Error{Line: line, Kind: kind, Name: name, Msg: msg})
}
