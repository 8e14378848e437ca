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

import "strconv"

// ObjectWord is one emitted machine word: the address it is placed at and
// its 15-bit-masked value.
type ObjectWord struct {
	Address int
	Value   int
}

// ExternalRef records a use of a label that is not defined in the source,
// whether or not it was declared with ".extern": the label's name and the
// address of the operand word that referred to it.
type ExternalRef struct {
	Name    string
	Address int
}

// encode re-reads the expanded line stream produced by pass 1 and emits
// object words, resetting the instruction counter to the same start value
// pass 1 used. No errors are expected here: pass 1 is the gate, and encode
// is only called once pass 1 reports zero errors.
func encode(ctx *context, lines []expandedLine) (words []ObjectWord, externals []ExternalRef) {
	ctx.ic = ctx.startIC
	for _, l := range lines {
		toks := Tokens(l.text)
		for len(toks) >= 2 && toks[1] == ":" {
			toks = toks[2:]
		}
		if len(toks) == 0 {
			continue
		}
		first := toks[0]
		if directives[first] {
			w, e := encodeDirective(ctx, first, toks)
			words = append(words, w...)
			externals = append(externals, e...)
			continue
		}
		w, e := encodeInstruction(ctx, first, toks)
		words = append(words, w...)
		externals = append(externals, e...)
	}
	return words, externals
}

func emit(ctx *context, value int) ObjectWord {
	w := ObjectWord{Address: ctx.ic, Value: value & ctx.wordMask}
	ctx.ic++
	return w
}

func encodeInstruction(ctx *context, mnemonic string, toks []string) (words []ObjectWord, externals []ExternalRef) {
	in := instructionIndex[mnemonic]
	switch in.operands {
	case 0:
		words = append(words, emit(ctx, in.opcode<<11|linkAbsolute))
	case 1:
		dst := parseOperand(toks[1])
		words = append(words, emit(ctx, in.opcode<<11|dst.addressingMode()<<3|linkAbsolute))
		w, ext := encodeOperandWord(ctx, dst, 3)
		words = append(words, w)
		if ext != nil {
			externals = append(externals, *ext)
		}
	case 2:
		src := parseOperand(toks[1])
		dst := parseOperand(toks[3])
		words = append(words, emit(ctx, in.opcode<<11|src.addressingMode()<<7|dst.addressingMode()<<3|linkAbsolute))
		if src.isRegisterLike() && dst.isRegisterLike() {
			words = append(words, emit(ctx, src.value<<6|dst.value<<3|linkAbsolute))
		} else {
			w, ext := encodeOperandWord(ctx, src, 6)
			words = append(words, w)
			if ext != nil {
				externals = append(externals, *ext)
			}
			w, ext = encodeOperandWord(ctx, dst, 3)
			words = append(words, w)
			if ext != nil {
				externals = append(externals, *ext)
			}
		}
	}
	return words, externals
}

// encodeOperandWord encodes a single non-shared operand word. shift is 6
// for a source operand and 3 for a destination operand.
func encodeOperandWord(ctx *context, o operand, shift int) (ObjectWord, *ExternalRef) {
	switch o.kind {
	case kindImmediate:
		return emit(ctx, o.value<<3|linkAbsolute), nil
	case kindRegister, kindIndirectRegister:
		return emit(ctx, o.value<<shift|linkAbsolute), nil
	default: // kindDirect
		if addr, ok := ctx.symbols.label(o.name); ok {
			return emit(ctx, addr<<3|linkRelocatable), nil
		}
		addr := ctx.ic
		w := emit(ctx, linkExternal)
		return w, &ExternalRef{Name: o.name, Address: addr}
	}
}

func encodeDirective(ctx *context, name string, toks []string) (words []ObjectWord, externals []ExternalRef) {
	switch name {
	case dirData:
		for i := 1; i < len(toks); i += 2 {
			n, _ := strconv.Atoi(toks[i])
			words = append(words, emit(ctx, n))
		}
	case dirString:
		lit := toks[1]
		for i := 1; i < len(lit)-1; i++ {
			words = append(words, emit(ctx, int(lit[i])&0xFF))
		}
		words = append(words, emit(ctx, 0))
	case dirEntry, dirExtern:
		// contribute no words
	}
	return words, externals
}
