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

// instruction describes one of the 16 fixed mnemonics.
type instruction struct {
	mnemonic string
	opcode   int
	operands int
}

var instructions = [...]instruction{
	{"mov", 0, 2},
	{"cmp", 1, 2},
	{"add", 2, 2},
	{"sub", 3, 2},
	{"lea", 4, 2},
	{"clr", 5, 1},
	{"not", 6, 1},
	{"inc", 7, 1},
	{"dec", 8, 1},
	{"jmp", 9, 1},
	{"bne", 10, 1},
	{"red", 11, 1},
	{"prn", 12, 1},
	{"jsr", 13, 1},
	{"rts", 14, 0},
	{"stop", 15, 0},
}

var instructionIndex = make(map[string]instruction, len(instructions))

func init() {
	for _, in := range instructions {
		instructionIndex[in.mnemonic] = in
	}
}

// Directive names.
const (
	dirData   = ".data"
	dirEntry  = ".entry"
	dirExtern = ".extern"
	dirString = ".string"
)

var directives = map[string]bool{
	dirData:   true,
	dirEntry:  true,
	dirExtern: true,
	dirString: true,
}

const endMacro = "endmacr"
const macroKeyword = "macr"

// reserved reports whether name is one of the 16 mnemonics or 4 directives.
func reserved(name string) bool {
	if _, ok := instructionIndex[name]; ok {
		return true
	}
	return directives[name]
}

// Linkage flags, the low 3 bits of every encoded word.
const (
	linkAbsolute   = 0x4
	linkRelocatable = 0x2
	linkExternal   = 0x1
)

// Addressing mode bit-flags.
const (
	modeImmediate = 1
	modeDirect    = 2
	modeIndirect  = 4
	modeRegister  = 8
)

// Defaults, overridable via Options (see context.go).
const (
	defaultStartIC   = 100
	defaultWordBits  = 15
	defaultMaxErrors = 10
)
