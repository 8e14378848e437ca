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

// Package asm implements a two-pass assembler for a small 15-bit-word
// machine with 16 fixed opcodes.
//
// Supported mnemonics and opcodes:
//
//	opcode	mnemonic	operands
//	0	mov		2
//	1	cmp		2
//	2	add		2
//	3	sub		2
//	4	lea		2
//	5	clr		1
//	6	not		1
//	7	inc		1
//	8	dec		1
//	9	jmp		1
//	10	bne		1
//	11	red		1
//	12	prn		1
//	13	jsr		1
//	14	rts		0
//	15	stop		0
//
// Directives:
//
//	.data <int> [, <int>]*
//	.string "<chars>"
//	.entry <name>
//	.extern <name>
//
// Operands:
//
//	#<int>		immediate
//	r0..r7		register
//	*r0..*r7	indirect register
//	<name>		direct (label reference)
//
// Labels are introduced with a trailing colon ("LABEL:") at the start of a
// line. Macros are parameterless line substitutions:
//
//	macr <name>
//	  <lines...>
//	endmacr
//
// and are invoked by a line consisting of the macro name alone.
//
// Pass 1 reads the source, expands macros, validates syntax, binds labels
// to addresses and sizes the resulting image. If pass 1 reports any errors,
// pass 2 does not run. Pass 2 re-reads the expanded source and emits
// object words, starting both passes' instruction counter at 100.
package asm
