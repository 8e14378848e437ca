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
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// expandedLine is one line of the post-macro-expansion stream, tagged with
// the source line number it should be blamed on for any pass-1 diagnostic
// raised while sizing it. Lines coming from inside a macro body are blamed
// on the line that invoked the macro, since that is where they appear in
// the expanded (.am) stream.
type expandedLine struct {
	sourceLine int
	text       string
}

// preprocess reads raw source from r, expands macros, validates syntax and
// sizes the program, mutating ctx's symbol table and counters. It returns
// the expanded line stream (the would-be .am file) for pass 2 to re-read.
//
// The returned error is non-nil only for a fatal I/O failure reading r;
// syntax and semantic problems are reported through ctx.errs instead
// (pass 1 never aborts early on its own diagnostics).
func preprocess(ctx *context, r io.Reader) ([]expandedLine, error) {
	var expanded []expandedLine
	var insideMacro bool
	var current *macro

	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scan.Scan() {
		lineNo++
		line := scan.Text()
		toks := Tokens(line)

		if insideMacro {
			if len(toks) == 1 && toks[0] == endMacro {
				insideMacro = false
				current = nil
				continue
			}
			ctx.macros.append(current, line)
			continue
		}

		switch {
		case len(toks) == 1 && toks[0] == endMacro:
			ctx.fail(lineNo, EndMacroOutsideMacro, "", "endmacr outside of a macro definition")

		case len(toks) == 1 && reserved(toks[0]):
			expanded = append(expanded, expandedLine{lineNo, line})
			sizeAccountLine(ctx, lineNo, line)

		case len(toks) == 1:
			if m, ok := ctx.macros.lookup(toks[0]); ok {
				for _, body := range m.lines {
					expanded = append(expanded, expandedLine{lineNo, body})
					sizeAccountLine(ctx, lineNo, body)
				}
			} else {
				ctx.fail(lineNo, UndefinedMacroUse, toks[0], "undefined macro or empty instruction")
			}

		case len(toks) == 2 && toks[0] == macroKeyword:
			name := toks[1]
			m, ok := ctx.macros.define(name)
			if !ok {
				ctx.fail(lineNo, DuplicateMacro, name, "macro already defined")
				break
			}
			insideMacro = true
			current = m

		default:
			expanded = append(expanded, expandedLine{lineNo, line})
			sizeAccountLine(ctx, lineNo, line)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrap(err, "read source failed")
	}
	return expanded, nil
}

// sizeAccountLine strips leading label definitions, classifies the
// remainder as an instruction or directive, and advances ctx's instruction
// counter and line counters by the contribution of the line.
func sizeAccountLine(ctx *context, lineNo int, line string) {
	toks := Tokens(line)

	for len(toks) >= 2 && toks[1] == ":" {
		name := toks[0]
		if reserved(name) {
			ctx.fail(lineNo, ReservedLabel, name, "label name collides with a reserved word")
		} else if !ctx.symbols.addLabel(name, ctx.ic) {
			ctx.fail(lineNo, DuplicateLabel, name, "label already defined")
		}
		toks = toks[2:]
	}

	if len(toks) == 0 {
		return
	}

	first := toks[0]
	switch {
	case directives[first]:
		accountDirective(ctx, lineNo, first, toks)
	default:
		if _, ok := instructionIndex[first]; ok {
			accountInstruction(ctx, lineNo, first, toks)
		} else {
			ctx.fail(lineNo, InvalidSyntax, "", "line is neither a valid instruction nor a directive")
		}
	}
}

func accountInstruction(ctx *context, lineNo int, mnemonic string, toks []string) {
	in := instructionIndex[mnemonic]
	switch in.operands {
	case 0:
		if len(toks) != 1 {
			ctx.fail(lineNo, InvalidSyntax, mnemonic, "expected no operands")
			return
		}
		ctx.ic++
		ctx.codeLines++
	case 1:
		if len(toks) != 2 {
			ctx.fail(lineNo, InvalidSyntax, mnemonic, "expected exactly one operand")
			return
		}
		ctx.ic += 2
		ctx.codeLines += 2
	case 2:
		if len(toks) != 4 || toks[2] != "," {
			ctx.fail(lineNo, InvalidSyntax, mnemonic, "expected two comma-separated operands")
			return
		}
		src := parseOperand(toks[1])
		dst := parseOperand(toks[3])
		words := 1
		if src.isRegisterLike() && dst.isRegisterLike() {
			words++
		} else {
			words += 2
		}
		ctx.ic += words
		ctx.codeLines += words
	}
}

func accountDirective(ctx *context, lineNo int, name string, toks []string) {
	switch name {
	case dirData:
		accountData(ctx, lineNo, toks)
	case dirString:
		accountString(ctx, lineNo, toks)
	case dirEntry:
		if len(toks) != 2 {
			ctx.fail(lineNo, InvalidSyntax, name, "expected a single label name")
			return
		}
		ctx.symbols.requestEntry(toks[1])
	case dirExtern:
		if len(toks) != 2 {
			ctx.fail(lineNo, InvalidSyntax, name, "expected a single label name")
			return
		}
	}
}

func accountData(ctx *context, lineNo int, toks []string) {
	if len(toks) < 2 || len(toks)%2 != 0 {
		ctx.fail(lineNo, InvalidSyntax, dirData, "expected a comma-separated, even-length list of integers")
		return
	}
	for i := 1; i < len(toks); i++ {
		if i%2 == 1 {
			if _, err := strconv.Atoi(toks[i]); err != nil {
				ctx.fail(lineNo, InvalidSyntax, dirData, "expected an integer value")
				return
			}
		} else if toks[i] != "," {
			ctx.fail(lineNo, InvalidSyntax, dirData, "expected ',' between values")
			return
		}
	}
	words := len(toks) / 2
	ctx.ic += words
	ctx.dataLines += words
}

func accountString(ctx *context, lineNo int, toks []string) {
	if len(toks) != 2 {
		ctx.fail(lineNo, InvalidSyntax, dirString, "expected a single string literal")
		return
	}
	lit := toks[1]
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		ctx.fail(lineNo, InvalidSyntax, dirString, "string literal must be quoted")
		return
	}
	words := len(lit) - 1
	ctx.ic += words
	ctx.dataLines += words
}
