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

import "strings"

// Tokens splits a raw source line into whitespace-separated tokens, with ','
// and ':' tokenized as standalone single-character tokens. A ';' introduces
// a comment that truncates the line at that position; the ';' and everything
// after it are invisible to the tokenizer. Strings such as "hello, world"
// are returned as a single token only when their interior contains no
// separator character: the tokenizer has no notion of quoting.
func Tokens(line string) []string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	const whitespace = " \t\r\n"
	const separators = ",:" + whitespace
	var tokens []string
	n := len(line)
	for i := 0; i < n; {
		if strings.IndexByte(whitespace, line[i]) >= 0 {
			i++
			continue
		}
		if line[i] == ',' || line[i] == ':' {
			tokens = append(tokens, line[i:i+1])
			i++
			continue
		}
		j := strings.IndexAny(line[i:], separators)
		if j < 0 {
			tokens = append(tokens, line[i:])
			break
		}
		tokens = append(tokens, line[i:i+j])
		i += j
	}
	return tokens
}

// TokenAt returns the token at zero-based index i in line, or "" if i is
// past the end of the token sequence.
func TokenAt(line string, i int) string {
	toks := Tokens(line)
	if i < 0 || i >= len(toks) {
		return ""
	}
	return toks[i]
}

// TokenCount returns the total number of tokens in line.
func TokenCount(line string) int {
	return len(Tokens(line))
}
