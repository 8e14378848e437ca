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

package objio

import (
	"fmt"
	"io"

	"github.com/arbora/hasm15/asm"
)

// WriteObject writes the .ob artefact: a header line of
// "<code-lines> <data-lines>", then one "<address> <5-digit octal value>"
// line per emitted word, in address order.
func WriteObject(w io.Writer, codeLines, dataLines int, words []asm.ObjectWord) error {
	ew := NewErrWriter(w)
	fmt.Fprintf(ew, "%d %d\n", codeLines, dataLines)
	for _, word := range words {
		fmt.Fprintf(ew, "%d %05o\n", word.Address, word.Value)
	}
	return ew.Err
}

// WriteExternals writes the .ext artefact: one "<label-name> <4-digit
// decimal address>" line per external reference, in emission order.
func WriteExternals(w io.Writer, refs []asm.ExternalRef) error {
	ew := NewErrWriter(w)
	for _, ref := range refs {
		fmt.Fprintf(ew, "%s %04d\n", ref.Name, ref.Address)
	}
	return ew.Err
}

// WriteEntries writes the .ent artefact: one "<label-name> <decimal
// address>" line per entry, in the order given (callers should pass
// entries already sorted by ascending address, as asm.Result does).
func WriteEntries(w io.Writer, entries []asm.EntryRef) error {
	ew := NewErrWriter(w)
	for _, e := range entries {
		fmt.Fprintf(ew, "%s %d\n", e.Name, e.Address)
	}
	return ew.Err
}
