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

// Package objio writes the assembler's three binary-adjacent text artefacts
// (object, externals, entries) and applies the "remove if empty" output
// policy around them.
package objio

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and remembers the first error any Write
// call produced, so callers can fire off a sequence of unchecked Writes and
// check once at the end.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter returns a new ErrWriter wrapping w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// RemoveIfEmpty deletes the file at path if it exists and is zero-length,
// per the driver policy of never leaving an empty .ob/.ent/.ext behind.
func RemoveIfEmpty(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "stat failed")
	}
	if st.Size() != 0 {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, "remove failed")
	}
	return nil
}
