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

package objio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbora/hasm15/internal/objio"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestErrWriter_RemembersFirstError(t *testing.T) {
	ew := objio.NewErrWriter(failingWriter{})
	_, err := ew.Write([]byte("a"))
	require.Error(t, err)
	_, err2 := ew.Write([]byte("b"))
	assert.Equal(t, err, err2)
	assert.Equal(t, ew.Err, err)
}

func TestErrWriter_PassesThroughOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	ew := objio.NewErrWriter(&buf)
	_, err := ew.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}

func TestRemoveIfEmpty_RemovesZeroLengthFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ext")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, objio.RemoveIfEmpty(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveIfEmpty_KeepsNonEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ext")
	require.NoError(t, os.WriteFile(path, []byte("X 0101\n"), 0o644))

	require.NoError(t, objio.RemoveIfEmpty(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRemoveIfEmpty_MissingFileIsNoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nope.ext")
	assert.NoError(t, objio.RemoveIfEmpty(path))
}
