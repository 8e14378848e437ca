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

package main

// File extensions for the driver's five files. The positional CLI
// argument is the base name with none of these attached.
const (
	extSource   = ".as"
	extExpanded = ".am"
	extObject   = ".ob"
	extEntries  = ".ent"
	extExterns  = ".ext"
)

func withExt(base, ext string) string {
	return base + ext
}
