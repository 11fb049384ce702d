// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package unsafex contains helpers built on package unsafe.
//
// Importing this package should be treated as equivalent to importing unsafe.
package unsafex

import "unsafe"

// StringAlias returns a string sharing b's memory, without copying it.
//
// b must never be written to again while the string is reachable.
func StringAlias(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
