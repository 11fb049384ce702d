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
package unicodex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Ellipsis is appended to text shortened by [Truncate].
const Ellipsis = "…"

// NonPrint returns whether r is rendered as <U+NNNN> by [Escape].
func NonPrint(r rune) bool {
	return r != ' ' && !unicode.IsPrint(r)
}

// Escape replaces every unprintable rune in s with <U+NNNN>, so that a
// string can be shown on one line of a terminal.
func Escape(s string) string {
	if strings.IndexFunc(s, NonPrint) == -1 {
		return s
	}

	var out strings.Builder
	for _, r := range s {
		if NonPrint(r) {
			fmt.Fprintf(&out, "<U+%04X>", r)
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Width returns the approximate width of s in terminal columns.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most maxWidth terminal columns, ending it with
// [Ellipsis] if anything was cut. Grapheme clusters are never split.
//
// A non-positive maxWidth disables truncation.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	budget := maxWidth - uniseg.StringWidth(Ellipsis)
	var column, cut int
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if column+width > budget {
			break
		}
		column += width
		cut += len(cluster)
	}
	return s[:cut] + Ellipsis
}
