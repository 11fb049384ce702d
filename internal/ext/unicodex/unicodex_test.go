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
package unicodex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/esast/internal/ext/unicodex"
)

func TestIdent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"x", "$", "_foo", "a1", "café", "$jq", "a\u200db"} {
		assert.True(t, unicodex.IsIdent(s), "%q", s)
	}
	for _, s := range []string{"", "1a", "a-b", "a b", "\u200db", "#x"} {
		assert.False(t, unicodex.IsIdent(s), "%q", s)
	}
}

func TestDigit(t *testing.T) {
	t.Parallel()

	v, ok := unicodex.Digit('f', 16)
	assert.True(t, ok)
	assert.Equal(t, byte(15), v)
	_, ok = unicodex.Digit('8', 8)
	assert.False(t, ok)

	base, ok := unicodex.RadixPrefix('b')
	assert.True(t, ok)
	assert.Equal(t, byte(2), base)
	_, ok = unicodex.RadixPrefix('e')
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"日本語のテキスト", 7, "日本語…"},
		{"ééé", 2, "é…"},
	}
	for _, tt := range tests {
		got := unicodex.Truncate(tt.in, tt.width)
		assert.Equal(t, tt.want, got, "%q", tt.in)
		if tt.width > 0 {
			assert.LessOrEqual(t, unicodex.Width(got), tt.width)
		}
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", unicodex.Escape("a b"))
	assert.Equal(t, "a<U+000A>b", unicodex.Escape("a\nb"))
	assert.Equal(t, "<U+FEFF>x", unicodex.Escape("\ufeffx"))
}
