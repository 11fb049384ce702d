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

package wtf8_test

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/esast/text/wtf8"
)

func TestAppendRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    rune
		want []byte
	}{
		{'a', []byte("a")},
		{'é', []byte("é")},
		{0x1f600, []byte("\U0001f600")},
		{0xd800, []byte{0xed, 0xa0, 0x80}},
		{0xdbff, []byte{0xed, 0xaf, 0xbf}},
		{0xdc00, []byte{0xed, 0xb0, 0x80}},
		{0xdfff, []byte{0xed, 0xbf, 0xbf}},
	}
	for _, tt := range tests {
		got := wtf8.AppendRune(nil, tt.r)
		assert.Equal(t, tt.want, got, "%U", tt.r)

		r, n := wtf8.DecodeRune(got)
		assert.Equal(t, tt.r, r)
		assert.Equal(t, len(got), n)
	}
}

func TestAppendUTF16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		units []uint16
		utf8  string
		valid bool
	}{
		{"ascii", utf16.Encode([]rune("hello")), "hello", true},
		{"pair", utf16.Encode([]rune("x\U0001f600y")), "x\U0001f600y", true},
		{"lone lead", []uint16{'a', 0xd83d, 'b'}, "a\ufffdb", false},
		{"lone trail", []uint16{0xde00}, "\ufffd", false},
		{"reversed pair", []uint16{0xde00, 0xd83d}, "\ufffd\ufffd", false},
		{"trailing lead", []uint16{'z', 0xd83d}, "z\ufffd", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := wtf8.AppendUTF16(nil, tt.units)
			assert.True(t, wtf8.Valid(b))
			assert.Equal(t, tt.valid, wtf8.IsWellFormed(b))
			assert.Equal(t, tt.utf8, wtf8.ToUTF8(b))
			assert.Equal(t, tt.units, wtf8.ToUTF16(b))
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, wtf8.Valid(nil))
	assert.True(t, wtf8.Valid([]byte("plain")))
	assert.False(t, wtf8.Valid([]byte{0xff}))
	assert.False(t, wtf8.Valid([]byte{0xe2, 0x82}))

	// A lead followed by a trail must be encoded as one code point.
	pair := wtf8.AppendRune(wtf8.AppendRune(nil, 0xd83d), 0xde00)
	assert.False(t, wtf8.Valid(pair))

	// A trail followed by a lead is fine.
	unpaired := wtf8.AppendRune(wtf8.AppendRune(nil, 0xde00), 0xd83d)
	assert.True(t, wtf8.Valid(unpaired))
}
