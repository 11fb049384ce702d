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

package text_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/text"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"a",
		"abc",
		"?",
		"xy.z",
		"a_b_c",
		"very long",
		" ",
		"verylong",
		"\u00e9t\u00e9",
	}

	var in text.Interner
	refs := make(map[string]text.Ref)
	for i := range 3 {
		for _, s := range data {
			ref := in.Intern(s)
			assert.Equal(t, s, in.Get(ref), "%v, round %d", ref, i)
			assert.Equal(t, len(s), ref.Len())
			if prev, ok := refs[s]; ok {
				assert.Equal(t, prev, ref, "%q was not deduplicated", s)
			}
			refs[s] = ref
		}
	}
	assert.Equal(t, len(data)-1, in.Len())
	assert.Equal(t, text.Ref{}, in.Intern(""))

	_, ok := in.Query("missing")
	assert.False(t, ok)
	ref, ok := in.Query("abc")
	assert.True(t, ok)
	assert.Equal(t, refs["abc"], ref)
	assert.Equal(t, refs["abc"], in.InternBytes([]byte("abc")))
}

func TestInternGrowth(t *testing.T) {
	t.Parallel()

	var in text.Interner
	var refs []text.Ref
	for i := range 10000 {
		refs = append(refs, in.Intern(fmt.Sprintf("identifier%d", i)))
	}

	// Nothing issued before growth may have moved.
	for i, ref := range refs {
		require.Equal(t, fmt.Sprintf("identifier%d", i), in.Get(ref))
	}
	for i := 1; i < len(refs); i++ {
		assert.Less(t, refs[i-1].Lo(), refs[i].Lo())
	}

	big := strings.Repeat("x", 1<<21)
	ref := in.Intern(big)
	assert.Equal(t, big, in.Get(ref))
	assert.Equal(t, "identifier0", in.Get(refs[0]))
}

func TestInternReset(t *testing.T) {
	t.Parallel()

	var in text.Interner
	in.Intern("foo")
	in.Intern("bar")
	in.Reset()
	assert.Equal(t, 0, in.Len())
	_, ok := in.Query("foo")
	assert.False(t, ok)

	ref := in.Intern("baz")
	assert.Equal(t, "baz", in.Get(ref))
}

func TestSetAndMap(t *testing.T) {
	t.Parallel()

	var in text.Interner
	s := make(text.Set)
	assert.True(t, s.Add(in.Intern("x")))
	assert.False(t, s.Add(in.Intern("x")))
	assert.True(t, s.Contains(&in, "x"))
	assert.False(t, s.Contains(&in, "y"))

	m := make(text.Map[int])
	_, inserted := m.Add(in.Intern("k"), 1)
	assert.True(t, inserted)
	v, inserted := m.Add(in.Intern("k"), 2)
	assert.False(t, inserted)
	assert.Equal(t, 1, v)
	v, ok := m.Get(&in, "k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = m.Get(&in, "nope")
	assert.False(t, ok)
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	var buf text.Buffer
	a := buf.Add("hello")
	b := buf.Add("hello")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "hello", buf.GetUTF8(a))
	assert.Equal(t, "hello", buf.GetUTF8(b))

	e1 := buf.Add("")
	e2 := buf.Add("")
	assert.NotEqual(t, e1, e2)
	assert.Empty(t, buf.Get(e1))
	assert.Equal(t, 4, buf.Len())
}

func TestBufferSurrogates(t *testing.T) {
	t.Parallel()

	var buf text.Buffer

	// A trailing lone lead followed by an entry with a leading lone trail
	// must not fuse into one code point.
	lead := []uint16{'a', 0xd83d}
	trail := []uint16{0xde00, 'b'}
	r1 := buf.AddUTF16(lead)
	r2 := buf.AddUTF16(trail)

	assert.Equal(t, lead, buf.GetUTF16(r1))
	assert.Equal(t, trail, buf.GetUTF16(r2))
	assert.Equal(t, "a\ufffd", buf.GetUTF8(r1))
	assert.Equal(t, "\ufffdb", buf.GetUTF8(r2))
	assert.Equal(t, r1.Hi()+3, r2.Lo(), "entries should be separated")

	pair := utf16.Encode([]rune("\U0001f600"))
	r3 := buf.AddUTF16(pair)
	assert.Equal(t, "\U0001f600", buf.GetUTF8(r3))
	assert.Equal(t, pair, buf.GetUTF16(r3))

	r4 := buf.AddWTF8(buf.Get(r1))
	assert.Equal(t, buf.Get(r1), buf.Get(r4))
}

func TestBufferGrowth(t *testing.T) {
	t.Parallel()

	var buf text.Buffer
	var refs []text.Ref
	for i := range 5000 {
		refs = append(refs, buf.AddUTF16(utf16.Encode([]rune(fmt.Sprintf("literal %d", i)))))
	}
	for i, ref := range refs {
		require.Equal(t, fmt.Sprintf("literal %d", i), buf.GetUTF8(ref))
	}

	// Appending to a returned slice must not clobber the next entry.
	got := buf.Get(refs[0])
	_ = append(got, "garbage"...)
	assert.Equal(t, "literal 1", buf.GetUTF8(refs[1]))
}

func TestOptionalRef(t *testing.T) {
	t.Parallel()

	var in text.Interner
	var buf text.Buffer
	refs := []text.Ref{{}, in.Intern("x"), buf.Add("y"), buf.Add("")}
	for _, ref := range refs {
		opt := text.Some(ref)
		assert.False(t, opt.IsNone())
		assert.Equal(t, ref, opt.Unwrap())
		got, ok := opt.Get()
		assert.True(t, ok)
		assert.Equal(t, ref, got)
		assert.Equal(t, opt, text.OptionalRefFromBits(opt.Bits()))
		assert.Equal(t, ref, text.RefFromBits(ref.Bits()))
	}

	assert.True(t, text.None.IsNone())
	_, ok := text.None.Get()
	assert.False(t, ok)
	assert.Panics(t, func() { text.None.Unwrap() })
	assert.Equal(t, "text.None", text.None.String())

	_, ok = in.GetOptional(text.None)
	assert.False(t, ok)
	_, ok = buf.GetOptional(text.None)
	assert.False(t, ok)
	_, ok = buf.GetUTF8Optional(text.None)
	assert.False(t, ok)

	s, ok := in.GetOptional(text.Some(refs[1]))
	assert.True(t, ok)
	assert.Equal(t, "x", s)
}
