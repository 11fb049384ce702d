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

package text

import (
	"unicode/utf8"

	"github.com/bufbuild/esast/internal/debug"
	"github.com/bufbuild/esast/text/wtf8"
)

// Separator is written between consecutive entries of a [Buffer].
//
// It is a private-use code point, so it never forms a surrogate pair with its
// neighbors: a lone lead surrogate at the end of one entry and a lone trail
// surrogate at the start of the next are never adjacent in storage.
const Separator = '\ue000'

var separator = utf8.AppendRune(nil, Separator)

// Buffer is an append-only allocator for WTF-8 text.
//
// Every call to one of the Add methods stores a new entry and returns a fresh
// [Ref], even if the same text was added before.
//
// The zero value is empty and ready to use. A Buffer must not be used by
// multiple goroutines concurrently.
type Buffer struct {
	owner   debug.Owner
	data    chunks
	entries int
}

// Add adds a string. s is interpreted as WTF-8; ordinary UTF-8 strings are
// always valid.
func (b *Buffer) Add(s string) Ref {
	lo := b.begin(len(s))
	b.data.writeString(s)
	return Ref{lo, b.data.offset()}
}

// AddWTF8 adds a WTF-8 byte string.
func (b *Buffer) AddWTF8(s []byte) Ref {
	lo := b.begin(len(s))
	b.data.write(s...)
	return Ref{lo, b.data.offset()}
}

// AddUTF16 adds a sequence of UTF-16 code units, which may contain unpaired
// surrogates.
func (b *Buffer) AddUTF16(units []uint16) Ref {
	// No code unit needs more than three bytes.
	lo := b.begin(3 * len(units))
	b.data.cur = wtf8.AppendUTF16(b.data.cur, units)
	return Ref{lo, b.data.offset()}
}

// begin prepares storage for an entry of at most n bytes and returns its
// starting offset.
func (b *Buffer) begin(n int) uint32 {
	b.owner.Check("esast/text: Buffer")

	sep := 0
	if b.entries > 0 {
		sep = len(separator)
	}
	b.data.reserve(sep + n)
	if sep > 0 {
		b.data.write(separator...)
	}
	b.entries++

	if debug.Enabled {
		// Entries must not straddle chunks, since refs are resolved within one
		// chunk.
		debug.Assert(cap(b.data.cur)-len(b.data.cur) >= n, "esast/text: Buffer reserved too little")
	}
	return b.data.offset()
}

// Get returns the WTF-8 bytes that ref refers to.
//
// The returned slice aliases the buffer's storage and must not be modified.
func (b *Buffer) Get(ref Ref) []byte {
	b.owner.Check("esast/text: Buffer")
	return b.data.get(ref.lo, ref.hi)
}

// GetUTF8 returns the text that ref refers to as UTF-8, with each lone
// surrogate replaced by U+FFFD.
func (b *Buffer) GetUTF8(ref Ref) string {
	return wtf8.ToUTF8(b.Get(ref))
}

// GetUTF16 returns the text that ref refers to as UTF-16 code units.
func (b *Buffer) GetUTF16(ref Ref) []uint16 {
	return wtf8.ToUTF16(b.Get(ref))
}

// GetOptional is like [Buffer.Get], but returns false if ref is absent.
func (b *Buffer) GetOptional(ref OptionalRef) ([]byte, bool) {
	r, ok := ref.Get()
	if !ok {
		return nil, false
	}
	return b.Get(r), true
}

// GetUTF8Optional is like [Buffer.GetUTF8], but returns false if ref is
// absent.
func (b *Buffer) GetUTF8Optional(ref OptionalRef) (string, bool) {
	r, ok := ref.Get()
	if !ok {
		return "", false
	}
	return b.GetUTF8(r), true
}

// Len returns the number of entries added.
func (b *Buffer) Len() int {
	return b.entries
}

// Size returns the number of bytes of storage in use, including separators.
func (b *Buffer) Size() int {
	return b.data.size()
}

// Reset discards every entry, invalidating all refs issued so far. Storage is
// retained for reuse.
func (b *Buffer) Reset() {
	b.owner.Check("esast/text: Buffer")
	b.data.reset()
	b.entries = 0
}

// Release gives up this buffer's ownership by the current goroutine, so it
// may be handed to another one. This only matters in checked builds.
func (b *Buffer) Release() {
	b.owner.Release()
}
