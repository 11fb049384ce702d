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
	"fmt"
	"sort"
)

const (
	minChunk = 4 << 10
	maxChunk = 1 << 20
)

// chunks is append-only byte storage addressed by global 32-bit offsets.
//
// When the current chunk fills up it is retired, never freed and never
// resized, so slices handed out earlier remain valid. A single write never
// straddles two chunks.
type chunks struct {
	retired [][]byte
	bases   []uint32 // Global offset of each retired chunk.

	cur  []byte
	base uint32 // Global offset of cur.
}

// reserve ensures that the next n bytes written land in one chunk.
func (c *chunks) reserve(n int) {
	if cap(c.cur)-len(c.cur) >= n {
		return
	}

	end := uint64(c.base) + uint64(len(c.cur)) + uint64(n)
	if end >= none {
		panic(fmt.Sprintf("esast/text: storage exhausted 32-bit offsets (%d bytes)", end))
	}

	if len(c.cur) > 0 {
		c.retired = append(c.retired, c.cur)
		c.bases = append(c.bases, c.base)
		c.base += uint32(len(c.cur))
	}
	c.cur = make([]byte, 0, max(min(2*cap(c.cur), maxChunk), minChunk, n))
}

// write appends b to the current chunk, which must have room for it.
func (c *chunks) write(b ...byte) {
	c.cur = append(c.cur, b...)
}

// writeString appends s to the current chunk, which must have room for it.
func (c *chunks) writeString(s string) {
	c.cur = append(c.cur, s...)
}

// offset returns the global offset of the next byte to be written.
func (c *chunks) offset() uint32 {
	return c.base + uint32(len(c.cur))
}

// get returns the bytes in [lo, hi). The returned slice has its capacity
// clipped, so appending to it cannot clobber neighboring text.
func (c *chunks) get(lo, hi uint32) []byte {
	if lo == hi {
		return nil
	}

	if lo >= c.base {
		return c.cur[lo-c.base : hi-c.base : hi-c.base]
	}

	i := sort.Search(len(c.bases), func(i int) bool { return c.bases[i] > lo }) - 1
	if i < 0 {
		panic(fmt.Sprintf("esast/text: offset out of range: %d", lo))
	}
	lo -= c.bases[i]
	hi -= c.bases[i]
	return c.retired[i][lo:hi:hi]
}

// size returns the number of bytes written so far.
func (c *chunks) size() int {
	return int(c.offset())
}

// reset discards all contents, keeping the current chunk for reuse.
func (c *chunks) reset() {
	clear(c.retired)
	c.retired = c.retired[:0]
	c.bases = c.bases[:0]
	c.cur = c.cur[:0]
	c.base = 0
}
