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

// Package text provides the string storage behind an AST.
//
// Strings are not stored as Go strings inside tree nodes. Instead, they are
// written into one of two allocators, which hand back a [Ref]: a pair of
// 32-bit offsets into that allocator's storage.
//
//   - An [Interner] deduplicates its contents, so that equal strings yield
//     equal refs. It is intended for identifiers.
//   - A [Buffer] is append-only and stores WTF-8, so it can hold the lone
//     surrogates that may appear in string literals.
//
// Neither allocator ever moves bytes it has written, so refs stay valid for
// the allocator's whole life (or until it is reset). Neither is safe for
// concurrent use.
package text

import (
	"fmt"
	"math"
)

// Ref is a reference to text stored in an [Interner] or a [Buffer].
//
// A Ref is only meaningful together with the allocator that issued it. The
// zero Ref is the empty string in every allocator.
type Ref struct {
	lo, hi uint32
}

// RefFromBits reconstructs a Ref from the result of [Ref.Bits].
func RefFromBits(bits uint64) Ref {
	return Ref{lo: uint32(bits), hi: uint32(bits >> 32)}
}

// Lo returns the offset of the first byte of the referenced text.
func (r Ref) Lo() uint32 { return r.lo }

// Hi returns the offset one past the last byte of the referenced text.
func (r Ref) Hi() uint32 { return r.hi }

// Len returns the length of the referenced text, in bytes.
func (r Ref) Len() int {
	return int(r.hi - r.lo)
}

// IsEmpty returns whether this refers to the empty string.
func (r Ref) IsEmpty() bool {
	return r.lo == r.hi
}

// Bits packs this ref into 64 bits.
func (r Ref) Bits() uint64 {
	return uint64(r.lo) | uint64(r.hi)<<32
}

// String implements [fmt.Stringer].
func (r Ref) String() string {
	return fmt.Sprintf("text.Ref(%d:%d)", r.lo, r.hi)
}

// none is the hi value reserved for [None]. Allocators never issue offsets this
// large.
const none = math.MaxUint32

// None is the absent [OptionalRef].
var None = OptionalRef{Ref{hi: none}}

// OptionalRef is a [Ref] that may be absent. It has the same footprint as a
// Ref: absence is encoded as a hi offset no allocator will ever produce.
//
// The zero value is Some of the zero Ref, that is, a present empty string;
// absent values must be spelled [None].
type OptionalRef struct {
	ref Ref
}

// Some wraps a present ref.
func Some(r Ref) OptionalRef {
	if r.hi == none {
		panic("esast/text: cannot wrap a ref with a reserved offset")
	}
	return OptionalRef{r}
}

// OptionalRefFromBits reconstructs an OptionalRef from the result of
// [OptionalRef.Bits].
func OptionalRefFromBits(bits uint64) OptionalRef {
	return OptionalRef{RefFromBits(bits)}
}

// IsNone returns whether this ref is absent.
func (r OptionalRef) IsNone() bool {
	return r.ref.hi == none
}

// Get returns the wrapped ref, and whether it is present.
func (r OptionalRef) Get() (Ref, bool) {
	if r.IsNone() {
		return Ref{}, false
	}
	return r.ref, true
}

// Unwrap returns the wrapped ref. Panics if r is absent.
func (r OptionalRef) Unwrap() Ref {
	if r.IsNone() {
		panic("esast/text: unwrapped an absent ref")
	}
	return r.ref
}

// Bits packs this ref into 64 bits.
func (r OptionalRef) Bits() uint64 {
	return r.ref.Bits()
}

// String implements [fmt.Stringer].
func (r OptionalRef) String() string {
	if r.IsNone() {
		return "text.None"
	}
	return fmt.Sprintf("text.Some(%d:%d)", r.ref.lo, r.ref.hi)
}
