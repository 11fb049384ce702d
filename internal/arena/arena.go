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

// Package arena defines an [Arena] type with compressed pointers.
//
// Pointers are four-byte, one-based indices. Values never move once
// allocated, so Go pointers into an arena stay valid while it is alive, and
// structures made of compressed pointers give the GC little to traverse.
package arena

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"strings"
)

// pointersMinLenShift is the log2 of the size of the smallest slice in
// an Arena[T].
const (
	pointersMinLenShift = 4
	pointersMinLen      = 1 << pointersMinLenShift
)

// An untyped arena pointer.
//
// The pointer value of a particular pointer in an arena is equal to one
// plus the number of elements allocated before it.
type Untyped uint32

// Nil returns a nil arena pointer.
func Nil() Untyped {
	return 0
}

// Nil returns whether this pointer is nil.
func (p Untyped) Nil() bool {
	return p == 0
}

// A compressed arena pointer.
//
// Cannot be dereferenced directly; see [Arena.Deref].
//
// The zero value is nil.
type Pointer[T any] Untyped

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return Untyped(p).Nil()
}

// Arena is an arena that offers compressed pointers. Internally, it is a slice
// of T that guarantees the Ts will never be moved.
//
// It does this by maintaining a table of logarithmically-growing slices that
// mimic the resizing behavior of an ordinary slice. This trades off the linear
// 8-byte overhead of []*T for a logarithmic 24-byte overhead. Lookup time
// remains O(1), at the cost of two pointer loads instead of one.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == 1<<pointersMinLenShift.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. cap(table[n]) == len(table[n]) for n < len(table)-1.
	//
	// These invariants are needed for lookup to be O(1).
	table [][]T

	// Slices detached by Reset or allocated by Grow. Their capacities continue
	// the sequence in table, so New can reattach them in order.
	spare [][]T
}

// New allocates a new value on the arena.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, pointersMinLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, a.next(2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	n := a.Len()
	if n > math.MaxUint32 {
		panic("arena: exhausted 32-bit pointer space")
	}
	return Pointer[T](n)
}

// Deref dereferences a compressed pointer.
//
// p must have been allocated by this arena. If p is nil or out of range, this
// panics.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	return a.At(Untyped(p))
}

// At dereferences an untyped arena pointer, as if by [Arena.Deref].
func (a *Arena[T]) At(ptr Untyped) *T {
	slice, idx := a.coordinates(int(ptr) - 1)
	return &a.table[slice][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}

	// Only the last slice will be not-fully-filled.
	return a.lenOfFirstNSlices(len(a.table)-1) + len(a.table[len(a.table)-1])
}

// All returns an iterator over every pointer in this arena and the value it
// refers to, in allocation order.
func (a *Arena[T]) All() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		var p Pointer[T]
		for _, slice := range a.table {
			for i := range slice {
				p++
				if !yield(p, &slice[i]) {
					return
				}
			}
		}
	}
}

// Grow ensures that at least n more values can be allocated without
// allocating new backing storage.
func (a *Arena[T]) Grow(n int) {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, pointersMinLen)}
	}

	need := a.Len() + n
	for {
		slices := len(a.table) + len(a.spare)
		if a.lenOfFirstNSlices(slices) >= need {
			return
		}
		a.spare = append(a.spare, make([]T, 0, a.lenOfNthSlice(slices)))
	}
}

// Reset empties this arena while keeping its backing slices for reuse.
//
// Every pointer previously returned by New becomes invalid.
func (a *Arena[T]) Reset() {
	if len(a.table) == 0 {
		return
	}

	for i := range a.table {
		clear(a.table[i])
		a.table[i] = a.table[i][:0]
	}
	a.spare = append(a.table[1:len(a.table):len(a.table)], a.spare...)
	a.table = a.table[:1]
}

// next returns an empty slice with the given capacity, preferring a spare.
func (a *Arena[T]) next(capacity int) []T {
	if len(a.spare) > 0 {
		// Spares always continue the table's capacity sequence.
		s := a.spare[0]
		a.spare = a.spare[1:]
		return s
	}
	return make([]T, 0, capacity)
}

// String implements [strings.Stringer].
func (a Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	// Don't use a.All, we want to subtly show off the boundaries of the
	// subarrays.
	for i, slice := range a.table {
		if i != 0 {
			b.WriteRune('|')
		}
		for i, v := range slice {
			if i != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}

// lenOfNthSlice returns the length of the nth slice, even if it isn't
// allocated yet.
func (*Arena[T]) lenOfNthSlice(n int) int {
	return pointersMinLen << n
}

// lenOfFirstNSlices returns the length of the first n slices.
func (a *Arena[T]) lenOfFirstNSlices(n int) int {
	// Note the following identity:
	//
	// 2^m + 2^(m+1) + ... + 2^n = 2^(n+1) - 2^m
	//
	// This tells us that the sum of a.lenOfNthSlice(m) from 0 to n-1 (the first
	// n slices) is
	return max(0, a.lenOfNthSlice(n)-a.lenOfNthSlice(0))
}

// coordinates calculates the coordinates of the given index in table. It
// also performs a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Given pointersMinLenShift == n, the cumulative starting index of each slice is
	//
	// 0b0 << n, 0b1 << n, 0b11 << n, 0b111 << n
	//
	// Thus, to find which slice an index corresponds to, we add 0b1 << n (pointersMinLen).
	// Because << distributes over addition, we get
	//
	// 0b1 << n, 0b10 << n, 0b100 << n, 0b1000 << n
	//
	// Taking the one-indexed high order bit, which maps this sequence to
	//
	// 1+n, 2+n, 3+n, 4+n
	//
	// We can subtract off n+1 to obtain the actual slice index:
	//
	// 0, 1, 2, 3

	slice := bits.UintSize - bits.LeadingZeros(uint(idx)+pointersMinLen)
	slice -= pointersMinLenShift + 1

	// Then, the offset within table[slice] is given by subtracting off the
	// length of all prior slices from idx.
	idx -= a.lenOfFirstNSlices(slice)

	return slice, idx
}
