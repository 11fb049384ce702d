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

package ast

import (
	"fmt"
	"iter"

	"github.com/bufbuild/esast/internal/debug"
)

// SubRange is a list of child nodes, stored as a contiguous run of slots in
// an AST's extra-data store.
//
// A SubRange is just two offsets. The element type T is not recorded
// anywhere: all elements are assumed to be admissible for T, which is only
// checked in checked builds.
//
// The zero SubRange is empty.
type SubRange[T Node] struct {
	start, end ExtraID
}

// Retype reinterprets r as a range of U. This changes nothing but r's static
// type.
func Retype[U, T Node](r SubRange[T]) SubRange[U] {
	return SubRange[U](r)
}

// AsUntyped reinterprets r as a range of [AnyNode].
func (r SubRange[T]) AsUntyped() SubRange[AnyNode] {
	return SubRange[AnyNode](r)
}

// Len returns the number of elements.
func (r SubRange[T]) Len() int {
	return int(r.end - r.start)
}

// IsEmpty returns whether there are no elements.
func (r SubRange[T]) IsEmpty() bool {
	return r.start == r.end
}

// Bounds returns the offsets of the slots this range spans.
func (r SubRange[T]) Bounds() (start, end ExtraID) {
	return r.start, r.end
}

// At returns the ith element. Panics if i is out of range.
func (r SubRange[T]) At(a *AST, i int) T {
	return T(struct{ id NodeID }{r.id(a, i)})
}

// First returns the first element, or the zero handle if r is empty.
func (r SubRange[T]) First(a *AST) T {
	if r.IsEmpty() {
		var zero T
		return zero
	}
	return r.At(a, 0)
}

// Last returns the last element, or the zero handle if r is empty.
func (r SubRange[T]) Last(a *AST) T {
	if r.IsEmpty() {
		var zero T
		return zero
	}
	return r.At(a, r.Len()-1)
}

// Set overwrites the ith element. Panics if i is out of range.
func (r SubRange[T]) Set(a *AST, i int, v T) {
	checkChild(a, v, false, "list element")
	a.setSlot(r.offset(i), tagNode, nodeSlot(ID(v)))
}

// All returns an iterator over the indices and elements of r.
func (r SubRange[T]) All(a *AST) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range r.Len() {
			if !yield(i, r.At(a, i)) {
				return
			}
		}
	}
}

// Backward is like [SubRange.All], but iterates from the last element to
// the first.
func (r SubRange[T]) Backward(a *AST) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := r.Len() - 1; i >= 0; i-- {
			if !yield(i, r.At(a, i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of r.
func (r SubRange[T]) Values(a *AST) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.Len() {
			if !yield(r.At(a, i)) {
				return
			}
		}
	}
}

// IDs returns a copy of the node IDs in r.
func (r SubRange[T]) IDs(a *AST) []NodeID {
	ids := make([]NodeID, r.Len())
	for i := range ids {
		ids[i] = r.id(a, i)
	}
	return ids
}

// SplitOff splits r into the elements before at and the elements from at
// onwards. Both halves share r's storage; nothing is copied.
//
// Panics if at is not in [0, r.Len()].
func (r SubRange[T]) SplitOff(at int) (head, tail SubRange[T]) {
	if at < 0 || at > r.Len() {
		panic(fmt.Sprintf("esast/ast: split index %d out of range for length %d", at, r.Len()))
	}
	mid := r.start + ExtraID(at)
	return SubRange[T]{r.start, mid}, SubRange[T]{mid, r.end}
}

// String implements [fmt.Stringer].
func (r SubRange[T]) String() string {
	var zero T
	return fmt.Sprintf("ast.SubRange[%T](%d:%d)", zero, r.start, r.end)
}

func (r SubRange[T]) offset(i int) ExtraID {
	if i < 0 || i >= r.Len() {
		panic(fmt.Sprintf("esast/ast: index %d out of range for length %d", i, r.Len()))
	}
	return r.start + ExtraID(i)
}

func (r SubRange[T]) id(a *AST, i int) NodeID {
	return a.slot(r.offset(i), tagNode).node()
}

func (r SubRange[T]) slot() Slot {
	return rangeSlot(r.start, r.end)
}

func rangeOf[T Node](s Slot) SubRange[T] {
	start, end := s.bounds()
	return SubRange[T]{start, end}
}

// RangeBuilder marks the start of a list under construction. See
// [AST.BeginRange].
type RangeBuilder struct {
	mark int
}

// BeginRange starts building a list of children.
//
// Elements are added with [AST.Push] and the list is finished with
// [EndRange]. Builders nest: a range may be started and finished while
// another is open, as long as the inner one is finished first.
func (a *AST) BeginRange() RangeBuilder {
	return RangeBuilder{len(a.scratch)}
}

// Push adds a child to the innermost open range.
func (a *AST) Push(id NodeID) {
	a.scratch = append(a.scratch, id)
}

// EndRange finishes the range started by b, copying its elements into
// consecutive extra-data slots.
func EndRange[T Node](a *AST, b RangeBuilder) SubRange[T] {
	if b.mark > len(a.scratch) {
		panic("esast/ast: range builders finished out of order")
	}
	ids := a.scratch[b.mark:]
	r := newRange[T](a, ids)
	a.scratch = a.scratch[:b.mark]
	return r
}

// AbortRange discards the range started by b, along with any ranges opened
// after it that were never finished.
func (a *AST) AbortRange(b RangeBuilder) {
	if b.mark < len(a.scratch) {
		a.scratch = a.scratch[:b.mark]
	}
}

// NewRange builds a list from the given children.
func NewRange[T Node](a *AST, elems ...T) SubRange[T] {
	b := a.BeginRange()
	for _, e := range elems {
		a.Push(ID(e))
	}
	return EndRange[T](a, b)
}

func newRange[T Node](a *AST, ids []NodeID) SubRange[T] {
	if len(ids) == 0 {
		return SubRange[T]{}
	}

	start := a.reserve(len(ids))
	for i, id := range ids {
		if debug.Enabled {
			checkChild(a, T(struct{ id NodeID }{id}), false, "list element")
		}
		a.initField(start, i, tagNode, nodeSlot(id))
	}
	return SubRange[T]{start, start + ExtraID(len(ids))}
}
