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

// Package interval provides an interval intersection map over integer
// endpoints.
package interval

import (
	"iter"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Intersect is a collection of closed intervals, each with a value, which can
// be queried for every value whose interval contains a given point.
//
// Internally the covered points are partitioned into disjoint segments, each
// holding the values of every interval containing it, in insertion order.
//
// A zero value is ready to use.
type Intersect[K Endpoint, V any] struct {
	// Segments keyed by their last point.
	tree btree.Map[K, *Entry[K, []V]]
	hits []*Entry[K, []V] // Scratch space for Insert.
	adds []*Entry[K, []V] // Likewise.
}

// Entry is a segment of an [Intersect]: a maximal run of points covered by
// the same intervals.
type Entry[K Endpoint, V any] struct {
	Start, End K // Inclusive.
	Value      V
}

// Contains returns whether point lies in e.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Len returns the number of segments.
func (m *Intersect[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the segment containing point. Its Value lists every value whose
// interval contains point, in insertion order, and is nil if there are none.
func (m *Intersect[K, V]) Get(point K) Entry[K, []V] {
	it := m.tree.Iter()
	if !it.Seek(point) || point < it.Value().Start {
		return Entry[K, []V]{}
	}
	return *it.Value()
}

// Entries returns an iterator over the segments in ascending order.
func (m *Intersect[K, V]) Entries() iter.Seq[Entry[K, []V]] {
	return func(yield func(Entry[K, []V]) bool) {
		it := m.tree.Iter()
		for ok := it.First(); ok; ok = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Insert adds the closed interval [start, end] with the given value.
//
// Returns whether the interval was disjoint from every interval already in
// m. Panics if start > end.
func (m *Intersect[K, V]) Insert(start, end K, value V) (disjoint bool) {
	if start > end {
		panic("interval: start > end")
	}

	m.hits = m.hits[:0]
	it := m.tree.Iter()
	for ok := it.Seek(start); ok && it.Value().Start <= end; ok = it.Next() {
		m.hits = append(m.hits, it.Value())
	}
	if len(m.hits) == 0 {
		m.tree.Set(end, &Entry[K, []V]{start, end, []V{value}})
		return true
	}

	// Segments are keyed by End, so a segment that is split keeps its own
	// record for the piece that ends at the old End, and the other piece is
	// added as a new record.
	m.adds = m.adds[:0]
	next := start
	for i, seg := range m.hits {
		if next < seg.Start {
			m.adds = append(m.adds, &Entry[K, []V]{next, seg.Start - 1, []V{value}})
		}
		old := slices.Clip(seg.Value)
		if i == 0 && seg.Start < start {
			m.adds = append(m.adds, &Entry[K, []V]{seg.Start, start - 1, old})
			seg.Start = start
		}
		if seg.End > end {
			m.adds = append(m.adds, &Entry[K, []V]{seg.Start, end, append(old, value)})
			seg.Start = end + 1
			break
		}
		seg.Value = append(old, value)
		next = seg.End + 1
	}
	if last := m.hits[len(m.hits)-1]; last.End < end {
		m.adds = append(m.adds, &Entry[K, []V]{last.End + 1, end, []V{value}})
	}

	for _, seg := range m.adds {
		m.tree.Set(seg.End, seg)
	}
	clear(m.hits)
	clear(m.adds)
	return false
}
