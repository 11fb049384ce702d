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
	"math/big"

	"github.com/bufbuild/esast/internal/arena"
	"github.com/bufbuild/esast/internal/debug"
	"github.com/bufbuild/esast/text"
)

// NodeID is the index of a node in an [AST].
//
// IDs are 1-based; the zero ID is "no node".
type NodeID uint32

// IsZero returns whether this is the zero ID.
func (id NodeID) IsZero() bool {
	return id == 0
}

// String implements [fmt.Stringer].
func (id NodeID) String() string {
	if id == 0 {
		return "ast.NodeID(nil)"
	}
	return fmt.Sprintf("ast.NodeID(%d)", uint32(id))
}

// Span is a half-open byte range in the source text a node came from.
type Span struct {
	Start, End uint32
}

// Len returns the length of this span.
func (s Span) Len() int {
	return int(s.End) - int(s.Start)
}

// Contains returns whether offset lies in this span.
func (s Span) Contains(offset uint32) bool {
	return s.Start <= offset && offset < s.End
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// rawNode is the fixed-size record stored for every node.
type rawNode struct {
	span Span

	// Empty, an inline field, or an offset into the extra-data store,
	// depending on the kind.
	payload uint32
	kind    Kind
}

// Options configures a new [AST].
type Options struct {
	// Expected number of nodes and extra-data slots. These are hints only.
	Nodes, Slots int
}

// AST is the storage for one syntax tree.
//
// A zero AST is empty and ready to use.
type AST struct {
	nodes arena.Arena[rawNode]
	free  []NodeID
	live  int

	extra arena.Arena[Slot]
	tags  arena.Arena[slotTag] // Only populated in checked builds.

	bigints []*big.Int

	// Stack of children pushed by Push, shared by every open range builder.
	scratch []NodeID

	idents   text.Interner
	literals text.Buffer
}

// New returns a new, empty AST.
func New(opts Options) *AST {
	a := new(AST)
	a.nodes.Grow(opts.Nodes)
	a.extra.Grow(opts.Slots)
	return a
}

// Reset discards every node, slot and string in a, keeping allocated storage
// for reuse by the next tree. All handles and refs into a become invalid.
func (a *AST) Reset() {
	a.nodes.Reset()
	a.free = a.free[:0]
	a.live = 0
	a.extra.Reset()
	a.tags.Reset()
	clear(a.bigints)
	a.bigints = a.bigints[:0]
	a.scratch = a.scratch[:0]
	a.idents.Reset()
	a.literals.Reset()
}

// Release gives up the calling goroutine's claim on a, so that another
// goroutine may use it next. Ownership is only tracked in checked builds.
func (a *AST) Release() {
	a.idents.Release()
	a.literals.Release()
}

// Idents returns the interner for identifier-like text in this AST.
func (a *AST) Idents() *text.Interner {
	return &a.idents
}

// Literals returns the buffer for literal values in this AST.
func (a *AST) Literals() *text.Buffer {
	return &a.literals
}

// Len returns the number of live nodes.
func (a *AST) Len() int {
	return a.live
}

// Cap returns the number of node slots ever allocated, live or freed.
func (a *AST) Cap() int {
	return a.nodes.Len()
}

// Kind returns the kind of the node with the given ID.
func (a *AST) Kind(id NodeID) Kind {
	return a.node(id).kind
}

// Span returns the span of the node with the given ID.
func (a *AST) Span(id NodeID) Span {
	return a.node(id).span
}

// SetSpan sets the span of the node with the given ID.
func (a *AST) SetSpan(id NodeID, span Span) {
	a.node(id).span = span
}

// IsLive returns whether id refers to a node that has not been freed.
//
// A freed ID becomes live again once its slot is reused, at which point it
// refers to the new node.
func (a *AST) IsLive(id NodeID) bool {
	return id != 0 && int(id) <= a.nodes.Len() && a.nodes.At(arena.Untyped(id)).kind != KindFreed
}

// All returns an iterator over every live node, in slot order.
func (a *AST) All() iter.Seq2[NodeID, Kind] {
	return func(yield func(NodeID, Kind) bool) {
		for p, n := range a.nodes.All() {
			if n.kind != KindFreed && !yield(NodeID(p), n.kind) {
				return
			}
		}
	}
}

// FreeNode frees the node with the given ID. Its slot will be reused by the
// next node built, unless another node is freed first.
//
// The node's children are not freed, and its extra-data slots are not
// reclaimed. Any use of id before the slot is reused is an error.
func (a *AST) FreeNode(id NodeID) {
	n := a.node(id)
	*n = rawNode{kind: KindFreed}
	a.free = append(a.free, id)
	a.live--
}

// ReplaceNode overwrites the node dest with a copy of the node src, and then
// frees src.
//
// Handles to dest, such as the one held by dest's parent, now refer to what
// used to be src.
func (a *AST) ReplaceNode(dest, src NodeID) {
	if dest == src {
		return
	}
	*a.node(dest) = *a.node(src)
	a.FreeNode(src)
}

// node returns the record for id. Panics if id is out of range; in checked
// builds, also panics if id has been freed.
func (a *AST) node(id NodeID) *rawNode {
	if uint(id)-1 >= uint(a.nodes.Len()) {
		panic(fmt.Sprintf("esast/ast: node ID out of range: %d (have %d)", uint32(id), a.nodes.Len()))
	}
	n := a.nodes.At(arena.Untyped(id))
	if debug.Enabled && n.kind == KindFreed {
		panic(fmt.Sprintf("esast/ast: use of freed node %d", uint32(id)))
	}
	return n
}

// addNode allocates a node record, reusing the most recently freed slot if
// there is one.
func (a *AST) addNode(span Span, kind Kind, payload uint32) NodeID {
	a.live++
	raw := rawNode{span: span, kind: kind, payload: payload}
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		*a.nodes.At(arena.Untyped(id)) = raw
		return id
	}
	return NodeID(a.nodes.New(raw))
}
