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

	"github.com/bufbuild/esast/internal/debug"
)

// Node is implemented by every handle type in this package: one per kind, one
// per choice, and [AnyNode].
//
// Handles are structs wrapping a single [NodeID], so converting between a
// NodeID and a handle is free.
type Node interface {
	~struct{ id NodeID }

	// admits returns whether a node of kind k may be wrapped in this handle
	// type.
	admits(k Kind) bool
}

// ID returns the NodeID wrapped by a handle.
func ID[T Node](n T) NodeID {
	return struct{ id NodeID }(n).id
}

// Wrap wraps id in the handle type T.
//
// In checked builds, panics if the node's kind is not admissible for T. The
// zero ID is always admissible.
func Wrap[T Node](a *AST, id NodeID) T {
	if debug.Enabled && id != 0 {
		var zero T
		if k := a.Kind(id); !zero.admits(k) {
			panic(fmt.Sprintf("esast/ast: cannot wrap %v node %d as %T", k, uint32(id), zero))
		}
	}
	return T(struct{ id NodeID }{id})
}

// checkChild asserts, in checked builds, that n is a valid value for the
// named field.
func checkChild[T Node](a *AST, n T, optional bool, field string) {
	if !debug.Enabled {
		return
	}
	id := ID(n)
	if id == 0 {
		if !optional {
			panic(fmt.Sprintf("esast/ast: missing required %s", field))
		}
		return
	}
	if k := a.Kind(id); !n.admits(k) {
		panic(fmt.Sprintf("esast/ast: %v node %d is not valid for %s", k, uint32(id), field))
	}
}

// AnyNode is a handle to a node of any kind.
type AnyNode struct{ id NodeID }

// AnyNodeFromID wraps id as an AnyNode.
func AnyNodeFromID(id NodeID) AnyNode {
	return AnyNode{id}
}

// ID returns this node's ID.
func (n AnyNode) ID() NodeID { return n.id }

// IsZero returns whether this is the zero handle.
func (n AnyNode) IsZero() bool { return n.id == 0 }

// Kind returns this node's kind.
func (n AnyNode) Kind(a *AST) Kind { return a.Kind(n.id) }

// Span returns this node's span.
func (n AnyNode) Span(a *AST) Span { return a.Span(n.id) }

// SetSpan sets this node's span.
func (n AnyNode) SetSpan(a *AST, span Span) { a.SetSpan(n.id, span) }

func (AnyNode) admits(k Kind) bool { return k != KindFreed }

// kindSet is a bitset of kinds.
type kindSet [(kindCount + 63) / 64]uint64

func newKindSet(kinds ...Kind) *kindSet {
	s := new(kindSet)
	for _, k := range kinds {
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

func (s *kindSet) has(k Kind) bool {
	return int(k) < kindCount && s[k/64]&(1<<(k%64)) != 0
}
