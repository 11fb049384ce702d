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

// Package spanindex maps source offsets back to the nodes that cover them.
package spanindex

import (
	"slices"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/internal/interval"
)

// Index answers which nodes of a tree cover a given byte offset.
//
// An Index is a snapshot: nodes added to the tree, or spans changed, after it
// is built are not reflected in it.
type Index struct {
	m     interval.Intersect[uint32, ast.NodeID]
	nodes int
}

// New indexes the tree rooted at root. Nodes with empty spans are skipped,
// since they cover no offset.
func New(a *ast.AST, root ast.NodeID) *Index {
	idx := new(Index)
	ast.Inspect(a, root, func(id ast.NodeID) bool {
		if span := a.Span(id); span.Len() > 0 {
			idx.m.Insert(span.Start, span.End-1, id)
			idx.nodes++
		}
		return true
	})
	return idx
}

// Len returns the number of nodes indexed.
func (x *Index) Len() int {
	return x.nodes
}

// At returns the innermost node covering offset, or zero if there is none.
//
// When several nodes have the same span, the one visited last by [ast.Walk]
// wins.
func (x *Index) At(offset uint32) ast.NodeID {
	path := x.m.Get(offset).Value
	if len(path) == 0 {
		return 0
	}
	return path[len(path)-1]
}

// Path returns every node covering offset, outermost first.
func (x *Index) Path(offset uint32) []ast.NodeID {
	return slices.Clone(x.m.Get(offset).Value)
}

// Enclosing returns the innermost node covering all of span, or zero if
// there is none. An empty span is treated as the offset it starts at.
func (x *Index) Enclosing(span ast.Span) ast.NodeID {
	if span.Len() <= 0 {
		return x.At(span.Start)
	}

	// Paths are outermost first, so the innermost node covering both ends is
	// the last node of their common prefix.
	first, last := x.m.Get(span.Start).Value, x.m.Get(span.End-1).Value
	n := min(len(first), len(last))
	for i := range n {
		if first[i] != last[i] {
			if i == 0 {
				return 0
			}
			return first[i-1]
		}
	}
	if n == 0 {
		return 0
	}
	return first[n-1]
}
