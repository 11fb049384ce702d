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

// Visitor is a read-only traversal over a tree.
//
// See [Walk].
type Visitor interface {
	// EnterNode is called before visiting a node's children. If it returns
	// false, the children are skipped and LeaveNode is not called.
	EnterNode(a *AST, id NodeID) bool

	// LeaveNode is called after visiting a node's children.
	LeaveNode(a *AST, id NodeID)
}

// Walk visits the tree rooted at id in depth-first order, calling v's hooks
// on each node. Children are visited in field declaration order.
//
// Walk does nothing if id is zero.
func Walk(a *AST, v Visitor, id NodeID) {
	if id == 0 || !v.EnterNode(a, id) {
		return
	}
	VisitChildren(a, v, id)
	v.LeaveNode(a, id)
}

// VisitChildren calls [Walk] on each child of id, without calling v's hooks
// on id itself.
func VisitChildren(a *AST, v Visitor, id NodeID) {
	visitChildren(a, v, id)
}

// Inspect is like [Walk], with a function in place of a [Visitor]. If f
// returns false, the node's children are skipped.
func Inspect(a *AST, id NodeID, f func(NodeID) bool) {
	Walk(a, inspector(f), id)
}

type inspector func(NodeID) bool

func (f inspector) EnterNode(_ *AST, id NodeID) bool { return f(id) }
func (f inspector) LeaveNode(*AST, NodeID) {}

// Hooks is a [Visitor] assembled from optional callbacks.
//
// For each node, the callback for its kind in EnterKind is tried before
// Enter, and both must return true for the children to be visited. Likewise,
// LeaveKind runs before Leave.
type Hooks struct {
	Enter func(a *AST, id NodeID) bool
	Leave func(a *AST, id NodeID)

	EnterKind map[Kind]func(a *AST, id NodeID) bool
	LeaveKind map[Kind]func(a *AST, id NodeID)
}

var _ Visitor = (*Hooks)(nil)

// EnterNode implements [Visitor].
func (h *Hooks) EnterNode(a *AST, id NodeID) bool {
	if f := h.EnterKind[a.Kind(id)]; f != nil && !f(a, id) {
		return false
	}
	return h.Enter == nil || h.Enter(a, id)
}

// LeaveNode implements [Visitor].
func (h *Hooks) LeaveNode(a *AST, id NodeID) {
	if f := h.LeaveKind[a.Kind(id)]; f != nil {
		f(a, id)
	}
	if h.Leave != nil {
		h.Leave(a, id)
	}
}

// Rewriter is a traversal that may replace the nodes it visits.
//
// RewriteNode returns the node that should take id's place in its parent;
// returning id leaves the parent unchanged. The returned node must be
// admissible for the parent's field; this is checked in checked builds.
//
// RewriteNode is responsible for recursing into id's children, usually by
// calling [RewriteChildren]. Nodes that drop out of the tree are not freed
// automatically.
type Rewriter interface {
	RewriteNode(a *AST, id NodeID) NodeID
}

// RewriterFunc adapts a function into a [Rewriter].
type RewriterFunc func(a *AST, id NodeID) NodeID

// RewriteNode implements [Rewriter].
func (f RewriterFunc) RewriteNode(a *AST, id NodeID) NodeID {
	return f(a, id)
}

// PostOrder returns a [Rewriter] that rewrites the children of each node
// before passing the node itself to f.
func PostOrder(f func(a *AST, id NodeID) NodeID) Rewriter {
	var r RewriterFunc
	r = func(a *AST, id NodeID) NodeID {
		RewriteChildren(a, r, id)
		return f(a, id)
	}
	return r
}

// Rewrite applies r to id and returns the replacement. Rewrite returns zero
// without calling r if id is zero.
func Rewrite(a *AST, r Rewriter, id NodeID) NodeID {
	if id == 0 {
		return 0
	}
	return r.RewriteNode(a, id)
}

// RewriteChildren calls [Rewrite] on each child of id and writes each
// replacement back into id's fields.
func RewriteChildren(a *AST, r Rewriter, id NodeID) {
	rewriteChildren(a, r, id)
}
