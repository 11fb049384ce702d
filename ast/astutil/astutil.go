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

// Package astutil contains whole-tree operations built on package ast.
package astutil

import (
	"github.com/bufbuild/esast/ast"
)

// StripParens removes every parenthesized expression from the tree rooted at
// root, freeing the removed nodes.
//
// Returns the new root, which differs from root only if root was itself
// parenthesized.
func StripParens(a *ast.AST, root ast.NodeID) ast.NodeID {
	return ast.Rewrite(a, ast.PostOrder(func(a *ast.AST, id ast.NodeID) ast.NodeID {
		if a.Kind(id) != ast.KindParenthesizedExpression {
			return id
		}
		inner := ast.ParenthesizedExpressionFromID(a, id).Expression(a).ID()
		a.FreeNode(id)
		return inner
	}), root)
}

// Count returns the number of nodes in the tree rooted at root.
func Count(a *ast.AST, root ast.NodeID) int {
	var n int
	ast.Inspect(a, root, func(ast.NodeID) bool {
		n++
		return true
	})
	return n
}

// CountKinds returns the number of nodes of each kind in the tree rooted at
// root.
func CountKinds(a *ast.AST, root ast.NodeID) map[ast.Kind]int {
	counts := make(map[ast.Kind]int)
	ast.Inspect(a, root, func(id ast.NodeID) bool {
		counts[a.Kind(id)]++
		return true
	})
	return counts
}
