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
package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
)

// shape renders the tree rooted at id as nested slices of spans, kinds and
// formatted values, which compare equal across ASTs.
func shape(a *ast.AST, id ast.NodeID) any {
	if id.IsZero() {
		return nil
	}
	k := a.Kind(id)
	out := []any{k.String(), a.Span(id)}
	for i, f := range k.Fields() {
		v := a.Field(id, i)
		switch {
		case f.Type == ast.FieldNode && f.List:
			elems := []any{}
			for c := range v.Range().Values(a) {
				elems = append(elems, shape(a, c.ID()))
			}
			out = append(out, elems)
		case f.Type == ast.FieldNode:
			out = append(out, shape(a, v.Node()))
		default:
			out = append(out, f.Name+"="+v.Format(a))
		}
	}
	return out
}

func TestClone(t *testing.T) {
	t.Parallel()

	src := ast.New(ast.Options{})
	prog := sample(src)
	dst := ast.New(ast.Options{})
	dst.Idents().Intern("unrelated")

	clone := prog.CloneIn(src, dst)
	assert.Empty(t, cmp.Diff(shape(src, prog.ID()), shape(dst, clone.ID())))
	assert.Equal(t, src.Len(), dst.Len())
	assert.Equal(t, src.ExtraLen(), dst.ExtraLen())

	// The copy is independent of the original.
	fn := clone.Body(dst).First(dst).AsStatement(dst).AsDeclaration(dst).AsFunctionDeclaration(dst)
	fn.Name(dst).SetName(dst, dst.Idents().Intern("g"))
	fn.SetAsync(dst, true)
	orig := prog.Body(src).First(src).AsStatement(src).AsDeclaration(src).AsFunctionDeclaration(src)
	assert.Equal(t, "f", orig.Name(src).NameText(src))
	assert.False(t, orig.Async(src))

	// Lone surrogates survive the copy.
	decl := clone.Body(dst).Last(dst).AsStatement(dst).AsDeclaration(dst).AsVariableDeclaration(dst)
	str := decl.Declarations(dst).First(dst).Init(dst).AsStringLiteral(dst)
	assert.Equal(t, []uint16{'h', 'i', 0xd800}, dst.Literals().GetUTF16(str.Value(dst)))

	bigint := decl.Declarations(dst).Last(dst).Init(dst).AsBigIntLiteral(dst)
	bigint.ValueInt(dst).SetInt64(11)
	origDecl := prog.Body(src).Last(src).AsStatement(src).AsDeclaration(src).AsVariableDeclaration(src)
	assert.Equal(t, int64(10), origDecl.Declarations(src).Last(src).Init(src).AsBigIntLiteral(src).ValueInt(src).Int64())
}

func TestCloneSameAST(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog := sample(a)
	n := a.Len()
	idents := a.Idents().Len()

	id := ast.CloneNode(a, prog.ID(), a)
	require.NotEqual(t, prog.ID(), id)
	assert.Equal(t, 2*n, a.Len())
	assert.Equal(t, idents, a.Idents().Len(), "text is shared")
	assert.Empty(t, cmp.Diff(shape(a, prog.ID()), shape(a, id)))

	for _, orig := range subtreeIDs(a, prog.ID()) {
		for _, copied := range subtreeIDs(a, id) {
			assert.NotEqual(t, orig, copied)
		}
	}
	assert.Zero(t, ast.CloneNode(a, 0, a))
}

func TestCloneChoice(t *testing.T) {
	t.Parallel()

	src := ast.New(ast.Options{})
	e := add(src, ident(src, "a").AsExpression(), num(src, 2).AsExpression()).AsExpression()
	dst := ast.New(ast.Options{})
	c := e.CloneIn(src, dst)
	assert.Equal(t, ast.KindBinaryExpression, c.Kind(dst))
	assert.Empty(t, cmp.Diff(shape(src, e.ID()), shape(dst, c.ID())))
	assert.True(t, ast.Expression{}.CloneIn(src, dst).IsZero())
}

func subtreeIDs(a *ast.AST, root ast.NodeID) []ast.NodeID {
	var out []ast.NodeID
	ast.Inspect(a, root, func(id ast.NodeID) bool {
		out = append(out, id)
		return true
	})
	return out
}
