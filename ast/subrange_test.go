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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/text"
)

func TestSubRange(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	var elems []ast.Expression
	var ids []ast.NodeID
	for _, name := range []string{"a", "b", "c", "d"} {
		x := ident(a, name)
		elems = append(elems, x.AsExpression())
		ids = append(ids, x.ID())
	}
	r := ast.NewRange(a, elems...)
	seq := ast.NewSequenceExpression(a, sp(0, 10), r)
	r = seq.Expressions(a)

	require.Equal(t, 4, r.Len())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, ids, r.IDs(a))
	assert.Equal(t, ids[0], r.First(a).ID())
	assert.Equal(t, ids[3], r.Last(a).ID())
	assert.Equal(t, elems, slices.Collect(r.Values(a)))

	var back []int
	for i, e := range r.Backward(a) {
		assert.Equal(t, ids[i], e.ID())
		back = append(back, i)
	}
	assert.Equal(t, []int{3, 2, 1, 0}, back)

	for i, e := range r.All(a) {
		if i == 2 {
			break
		}
		assert.Equal(t, ids[i], e.ID())
	}

	y := ident(a, "y")
	r.Set(a, 1, y.AsExpression())
	assert.Equal(t, y.ID(), seq.Expressions(a).At(a, 1).ID())

	assert.Panics(t, func() { r.At(a, 4) })
	assert.Panics(t, func() { r.At(a, -1) })
	assert.Panics(t, func() { r.Set(a, 4, y.AsExpression()) })

	start, end := r.Bounds()
	assert.Equal(t, 4, int(end-start))
	assert.Equal(t, r.IDs(a), r.AsUntyped().IDs(a))
}

func TestSplitOff(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	r := ast.NewRange(a,
		ident(a, "a").AsExpression(),
		ident(a, "b").AsExpression(),
		ident(a, "c").AsExpression(),
	)
	ids := r.IDs(a)

	for at := range r.Len() + 1 {
		head, tail := r.SplitOff(at)
		assert.Equal(t, at, head.Len())
		assert.Equal(t, r.Len()-at, tail.Len())
		assert.Equal(t, ids, append(head.IDs(a), tail.IDs(a)...))
	}

	assert.Panics(t, func() { r.SplitOff(4) })
	assert.Panics(t, func() { r.SplitOff(-1) })
}

func TestEmptyRange(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	slots := a.ExtraLen()
	r := ast.NewRange[ast.Expression](a)
	assert.Equal(t, slots, a.ExtraLen())
	assert.True(t, r.IsEmpty())
	assert.Zero(t, r.Len())
	assert.True(t, r.First(a).IsZero())
	assert.True(t, r.Last(a).IsZero())
	assert.Empty(t, r.IDs(a))

	head, tail := r.SplitOff(0)
	assert.True(t, head.IsEmpty())
	assert.True(t, tail.IsEmpty())

	arr := ast.NewArrayExpression(a, sp(0, 2), ast.SubRange[ast.ArrayElement]{})
	assert.Zero(t, arr.Elements(a).Len())
}

func TestNestedRanges(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	outer := a.BeginRange()
	a.Push(ident(a, "a").ID())

	inner := a.BeginRange()
	a.Push(ident(a, "b").ID())
	a.Push(ident(a, "c").ID())
	seq := ast.NewSequenceExpression(a, sp(0, 4), ast.EndRange[ast.Expression](a, inner))
	a.Push(seq.ID())

	a.Push(ident(a, "d").ID())
	arr := ast.NewArrayExpression(a, sp(0, 9), ast.EndRange[ast.ArrayElement](a, outer))

	elems := arr.Elements(a)
	require.Equal(t, 3, elems.Len())
	assert.Equal(t, "a", elems.At(a, 0).AsExpression(a).AsIdentifier(a).NameText(a))
	assert.Equal(t, seq.ID(), elems.At(a, 1).ID())
	assert.Equal(t, "d", elems.At(a, 2).AsExpression(a).AsIdentifier(a).NameText(a))
	assert.Equal(t, 2, seq.Expressions(a).Len())
}

func TestPrologue(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	directive := func(s string) ast.ModuleItem {
		lit := ast.NewStringLiteral(a, sp(0, 12), a.Literals().Add(s), text.None)
		return ast.NewDirective(a, sp(0, 13), lit, a.Idents().Intern(s)).AsModuleItem()
	}
	stmt := ast.NewExpressionStatement(a, sp(0, 2), ident(a, "x").AsExpression())
	late := directive("not a directive")

	prog := ast.NewProgram(a, sp(0, 40), ast.SourceTypeScript, text.None, ast.NewRange(a,
		directive("use strict"),
		directive("use asm"),
		stmt.AsModuleItem(),
		late,
	))

	directives, rest := prog.Prologue(a)
	require.Equal(t, 2, directives.Len())
	assert.Equal(t, "use strict", directives.At(a, 0).DirectiveText(a))
	assert.Equal(t, "use asm", directives.At(a, 1).Expression(a).ValueUTF8(a))
	require.Equal(t, 2, rest.Len())
	assert.Equal(t, stmt.ID(), rest.First(a).ID())

	block := ast.NewBlockStatement(a, sp(0, 2), ast.SubRange[ast.Statement]{})
	blockDirectives, blockRest := block.Prologue(a)
	assert.True(t, blockDirectives.IsEmpty())
	assert.True(t, blockRest.IsEmpty())
}
