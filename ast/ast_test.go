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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/internal/debug"
	"github.com/bufbuild/esast/text"
)

func sp(start, end uint32) ast.Span {
	return ast.Span{Start: start, End: end}
}

func ident(a *ast.AST, name string) ast.Identifier {
	return ast.NewIdentifier(a, sp(0, uint32(len(name))), a.Idents().Intern(name))
}

func num(a *ast.AST, v float64) ast.NumericLiteral {
	return ast.NewNumericLiteral(a, sp(0, 1), v, text.None)
}

func add(a *ast.AST, left, right ast.Expression) ast.BinaryExpression {
	return ast.NewBinaryExpression(a, sp(0, 5), left, ast.BinaryOperatorAdd, right)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{Nodes: 64, Slots: 64})
	x := ident(a, "x")
	one := num(a, 1)
	bin := add(a, x.AsExpression(), one.AsExpression())
	stmt := ast.NewExpressionStatement(a, sp(0, 6), bin.AsExpression())
	prog := ast.NewProgram(a, sp(0, 6), ast.SourceTypeModule, text.None,
		ast.NewRange(a, stmt.AsModuleItem()))

	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 5, a.Cap())
	assert.Equal(t, ast.KindProgram, a.Kind(prog.ID()))
	assert.Equal(t, ast.KindBinaryExpression, bin.Kind())
	assert.Equal(t, sp(0, 5), bin.Span(a))

	assert.Equal(t, ast.SourceTypeModule, prog.SourceType(a))
	assert.True(t, prog.Hashbang(a).IsNone())
	require.Equal(t, 1, prog.Body(a).Len())
	assert.Equal(t, stmt.ID(), prog.Body(a).At(a, 0).ID())

	got := stmt.Expression(a).AsBinaryExpression(a)
	assert.Equal(t, bin, got)
	assert.True(t, stmt.Expression(a).AsIdentifier(a).IsZero())
	assert.Equal(t, "x", got.Left(a).AsIdentifier(a).NameText(a))
	assert.Equal(t, ast.BinaryOperatorAdd, got.Operator(a))
	assert.InDelta(t, 1.0, got.Right(a).AsNumericLiteral(a).Value(a), 0)

	bin.SetOperator(a, ast.BinaryOperatorMul)
	bin.SetSpan(a, sp(1, 4))
	assert.Equal(t, ast.BinaryOperatorMul, bin.Operator(a))
	assert.Equal(t, sp(1, 4), a.Span(bin.ID()))

	assert.True(t, ast.IsExpressionKind(ast.KindIdentifier))
	assert.True(t, ast.IsPatternKind(ast.KindIdentifier))
	assert.False(t, ast.IsExpressionKind(ast.KindProgram))
	assert.True(t, ast.IsModuleItemKind(ast.KindFunctionDeclaration))
}

func TestInline(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	x := ident(a, "x")
	slots := a.ExtraLen()

	// Nodes with a single child, bool or enum field use no extra-data slots.
	paren := ast.NewParenthesizedExpression(a, sp(0, 3), x.AsExpression())
	lit := ast.NewBooleanLiteral(a, sp(0, 4), true)
	assert.Equal(t, slots, a.ExtraLen())
	assert.True(t, ast.KindParenthesizedExpression.IsInline())
	assert.False(t, ast.KindBinaryExpression.IsInline())

	off, n := a.ExtraOffset(paren.ID())
	assert.Zero(t, off)
	assert.Zero(t, n)
	assert.Equal(t, x.ID(), paren.Expression(a).ID())
	assert.True(t, lit.Value(a))

	lit.SetValue(a, false)
	assert.False(t, lit.Value(a))
	y := ident(a, "y")
	paren.SetExpression(a, y.AsExpression())
	assert.Equal(t, y.ID(), paren.Expression(a).ID())

	bin := add(a, x.AsExpression(), y.AsExpression())
	off, n = a.ExtraOffset(bin.ID())
	assert.NotZero(t, off)
	assert.Equal(t, 3, n)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	x := ident(a, "x")
	then := ast.NewEmptyStatement(a, sp(0, 1))
	stmt := ast.NewIfStatement(a, sp(0, 10), x.AsExpression(), then.AsStatement(), ast.Statement{})
	assert.True(t, stmt.Alternate(a).IsZero())

	els := ast.NewEmptyStatement(a, sp(0, 1))
	stmt.SetAlternate(a, els.AsStatement())
	assert.Equal(t, els.ID(), stmt.Alternate(a).ID())

	lit := ast.NewNumericLiteral(a, sp(0, 4), 255, text.None)
	_, ok := lit.RawText(a)
	assert.False(t, ok)
	lit.SetRaw(a, text.Some(a.Idents().Intern("0xff")))
	raw, ok := lit.RawText(a)
	assert.True(t, ok)
	assert.Equal(t, "0xff", raw)

	// Empty text is present, not absent.
	empty := ast.NewStringLiteral(a, sp(0, 2), a.Literals().Add(""), text.Some(a.Idents().Intern("")))
	assert.Empty(t, empty.ValueUTF8(a))
	raw, ok = empty.RawText(a)
	assert.True(t, ok)
	assert.Empty(t, raw)
}

func TestText(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	x1 := ident(a, "x")
	x2 := ident(a, "x")
	assert.Equal(t, x1.Name(a), x2.Name(a), "identifiers are interned")

	lone := a.Literals().AddUTF16([]uint16{'a', 0xd800, 'b'})
	lit := ast.NewStringLiteral(a, sp(0, 5), lone, text.None)
	assert.Equal(t, "a�b", lit.ValueUTF8(a))
	assert.Equal(t, []uint16{'a', 0xd800, 'b'}, a.Literals().GetUTF16(lit.Value(a)))
}

func TestBigInt(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	v, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	lit := ast.NewBigIntLiteral(a, sp(0, 31), a.NewBigInt(v), text.None)
	assert.Equal(t, 0, v.Cmp(lit.ValueInt(a)))
	assert.Panics(t, func() { a.BigInt(42) })
}

func TestFree(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	x, y, z := ident(a, "x"), ident(a, "y"), ident(a, "z")
	assert.Equal(t, 3, a.Len())

	a.FreeNode(x.ID())
	a.FreeNode(y.ID())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 3, a.Cap())
	assert.False(t, a.IsLive(x.ID()))
	assert.True(t, a.IsLive(z.ID()))
	assert.False(t, a.IsLive(0))
	assert.False(t, a.IsLive(99))

	var live []ast.NodeID
	for id, k := range a.All() {
		assert.Equal(t, ast.KindIdentifier, k)
		live = append(live, id)
	}
	assert.Equal(t, []ast.NodeID{z.ID()}, live)

	// Freed records are reused most recently freed first.
	w := ident(a, "w")
	v := ident(a, "v")
	u := ident(a, "u")
	assert.Equal(t, y.ID(), w.ID())
	assert.Equal(t, x.ID(), v.ID())
	assert.Equal(t, ast.NodeID(4), u.ID())
	assert.Equal(t, "w", w.NameText(a))
	assert.Equal(t, 4, a.Len())

	if debug.Enabled {
		a.FreeNode(u.ID())
		assert.Panics(t, func() { a.Kind(u.ID()) })
	}
	assert.Panics(t, func() { a.Kind(100) })
	assert.Panics(t, func() { a.Kind(0) })
}

func TestReplace(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	x := ident(a, "x")
	paren := ast.NewParenthesizedExpression(a, sp(0, 3), x.AsExpression())
	stmt := ast.NewExpressionStatement(a, sp(0, 4), paren.AsExpression())
	inner := num(a, 7)

	a.ReplaceNode(paren.ID(), inner.ID())
	assert.Equal(t, ast.KindNumericLiteral, a.Kind(paren.ID()))
	assert.False(t, a.IsLive(inner.ID()))
	assert.InDelta(t, 7.0, stmt.Expression(a).AsNumericLiteral(a).Value(a), 0)

	a.ReplaceNode(stmt.ID(), stmt.ID())
	assert.True(t, a.IsLive(stmt.ID()))
}

func TestReset(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	for i := range 100 {
		add(a, num(a, float64(i)).AsExpression(), ident(a, "x").AsExpression())
	}
	a.FreeNode(1)
	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
	assert.Equal(t, 0, a.ExtraLen())
	assert.Equal(t, 0, a.Idents().Len())

	x := ident(a, "x")
	assert.Equal(t, ast.NodeID(1), x.ID())
	assert.Equal(t, "x", x.NameText(a))
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BinaryExpression", ast.KindBinaryExpression.String())
	assert.Equal(t, "ast.KindBinaryExpression", ast.KindBinaryExpression.GoString())
	assert.Equal(t, "Freed", ast.KindFreed.String())
	assert.Equal(t, "Kind(250)", ast.Kind(250).String())

	assert.Equal(t, ">>>", ast.BinaryOperatorShiftRightUnsigned.String())
	assert.Equal(t, "ast.BinaryOperatorShiftRightUnsigned", ast.BinaryOperatorShiftRightUnsigned.GoString())
	assert.Equal(t, ast.AssignmentOperatorCoalesceAssign, ast.AssignmentOperatorByName["??="])
	assert.Equal(t, ast.VariableKindLet, ast.VariableKindByName["let"])

	assert.Equal(t, "ast.NodeID(nil)", ast.NodeID(0).String())
	assert.Equal(t, "ast.NodeID(3)", ast.NodeID(3).String())
	assert.Equal(t, "2:5", sp(2, 5).String())
	assert.Equal(t, 3, sp(2, 5).Len())
	assert.True(t, sp(2, 5).Contains(2))
	assert.False(t, sp(2, 5).Contains(5))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	x := ident(a, "x")
	e := ast.ExpressionFromID(a, x.ID())
	assert.Equal(t, x.ID(), ast.ID(e))
	assert.Equal(t, x, ast.Wrap[ast.Identifier](a, x.ID()))

	if !debug.Enabled {
		t.Skip("kind checks need -tags esastdebug")
	}
	assert.Panics(t, func() { ast.ProgramFromID(a, x.ID()) })
	assert.Panics(t, func() { ast.NewExpressionStatement(a, sp(0, 1), ast.Expression{}) })
	stmt := ast.NewEmptyStatement(a, sp(0, 1))
	assert.Panics(t, func() {
		ast.NewExpressionStatement(a, sp(0, 1), ast.ExpressionFromID(a, stmt.ID()))
	})
}
