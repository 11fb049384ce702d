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
	"github.com/bufbuild/esast/text"
)

// sample builds a program along the lines of
//
//	function f(a, b) { if (a) { return a + b; } else return (b); }
//	const x = "hi\ud800", y = 10n;
func sample(a *ast.AST) ast.Program {
	ref := func(name string) ast.Expression { return ident(a, name).AsExpression() }
	ret := ast.NewReturnStatement(a, sp(29, 42), add(a, ref("a"), ref("b")).AsExpression())
	then := ast.NewBlockStatement(a, sp(27, 44), ast.NewRange(a, ret.AsStatement()))
	paren := ast.NewParenthesizedExpression(a, sp(57, 60), ref("b"))
	els := ast.NewReturnStatement(a, sp(50, 61), paren.AsExpression())
	ifs := ast.NewIfStatement(a, sp(19, 61), ref("a"), then.AsStatement(), els.AsStatement())
	body := ast.NewBlockStatement(a, sp(17, 63), ast.NewRange(a, ifs.AsStatement()))
	fn := ast.NewFunctionDeclaration(a, sp(0, 63), ident(a, "f"), false, false,
		ast.NewRange(a, ident(a, "a").AsPattern(), ident(a, "b").AsPattern()), body)

	str := ast.NewStringLiteral(a, sp(74, 84),
		a.Literals().AddUTF16([]uint16{'h', 'i', 0xd800}),
		text.Some(a.Idents().Intern(`"hi\ud800"`)))
	ten := ast.NewBigIntLiteral(a, sp(90, 93), a.NewBigInt(big.NewInt(10)), text.None)
	decl := ast.NewVariableDeclaration(a, sp(64, 94), ast.VariableKindConst, ast.NewRange(a,
		ast.NewVariableDeclarator(a, sp(70, 84), ident(a, "x").AsPattern(), str.AsExpression()),
		ast.NewVariableDeclarator(a, sp(86, 93), ident(a, "y").AsPattern(), ten.AsExpression()),
	))

	return ast.NewProgram(a, sp(0, 94), ast.SourceTypeScript, text.None, ast.NewRange(a,
		fn.AsModuleItem(),
		decl.AsModuleItem(),
	))
}

func kinds(a *ast.AST, root ast.NodeID) []ast.Kind {
	var out []ast.Kind
	ast.Inspect(a, root, func(id ast.NodeID) bool {
		out = append(out, a.Kind(id))
		return true
	})
	return out
}

func TestWalk(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog := sample(a)

	var enter, leave int
	ast.Walk(a, &ast.Hooks{
		Enter: func(*ast.AST, ast.NodeID) bool { enter++; return true },
		Leave: func(*ast.AST, ast.NodeID) { leave++ },
	}, prog.ID())
	assert.Equal(t, a.Len(), enter)
	assert.Equal(t, a.Len(), leave)

	got := kinds(a, prog.ID())
	require.Len(t, got, a.Len())
	assert.Equal(t, []ast.Kind{
		ast.KindProgram,
		ast.KindFunctionDeclaration,
		ast.KindIdentifier,
		ast.KindIdentifier,
		ast.KindIdentifier,
		ast.KindBlockStatement,
		ast.KindIfStatement,
		ast.KindIdentifier,
		ast.KindBlockStatement,
		ast.KindReturnStatement,
		ast.KindBinaryExpression,
	}, got[:11])
	assert.Equal(t, ast.KindBigIntLiteral, got[len(got)-1])

	// Walking the zero ID does nothing.
	ast.Walk(a, &ast.Hooks{Enter: func(*ast.AST, ast.NodeID) bool {
		t.Fatal("entered a node")
		return true
	}}, 0)
}

func TestHooks(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog := sample(a)
	fn := prog.Body(a).First(a).AsStatement(a).AsDeclaration(a).AsFunctionDeclaration(a)
	require.False(t, fn.IsZero())
	skipped := len(kinds(a, fn.ID()))

	var enter, leave, idents int
	ast.Walk(a, &ast.Hooks{
		Enter: func(*ast.AST, ast.NodeID) bool { enter++; return true },
		Leave: func(*ast.AST, ast.NodeID) { leave++ },
		EnterKind: map[ast.Kind]func(*ast.AST, ast.NodeID) bool{
			ast.KindFunctionDeclaration: func(*ast.AST, ast.NodeID) bool { return false },
		},
		LeaveKind: map[ast.Kind]func(*ast.AST, ast.NodeID){
			ast.KindIdentifier: func(*ast.AST, ast.NodeID) { idents++ },
		},
	}, prog.ID())

	assert.Equal(t, a.Len()-skipped, enter)
	assert.Equal(t, enter, leave)
	assert.Equal(t, 2, idents)

	// VisitChildren skips the hooks for the node itself.
	var n int
	ast.VisitChildren(a, &ast.Hooks{
		Enter: func(*ast.AST, ast.NodeID) bool { n++; return false },
	}, prog.ID())
	assert.Equal(t, 2, n)
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	// (((1 + 2)));
	a := ast.New(ast.Options{})
	bin := add(a, num(a, 1).AsExpression(), num(a, 2).AsExpression())
	var e ast.Expression = bin.AsExpression()
	for range 3 {
		e = ast.NewParenthesizedExpression(a, sp(0, 1), e).AsExpression()
	}
	stmt := ast.NewExpressionStatement(a, sp(0, 12), e)
	require.Equal(t, 7, a.Len())

	strip := ast.PostOrder(func(a *ast.AST, id ast.NodeID) ast.NodeID {
		if a.Kind(id) != ast.KindParenthesizedExpression {
			return id
		}
		inner := ast.ParenthesizedExpressionFromID(a, id).Expression(a).ID()
		a.FreeNode(id)
		return inner
	})
	assert.Equal(t, stmt.ID(), ast.Rewrite(a, strip, stmt.ID()))
	assert.Zero(t, ast.Rewrite(a, strip, 0))

	assert.Equal(t, 4, a.Len())
	assert.Equal(t, bin.ID(), stmt.Expression(a).ID())
	assert.Equal(t, []ast.Kind{
		ast.KindExpressionStatement,
		ast.KindBinaryExpression,
		ast.KindNumericLiteral,
		ast.KindNumericLiteral,
	}, kinds(a, stmt.ID()))

	// A rewriter that does not recurse only sees the node it is given.
	var seen int
	ast.RewriteChildren(a, ast.RewriterFunc(func(_ *ast.AST, id ast.NodeID) ast.NodeID {
		seen++
		return id
	}), bin.ID())
	assert.Equal(t, 2, seen)

	// Lists are rewritten in place.
	seq := ast.NewSequenceExpression(a, sp(0, 3), ast.NewRange(a,
		ident(a, "a").AsExpression(),
		ident(a, "b").AsExpression(),
	))
	z := ident(a, "z")
	ast.RewriteChildren(a, ast.RewriterFunc(func(a *ast.AST, id ast.NodeID) ast.NodeID {
		if ast.IdentifierFromID(a, id).NameText(a) == "b" {
			return z.ID()
		}
		return id
	}), seq.ID())
	assert.Equal(t, z.ID(), seq.Expressions(a).Last(a).ID())
}
