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

package spanindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/ast/spanindex"
	"github.com/bufbuild/esast/internal/minijs"
)

const source = "let x = (1 + a);\nf('hi', x);\n"

func TestAt(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog, err := minijs.Parse(a, source, minijs.Options{})
	require.NoError(t, err)
	idx := spanindex.New(a, prog.ID())
	assert.Equal(t, a.Len(), idx.Len())

	kindAt := func(offset uint32) ast.Kind {
		id := idx.At(offset)
		if id == 0 {
			return 0
		}
		return a.Kind(id)
	}
	assert.Equal(t, ast.KindVariableDeclaration, kindAt(0))
	assert.Equal(t, ast.KindVariableDeclaration, kindAt(3))
	assert.Equal(t, ast.KindIdentifier, kindAt(4))
	assert.Equal(t, ast.KindParenthesizedExpression, kindAt(8))
	assert.Equal(t, ast.KindNumericLiteral, kindAt(9))
	assert.Equal(t, ast.KindBinaryExpression, kindAt(11))
	assert.Equal(t, ast.KindProgram, kindAt(16))
	assert.Equal(t, ast.KindStringLiteral, kindAt(20))
	assert.Equal(t, ast.KindCallExpression, kindAt(26))
	assert.Equal(t, ast.KindExpressionStatement, kindAt(27))
	assert.Equal(t, ast.Kind(0), kindAt(29))
	assert.Equal(t, ast.Kind(0), kindAt(1000))

	var path []ast.Kind
	for _, id := range idx.Path(13) {
		path = append(path, a.Kind(id))
	}
	assert.Equal(t, []ast.Kind{
		ast.KindProgram,
		ast.KindVariableDeclaration,
		ast.KindVariableDeclarator,
		ast.KindParenthesizedExpression,
		ast.KindBinaryExpression,
		ast.KindIdentifier,
	}, path)
	assert.Empty(t, idx.Path(29))
}

func TestEnclosing(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog, err := minijs.Parse(a, source, minijs.Options{})
	require.NoError(t, err)
	idx := spanindex.New(a, prog.ID())

	kindOf := func(start, end uint32) ast.Kind {
		id := idx.Enclosing(ast.Span{Start: start, End: end})
		if id == 0 {
			return 0
		}
		return a.Kind(id)
	}
	assert.Equal(t, ast.KindBinaryExpression, kindOf(9, 14))
	assert.Equal(t, ast.KindVariableDeclarator, kindOf(4, 15))
	assert.Equal(t, ast.KindProgram, kindOf(10, 20))
	assert.Equal(t, ast.KindIdentifier, kindOf(13, 13))
	assert.Equal(t, ast.Kind(0), kindOf(25, 40))
	assert.Equal(t, ast.Kind(0), kindOf(40, 50))
}

func TestSkipsEmptySpans(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog, err := minijs.Parse(a, "[, x]", minijs.Options{})
	require.NoError(t, err)
	idx := spanindex.New(a, prog.ID())

	// The elision has an empty span, so it is left out.
	assert.Equal(t, a.Len()-1, idx.Len())
	assert.Equal(t, ast.KindArrayExpression, a.Kind(idx.At(1)))
	assert.Equal(t, ast.KindIdentifier, a.Kind(idx.At(3)))
}
