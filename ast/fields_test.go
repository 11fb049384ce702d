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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
)

func TestFieldInfo(t *testing.T) {
	t.Parallel()

	kinds := ast.Kinds()
	assert.Equal(t, ast.KindProgram, kinds[0])
	assert.NotContains(t, kinds, ast.KindFreed)
	assert.Empty(t, ast.KindFreed.Fields())
	assert.Empty(t, ast.Kind(250).Fields())

	fields := ast.KindBinaryExpression.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "left", fields[0].Name)
	assert.Equal(t, ast.FieldNode, fields[0].Type)
	assert.Equal(t, "Expression", fields[0].TypeName)
	assert.Equal(t, ast.FieldEnum, fields[1].Type)
	assert.Equal(t, "BinaryOperator", fields[1].TypeName)

	prog := ast.KindProgram.Fields()
	require.Len(t, prog, 3)
	assert.True(t, prog[1].Optional)
	assert.True(t, prog[2].List)

	for _, k := range kinds {
		for _, f := range k.Fields() {
			assert.False(t, f.List && f.Optional, "%v.%s", k, f.Name)
		}
	}
}

func TestFieldValues(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog := sample(a)

	v := a.Field(prog.ID(), 0)
	e, s := v.Enum()
	assert.Equal(t, uint8(ast.SourceTypeScript), e)
	assert.Equal(t, "script", s)
	assert.Equal(t, "none", a.Field(prog.ID(), 1).Format(a))
	assert.Equal(t, 2, a.Field(prog.ID(), 2).Range().Len())

	fn := prog.Body(a).First(a).AsStatement(a).AsDeclaration(a).AsFunctionDeclaration(a)
	assert.Equal(t, fn.Name(a).ID(), a.Field(fn.ID(), 0).Node())
	assert.False(t, a.Field(fn.ID(), 1).Bool())
	assert.Equal(t, "false", a.Field(fn.ID(), 2).Format(a))

	name := a.Field(fn.Name(a).ID(), 0)
	text, ok := name.Text(a)
	assert.True(t, ok)
	assert.Equal(t, "f", text)
	assert.Equal(t, `"f"`, name.Format(a))
	assert.Equal(t, "Identifier", fn.Name(a).Kind().String())

	decl := prog.Body(a).Last(a).AsStatement(a).AsDeclaration(a).AsVariableDeclaration(a)
	str := decl.Declarations(a).First(a).Init(a)
	assert.Equal(t, `"hi�"`, a.Field(str.ID(), 0).Format(a))
	assert.Equal(t, `"\"hi\\ud800\""`, a.Field(str.ID(), 1).Format(a))

	ten := decl.Declarations(a).Last(a).Init(a)
	assert.Equal(t, "10n", a.Field(ten.ID(), 0).Format(a))
	assert.Equal(t, int64(10), a.Field(ten.ID(), 0).BigInt(a).Int64())

	one := num(a, 1.5)
	assert.InDelta(t, 1.5, a.Field(one.ID(), 0).Number(), 0)
	assert.Equal(t, "1.5", a.Field(one.ID(), 0).Format(a))

	// Inline fields are read from the node record.
	paren := ast.NewParenthesizedExpression(a, sp(0, 3), one.AsExpression())
	assert.Equal(t, one.ID(), a.Field(paren.ID(), 0).Node())

	assert.Panics(t, func() { a.Field(one.ID(), 2) })
	assert.Panics(t, func() { a.Field(one.ID(), 0).Bool() })
}
