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

package schema_test

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/internal/schema"
)

const fixture = `
enums:
  - name: Op
    docs: An operator.
    values:
      - {name: Add, string: "+"}
      - {name: Sub, string: "-"}
choices:
  - name: Expr
    variants: [Num, Binary, Group]
  - name: Top
    variants: [Expr, Stmt]
nodes:
  - name: Num
    fields:
      - {name: value, type: Number}
  - name: Binary
    docs: A binary operation.
    fields:
      - {name: op, type: Op}
      - {name: left, type: Expr}
      - {name: right, type: Expr}
  - name: Group
    fields:
      - {name: inner, type: Expr}
  - name: Stmt
    fields:
      - {name: label, type: Str, optional: true}
      - {name: body, type: Top, list: true}
      - {name: raw, type: Wtf8}
      - {name: big, type: BigInt}
  - name: Empty
`

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte(fixture))
	require.NoError(t, err)

	assert.Equal(t, 6, s.KindCount())
	require.Len(t, s.Nodes, 5)
	num, binary, group, stmt, empty := s.Nodes[0], s.Nodes[1], s.Nodes[2], s.Nodes[3], s.Nodes[4]
	assert.Equal(t, 1, num.Value)
	assert.Equal(t, 5, empty.Value)

	// Only a lone child, bool or enum field is stored in the node record.
	assert.False(t, num.Inline)
	assert.False(t, binary.Inline)
	assert.True(t, group.Inline)
	assert.False(t, stmt.Inline)
	assert.False(t, empty.Inline)
	assert.Equal(t, 0, group.Slots())
	assert.Equal(t, 3, binary.Slots())

	expr, top := s.Choices[0], s.Choices[1]
	assert.Equal(t, []*schema.Kind{num, binary, group}, expr.Kinds)
	assert.Equal(t, []*schema.Kind{num, binary, group, stmt}, top.Kinds)
	assert.Equal(t, []*schema.Choice{top}, expr.Supers)
	assert.Empty(t, top.Supers)
	assert.Equal(t, []*schema.Choice{expr, top}, binary.Choices)
	assert.Equal(t, []*schema.Choice{top}, stmt.Choices)

	assert.Equal(t, schema.ClassEnum, binary.Fields[0].Class)
	assert.Equal(t, schema.ClassNode, binary.Fields[1].Class)
	assert.Equal(t, "Binary.left", binary.Fields[1].Qualified())
	assert.Len(t, binary.Children(), 2)
	assert.Equal(t, "+", s.Enums[0].Values[0].String())
	assert.True(t, s.HasBigInts())
}

func TestAsLikeFieldNames(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte("nodes: [{name: F, fields: [{name: async, type: Bool}, {name: assertions, type: F, list: true}, {name: as, type: Bool}]}]"))
	require.NoError(t, err)
	fields := s.Nodes[0].Fields
	assert.Equal(t, "Async", fields[0].GoName())
	assert.Equal(t, "async", fields[0].Param())
	assert.Equal(t, "Assertions", fields[1].GoName())
	assert.Equal(t, "As", fields[2].GoName())
}

func TestNames(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte(fixture))
	require.NoError(t, err)
	stmt := s.Nodes[3]

	label, body, raw, big := stmt.Fields[0], stmt.Fields[1], stmt.Fields[2], stmt.Fields[3]
	assert.Equal(t, "Label", label.GoName())
	assert.Equal(t, "text.OptionalRef", label.GoType())
	assert.Equal(t, "LabelText", label.Helper())
	assert.Equal(t, "SubRange[Top]", body.GoType())
	assert.Equal(t, "tagRange", body.Tag())
	assert.Equal(t, "cloneRange(c, n.Body(c.src))", body.Clone())
	assert.Equal(t, "RawUTF8", raw.Helper())
	assert.Equal(t, "BigIntID", big.GoType())
	assert.Equal(t, []string{"Big", "SetBig", "BigInt"}, big.Methods())

	group := s.Nodes[2]
	inner := group.Fields[0]
	assert.Equal(t, "Expr{NodeID(p)}", inner.InlineDecode("p"))
	assert.Equal(t, "uint32(v.id)", inner.InlineEncode("v"))
	assert.Equal(t, "an", s.Choices[0].Article())
	assert.Equal(t, "exprKinds", s.Choices[0].Set())
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, yaml, want string
	}{
		{
			name: "duplicate",
			yaml: "nodes: [{name: A}, {name: A}]",
			want: `"A" is defined more than once`,
		},
		{
			name: "builtin",
			yaml: "nodes: [{name: Str}]",
			want: "builtin type",
		},
		{
			name: "unexported",
			yaml: "nodes: [{name: a}]",
			want: "exported Go identifier",
		},
		{
			name: "unknown type",
			yaml: "nodes: [{name: A, fields: [{name: x, type: Nope}]}]",
			want: `A.x: unknown type "Nope"`,
		},
		{
			name: "scalar list",
			yaml: "nodes: [{name: A, fields: [{name: x, type: Number, list: true}]}]",
			want: "only node fields may be lists",
		},
		{
			name: "optional list",
			yaml: "nodes: [{name: A, fields: [{name: x, type: A, list: true, optional: true}]}]",
			want: "lists cannot be optional",
		},
		{
			name: "optional bool",
			yaml: "nodes: [{name: A, fields: [{name: x, type: Bool, optional: true}]}]",
			want: "only node and text fields may be optional",
		},
		{
			name: "camel field",
			yaml: "nodes: [{name: A, fields: [{name: fooBar, type: Bool}]}]",
			want: "must be snake_case",
		},
		{
			name: "reserved method",
			yaml: "nodes: [{name: A, fields: [{name: span, type: Bool}]}]",
			want: "collides with a builtin method",
		},
		{
			name: "helper collision",
			yaml: "nodes: [{name: A, fields: [{name: name, type: Str}, {name: name_text, type: Bool}]}]",
			want: "method NameText collides with A.name",
		},
		{
			name: "as prefix",
			yaml: "nodes: [{name: A, fields: [{name: as_expr, type: A}]}]",
			want: "A.as_expr: field names may not start with as_",
		},
		{
			name: "choice cycle",
			yaml: "choices: [{name: X, variants: [Y]}, {name: Y, variants: [X]}]",
			want: "contains itself",
		},
		{
			name: "bad variant",
			yaml: "enums: [{name: E, values: [{name: V}]}]\nchoices: [{name: X, variants: [E]}]",
			want: `"E" is not a kind or choice`,
		},
		{
			name: "empty enum",
			yaml: "enums: [{name: E}]",
			want: "between 1 and 256 values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := schema.Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, schema.ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte(fixture))
	require.NoError(t, err)

	files, err := schema.Render(s, schema.Options{
		Package: "ast",
		Binary:  "example.com/gen",
		Prefix:  "nodes",
	})
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "nodes.go", files[0].Name)
	assert.Equal(t, "nodes_walk.go", files[1].Name)
	assert.Equal(t, "nodes_clone.go", files[2].Name)

	fset := token.NewFileSet()
	for _, f := range files {
		_, err := parser.ParseFile(fset, f.Name, f.Data, parser.ParseComments)
		require.NoError(t, err, f.Name)
		assert.Contains(t, string(f.Data), "// Code generated by example.com/gen. DO NOT EDIT.")
	}

	nodes := string(files[0].Data)
	for _, want := range []string{
		"const kindCount = 6",
		"\"math/big\"",
		"// An operator.\ntype Op uint8",
		"var opStrings = [...]string{\"+\", \"-\"}",
		"// A binary operation.\ntype Binary struct{ id NodeID }",
		"func NewGroup(a *AST, span Span, inner Expr) Group {",
		"return Group{a.addNode(span, KindGroup, uint32(inner.id))}",
		"func (n Binary) AsTop() Top { return Top{n.id} }",
		"func (n Expr) AsTop() Top { return Top{n.id} }",
		"func (n Top) AsExpr(a *AST) Expr {",
		"func (n Stmt) LabelText(a *AST) (string, bool) {",
		"func (n Stmt) BigInt(a *AST) *big.Int {",
	} {
		assert.Contains(t, nodes, want)
	}
	// Kinds reached only through a nested choice get no direct downcast.
	assert.NotContains(t, nodes, "func (n Top) AsNum(")

	walk := string(files[1].Data)
	assert.Contains(t, walk, "func (n Empty) VisitChildrenWith(a *AST, v Visitor) {}")
	assert.Contains(t, walk, "for c := range n.Body(a).Values(a) {")

	clone := string(files[2].Data)
	assert.Contains(t, clone, "c.optStr(n.Label(c.src)),")
	assert.Contains(t, clone, "func (n Top) CloneIn(src, dst *AST) Top {")
}

func TestRenderNoBigInts(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte("nodes: [{name: Leaf}]"))
	require.NoError(t, err)
	files, err := schema.Render(s, schema.Options{Package: "p", Binary: "gen", Prefix: "x"})
	require.NoError(t, err)
	assert.NotContains(t, string(files[0].Data), "math/big")
}

func TestLoadNodes(t *testing.T) {
	t.Parallel()

	s, err := schema.Load("../../ast/nodes.yaml")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(s.Nodes), schema.MaxKinds)

	files, err := schema.Render(s, schema.Options{Package: "ast", Binary: "gen", Prefix: "nodes"})
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Data), "KindProgram")
}

func TestUnknownKey(t *testing.T) {
	t.Parallel()

	// A comma in an unquoted flow mapping starts a new key.
	_, err := schema.Parse([]byte("nodes: [{name: A, fields: [{name: x, type: Bool, docs: one, two}]}]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in type")
}
