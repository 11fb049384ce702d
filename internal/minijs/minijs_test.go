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
package minijs_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/internal/minijs"
)

// sexpr renders a tree compactly. Identifiers, numbers and strings are shown
// by value; other nodes as (Kind enums... set-bools... children...), with
// lists in brackets and absent children as _.
func sexpr(a *ast.AST, id ast.NodeID) string {
	if id.IsZero() {
		return "_"
	}
	k := a.Kind(id)
	switch k {
	case ast.KindIdentifier:
		return ast.IdentifierFromID(a, id).NameText(a)
	case ast.KindNumericLiteral:
		return strconv.FormatFloat(ast.NumericLiteralFromID(a, id).Value(a), 'g', -1, 64)
	case ast.KindStringLiteral:
		return strconv.Quote(ast.StringLiteralFromID(a, id).ValueUTF8(a))
	}

	parts := []string{k.String()}
	for i, f := range k.Fields() {
		v := a.Field(id, i)
		switch {
		case f.Type == ast.FieldNode && f.List:
			var elems []string
			for _, c := range v.Range().IDs(a) {
				elems = append(elems, sexpr(a, c))
			}
			parts = append(parts, "["+strings.Join(elems, " ")+"]")
		case f.Type == ast.FieldNode:
			parts = append(parts, sexpr(a, v.Node()))
		case f.Type == ast.FieldEnum:
			_, s := v.Enum()
			parts = append(parts, s)
		case f.Type == ast.FieldBool:
			if v.Bool() {
				parts = append(parts, f.Name)
			}
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct{ src, want string }{
		{"1 + 2 * 3", "(BinaryExpression 1 + (BinaryExpression 2 * 3))"},
		{"1 * 2 - 3", "(BinaryExpression (BinaryExpression 1 * 2) - 3)"},
		{"2 ** 3 ** 2", "(BinaryExpression 2 ** (BinaryExpression 3 ** 2))"},
		{"a || b && c", "(LogicalExpression a || (LogicalExpression b && c))"},
		{"a ?? b", "(LogicalExpression a ?? b)"},
		{"a = b = c", "(AssignmentExpression = a (AssignmentExpression = b c))"},
		{"a.b += 1", "(AssignmentExpression += (MemberExpression a b) 1)"},
		{"a ? b : c ? d : e", "(ConditionalExpression a b (ConditionalExpression c d e))"},
		{"-x++", "(UnaryExpression - (UpdateExpression ++ x))"},
		{"++x", "(UpdateExpression ++ prefix x)"},
		{"typeof a === 'x'", `(BinaryExpression (UnaryExpression typeof a) === "x")`},
		{"a in b", "(BinaryExpression a in b)"},
		{"a, b", "(SequenceExpression [a b])"},
		{"x = y / 2 / z", "(AssignmentExpression = x (BinaryExpression (BinaryExpression y / 2) / z))"},
		{"/re/g.test(s)", "(CallExpression (MemberExpression (RegExpLiteral) test) [s])"},
		{"0x1f + 1_000 + .5", "(BinaryExpression (BinaryExpression 31 + 1000) + 0.5)"},
		{"(((1 + 2)))", "(ParenthesizedExpression (ParenthesizedExpression (ParenthesizedExpression (BinaryExpression 1 + 2))))"},
		{"a.b[c](d, ...e)", "(CallExpression (MemberExpression (MemberExpression a b) c computed) [d (SpreadElement e)])"},
		{"a?.b", "(MemberExpression a b optional)"},
		{"a?.[0]?.(1)", "(CallExpression (MemberExpression a 0 computed optional) [1] optional)"},
		{"new A(1).b", "(MemberExpression (NewExpression A [1]) b)"},
		{"new a.B", "(NewExpression (MemberExpression a B) [])"},
		{"import.meta", "(MetaProperty import meta)"},
		{"x => x * 2", "(ArrowFunctionExpression [x] (BinaryExpression x * 2))"},
		{"async (a, b = 1) => {}", "(ArrowFunctionExpression async [a (AssignmentPattern b 1)] (BlockStatement []))"},
		{"async => async", "(ArrowFunctionExpression [async] async)"},
		{"[a, , ...b] = c", "(AssignmentExpression = (ArrayPattern [a (Elision) (RestElement b)]) c)"},
		{
			"({a, b: [c] = d} = e)",
			"(ParenthesizedExpression (AssignmentExpression = (ObjectPattern [(Property init shorthand a a) " +
				"(Property init b (AssignmentPattern (ArrayPattern [c]) d))]) e))",
		},
		{"[1, , 2,]", "(ArrayExpression [1 (Elision) 2])"},
		{"`a${b}c`", "(TemplateLiteral [(TemplateElement) (TemplateElement tail)] [b])"},
		{"`a${ {b: `c`} }`", "(TemplateLiteral [(TemplateElement) (TemplateElement tail)] [(ObjectExpression [(Property init b (TemplateLiteral [(TemplateElement tail)] []))])])"},
		{"f`x`", "(TaggedTemplateExpression f (TemplateLiteral [(TemplateElement tail)] []))"},
		{
			"function* g() { yield* a; yield }",
			"(FunctionExpression g generator [] (BlockStatement [(ExpressionStatement (YieldExpression delegate a)) " +
				"(ExpressionStatement (YieldExpression _))]))",
		},
		{"async function () { await x }", "(FunctionExpression _ async [] (BlockStatement [(ExpressionStatement (AwaitExpression x))]))"},
		{
			"({get a() {}, [b]: 1, c() {}})",
			"(ParenthesizedExpression (ObjectExpression [(Property get a (FunctionExpression _ [] (BlockStatement []))) " +
				"(Property init computed b 1) (Property init method c (FunctionExpression _ [] (BlockStatement [])))]))",
		},
		{
			"class extends B { static x = 1; #y; constructor() { super(); } get z() { return this.#y } }",
			"(ClassExpression _ B [(PropertyDefinition static x 1) (PropertyDefinition (PrivateIdentifier) _) " +
				"(MethodDefinition constructor constructor (FunctionExpression _ [] (BlockStatement [(ExpressionStatement (CallExpression (Super) []))]))) " +
				"(MethodDefinition get z (FunctionExpression _ [] (BlockStatement [(ReturnStatement (MemberExpression (ThisExpression) (PrivateIdentifier)))])))])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			a := ast.New(ast.Options{})
			e, err := minijs.ParseExpression(a, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sexpr(a, e.ID()))
		})
	}
}

func TestStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src    string
		module bool
		want   []string
	}{
		{
			src: "for (let i = 0; i < n; i++) {}",
			want: []string{
				"(ForStatement (VariableDeclaration let [(VariableDeclarator i 0)]) (BinaryExpression i < n) (UpdateExpression ++ i) (BlockStatement []))",
			},
		},
		{
			src:  "for (const [k, v] of m) x;",
			want: []string{"(ForOfStatement (VariableDeclaration const [(VariableDeclarator (ArrayPattern [k v]) _)]) m (ExpressionStatement x))"},
		},
		{
			src:  "for (a.b in c);",
			want: []string{"(ForInStatement (MemberExpression a b) c (EmptyStatement))"},
		},
		{
			src:  "a\n++b",
			want: []string{"(ExpressionStatement a)", "(ExpressionStatement (UpdateExpression ++ prefix b))"},
		},
		{
			src:  "x: while (1) { break x; continue }",
			want: []string{"(LabeledStatement x (WhileStatement 1 (BlockStatement [(BreakStatement x) (ContinueStatement _)])))"},
		},
		{
			src:  "try {} catch ({e}) {} finally {}",
			want: []string{"(TryStatement (BlockStatement []) (CatchClause (ObjectPattern [(Property init shorthand e e)]) (BlockStatement [])) (BlockStatement []))"},
		},
		{
			src:  "try {} catch {}",
			want: []string{"(TryStatement (BlockStatement []) (CatchClause _ (BlockStatement [])) _)"},
		},
		{
			src:  "switch (x) { case 1: a; default: }",
			want: []string{"(SwitchStatement x [(SwitchCase 1 [(ExpressionStatement a)]) (SwitchCase _ [])])"},
		},
		{
			src:  "do x; while (y)",
			want: []string{"(DoWhileStatement (ExpressionStatement x) y)"},
		},
		{
			src:  "if (a) b; else if (c) d",
			want: []string{"(IfStatement a (ExpressionStatement b) (IfStatement c (ExpressionStatement d) _))"},
		},
		{
			src:  "'use strict'; 'not' + 1;",
			want: []string{`(Directive "use strict")`, `(ExpressionStatement (BinaryExpression "not" + 1))`},
		},
		{
			src:  "let = 1; let {a, ...b} = c",
			want: []string{"(ExpressionStatement (AssignmentExpression = let 1))", "(VariableDeclaration let [(VariableDeclarator (ObjectPattern [(Property init shorthand a a) (RestElement b)]) c)])"},
		},
		{
			src:  "function f(a, [b], ...c) { 'use strict'; return }",
			want: []string{`(FunctionDeclaration f [a (ArrayPattern [b]) (RestElement c)] (BlockStatement [(Directive "use strict") (ReturnStatement _)]))`},
		},
		{
			src:  "class A extends B {}",
			want: []string{"(ClassDeclaration A B [])"},
		},
		{
			src:    `import d, {a as b, c} from "m"; import * as ns from "n"; import "o"`,
			module: true,
			want: []string{
				`(ImportDeclaration [(ImportDefaultSpecifier d) (ImportSpecifier a b) (ImportSpecifier c c)] "m")`,
				`(ImportDeclaration [(ImportNamespaceSpecifier ns)] "n")`,
				`(ImportDeclaration [] "o")`,
			},
		},
		{
			src:    "export default function f() {} export {x as y}; export const z = 1",
			module: true,
			want: []string{
				"(ExportDefaultDeclaration (FunctionDeclaration f [] (BlockStatement [])))",
				"(ExportNamedDeclaration _ [(ExportSpecifier x y)] _)",
				"(ExportNamedDeclaration (VariableDeclaration const [(VariableDeclarator z 1)]) [] _)",
			},
		},
		{
			src:    "export default 1 + 2",
			module: true,
			want:   []string{"(ExportDefaultDeclaration (BinaryExpression 1 + 2))"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			a := ast.New(ast.Options{})
			prog, err := minijs.Parse(a, tt.src, minijs.Options{Module: tt.module})
			require.NoError(t, err)

			var got []string
			for item := range prog.Body(a).Values(a) {
				got = append(got, sexpr(a, item.ID()))
			}
			assert.Equal(t, tt.want, got)

			want := ast.SourceTypeScript
			if tt.module {
				want = ast.SourceTypeModule
			}
			assert.Equal(t, want, prog.SourceType(a))
		})
	}
}

func TestSpans(t *testing.T) {
	t.Parallel()

	const src = `function f(a, b) { if (a) { return a + b; } else return (b); } const x = "hi\ud800", y = 10n;`
	a := ast.New(ast.Options{})
	prog, err := minijs.Parse(a, src, minijs.Options{})
	require.NoError(t, err)

	spans := make(map[ast.Kind][]string)
	ast.Inspect(a, prog.ID(), func(id ast.NodeID) bool {
		k := a.Kind(id)
		spans[k] = append(spans[k], a.Span(id).String())
		return true
	})

	assert.Equal(t, []string{"0:93"}, spans[ast.KindProgram])
	assert.Equal(t, []string{"0:62"}, spans[ast.KindFunctionDeclaration])
	assert.Equal(t, []string{"19:60"}, spans[ast.KindIfStatement])
	assert.Equal(t, []string{"28:41", "49:60"}, spans[ast.KindReturnStatement])
	assert.Equal(t, []string{"17:62", "26:43"}, spans[ast.KindBlockStatement])
	assert.Equal(t, []string{"56:59"}, spans[ast.KindParenthesizedExpression])
	assert.Equal(t, []string{"63:93"}, spans[ast.KindVariableDeclaration])
	assert.Equal(t, []string{"69:83", "85:92"}, spans[ast.KindVariableDeclarator])
	assert.Equal(t, []string{"73:83"}, spans[ast.KindStringLiteral])
	assert.Equal(t, []string{"89:92"}, spans[ast.KindBigIntLiteral])
}

func TestLiterals(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	e, err := minijs.ParseExpression(a, "\"\\u{1F600}\\ud800\\x41\\\nb\"")
	require.NoError(t, err)
	str := e.AsStringLiteral(a)
	require.False(t, str.IsZero())
	assert.Equal(t, []uint16{0xd83d, 0xde00, 0xd800, 'A', 'b'}, a.Literals().GetUTF16(str.Value(a)))
	raw, ok := str.RawText(a)
	assert.True(t, ok)
	assert.Equal(t, "\"\\u{1F600}\\ud800\\x41\\\nb\"", raw)

	e, err = minijs.ParseExpression(a, "0b101n + 0o17 + 017 + 1e3")
	require.NoError(t, err)
	assert.Equal(t, "(BinaryExpression (BinaryExpression (BinaryExpression (BigIntLiteral) + 15) + 15) + 1000)", sexpr(a, e.ID()))
	n := e.AsBinaryExpression(a).Left(a).AsBinaryExpression(a).Left(a).AsBinaryExpression(a).Left(a).AsBigIntLiteral(a)
	assert.Equal(t, "5", n.ValueInt(a).String())

	// Tagged templates keep chunks with invalid escapes, without a cooked value.
	e, err = minijs.ParseExpression(a, "tag`\\unicode`")
	require.NoError(t, err)
	quasi := e.AsTaggedTemplateExpression(a).Quasi(a).Quasis(a).First(a)
	assert.True(t, quasi.Cooked(a).IsNone())
	assert.Equal(t, `\unicode`, quasi.RawText(a))
	assert.Equal(t, ast.Span{Start: 4, End: 12}, quasi.Span(a))

	e, err = minijs.ParseExpression(a, "`a\\tb`")
	require.NoError(t, err)
	quasi = e.AsTemplateLiteral(a).Quasis(a).First(a)
	cooked, ok := quasi.CookedUTF8(a)
	assert.True(t, ok)
	assert.Equal(t, "a\tb", cooked)

	e, err = minijs.ParseExpression(a, "/[/]+/gi")
	require.NoError(t, err)
	re := e.AsRegExpLiteral(a)
	assert.Equal(t, "[/]+", re.PatternText(a))
	assert.Equal(t, "gi", re.FlagsText(a))
}

func TestHashbang(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog, err := minijs.Parse(a, "#!/usr/bin/env node\nx // done\n/* trailing */", minijs.Options{})
	require.NoError(t, err)
	hashbang, ok := prog.HashbangText(a)
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/env node", hashbang)
	assert.Equal(t, 1, prog.Body(a).Len())

	prog, err = minijs.Parse(a, "x", minijs.Options{})
	require.NoError(t, err)
	_, ok = prog.HashbangText(a)
	assert.False(t, ok)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src    string
		offset int
		msg    string
	}{
		{"a +", 3, "unexpected end of input"},
		{"1 = 2", 0, "invalid assignment target"},
		{"(a + b)++", 0, "invalid assignment target"},
		{"'abc", 0, "unterminated string literal"},
		{`'\x4'`, 1, "invalid escape sequence"},
		{"try {}", 6, "expected catch or finally"},
		{"x = `a${b`", 9, "unterminated template literal"},
		{"x = `a${b}c", 9, "unterminated template literal"},
		{"3in x", 0, "identifier starts immediately after numeric literal"},
		{"# x", 0, "expected a name after #"},
		{"a ? b", 5, `expected ":"`},
		{"a b", 2, `expected ";"`},
		{"switch (a) { default: default: }", 22, "more than one default clause"},
		{"throw\nx", 6, "line break after throw"},
		{"/* open", 0, "unterminated block comment"},
		{"export * from 'm'", 7, "export * is not supported"},
		{"export const a = 1; export {b as a};", 33, `duplicate export "a"`},
		{"export default 1; export default 2;", 25, `duplicate export "default"`},
		{"export {x as default}; export default 2;", 30, `duplicate export "default"`},
		{"export const {x, y: [z = 1, ...w]} = o; export function w() {}", 56, `duplicate export "w"`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			a := ast.New(ast.Options{})
			_, err := minijs.Parse(a, tt.src, minijs.Options{Module: true})
			var perr *minijs.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Contains(t, perr.Msg, tt.msg)
		})
	}
}

func TestErrorRecovery(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	_, err := minijs.ParseExpression(a, "[1, [2, 3")
	require.Error(t, err)

	e, err := minijs.ParseExpression(a, "[4]")
	require.NoError(t, err)
	assert.Equal(t, "(ArrayExpression [4])", sexpr(a, e.ID()))
}

func TestDestructuringFreesNodes(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	e, err := minijs.ParseExpression(a, "[a, [b]] = c")
	require.NoError(t, err)

	var live int
	ast.Inspect(a, e.ID(), func(ast.NodeID) bool {
		live++
		return true
	})
	// The array literals read before the = were replaced by patterns.
	assert.Equal(t, live, a.Len())
}
