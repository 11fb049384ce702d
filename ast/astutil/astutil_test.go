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

package astutil_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/ast/astutil"
	"github.com/bufbuild/esast/internal/corpora"
	"github.com/bufbuild/esast/internal/minijs"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "ESAST_REFRESH",
		Extension: "js",
		Outputs: []corpora.Output{
			{Extension: "dump"},
			{Extension: "stripped"},
		},
		Test: func(t *testing.T, path, text string) []string {
			a := ast.New(ast.Options{})
			prog, err := minijs.Parse(a, text, minijs.Options{Module: strings.Contains(path, "module")})
			require.NoError(t, err)

			var dump, stripped bytes.Buffer
			require.NoError(t, astutil.Dump(&dump, a, prog.ID(), astutil.DumpOptions{}))
			root := astutil.StripParens(a, prog.ID())
			require.NoError(t, astutil.Dump(&stripped, a, root, astutil.DumpOptions{}))
			return []string{dump.String(), stripped.String()}
		},
	}.Run(t)
}

func TestStripParens(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	e, err := minijs.ParseExpression(a, "(((1 + (a))))")
	require.NoError(t, err)
	require.Equal(t, ast.KindParenthesizedExpression, a.Kind(e.ID()))
	require.Equal(t, 7, a.Len())

	root := astutil.StripParens(a, e.ID())
	assert.Equal(t, ast.KindBinaryExpression, a.Kind(root))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, a.Len(), astutil.Count(a, root))
	assert.Equal(t, map[ast.Kind]int{
		ast.KindBinaryExpression: 1,
		ast.KindNumericLiteral:   1,
		ast.KindIdentifier:       1,
	}, astutil.CountKinds(a, root))

	bin := ast.BinaryExpressionFromID(a, root)
	assert.Equal(t, ast.KindIdentifier, a.Kind(bin.Right(a).ID()))

	// Nothing to strip.
	assert.Equal(t, root, astutil.StripParens(a, root))
	assert.Equal(t, 3, a.Len())
}

func TestStripNestedParens(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	e, err := minijs.ParseExpression(a, "(((1+2)))")
	require.NoError(t, err)
	require.Equal(t, 6, a.Len())

	root := astutil.StripParens(a, e.ID())
	counts := astutil.CountKinds(a, root)
	assert.Equal(t, 1, counts[ast.KindBinaryExpression])
	assert.Equal(t, 2, counts[ast.KindNumericLiteral])
	assert.Zero(t, counts[ast.KindParenthesizedExpression])
	assert.Equal(t, ast.KindBinaryExpression, a.Kind(root))
	assert.Equal(t, 3, a.Len())
}

func TestCountEmpty(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	assert.Zero(t, astutil.Count(a, 0))
	assert.Empty(t, astutil.CountKinds(a, 0))
}

func TestDump(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	e, err := minijs.ParseExpression(a, "f(\"abcdefgh\", [], x?.y)")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, astutil.Dump(&out, a, e.ID(), astutil.DumpOptions{Width: 5, Indent: "\t"}))
	assert.Equal(t, strings.Join([]string{
		"CallExpression @0:23 optional=false",
		"\tcallee: Identifier @0:1 name=\"f\"",
		"\targuments[0]: StringLiteral @2:12 value=\"abcd\u2026\" raw=\"\\\"abc\u2026\"",
		"\targuments[1]: ArrayExpression @14:16",
		"\t\telements: []",
		"\targuments[2]: MemberExpression @18:22 computed=false optional=true",
		"\t\tobject: Identifier @18:19 name=\"x\"",
		"\t\tproperty: Identifier @21:22 name=\"y\"",
		"",
	}, "\n"), out.String())

	out.Reset()
	require.NoError(t, astutil.Dump(&out, a, 0, astutil.DumpOptions{}))
	assert.Equal(t, "none\n", out.String())
}

func TestStats(t *testing.T) {
	t.Parallel()

	a := ast.New(ast.Options{})
	prog, err := minijs.Parse(a, "let x = [1, 2];\nf(x);\n", minijs.Options{})
	require.NoError(t, err)

	s := astutil.Collect(a, prog.ID())
	assert.Equal(t, a.Len(), s.Live)
	assert.Equal(t, a.Len(), s.Reachable)
	assert.Zero(t, s.Freed)
	assert.Equal(t, a.ExtraLen(), s.Slots)
	assert.Equal(t, s.Slots, s.Used)
	assert.Zero(t, s.Orphaned)
	assert.Equal(t, 4, s.Idents) // x, 1, 2 and f
	assert.Positive(t, s.Bytes())
	assert.Contains(t, s.String(), "0 orphaned")

	// Destructuring turns the array literal into a pattern, leaving its
	// record slot and two element slots behind.
	a = ast.New(ast.Options{})
	prog, err = minijs.Parse(a, "[a, b] = c;", minijs.Options{})
	require.NoError(t, err)
	s = astutil.Collect(a, prog.ID())
	assert.Equal(t, s.Live, s.Reachable)
	assert.Equal(t, 3, s.Orphaned)
	assert.Equal(t, s.Slots-3, s.Used)

	s = astutil.Collect(a)
	assert.Zero(t, s.Reachable)
}
