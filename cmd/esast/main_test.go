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

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func write(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestDump(t *testing.T) {
	t.Parallel()

	out, err := run(t, "let x = (1);", "dump", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Program @0:12 source_type=script hashbang=none\n"), out)
	assert.Contains(t, out, "init: ParenthesizedExpression @8:11\n")
	assert.NotContains(t, out, "# ")

	out, err = run(t, "let x = (1);", "dump", "--strip-parens", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "init: NumericLiteral @9:10 value=1 raw=\"1\"\n")
	assert.NotContains(t, out, "Parenthesized")

	out, err = run(t, "let x = (1);", "dump", "--stats", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "0 orphaned")
}

func TestDumpFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := write(t, dir, "a.js", "a;")
	module := write(t, dir, "b.mjs", "export const b = 1;")

	out, err := run(t, "", "dump", "--workers", "2", script, module)
	require.NoError(t, err)
	first, second := strings.Index(out, "# "+script+"\n"), strings.Index(out, "# "+module+"\n")
	require.NotEqual(t, -1, first, out)
	require.NotEqual(t, -1, second, out)
	assert.Less(t, first, second)
	assert.Contains(t, out[first:second], "source_type=script")
	assert.Contains(t, out[second:], "source_type=module")

	_, err = run(t, "", "dump", filepath.Join(dir, "missing.js"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDumpWidth(t *testing.T) {
	t.Parallel()

	out, err := run(t, `x = "abcdefghij";`, "dump", "--width", "5", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "value=\"abcd…\"")
}

func TestDumpWidthFromEnv(t *testing.T) {
	t.Setenv("ESAST_WIDTH", "5")

	out, err := run(t, `x = "abcdefghij";`, "dump", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "value=\"abcd…\"")

	// Flags win over the environment.
	out, err = run(t, `x = "abcdefghij";`, "dump", "--width", "0", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "value=\"abcdefghij\"")
}

func TestDumpError(t *testing.T) {
	t.Parallel()

	_, err := run(t, "a +;", "dump", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-: minijs: offset 3")

	_, err = run(t, "", "dump")
	require.Error(t, err)
}

func TestAt(t *testing.T) {
	t.Parallel()

	path := write(t, t.TempDir(), "x.js", "let x = (1 + a);")
	out, err := run(t, "", "at", path, "13")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Program @0:16 let x = (1 + a);",
		"  VariableDeclaration @0:16 let x = (1 + a);",
		"    VariableDeclarator @4:15 x = (1 + a)",
		"      ParenthesizedExpression @8:15 (1 + a)",
		"        BinaryExpression @9:14 1 + a",
		"          Identifier @13:14 a",
		"",
	}, "\n"), out)

	_, err = run(t, "", "at", path, "16")
	require.ErrorContains(t, err, "no node covers offset 16")
	_, err = run(t, "", "at", path, "x")
	require.ErrorContains(t, err, "invalid offset")
}

func TestLayout(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "ParenthesizedExpression")
	assert.Contains(t, out, "Program")

	path := write(t, t.TempDir(), "s.yaml", "nodes: [{name: A, fields: [{name: on, type: Bool}]}, {name: B}]")
	out, err = run(t, "", "layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 kinds")
	assert.Contains(t, out, "1 inline")
	assert.NotContains(t, out, "KINDS")
	assert.Contains(t, out, "yes")
}

func TestGen(t *testing.T) {
	t.Setenv("GOPACKAGE", "")

	dir := t.TempDir()
	path := write(t, dir, "x.yaml", "nodes: [{name: A, fields: [{name: on, type: Bool}]}, {name: B}]")

	_, err := run(t, "", "gen", path)
	require.ErrorIs(t, err, errNoPackage)

	out := t.TempDir()
	_, err = run(t, "", "gen", "--package", "p", "--out-dir", out, path)
	require.NoError(t, err)
	for _, name := range []string{"x.go", "x_walk.go", "x_clone.go"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "package p\n", name)
	}

	_, err = run(t, "", "gen", "--package", "p", filepath.Join(dir, "x.json"))
	require.ErrorContains(t, err, "must end in .yaml")
}
