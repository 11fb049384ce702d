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

package batch_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/internal/batch"
	"github.com/bufbuild/esast/internal/minijs"
)

func parse(_ context.Context, a *ast.AST, src string) (ast.NodeID, error) {
	prog, err := minijs.Parse(a, src, minijs.Options{})
	return prog.ID(), err
}

func TestBuild(t *testing.T) {
	t.Parallel()

	var units []string
	for i := range 64 {
		units = append(units, fmt.Sprintf("let v%d = %d + f(%q);", i, i, "s"))
	}

	results, err := batch.Build(context.Background(), units, batch.Options{Workers: 4}, parse)
	require.NoError(t, err)
	require.Len(t, results, len(units))

	for i, r := range results {
		assert.Equal(t, units[i], r.Unit)
		prog := ast.ProgramFromID(r.AST, r.Root)
		first := ast.ID(prog.Body(r.AST).At(r.AST, 0))
		require.Equal(t, ast.KindVariableDeclaration, r.AST.Kind(first))
		decl := ast.VariableDeclarationFromID(r.AST, first)
		name := decl.Declarations(r.AST).At(r.AST, 0).Target(r.AST).AsIdentifier(r.AST).NameText(r.AST)
		assert.Equal(t, fmt.Sprintf("v%d", i), name)
	}
}

func TestBuildLimit(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	units := make([]int, 32)
	_, err := batch.Build(context.Background(), units, batch.Options{Workers: 3},
		func(_ context.Context, a *ast.AST, _ int) (ast.NodeID, error) {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			return ast.NewIdentifier(a, ast.Span{}, a.Idents().Intern("x")).ID(), nil
		})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestBuildError(t *testing.T) {
	t.Parallel()

	units := []string{"a;", "b +;", "c;"}
	_, err := batch.Build(context.Background(), units, batch.Options{Workers: 1}, parse)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b +;")

	var perr *minijs.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Offset)
}

func TestBuildCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.Build(ctx, []string{"a;"}, batch.Options{}, parse)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	results, err := batch.Build(context.Background(), nil, batch.Options{}, parse)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestWorkers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, batch.Workers(7))
	assert.Positive(t, batch.Workers(0))
	assert.Positive(t, batch.Workers(-1))
}
