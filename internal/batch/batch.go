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

// Package batch builds many syntax trees in parallel.
//
// An [ast.AST] must only be used by one goroutine at a time, so parallelism
// comes from giving each unit of work its own AST.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/esast/ast"
)

// Func builds the tree for one unit into a fresh AST and returns its root.
type Func[U any] func(ctx context.Context, a *ast.AST, unit U) (ast.NodeID, error)

// Result is a tree built by [Build].
type Result[U any] struct {
	Unit U
	AST  *ast.AST
	Root ast.NodeID
}

// Options configures [Build].
type Options struct {
	// The maximum number of units built at once. If not positive, defaults
	// to the number of usable CPUs.
	Workers int

	// Passed to [ast.New] for every unit.
	AST ast.Options
}

// Build calls fn once for each unit, each time with its own AST, running up
// to opts.Workers calls concurrently.
//
// Results are in the same order as units. If any call fails, the context
// passed to the remaining calls is canceled and Build returns the first
// error, wrapped with the unit that caused it.
func Build[U any](ctx context.Context, units []U, opts Options, fn Func[U]) ([]Result[U], error) {
	if len(units) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(opts.Workers))

	results := make([]Result[U], len(units))
	for i, unit := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			a := ast.New(opts.AST)
			defer a.Release()
			root, err := fn(ctx, a, unit)
			if err != nil {
				return fmt.Errorf("%v: %w", unit, err)
			}
			results[i] = Result[U]{Unit: unit, AST: a, Root: root}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Workers returns the number of workers [Build] uses for the given setting.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	n = runtime.GOMAXPROCS(-1)
	if cpus := runtime.NumCPU(); n > cpus {
		n = cpus
	}
	return n
}
