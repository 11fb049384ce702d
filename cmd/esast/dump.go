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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/ast/astutil"
	"github.com/bufbuild/esast/internal/batch"
	"github.com/bufbuild/esast/internal/minijs"
)

// source is one input file.
type source struct {
	path, text string
}

// String implements [fmt.Stringer]. Build errors name the unit that failed,
// so this is what shows up in them.
func (s source) String() string {
	return s.path
}

func dumpCmd(e *env) *cobra.Command {
	var strip, stats, module bool
	cmd := &cobra.Command{
		Use:   "dump [files...]",
		Short: "Parse files and print their syntax trees",
		Long: `Parse files and print their syntax trees, one node per line.

Files are parsed in parallel. A file named - is read from stdin. Files ending
in .mjs are parsed as modules.

The defaults for --workers and --width may be set with ESAST_WORKERS and
ESAST_WIDTH.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.bind(cmd, keyWorkers, keyWidth)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := readSources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			trees, err := e.parse(cmd.Context(), srcs, module)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, t := range trees {
				root := t.Root
				if strip {
					before := t.AST.Len()
					root = astutil.StripParens(t.AST, root)
					e.log.Debug("stripped parentheses", "file", t.Unit.path, "removed", before-t.AST.Len())
				}
				if len(trees) > 1 {
					fmt.Fprintf(w, "# %s\n", t.Unit.path)
				}
				if err := astutil.Dump(w, t.AST, root, astutil.DumpOptions{Width: e.cfg.GetInt(keyWidth)}); err != nil {
					return err
				}
				if stats {
					fmt.Fprint(w, astutil.Collect(t.AST, root))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&strip, "strip-parens", false, "remove parenthesized expressions before printing")
	cmd.Flags().BoolVar(&stats, "stats", false, "print storage statistics after each tree")
	cmd.Flags().BoolVar(&module, "module", false, "parse every file as a module")
	cmd.Flags().IntP(keyWorkers, "w", 0, "number of files parsed at once (default: number of CPUs)")
	cmd.Flags().Int(keyWidth, defaultWidth, "truncate string values to this many columns (0 for no limit)")
	return cmd
}

// readSources reads the named files, with - standing for stdin.
func readSources(stdin io.Reader, paths []string) ([]source, error) {
	srcs := make([]source, 0, len(paths))
	for _, path := range paths {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		srcs = append(srcs, source{path: path, text: string(data)})
	}
	return srcs, nil
}

// parse parses each source into its own AST.
func (e *env) parse(ctx context.Context, srcs []source, module bool) ([]batch.Result[source], error) {
	workers := batch.Workers(e.cfg.GetInt(keyWorkers))
	e.log.Debug("parsing", "files", len(srcs), "workers", workers)

	return batch.Build(ctx, srcs, batch.Options{Workers: workers},
		func(_ context.Context, a *ast.AST, src source) (ast.NodeID, error) {
			opts := minijs.Options{Module: module || strings.HasSuffix(src.path, ".mjs")}
			prog, err := minijs.Parse(a, src.text, opts)
			if err != nil {
				return 0, err
			}
			e.log.Debug("parsed", "file", src.path, "nodes", a.Len(), "slots", a.ExtraLen())
			return prog.ID(), nil
		})
}
