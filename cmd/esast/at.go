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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/esast/ast/spanindex"
	"github.com/bufbuild/esast/internal/ext/unicodex"
)

func atCmd(e *env) *cobra.Command {
	var module bool
	cmd := &cobra.Command{
		Use:   "at file offset",
		Short: "Print the nodes covering a byte offset",
		Long: `Print the nodes covering a byte offset, outermost first, along with
the source text each one spans.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.bind(cmd, keyWidth)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[1], err)
			}
			srcs, err := readSources(cmd.InOrStdin(), args[:1])
			if err != nil {
				return err
			}
			trees, err := e.parse(cmd.Context(), srcs, module)
			if err != nil {
				return err
			}

			t, text := trees[0], srcs[0].text
			idx := spanindex.New(t.AST, t.Root)
			path := idx.Path(uint32(offset))
			if len(path) == 0 {
				return fmt.Errorf("no node covers offset %d", offset)
			}

			width := e.cfg.GetInt(keyWidth)
			out := cmd.OutOrStdout()
			for depth, id := range path {
				span := t.AST.Span(id)
				snippet := unicodex.Escape(unicodex.Truncate(text[span.Start:span.End], width))
				fmt.Fprintf(out, "%s%v @%v %s\n", strings.Repeat("  ", depth), t.AST.Kind(id), span, snippet)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&module, "module", false, "parse the file as a module")
	cmd.Flags().Int(keyWidth, defaultWidth, "truncate source text to this many columns (0 for no limit)")
	return cmd
}
