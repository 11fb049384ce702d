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
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/ast/astutil"
	"github.com/bufbuild/esast/internal/schema"
)

// layout is the storage layout of one kind.
type layout struct {
	kind   string
	fields int
	inline bool
	slots  int
}

func (l layout) bytes() int {
	return astutil.NodeBytes + l.slots*astutil.SlotBytes
}

func layoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "layout [schema.yaml]",
		Short: "Print how each node kind is stored",
		Long: `Print how each node kind is stored: how many fields it has, whether its
only field is kept in the node record, and how many extra-data slots it uses.

Without an argument, prints the layout compiled into this binary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []layout
			if len(args) == 0 {
				rows = compiledLayout()
			} else {
				s, err := schema.Load(args[0])
				if err != nil {
					return err
				}
				rows = schemaLayout(s)
				e.log.Debug("loaded schema", "path", args[0], "kinds", len(rows))
			}
			renderLayout(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func compiledLayout() []layout {
	kinds := ast.Kinds()
	rows := make([]layout, 0, len(kinds))
	for _, k := range kinds {
		l := layout{kind: k.String(), fields: len(k.Fields()), inline: k.IsInline()}
		if !l.inline {
			l.slots = l.fields
		}
		rows = append(rows, l)
	}
	return rows
}

func schemaLayout(s *schema.Schema) []layout {
	rows := make([]layout, 0, len(s.Kinds()))
	for _, k := range s.Kinds() {
		rows = append(rows, layout{kind: k.Name, fields: len(k.Fields), inline: k.Inline, slots: k.Slots()})
	}
	return rows
}

func renderLayout(w io.Writer, rows []layout) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"Kind", "Fields", "Inline", "Slots", "Size"})

	var inline, slots int
	for _, l := range rows {
		mark := ""
		if l.inline {
			mark = "yes"
			inline++
		}
		slots += l.slots
		tbl.AppendRow(table.Row{l.kind, l.fields, mark, l.slots, humanize.IBytes(uint64(l.bytes()))})
	}
	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d kinds", len(rows)), "", fmt.Sprintf("%d inline", inline), slots, "",
	})

	fmt.Fprintln(w, tbl.Render())
}
