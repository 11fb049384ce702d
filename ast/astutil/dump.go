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

package astutil

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/internal/ext/unicodex"
)

// DumpOptions configures [Dump].
type DumpOptions struct {
	// Text values wider than this many terminal columns are truncated.
	// Zero means no limit.
	Width int

	// Indent is repeated once per level of nesting. Defaults to two spaces.
	Indent string
}

// Dump writes a human-readable rendering of the tree rooted at root to w,
// one node per line:
//
//	VariableDeclarator @4:15
//	  target: Identifier @4:5 name="x"
//	  init: NumericLiteral @8:9 value=1 raw="1"
//
// Scalar fields follow the node's kind and span. Child fields are printed
// beneath it, with list elements labeled by index.
func Dump(w io.Writer, a *ast.AST, root ast.NodeID, opts DumpOptions) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	d := dumper{a: a, opts: opts}
	if root == 0 {
		d.buf.WriteString("none\n")
	} else {
		d.node(0, "", root)
	}
	_, err := w.Write(d.buf.Bytes())
	return err
}

type dumper struct {
	a    *ast.AST
	opts DumpOptions
	buf  bytes.Buffer
}

func (d *dumper) node(depth int, label string, id ast.NodeID) {
	d.indent(depth)
	if label != "" {
		d.buf.WriteString(label)
		d.buf.WriteString(": ")
	}
	if id == 0 {
		d.buf.WriteString("none\n")
		return
	}

	kind := d.a.Kind(id)
	fmt.Fprintf(&d.buf, "%v @%v", kind, d.a.Span(id))
	fields := kind.Fields()
	for i := range fields {
		if fields[i].Type == ast.FieldNode {
			continue
		}
		fmt.Fprintf(&d.buf, " %s=%s", fields[i].Name, d.scalar(d.a.Field(id, i)))
	}
	d.buf.WriteByte('\n')

	for i := range fields {
		f := &fields[i]
		if f.Type != ast.FieldNode {
			continue
		}
		v := d.a.Field(id, i)
		if !f.List {
			d.node(depth+1, f.Name, v.Node())
			continue
		}
		r := v.Range()
		if r.IsEmpty() {
			d.indent(depth + 1)
			fmt.Fprintf(&d.buf, "%s: []\n", f.Name)
			continue
		}
		for j, child := range r.All(d.a) {
			d.node(depth+1, f.Name+"["+strconv.Itoa(j)+"]", ast.ID(child))
		}
	}
}

func (d *dumper) scalar(v ast.Value) string {
	switch v.Info().Type {
	case ast.FieldStr, ast.FieldWtf8:
		s, ok := v.Text(d.a)
		if !ok {
			return "none"
		}
		return strconv.Quote(unicodex.Truncate(s, d.opts.Width))
	default:
		return v.Format(d.a)
	}
}

func (d *dumper) indent(depth int) {
	for range depth {
		d.buf.WriteString(d.opts.Indent)
	}
}
