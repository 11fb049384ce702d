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
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/dustin/go-humanize"

	"github.com/bufbuild/esast/ast"
)

// Approximate sizes of a node record and an extra-data slot, in bytes.
const (
	NodeBytes = 16
	SlotBytes = 8
)

// Stats describes how an AST's storage is being used.
type Stats struct {
	Nodes     int // Node records ever allocated.
	Live      int // Records holding a node.
	Freed     int // Records on the free list.
	Reachable int // Live nodes reachable from the roots passed to [Collect].

	Slots    int // Extra-data slots ever allocated.
	Used     int // Slots belonging to a live node, or to one of its lists.
	Orphaned int // Slots left behind by freed nodes and replaced lists.

	Idents, IdentBytes     int
	Literals, LiteralBytes int
}

// Collect computes storage statistics for a. Reachable counts the distinct
// nodes in the trees rooted at roots, and is zero if no roots are given.
//
// Extra-data slots are never reclaimed, so Orphaned only grows as nodes are
// freed or their lists replaced, until the AST is reset.
func Collect(a *ast.AST, roots ...ast.NodeID) Stats {
	s := Stats{
		Nodes:        a.Cap(),
		Live:         a.Len(),
		Freed:        a.Cap() - a.Len(),
		Slots:        a.ExtraLen(),
		Idents:       a.Idents().Len(),
		IdentBytes:   a.Idents().Size(),
		Literals:     a.Literals().Len(),
		LiteralBytes: a.Literals().Size(),
	}

	used := roaring.New()
	for id, kind := range a.All() {
		if off, n := a.ExtraOffset(id); n > 0 {
			used.AddRange(uint64(off), uint64(off)+uint64(n))
		}
		fields := kind.Fields()
		for i := range fields {
			if !fields[i].List {
				continue
			}
			if start, end := a.Field(id, i).Range().Bounds(); start < end {
				used.AddRange(uint64(start), uint64(end))
			}
		}
	}
	s.Used = int(used.GetCardinality())
	s.Orphaned = s.Slots - s.Used

	reached := roaring.New()
	for _, root := range roots {
		ast.Inspect(a, root, func(id ast.NodeID) bool {
			return reached.CheckedAdd(uint32(id))
		})
	}
	s.Reachable = int(reached.GetCardinality())
	return s
}

// Bytes returns the approximate memory used by the AST's storage.
func (s Stats) Bytes() int {
	return s.Nodes*NodeBytes + s.Slots*SlotBytes + s.IdentBytes + s.LiteralBytes
}

// String implements [fmt.Stringer].
func (s Stats) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "nodes: %s (%s live, %s freed, %s reachable)\n",
		humanize.Comma(int64(s.Nodes)), humanize.Comma(int64(s.Live)),
		humanize.Comma(int64(s.Freed)), humanize.Comma(int64(s.Reachable)))
	fmt.Fprintf(&out, "slots: %s (%s used, %s orphaned)\n",
		humanize.Comma(int64(s.Slots)), humanize.Comma(int64(s.Used)), humanize.Comma(int64(s.Orphaned)))
	fmt.Fprintf(&out, "idents: %s (%s)\n", humanize.Comma(int64(s.Idents)), humanize.IBytes(uint64(s.IdentBytes)))
	fmt.Fprintf(&out, "literals: %s (%s)\n", humanize.Comma(int64(s.Literals)), humanize.IBytes(uint64(s.LiteralBytes)))
	fmt.Fprintf(&out, "total: %s\n", humanize.IBytes(uint64(s.Bytes())))
	return out.String()
}
