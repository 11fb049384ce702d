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

package ast

import (
	"fmt"
	"math"
	"math/big"

	"github.com/bufbuild/esast/internal/arena"
	"github.com/bufbuild/esast/internal/debug"
	"github.com/bufbuild/esast/text"
)

// Slot is one 8-byte cell of the extra-data store.
//
// A slot holds exactly one encoded field value: a child NodeID, a text ref,
// a float64, a bool, an enum value, a [BigIntID], or the bounds of a
// [SubRange]. Which one is determined by the field the slot belongs to; slots
// carry no tag of their own, except in checked builds.
type Slot uint64

// ExtraID is a 1-based offset into the extra-data store.
type ExtraID uint32

// slotTag is the discriminant recorded for each slot in checked builds.
type slotTag uint8

const (
	tagNone slotTag = iota
	tagNode
	tagStr
	tagOptStr
	tagWtf8
	tagOptWtf8
	tagNumber
	tagBool
	tagEnum
	tagBigInt
	tagRange
)

var tagNames = [...]string{
	tagNone:    "none",
	tagNode:    "node",
	tagStr:     "str",
	tagOptStr:  "?str",
	tagWtf8:    "wtf8",
	tagOptWtf8: "?wtf8",
	tagNumber:  "number",
	tagBool:    "bool",
	tagEnum:    "enum",
	tagBigInt:  "bigint",
	tagRange:   "range",
}

// String implements [fmt.Stringer].
func (t slotTag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("slotTag(%d)", uint8(t))
}

func nodeSlot(id NodeID) Slot { return Slot(id) }
func refSlot(r text.Ref) Slot { return Slot(r.Bits()) }
func optRefSlot(r text.OptionalRef) Slot { return Slot(r.Bits()) }
func numberSlot(v float64) Slot { return Slot(math.Float64bits(v)) }
func bigIntSlot(id BigIntID) Slot { return Slot(id) }
func rangeSlot(start, end ExtraID) Slot { return Slot(start) | Slot(end)<<32 }
func enumSlot[E ~uint8](v E) Slot { return Slot(v) }
func enumValue[E ~uint8](s Slot) E { return E(s) }
func (s Slot) node() NodeID { return NodeID(s) }
func (s Slot) ref() text.Ref { return text.RefFromBits(uint64(s)) }
func (s Slot) optRef() text.OptionalRef { return text.OptionalRefFromBits(uint64(s)) }
func (s Slot) number() float64 { return math.Float64frombits(uint64(s)) }
func (s Slot) bool() bool { return s != 0 }
func (s Slot) bigInt() BigIntID { return BigIntID(s) }
func (s Slot) bounds() (start, end ExtraID) { return ExtraID(s), ExtraID(s >> 32) }

func boolSlot(v bool) Slot {
	if v {
		return 1
	}
	return 0
}

// ExtraLen returns the number of slots in the extra-data store, including
// slots no longer reachable from any live node.
func (a *AST) ExtraLen() int {
	return a.extra.Len()
}

// reserve appends n zeroed slots to the extra-data store and returns the
// offset of the first.
func (a *AST) reserve(n int) ExtraID {
	var first ExtraID
	for i := range n {
		p := a.extra.New(0)
		if debug.Enabled {
			a.tags.New(tagNone)
		}
		if i == 0 {
			first = ExtraID(p)
		}
	}
	return first
}

// initField writes field i of a node whose fields start at off.
func (a *AST) initField(off ExtraID, i int, tag slotTag, s Slot) {
	p := arena.Untyped(off) + arena.Untyped(i)
	*a.extra.At(p) = s
	if debug.Enabled {
		*a.tags.At(p) = tag
	}
}

// field reads out-of-line field i of the node id.
func (a *AST) field(id NodeID, i int, tag slotTag) Slot {
	p := arena.Untyped(a.node(id).payload) + arena.Untyped(i)
	if debug.Enabled {
		a.checkTag(p, tag)
	}
	return *a.extra.At(p)
}

// setField overwrites out-of-line field i of the node id.
func (a *AST) setField(id NodeID, i int, tag slotTag, s Slot) {
	p := arena.Untyped(a.node(id).payload) + arena.Untyped(i)
	if debug.Enabled {
		a.checkTag(p, tag)
	}
	*a.extra.At(p) = s
}

// slot returns the slot at the given offset.
func (a *AST) slot(off ExtraID, tag slotTag) Slot {
	if debug.Enabled {
		a.checkTag(arena.Untyped(off), tag)
	}
	return *a.extra.At(arena.Untyped(off))
}

// setSlot overwrites the slot at the given offset.
func (a *AST) setSlot(off ExtraID, tag slotTag, s Slot) {
	if debug.Enabled {
		a.checkTag(arena.Untyped(off), tag)
	}
	*a.extra.At(arena.Untyped(off)) = s
}

func (a *AST) checkTag(p arena.Untyped, want slotTag) {
	if got := *a.tags.At(p); got != want {
		panic(fmt.Sprintf("esast/ast: slot %d holds a %v, not a %v", uint32(p), got, want))
	}
}

// BigIntID is a 1-based index into an AST's table of big integers.
//
// Arbitrary-precision values are rare and variable-size, so they are kept
// out of the extra-data store.
type BigIntID uint32

// NewBigInt adds v to the big integer table. v must not be mutated afterwards.
func (a *AST) NewBigInt(v *big.Int) BigIntID {
	a.bigints = append(a.bigints, v)
	return BigIntID(len(a.bigints))
}

// BigInt returns the value of a big integer.
func (a *AST) BigInt(id BigIntID) *big.Int {
	if id == 0 || int(id) > len(a.bigints) {
		panic(fmt.Sprintf("esast/ast: big integer ID out of range: %d", uint32(id)))
	}
	return a.bigints[id-1]
}
