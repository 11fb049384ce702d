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
	"math/big"
	"strconv"

	"github.com/bufbuild/esast/text"
)

// FieldType is the storage class of a field.
type FieldType uint8

const (
	FieldNode FieldType = iota + 1
	FieldStr
	FieldWtf8
	FieldNumber
	FieldBool
	FieldEnum
	FieldBigInt
)

// FieldInfo describes one field of a node kind.
type FieldInfo struct {
	Name     string    // The field's name, as written in the schema.
	Type     FieldType // How the field is stored.
	TypeName string    // The kind, choice or enum name, or the scalar type.
	Optional bool
	List     bool

	enumStrings []string
}

// kindInfo is the generated description of a kind.
type kindInfo struct {
	name   string
	inline bool
	fields []FieldInfo
}

// Fields returns the fields of nodes of this kind, in declaration order.
//
// The returned slice must not be modified.
func (k Kind) Fields() []FieldInfo {
	if int(k) >= kindCount {
		return nil
	}
	return kindInfos[k].fields
}

// IsInline returns whether nodes of this kind store their only field in the
// node record rather than the extra-data store.
func (k Kind) IsInline() bool {
	return int(k) < kindCount && kindInfos[k].inline
}

// Kinds returns every kind except [KindFreed].
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindFreed + 1; int(k) < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (f *FieldInfo) tag() slotTag {
	switch f.Type {
	case FieldNode:
		if f.List {
			return tagRange
		}
		return tagNode
	case FieldStr:
		if f.Optional {
			return tagOptStr
		}
		return tagStr
	case FieldWtf8:
		if f.Optional {
			return tagOptWtf8
		}
		return tagWtf8
	case FieldNumber:
		return tagNumber
	case FieldBool:
		return tagBool
	case FieldEnum:
		return tagEnum
	case FieldBigInt:
		return tagBigInt
	default:
		return tagNone
	}
}

// Value is the value of one field of a node, as returned by [AST.Field].
//
// Value is meant for code that handles every kind uniformly, such as
// printers. Code that knows the kind it is dealing with should use the
// kind's typed getters instead.
type Value struct {
	info *FieldInfo
	slot Slot
}

// Field returns the value of the ith field of the node id. Panics if i is out
// of range.
func (a *AST) Field(id NodeID, i int) Value {
	k := a.Kind(id)
	fields := k.Fields()
	if i < 0 || i >= len(fields) {
		panic(fmt.Sprintf("esast/ast: field index %d out of range for %v", i, k))
	}

	info := &fields[i]
	if k.IsInline() {
		return Value{info, Slot(a.node(id).payload)}
	}
	return Value{info, a.field(id, i, info.tag())}
}

// ExtraOffset returns the offset of the first extra-data slot used by the
// node id, and how many slots it uses. Returns zero if the node keeps its
// fields in its record.
func (a *AST) ExtraOffset(id NodeID) (ExtraID, int) {
	k := a.Kind(id)
	if k.IsInline() || len(k.Fields()) == 0 {
		return 0, 0
	}
	return ExtraID(a.node(id).payload), len(k.Fields())
}

// Info returns the description of the field this value was read from.
func (v Value) Info() *FieldInfo {
	return v.info
}

// Node returns the child in a non-list node field, or zero if it is absent.
func (v Value) Node() NodeID {
	v.want(FieldNode)
	return v.slot.node()
}

// Range returns the children in a list field.
func (v Value) Range() SubRange[AnyNode] {
	v.want(FieldNode)
	return rangeOf[AnyNode](v.slot)
}

// Ref returns the text ref in a string field. For non-optional fields, the
// result is always present.
func (v Value) Ref() text.OptionalRef {
	if v.info.Type != FieldWtf8 {
		v.want(FieldStr)
	}
	if v.info.Optional {
		return v.slot.optRef()
	}
	return text.Some(v.slot.ref())
}

// Text returns the text in a string field as UTF-8, or false if it is absent.
func (v Value) Text(a *AST) (string, bool) {
	if v.info.Type == FieldWtf8 {
		return a.literals.GetUTF8Optional(v.Ref())
	}
	return a.idents.GetOptional(v.Ref())
}

// Number returns the value of a number field.
func (v Value) Number() float64 {
	v.want(FieldNumber)
	return v.slot.number()
}

// Bool returns the value of a bool field.
func (v Value) Bool() bool {
	v.want(FieldBool)
	return v.slot.bool()
}

// Enum returns the value of an enum field, and its string form.
func (v Value) Enum() (uint8, string) {
	v.want(FieldEnum)
	e := enumValue[uint8](v.slot)
	if int(e) < len(v.info.enumStrings) {
		return e, v.info.enumStrings[e]
	}
	return e, strconv.Itoa(int(e))
}

// BigInt returns the value of a big integer field.
func (v Value) BigInt(a *AST) *big.Int {
	v.want(FieldBigInt)
	return a.BigInt(v.slot.bigInt())
}

// Format renders a non-node value as text.
func (v Value) Format(a *AST) string {
	switch v.info.Type {
	case FieldStr, FieldWtf8:
		s, ok := v.Text(a)
		if !ok {
			return "none"
		}
		return strconv.Quote(s)
	case FieldNumber:
		return strconv.FormatFloat(v.Number(), 'g', -1, 64)
	case FieldBool:
		return strconv.FormatBool(v.Bool())
	case FieldEnum:
		_, s := v.Enum()
		return s
	case FieldBigInt:
		return v.BigInt(a).String() + "n"
	case FieldNode:
		if v.info.List {
			return v.Range().String()
		}
		return v.Node().String()
	default:
		return "?"
	}
}

func (v Value) want(t FieldType) {
	if v.info.Type != t {
		panic(fmt.Sprintf("esast/ast: field %s is not of type %d", v.info.Name, t))
	}
}

// enumByName builds the reverse of an enum's string table.
func enumByName[E ~uint8](strings []string) map[string]E {
	m := make(map[string]E, len(strings))
	for i, s := range strings {
		m[s] = E(i)
	}
	return m
}
