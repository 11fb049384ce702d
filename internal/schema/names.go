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

package schema

import (
	"fmt"
	"go/token"
	"strings"
)

// camel converts a snake_case name to CamelCase.
func camel(name string) string {
	var out strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		out.WriteString(strings.ToUpper(part[:1]))
		out.WriteString(part[1:])
	}
	return out.String()
}

// lowerCamel converts a CamelCase or snake_case name to camelCase.
func lowerCamel(name string) string {
	name = camel(name)
	return strings.ToLower(name[:1]) + name[1:]
}

// article returns the indefinite article for a name.
func article(name string) string {
	if strings.ContainsAny(name[:1], "AEIOU") {
		return "an"
	}
	return "a"
}

// GoName returns the name of f's getter.
func (f *Field) GoName() string {
	return camel(f.Name)
}

// Param returns the name of f's builder parameter.
func (f *Field) Param() string {
	p := lowerCamel(f.Name)
	if token.IsKeyword(p) {
		p += "_"
	}
	return p
}

// Helper returns the name of f's convenience text getter, if it has one.
func (f *Field) Helper() string {
	switch f.Class {
	case ClassStr:
		return f.GoName() + "Text"
	case ClassWtf8:
		return f.GoName() + "UTF8"
	case ClassBigInt:
		return f.GoName() + "Int"
	default:
		return ""
	}
}

// IsChild returns whether f holds a single child node.
func (f *Field) IsChild() bool {
	return f.Class == ClassNode && !f.List
}

// GoType returns the Go type of f's value.
func (f *Field) GoType() string {
	switch f.Class {
	case ClassNode:
		if f.List {
			return "SubRange[" + f.Type + "]"
		}
		return f.Type
	case ClassStr, ClassWtf8:
		if f.Optional {
			return "text.OptionalRef"
		}
		return "text.Ref"
	case ClassNumber:
		return "float64"
	case ClassBool:
		return "bool"
	case ClassBigInt:
		return "BigIntID"
	default:
		return f.Type
	}
}

// FieldType returns the name of the ast.FieldType constant for f.
func (f *Field) FieldType() string {
	return [...]string{
		ClassNode:   "FieldNode",
		ClassStr:    "FieldStr",
		ClassWtf8:   "FieldWtf8",
		ClassNumber: "FieldNumber",
		ClassBool:   "FieldBool",
		ClassEnum:   "FieldEnum",
		ClassBigInt: "FieldBigInt",
	}[f.Class]
}

// Tag returns the name of the slot tag constant for f.
func (f *Field) Tag() string {
	switch f.Class {
	case ClassNode:
		if f.List {
			return "tagRange"
		}
		return "tagNode"
	case ClassStr:
		if f.Optional {
			return "tagOptStr"
		}
		return "tagStr"
	case ClassWtf8:
		if f.Optional {
			return "tagOptWtf8"
		}
		return "tagWtf8"
	case ClassNumber:
		return "tagNumber"
	case ClassBool:
		return "tagBool"
	case ClassBigInt:
		return "tagBigInt"
	default:
		return "tagEnum"
	}
}

// Decode returns an expression converting the Slot expression s into f's
// type.
func (f *Field) Decode(s string) string {
	switch f.Class {
	case ClassNode:
		if f.List {
			return fmt.Sprintf("rangeOf[%s](%s)", f.Type, s)
		}
		return fmt.Sprintf("%s{%s.node()}", f.Type, s)
	case ClassStr, ClassWtf8:
		if f.Optional {
			return s + ".optRef()"
		}
		return s + ".ref()"
	case ClassNumber:
		return s + ".number()"
	case ClassBool:
		return s + ".bool()"
	case ClassBigInt:
		return s + ".bigInt()"
	default:
		return fmt.Sprintf("enumValue[%s](%s)", f.Type, s)
	}
}

// Encode returns an expression converting v, of f's type, into a Slot.
func (f *Field) Encode(v string) string {
	switch f.Class {
	case ClassNode:
		if f.List {
			return v + ".slot()"
		}
		return "nodeSlot(" + v + ".id)"
	case ClassStr, ClassWtf8:
		if f.Optional {
			return "optRefSlot(" + v + ")"
		}
		return "refSlot(" + v + ")"
	case ClassNumber:
		return "numberSlot(" + v + ")"
	case ClassBool:
		return "boolSlot(" + v + ")"
	case ClassBigInt:
		return "bigIntSlot(" + v + ")"
	default:
		return "enumSlot(" + v + ")"
	}
}

// InlineDecode returns an expression converting the uint32 payload
// expression p into f's type. Only valid for inline fields.
func (f *Field) InlineDecode(p string) string {
	switch f.Class {
	case ClassNode:
		return fmt.Sprintf("%s{NodeID(%s)}", f.Type, p)
	case ClassBool:
		return p + " != 0"
	default:
		return fmt.Sprintf("%s(%s)", f.Type, p)
	}
}

// InlineEncode returns an expression converting v into a uint32 payload.
// Only valid for inline fields.
func (f *Field) InlineEncode(v string) string {
	switch f.Class {
	case ClassNode:
		return "uint32(" + v + ".id)"
	case ClassBool:
		return "uint32(boolSlot(" + v + "))"
	default:
		return "uint32(" + v + ")"
	}
}

// Clone returns an expression producing a copy of f's value for a cloner c
// copying the node n.
func (f *Field) Clone() string {
	get := fmt.Sprintf("n.%s(c.src)", f.GoName())
	switch f.Class {
	case ClassNode:
		if f.List {
			return "cloneRange(c, " + get + ")"
		}
		return fmt.Sprintf("%s{c.node(%s.id)}", f.Type, get)
	case ClassStr:
		if f.Optional {
			return "c.optStr(" + get + ")"
		}
		return "c.str(" + get + ")"
	case ClassWtf8:
		if f.Optional {
			return "c.optWtf8(" + get + ")"
		}
		return "c.wtf8(" + get + ")"
	case ClassBigInt:
		return "c.bigInt(" + get + ")"
	default:
		return get
	}
}

// Article returns the indefinite article for this kind's name.
func (k *Kind) Article() string {
	return article(k.Name)
}

// Article returns the indefinite article for this choice's name.
func (c *Choice) Article() string {
	return article(c.Name)
}

// Set returns the name of the kind set variable for this choice.
func (c *Choice) Set() string {
	return lowerCamel(c.Name) + "Kinds"
}

// Names returns the name of the Go name table for this enum.
func (e *Enum) Names() string {
	return lowerCamel(e.Name) + "Names"
}

// Strings returns the name of the string table for this enum.
func (e *Enum) Strings() string {
	return lowerCamel(e.Name) + "Strings"
}

// EnumStrings returns the expression for f's enum string table, or nil.
func (f *Field) EnumStrings(s *Schema) string {
	if e, ok := s.names[f.Type].(*Enum); ok {
		return e.Strings() + "[:]"
	}
	return "nil"
}
