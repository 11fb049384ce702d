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

// Package schema loads and validates the node schema that package ast is
// generated from, and renders the generated code.
//
// A schema has three sections. Enums are small named sets of values stored in
// one slot or inline. Choices are tagged unions over kinds and other choices.
// Nodes are the kinds themselves, each with an ordered list of fields.
//
// A field's type is a kind or choice name (a child node), an enum name, or
// one of the scalar types:
//
//	Str     interned text, from the AST's text.Interner
//	Wtf8    literal text, from the AST's text.Buffer
//	Number  a float64
//	Bool    a bool
//	BigInt  an arbitrary-precision integer, kept in a side table
//
// Child and text fields may be optional. Child fields may be lists.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Schema is a parsed and resolved schema file.
type Schema struct {
	Enums   []*Enum   `yaml:"enums"`
	Choices []*Choice `yaml:"choices"`
	Nodes   []*Kind   `yaml:"nodes"`

	names map[string]any // Enum, choice and kind names to their definitions.
}

// Enum is an enum type.
type Enum struct {
	Name   string   `yaml:"name"`
	Docs   string   `yaml:"docs"`
	Values []*Value `yaml:"values"`
}

// Value is one value of an [Enum].
type Value struct {
	Name    string `yaml:"name"`
	String_ string `yaml:"string"` //nolint:revive // Disambiguates from the String method.
	Docs    string `yaml:"docs"`

	Parent *Enum `yaml:"-"`
	Index  int   `yaml:"-"`
}

// Choice is a tagged union of kinds.
type Choice struct {
	Name     string   `yaml:"name"`
	Docs     string   `yaml:"docs"`
	Variants []string `yaml:"variants"`

	DirectKinds   []*Kind   `yaml:"-"` // Kinds listed in Variants.
	DirectChoices []*Choice `yaml:"-"` // Choices listed in Variants.
	Kinds         []*Kind   `yaml:"-"` // Every kind admitted, in schema order.
	Supers        []*Choice `yaml:"-"` // Every choice that admits this one, in schema order.
}

// Kind is a node kind.
type Kind struct {
	Name   string   `yaml:"name"`
	Docs   string   `yaml:"docs"`
	Fields []*Field `yaml:"fields"`

	Value   int       `yaml:"-"` // The value of the Kind constant. Zero is reserved.
	Inline  bool      `yaml:"-"` // Whether the only field lives in the node record.
	Choices []*Choice `yaml:"-"` // Every choice that admits this kind, in schema order.
}

// Field is a field of a [Kind].
type Field struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	List     bool   `yaml:"list"`
	Docs     string `yaml:"docs"`

	Parent *Kind `yaml:"-"`
	Index  int   `yaml:"-"`
	Class  Class `yaml:"-"`
}

// Class is the storage class of a field, determined by its type.
type Class int

const (
	ClassNode Class = iota + 1
	ClassStr
	ClassWtf8
	ClassNumber
	ClassBool
	ClassEnum
	ClassBigInt
)

var scalars = map[string]Class{
	"Str":    ClassStr,
	"Wtf8":   ClassWtf8,
	"Number": ClassNumber,
	"Bool":   ClassBool,
	"BigInt": ClassBigInt,
}

// Limits imposed by the storage layout.
const (
	MaxKinds      = 255
	MaxEnumValues = 256
)

// Names of methods every handle has, which fields may not collide with.
var reserved = []string{
	"ID", "IsZero", "Kind", "Span", "SetSpan",
	"CloneIn", "VisitChildrenWith", "RewriteChildrenWith", "Prologue",
}

// ErrInvalid wraps every validation failure returned by [Parse].
var ErrInvalid = errors.New("invalid schema")

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses and resolves a schema.
func Parse(data []byte) (*Schema, error) {
	s := new(Schema)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// resolve validates s and fills in every computed field.
func (s *Schema) resolve() error {
	if len(s.Nodes) > MaxKinds {
		return invalid("too many kinds: %d > %d", len(s.Nodes), MaxKinds)
	}

	s.names = make(map[string]any)
	define := func(name string, def any) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return invalid("%q is not an exported Go identifier", name)
		}
		if _, ok := scalars[name]; ok {
			return invalid("%q is a builtin type", name)
		}
		if _, ok := s.names[name]; ok {
			return invalid("%q is defined more than once", name)
		}
		s.names[name] = def
		return nil
	}

	for _, e := range s.Enums {
		if err := define(e.Name, e); err != nil {
			return err
		}
		if len(e.Values) == 0 || len(e.Values) > MaxEnumValues {
			return invalid("enum %s must have between 1 and %d values", e.Name, MaxEnumValues)
		}
		seen := make(map[string]bool)
		for i, v := range e.Values {
			v.Parent, v.Index = e, i
			if seen[v.String()] {
				return invalid("enum %s has duplicate value %q", e.Name, v.String())
			}
			seen[v.String()] = true
		}
	}
	for _, c := range s.Choices {
		if err := define(c.Name, c); err != nil {
			return err
		}
	}
	for i, k := range s.Nodes {
		if err := define(k.Name, k); err != nil {
			return err
		}
		k.Value = i + 1
	}

	for _, c := range s.Choices {
		if len(c.Variants) == 0 {
			return invalid("choice %s has no variants", c.Name)
		}
		for _, v := range c.Variants {
			switch def := s.names[v].(type) {
			case *Kind:
				c.DirectKinds = append(c.DirectKinds, def)
			case *Choice:
				c.DirectChoices = append(c.DirectChoices, def)
			default:
				return invalid("choice %s: %q is not a kind or choice", c.Name, v)
			}
		}
	}

	for _, c := range s.Choices {
		kinds := make(map[*Kind]bool)
		if err := c.collect(kinds, nil); err != nil {
			return err
		}
		for _, k := range s.Nodes {
			if kinds[k] {
				c.Kinds = append(c.Kinds, k)
				k.Choices = append(k.Choices, c)
			}
		}
	}
	for _, c := range s.Choices {
		for _, super := range s.Choices {
			if super != c && super.contains(c) {
				c.Supers = append(c.Supers, super)
			}
		}
	}

	for _, k := range s.Nodes {
		if err := s.resolveKind(k); err != nil {
			return err
		}
	}
	return nil
}

// collect adds every kind c admits to kinds, failing on cycles.
func (c *Choice) collect(kinds map[*Kind]bool, path []*Choice) error {
	if slices.Contains(path, c) {
		return invalid("choice %s contains itself", c.Name)
	}
	path = append(path, c)
	for _, k := range c.DirectKinds {
		kinds[k] = true
	}
	for _, sub := range c.DirectChoices {
		if err := sub.collect(kinds, path); err != nil {
			return err
		}
	}
	return nil
}

// contains returns whether other is transitively one of c's variants.
func (c *Choice) contains(other *Choice) bool {
	for _, sub := range c.DirectChoices {
		if sub == other || sub.contains(other) {
			return true
		}
	}
	return false
}

func (s *Schema) resolveKind(k *Kind) error {
	methods := make(map[string]string)
	for _, r := range reserved {
		methods[r] = "a builtin method"
	}

	for i, f := range k.Fields {
		f.Parent, f.Index = k, i
		if f.Name == "" || !token.IsIdentifier(f.Name) || strings.ToLower(f.Name) != f.Name {
			return invalid("%s: field name %q must be snake_case", k.Name, f.Name)
		}

		if class, ok := scalars[f.Type]; ok {
			f.Class = class
		} else {
			switch s.names[f.Type].(type) {
			case *Kind, *Choice:
				f.Class = ClassNode
			case *Enum:
				f.Class = ClassEnum
			default:
				return invalid("%s: unknown type %q", f.Qualified(), f.Type)
			}
		}

		switch {
		case f.List && f.Class != ClassNode:
			return invalid("%s: only node fields may be lists", f.Qualified())
		case f.List && f.Optional:
			return invalid("%s: lists cannot be optional", f.Qualified())
		case f.Optional && f.Class != ClassNode && f.Class != ClassStr && f.Class != ClassWtf8:
			return invalid("%s: only node and text fields may be optional", f.Qualified())
		}

		for _, name := range f.Methods() {
			if other, ok := methods[name]; ok {
				return invalid("%s: method %s collides with %s", f.Qualified(), name, other)
			}
			methods[name] = f.Qualified()
		}
		if rest, ok := strings.CutPrefix(f.GoName(), "As"); ok && rest != "" && unicode.IsUpper(rune(rest[0])) {
			return invalid("%s: field names may not start with as_", f.Qualified())
		}
	}

	if len(k.Fields) == 1 {
		f := k.Fields[0]
		k.Inline = (f.Class == ClassNode && !f.List) || f.Class == ClassBool || f.Class == ClassEnum
	}
	return nil
}

// Kinds returns every kind, in schema order.
func (s *Schema) Kinds() []*Kind {
	return s.Nodes
}

// KindCount returns the number of Kind values, including the reserved zero.
func (s *Schema) KindCount() int {
	return len(s.Nodes) + 1
}

// HasClass returns whether any field in s has the given class.
func (s *Schema) HasClass(class Class) bool {
	for _, k := range s.Nodes {
		for _, f := range k.Fields {
			if f.Class == class {
				return true
			}
		}
	}
	return false
}

// HasBigInts returns whether any field in s holds a BigInt.
func (s *Schema) HasBigInts() bool {
	return s.HasClass(ClassBigInt)
}

// String returns the string form of this value.
func (v *Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

// Children returns the fields of k that hold child nodes.
func (k *Kind) Children() []*Field {
	var out []*Field
	for _, f := range k.Fields {
		if f.Class == ClassNode {
			out = append(out, f)
		}
	}
	return out
}

// Slots returns how many extra-data slots a node of this kind uses.
func (k *Kind) Slots() int {
	if k.Inline {
		return 0
	}
	return len(k.Fields)
}

// Qualified returns the field's name qualified by its kind, as in
// "BinaryExpression.left".
func (f *Field) Qualified() string {
	return f.Parent.Name + "." + f.Name
}

// Methods returns the names of the methods generated for f.
func (f *Field) Methods() []string {
	names := []string{f.GoName(), "Set" + f.GoName()}
	if helper := f.Helper(); helper != "" {
		names = append(names, helper)
	}
	return names
}
