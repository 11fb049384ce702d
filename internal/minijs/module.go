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
package minijs

import (
	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/text"
)

func (p *parser) importDeclaration() ast.ImportDeclaration {
	start := p.expectWord("import").start
	b := p.a.BeginRange()
	if !p.at(tokString) {
		p.importClauses()
		p.expectWord("from")
	}
	clauses := ast.EndRange[ast.ImportClause](p.a, b)
	source := p.stringLiteral()
	p.semicolon()
	return ast.NewImportDeclaration(p.a, p.span(start), clauses, source)
}

// importClauses parses the bindings of an import into the open range.
func (p *parser) importClauses() {
	if p.isIdentifier() {
		t := p.cur()
		local := p.identifier()
		p.a.Push(ast.NewImportDefaultSpecifier(p.a, p.span(t.start), local).ID())
		if !p.eat(",") {
			return
		}
	}

	if t := p.cur(); p.eat("*") {
		p.expectWord("as")
		local := p.identifier()
		p.a.Push(ast.NewImportNamespaceSpecifier(p.a, p.span(t.start), local).ID())
		return
	}

	p.expect("{")
	for !p.eat("}") {
		t := p.cur()
		imported := p.name()
		var local ast.Identifier
		if p.eatWord("as") {
			local = p.identifier()
		} else {
			if reserved[t.text] {
				fail(t.start, "cannot import %q without renaming it", t.text)
			}
			local = p.copyIdentifier(imported)
		}
		p.a.Push(ast.NewImportSpecifier(p.a, p.span(t.start), imported, local).ID())
		if !p.is("}") {
			p.expect(",")
		}
	}
}

func (p *parser) exportDeclaration() ast.ModuleItem {
	start := p.expectWord("export").start

	if t := p.cur(); p.eatWord("default") {
		p.exportName(t.start, p.intern("default"), t.text)
		var value ast.ExportDefaultValue
		switch {
		case p.namedFunctionAhead():
			fn := p.cur().start
			async := p.eatWord("async")
			value = p.functionDeclaration(fn, async).AsExportDefaultValue()
		case p.isWord("class") && p.peek(1).kind == tokIdent && !reserved[p.peek(1).text]:
			value = p.classDeclaration().AsExportDefaultValue()
		default:
			value = p.assignment(false).AsExportDefaultValue()
			p.semicolon()
		}
		return ast.NewExportDefaultDeclaration(p.a, p.span(start), value).AsModuleItem()
	}

	if p.is("*") {
		p.fail("export * is not supported")
	}

	if p.is("{") {
		specs := p.exportSpecifiers()
		var source ast.StringLiteral
		if p.eatWord("from") {
			source = p.stringLiteral()
		}
		p.semicolon()
		return ast.NewExportNamedDeclaration(p.a, p.span(start), ast.Declaration{}, specs, source).AsModuleItem()
	}

	at := p.cur().start
	decl := p.statement().AsDeclaration(p.a)
	if decl.IsZero() {
		fail(at, "expected a declaration after export")
	}
	p.bindings(decl.ID(), p.exportIdentifier)
	return ast.NewExportNamedDeclaration(p.a, p.span(start), decl, ast.SubRange[ast.ExportSpecifier]{}, ast.StringLiteral{}).AsModuleItem()
}

// namedFunctionAhead returns whether a function declaration with a name
// starts at the current token.
func (p *parser) namedFunctionAhead() bool {
	i := 0
	if p.isWord("async") {
		if p.peek(1).nl {
			return false
		}
		i++
	}
	if t := p.peek(i); t.kind != tokIdent || t.text != "function" {
		return false
	}
	i++
	if t := p.peek(i); t.kind == tokPunct && t.text == "*" {
		i++
	}
	t := p.peek(i)
	return t.kind == tokIdent && !reserved[t.text]
}

func (p *parser) exportSpecifiers() ast.SubRange[ast.ExportSpecifier] {
	p.expect("{")
	b := p.a.BeginRange()
	for !p.eat("}") {
		t := p.cur()
		local := p.name()
		var exported ast.Identifier
		if p.eatWord("as") {
			exported = p.name()
		} else {
			exported = p.copyIdentifier(local)
		}
		p.exportIdentifier(exported)
		p.a.Push(ast.NewExportSpecifier(p.a, p.span(t.start), local, exported).ID())
		if !p.is("}") {
			p.expect(",")
		}
	}
	return ast.EndRange[ast.ExportSpecifier](p.a, b)
}

// copyIdentifier builds a second identifier with the same name and span, for
// places where one name fills two fields.
func (p *parser) copyIdentifier(id ast.Identifier) ast.Identifier {
	return ast.NewIdentifier(p.a, id.Span(p.a), id.Name(p.a))
}

// exportName records that a module exports name, which must not already be
// exported.
func (p *parser) exportName(at int, name text.Ref, display string) {
	if !p.exports.Add(name) {
		fail(at, "duplicate export %q", display)
	}
}

func (p *parser) exportIdentifier(id ast.Identifier) {
	p.exportName(p.startOf(id.ID()), id.Name(p.a), id.NameText(p.a))
}

// bindings calls f with each name bound by a declaration or pattern.
func (p *parser) bindings(id ast.NodeID, f func(ast.Identifier)) {
	switch p.a.Kind(id) {
	case ast.KindIdentifier:
		f(ast.IdentifierFromID(p.a, id))
	case ast.KindFunctionDeclaration:
		f(ast.FunctionDeclarationFromID(p.a, id).Name(p.a))
	case ast.KindClassDeclaration:
		f(ast.ClassDeclarationFromID(p.a, id).Name(p.a))
	case ast.KindVariableDeclaration:
		for d := range ast.VariableDeclarationFromID(p.a, id).Declarations(p.a).Values(p.a) {
			p.bindings(d.Target(p.a).ID(), f)
		}
	case ast.KindArrayPattern:
		for el := range ast.ArrayPatternFromID(p.a, id).Elements(p.a).Values(p.a) {
			p.bindings(el.ID(), f)
		}
	case ast.KindObjectPattern:
		for m := range ast.ObjectPatternFromID(p.a, id).Properties(p.a).Values(p.a) {
			if prop := m.AsProperty(p.a); !prop.IsZero() {
				p.bindings(prop.Value(p.a).ID(), f)
				continue
			}
			p.bindings(m.ID(), f)
		}
	case ast.KindAssignmentPattern:
		p.bindings(ast.AssignmentPatternFromID(p.a, id).Left(p.a).ID(), f)
	case ast.KindRestElement:
		p.bindings(ast.RestElementFromID(p.a, id).Argument(p.a).ID(), f)
	}
}
