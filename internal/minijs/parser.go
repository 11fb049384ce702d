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
	"fmt"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/text"
)

// Words that may never be used as identifiers.
var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
}

type parser struct {
	a        *ast.AST
	hashbang *string
	toks     []token
	pos      int
	prevEnd  int // End of the last consumed token.
	mark     ast.RangeBuilder
	exports  text.Set // Names exported so far.

	// Whether yield and await are operators here.
	generator, async bool
}

func newParser(a *ast.AST, src string) (*parser, error) {
	l, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		a:        a,
		hashbang: l.hashbang,
		toks:     l.toks,
		mark:     a.BeginRange(),
		exports:  make(text.Set),
	}, nil
}

// cleanup discards any lists left open by a failed parse.
func (p *parser) cleanup(err *error) {
	if *err != nil {
		p.a.AbortRange(p.mark)
	}
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) peek(n int) token {
	return p.toks[min(p.pos+n, len(p.toks)-1)]
}

func (p *parser) next() token {
	t := p.cur()
	if t.kind != tokEOF {
		p.pos++
	}
	p.prevEnd = t.end
	return t
}

func (p *parser) at(kind tokenKind) bool {
	return p.cur().kind == kind
}

// is returns whether the current token is the punctuator s.
func (p *parser) is(s string) bool {
	t := p.cur()
	return t.kind == tokPunct && t.text == s
}

// isWord returns whether the current token is the identifier or keyword s.
func (p *parser) isWord(s string) bool {
	t := p.cur()
	return t.kind == tokIdent && t.text == s
}

func (p *parser) eat(s string) bool {
	if p.is(s) {
		p.next()
		return true
	}
	return false
}

func (p *parser) eatWord(s string) bool {
	if p.isWord(s) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(s string) token {
	if !p.is(s) {
		p.fail("expected %q, found %s", s, describe(p.cur()))
	}
	return p.next()
}

func (p *parser) expectWord(s string) token {
	if !p.isWord(s) {
		p.fail("expected %q, found %s", s, describe(p.cur()))
	}
	return p.next()
}

func (p *parser) fail(format string, args ...any) {
	fail(p.cur().start, format, args...)
}

func (p *parser) unexpected() {
	p.fail("unexpected %s", describe(p.cur()))
}

func describe(t token) string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokPunct:
		return fmt.Sprintf("%q", t.text)
	default:
		return fmt.Sprintf("token %q", t.text)
	}
}

// span returns the span from start to the end of the last consumed token.
func (p *parser) span(start int) ast.Span {
	return ast.Span{Start: uint32(start), End: uint32(p.prevEnd)}
}

func (p *parser) startOf(id ast.NodeID) int {
	return int(p.a.Span(id).Start)
}

// semicolon consumes a statement terminator, inserting one where a newline,
// closing brace or the end of input permits.
func (p *parser) semicolon() {
	if p.eat(";") {
		return
	}
	if p.is("}") || p.at(tokEOF) || p.cur().nl {
		return
	}
	p.fail("expected \";\", found %s", describe(p.cur()))
}

// canEndStatement returns whether the current token may end a statement
// without a semicolon.
func (p *parser) canEndStatement() bool {
	return p.is(";") || p.is("}") || p.at(tokEOF) || p.cur().nl
}

func (p *parser) intern(s string) text.Ref {
	return p.a.Idents().Intern(s)
}

func (p *parser) identifier() ast.Identifier {
	t := p.cur()
	if t.kind != tokIdent || reserved[t.text] {
		p.fail("expected an identifier, found %s", describe(t))
	}
	p.next()
	return ast.NewIdentifier(p.a, p.span(t.start), p.intern(t.text))
}

// name parses an identifier name, where keywords are allowed.
func (p *parser) name() ast.Identifier {
	t := p.cur()
	if t.kind != tokIdent {
		p.fail("expected a name, found %s", describe(t))
	}
	p.next()
	return ast.NewIdentifier(p.a, p.span(t.start), p.intern(t.text))
}

// isIdentifier returns whether the current token can be an identifier.
func (p *parser) isIdentifier() bool {
	t := p.cur()
	return t.kind == tokIdent && !reserved[t.text]
}

func (p *parser) program(opts Options) ast.Program {
	sourceType := ast.SourceTypeScript
	if opts.Module {
		sourceType = ast.SourceTypeModule
	}
	hashbang := text.None
	if p.hashbang != nil {
		hashbang = text.Some(p.intern(*p.hashbang))
	}

	body := p.a.BeginRange()
	p.directives()
	for !p.at(tokEOF) {
		p.a.Push(p.moduleItem().ID())
	}
	items := ast.EndRange[ast.ModuleItem](p.a, body)
	end := p.cur().end
	return ast.NewProgram(p.a, ast.Span{End: uint32(end)}, sourceType, hashbang, items)
}
