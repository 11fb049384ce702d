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

import "github.com/bufbuild/esast/ast"

// directives parses a directive prologue into the innermost open range.
func (p *parser) directives() {
	for p.at(tokString) {
		next := p.peek(1)
		if !(next.kind == tokEOF || next.nl || next.kind == tokPunct && (next.text == ";" || next.text == "}")) {
			return
		}
		t := p.cur()
		lit := p.stringLiteral()
		p.semicolon()
		raw := t.text[1 : len(t.text)-1]
		p.a.Push(ast.NewDirective(p.a, p.span(t.start), lit, p.intern(raw)).ID())
	}
}

func (p *parser) moduleItem() ast.ModuleItem {
	switch {
	case p.isWord("import"):
		next := p.peek(1)
		if next.kind == tokPunct && (next.text == "(" || next.text == ".") {
			break
		}
		return p.importDeclaration().AsModuleItem()
	case p.isWord("export"):
		return p.exportDeclaration()
	}
	return p.statement().AsModuleItem()
}

func (p *parser) statement() ast.Statement {
	t := p.cur()
	switch t.kind {
	case tokEOF:
		p.unexpected()
	case tokPunct:
		switch t.text {
		case "{":
			return p.block().AsStatement()
		case ";":
			p.next()
			return ast.NewEmptyStatement(p.a, p.span(t.start)).AsStatement()
		}
	case tokIdent:
		if s, ok := p.keywordStatement(t); ok {
			return s
		}
		if !reserved[t.text] && p.peek(1).kind == tokPunct && p.peek(1).text == ":" {
			label := p.identifier()
			p.next()
			body := p.statement()
			return ast.NewLabeledStatement(p.a, p.span(t.start), label, body).AsStatement()
		}
	}

	expr := p.expression(false)
	p.semicolon()
	return ast.NewExpressionStatement(p.a, p.span(t.start), expr).AsStatement()
}

// keywordStatement parses a statement introduced by a keyword.
func (p *parser) keywordStatement(t token) (ast.Statement, bool) {
	switch t.text {
	case "var", "const", "let":
		if t.text == "let" && !p.letIsDeclaration() {
			return ast.Statement{}, false
		}
		decl := p.variableDeclaration(false)
		p.semicolon()
		decl.SetSpan(p.a, p.span(t.start))
		return decl.AsStatement(), true

	case "function":
		return p.functionDeclaration(t.start, false).AsStatement(), true

	case "async":
		if next := p.peek(1); next.kind != tokIdent || next.text != "function" || next.nl {
			return ast.Statement{}, false
		}
		p.next()
		return p.functionDeclaration(t.start, true).AsStatement(), true

	case "class":
		return p.classDeclaration().AsStatement(), true

	case "if":
		p.next()
		test := p.condition()
		cons := p.statement()
		var alt ast.Statement
		if p.eatWord("else") {
			alt = p.statement()
		}
		return ast.NewIfStatement(p.a, p.span(t.start), test, cons, alt).AsStatement(), true

	case "while":
		p.next()
		test := p.condition()
		body := p.statement()
		return ast.NewWhileStatement(p.a, p.span(t.start), test, body).AsStatement(), true

	case "do":
		p.next()
		body := p.statement()
		p.expectWord("while")
		test := p.condition()
		p.eat(";")
		return ast.NewDoWhileStatement(p.a, p.span(t.start), body, test).AsStatement(), true

	case "for":
		return p.forStatement(), true

	case "return":
		p.next()
		var arg ast.Expression
		if !p.canEndStatement() {
			arg = p.expression(false)
		}
		p.semicolon()
		return ast.NewReturnStatement(p.a, p.span(t.start), arg).AsStatement(), true

	case "break", "continue":
		p.next()
		var label ast.Identifier
		if p.isIdentifier() && !p.cur().nl {
			label = p.identifier()
		}
		p.semicolon()
		if t.text == "break" {
			return ast.NewBreakStatement(p.a, p.span(t.start), label).AsStatement(), true
		}
		return ast.NewContinueStatement(p.a, p.span(t.start), label).AsStatement(), true

	case "throw":
		p.next()
		if p.cur().nl {
			p.fail("line break after throw")
		}
		arg := p.expression(false)
		p.semicolon()
		return ast.NewThrowStatement(p.a, p.span(t.start), arg).AsStatement(), true

	case "try":
		return p.tryStatement(), true

	case "switch":
		return p.switchStatement(), true

	case "debugger":
		p.next()
		p.semicolon()
		return ast.NewDebuggerStatement(p.a, p.span(t.start)).AsStatement(), true
	}
	return ast.Statement{}, false
}

// letIsDeclaration returns whether the let at the current token starts a
// declaration rather than naming a variable.
func (p *parser) letIsDeclaration() bool {
	next := p.peek(1)
	switch next.kind {
	case tokIdent:
		return !reserved[next.text]
	case tokPunct:
		return next.text == "[" || next.text == "{"
	}
	return false
}

// condition parses a parenthesized condition.
func (p *parser) condition() ast.Expression {
	p.expect("(")
	e := p.expression(false)
	p.expect(")")
	return e
}

func (p *parser) block() ast.BlockStatement {
	return p.blockBody(false)
}

func (p *parser) blockBody(prologue bool) ast.BlockStatement {
	start := p.expect("{").start
	b := p.a.BeginRange()
	if prologue {
		p.directives()
	}
	for !p.eat("}") {
		p.a.Push(p.statement().ID())
	}
	return ast.NewBlockStatement(p.a, p.span(start), ast.EndRange[ast.Statement](p.a, b))
}

func (p *parser) variableDeclaration(noIn bool) ast.VariableDeclaration {
	t := p.next()
	kind := ast.VariableKindByName[t.text]
	b := p.a.BeginRange()
	for {
		start := p.cur().start
		target := p.bindingTarget()
		var init ast.Expression
		if p.eat("=") {
			init = p.assignment(noIn)
		}
		p.a.Push(ast.NewVariableDeclarator(p.a, p.span(start), target, init).ID())
		if !p.eat(",") {
			break
		}
	}
	decls := ast.EndRange[ast.VariableDeclarator](p.a, b)
	return ast.NewVariableDeclaration(p.a, p.span(t.start), kind, decls)
}

func (p *parser) forStatement() ast.Statement {
	start := p.expectWord("for").start
	await := p.async && p.eatWord("await")
	p.expect("(")

	var init ast.ForInit
	var head ast.ForHead
	switch {
	case p.is(";"):
	case p.isWord("var"), p.isWord("const"), p.isWord("let") && p.letIsDeclaration():
		decl := p.variableDeclaration(true)
		if p.isWord("of") || p.isWord("in") {
			head = decl.AsForHead()
		} else {
			init = decl.AsForInit()
		}
	default:
		expr := p.expression(true)
		if p.isWord("of") || p.isWord("in") {
			head = p.toPattern(expr).AsForHead()
		} else {
			init = expr.AsForInit()
		}
	}

	if !head.IsZero() {
		of := p.next().text == "of"
		var right ast.Expression
		if of {
			right = p.assignment(false)
		} else {
			right = p.expression(false)
		}
		p.expect(")")
		body := p.statement()
		if of {
			return ast.NewForOfStatement(p.a, p.span(start), await, head, right, body).AsStatement()
		}
		return ast.NewForInStatement(p.a, p.span(start), head, right, body).AsStatement()
	}
	if await {
		p.fail("for await requires of")
	}

	p.expect(";")
	var test, update ast.Expression
	if !p.is(";") {
		test = p.expression(false)
	}
	p.expect(";")
	if !p.is(")") {
		update = p.expression(false)
	}
	p.expect(")")
	body := p.statement()
	return ast.NewForStatement(p.a, p.span(start), init, test, update, body).AsStatement()
}

func (p *parser) tryStatement() ast.Statement {
	start := p.expectWord("try").start
	block := p.block()

	var handler ast.CatchClause
	if t := p.cur(); p.eatWord("catch") {
		var param ast.Pattern
		if p.eat("(") {
			param = p.bindingTarget()
			p.expect(")")
		}
		body := p.block()
		handler = ast.NewCatchClause(p.a, p.span(t.start), param, body)
	}
	var finalizer ast.BlockStatement
	if p.eatWord("finally") {
		finalizer = p.block()
	}
	if handler.IsZero() && finalizer.IsZero() {
		p.fail("expected catch or finally after try block")
	}
	return ast.NewTryStatement(p.a, p.span(start), block, handler, finalizer).AsStatement()
}

func (p *parser) switchStatement() ast.Statement {
	start := p.expectWord("switch").start
	disc := p.condition()
	p.expect("{")

	cases := p.a.BeginRange()
	var sawDefault bool
	for !p.eat("}") {
		t := p.cur()
		var test ast.Expression
		if p.eatWord("case") {
			test = p.expression(false)
		} else {
			p.expectWord("default")
			if sawDefault {
				fail(t.start, "more than one default clause")
			}
			sawDefault = true
		}
		p.expect(":")

		body := p.a.BeginRange()
		for !p.is("}") && !p.isWord("case") && !p.isWord("default") {
			p.a.Push(p.statement().ID())
		}
		cons := ast.EndRange[ast.Statement](p.a, body)
		p.a.Push(ast.NewSwitchCase(p.a, p.span(t.start), test, cons).ID())
	}
	return ast.NewSwitchStatement(p.a, p.span(start), disc, ast.EndRange[ast.SwitchCase](p.a, cases)).AsStatement()
}

func (p *parser) functionDeclaration(start int, async bool) ast.FunctionDeclaration {
	p.expectWord("function")
	generator := p.eat("*")
	name := p.identifier()
	params, body := p.functionRest(async, generator)
	return ast.NewFunctionDeclaration(p.a, p.span(start), name, async, generator, params, body)
}

// functionRest parses the parameters and body of a function.
func (p *parser) functionRest(async, generator bool) (ast.SubRange[ast.Pattern], ast.BlockStatement) {
	outerAsync, outerGenerator := p.async, p.generator
	p.async, p.generator = async, generator
	params := p.params()
	body := p.blockBody(true)
	p.async, p.generator = outerAsync, outerGenerator
	return params, body
}

func (p *parser) params() ast.SubRange[ast.Pattern] {
	p.expect("(")
	b := p.a.BeginRange()
	for !p.is(")") {
		if t := p.cur(); p.eat("...") {
			arg := p.bindingTarget()
			p.a.Push(ast.NewRestElement(p.a, p.span(t.start), arg).ID())
			break
		}
		p.a.Push(p.bindingElement().ID())
		if !p.eat(",") {
			break
		}
	}
	p.expect(")")
	return ast.EndRange[ast.Pattern](p.a, b)
}

func (p *parser) classDeclaration() ast.ClassDeclaration {
	start := p.expectWord("class").start
	name := p.identifier()
	super, body := p.classRest()
	return ast.NewClassDeclaration(p.a, p.span(start), name, super, body)
}

// classRest parses the heritage and body of a class.
func (p *parser) classRest() (ast.Expression, ast.SubRange[ast.ClassMember]) {
	var super ast.Expression
	if p.eatWord("extends") {
		super = p.leftHandSide()
	}
	p.expect("{")
	b := p.a.BeginRange()
	for !p.eat("}") {
		if p.eat(";") {
			continue
		}
		p.a.Push(p.classMember().ID())
	}
	return super, ast.EndRange[ast.ClassMember](p.a, b)
}

func (p *parser) classMember() ast.ClassMember {
	start := p.cur().start
	var static bool
	if p.isWord("static") && !p.modifierIsName() {
		p.next()
		static = true
	}

	kind := ast.MethodKindMethod
	var async bool
	switch {
	case (p.isWord("get") || p.isWord("set")) && !p.modifierIsName():
		kind = ast.MethodKindByName[p.next().text]
	case p.isWord("async") && !p.modifierIsName() && !p.peek(1).nl:
		p.next()
		async = true
	}
	generator := p.eat("*")

	key, computed := p.propertyKey(true)
	if p.is("(") {
		if kind == ast.MethodKindMethod && !static && !computed && p.keyIs(key, "constructor") {
			kind = ast.MethodKindConstructor
		}
		value := p.method(async, generator)
		return ast.NewMethodDefinition(p.a, p.span(start), kind, static, computed, key, value).AsClassMember()
	}
	if kind != ast.MethodKindMethod || async || generator {
		p.fail("expected \"(\", found %s", describe(p.cur()))
	}

	var value ast.Expression
	if p.eat("=") {
		value = p.assignment(false)
	}
	p.semicolon()
	return ast.NewPropertyDefinition(p.a, p.span(start), static, computed, key, value).AsClassMember()
}

// modifierIsName returns whether a modifier like get or static at the
// current token is actually the name of the member.
func (p *parser) modifierIsName() bool {
	next := p.peek(1)
	switch next.kind {
	case tokEOF:
		return true
	case tokPunct:
		switch next.text {
		case "(", "=", ";", "}", ",", ":":
			return true
		}
	}
	return false
}

// keyIs returns whether key is the identifier name.
func (p *parser) keyIs(key ast.PropertyKey, name string) bool {
	id := key.AsExpression(p.a).AsIdentifier(p.a)
	return !id.IsZero() && id.NameText(p.a) == name
}

// method parses the parameters and body of a method into a function.
func (p *parser) method(async, generator bool) ast.FunctionExpression {
	start := p.cur().start
	params, body := p.functionRest(async, generator)
	return ast.NewFunctionExpression(p.a, p.span(start), ast.Identifier{}, async, generator, params, body)
}

// propertyKey parses the name of an object or class member.
func (p *parser) propertyKey(private bool) (key ast.PropertyKey, computed bool) {
	t := p.cur()
	switch t.kind {
	case tokIdent:
		return p.name().AsPropertyKey(), false
	case tokString:
		return p.stringLiteral().AsPropertyKey(), false
	case tokNumber, tokBigInt:
		return p.primary().AsPropertyKey(), false
	case tokPrivate:
		if private {
			p.next()
			return ast.NewPrivateIdentifier(p.a, p.span(t.start), p.intern(t.text[1:])).AsPropertyKey(), false
		}
	case tokPunct:
		if t.text == "[" {
			p.next()
			e := p.assignment(false)
			p.expect("]")
			return e.AsPropertyKey(), true
		}
	}
	p.fail("expected a property name, found %s", describe(t))
	return ast.PropertyKey{}, false
}
