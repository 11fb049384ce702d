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
	"strings"

	"github.com/bufbuild/esast/ast"
	"github.com/bufbuild/esast/text"
)

// Binding power of each binary operator. Higher binds tighter.
var precedence = map[string]int{
	"??": 1, "||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "!=": 6, "===": 6, "!==": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7, "instanceof": 7, "in": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
	"**": 11,
}

// expression parses a comma-separated expression. If noIn is set, a bare in
// operator ends it, as in the head of a for statement.
func (p *parser) expression(noIn bool) ast.Expression {
	start := p.cur().start
	first := p.assignment(noIn)
	if !p.is(",") {
		return first
	}
	b := p.a.BeginRange()
	p.a.Push(first.ID())
	for p.eat(",") {
		p.a.Push(p.assignment(noIn).ID())
	}
	exprs := ast.EndRange[ast.Expression](p.a, b)
	return ast.NewSequenceExpression(p.a, p.span(start), exprs).AsExpression()
}

func (p *parser) assignment(noIn bool) ast.Expression {
	if arrow, ok := p.arrow(noIn); ok {
		return arrow.AsExpression()
	}
	if p.generator && p.isWord("yield") {
		return p.yield(noIn)
	}

	start := p.cur().start
	left := p.conditional(noIn)
	t := p.cur()
	op, ok := ast.AssignmentOperatorByName[t.text]
	if t.kind != tokPunct || !ok {
		return left
	}
	p.next()

	var target ast.Pattern
	if op == ast.AssignmentOperatorAssign {
		target = p.toPattern(left)
	} else {
		target = ast.PatternFromID(p.a, p.simpleTarget(left).ID())
	}
	right := p.assignment(noIn)
	return ast.NewAssignmentExpression(p.a, p.span(start), op, target, right).AsExpression()
}

// simpleTarget checks that e may be assigned to by an operator other than =,
// or updated by ++ or --. Parentheses around the target are removed.
func (p *parser) simpleTarget(e ast.Expression) ast.Expression {
	inner := e
	for inner.Kind(p.a) == ast.KindParenthesizedExpression {
		inner = inner.AsParenthesizedExpression(p.a).Expression(p.a)
	}
	switch inner.Kind(p.a) {
	case ast.KindIdentifier, ast.KindMemberExpression:
	default:
		fail(p.startOf(e.ID()), "invalid assignment target")
	}
	for e != inner {
		next := e.AsParenthesizedExpression(p.a).Expression(p.a)
		p.a.FreeNode(e.ID())
		e = next
	}
	return inner
}

func (p *parser) yield(noIn bool) ast.Expression {
	start := p.next().start
	var delegate bool
	var arg ast.Expression
	if !p.cur().nl {
		delegate = p.eat("*")
		if delegate || !p.yieldEnds() {
			arg = p.assignment(noIn)
		}
	}
	return ast.NewYieldExpression(p.a, p.span(start), delegate, arg).AsExpression()
}

// yieldEnds returns whether a yield at this point has no argument.
func (p *parser) yieldEnds() bool {
	if p.canEndStatement() {
		return true
	}
	t := p.cur()
	if t.kind != tokPunct {
		return false
	}
	switch t.text {
	case ")", "]", ",", ":":
		return true
	}
	return false
}

// arrow parses an arrow function, if one starts at the current token.
func (p *parser) arrow(noIn bool) (ast.ArrowFunctionExpression, bool) {
	start := p.cur().start
	var async bool
	i := 0
	if p.isWord("async") && !p.peek(1).nl && p.arrowAt(1) {
		async = true
		i = 1
	}
	if !p.arrowAt(i) {
		return ast.ArrowFunctionExpression{}, false
	}
	if async {
		p.next()
	}

	outerAsync, outerGenerator := p.async, p.generator
	p.async, p.generator = async, false

	var params ast.SubRange[ast.Pattern]
	if p.is("(") {
		params = p.params()
	} else {
		params = ast.NewRange(p.a, p.identifier().AsPattern())
	}
	if p.cur().nl {
		p.fail("line break before =>")
	}
	p.expect("=>")

	var body ast.ArrowBody
	if p.is("{") {
		body = p.blockBody(true).AsArrowBody()
	} else {
		body = p.assignment(noIn).AsArrowBody()
	}
	p.async, p.generator = outerAsync, outerGenerator
	return ast.NewArrowFunctionExpression(p.a, p.span(start), async, params, body), true
}

// arrowAt returns whether the parameters of an arrow function start i tokens
// ahead.
func (p *parser) arrowAt(i int) bool {
	t := p.peek(i)
	switch {
	case t.kind == tokIdent && !reserved[t.text]:
		next := p.peek(i + 1)
		return next.kind == tokPunct && next.text == "=>"
	case t.kind == tokPunct && t.text == "(":
		depth := 0
		for j := p.pos + i; j < len(p.toks); j++ {
			tok := p.toks[j]
			if tok.kind == tokEOF {
				return false
			}
			if tok.kind != tokPunct {
				continue
			}
			switch tok.text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
				if depth == 0 {
					next := p.toks[j+1]
					return next.kind == tokPunct && next.text == "=>"
				}
			}
		}
	}
	return false
}

func (p *parser) conditional(noIn bool) ast.Expression {
	start := p.cur().start
	test := p.binary(0, noIn)
	if !p.eat("?") {
		return test
	}
	cons := p.assignment(false)
	p.expect(":")
	alt := p.assignment(noIn)
	return ast.NewConditionalExpression(p.a, p.span(start), test, cons, alt).AsExpression()
}

// binary parses binary operators binding tighter than minPrec.
func (p *parser) binary(minPrec int, noIn bool) ast.Expression {
	start := p.cur().start
	left := p.unary()
	for {
		t := p.cur()
		prec := binaryPrecedence(t)
		if prec <= minPrec || noIn && t.text == "in" {
			return left
		}
		p.next()
		next := prec
		if t.text == "**" {
			next-- // Right-associative.
		}
		right := p.binary(next, noIn)

		span := p.span(start)
		if op, ok := ast.LogicalOperatorByName[t.text]; ok {
			left = ast.NewLogicalExpression(p.a, span, left, op, right).AsExpression()
		} else {
			left = ast.NewBinaryExpression(p.a, span, left, ast.BinaryOperatorByName[t.text], right).AsExpression()
		}
	}
}

func binaryPrecedence(t token) int {
	switch t.kind {
	case tokPunct:
		return precedence[t.text]
	case tokIdent:
		if t.text == "in" || t.text == "instanceof" {
			return precedence[t.text]
		}
	}
	return 0
}

func (p *parser) unary() ast.Expression {
	t := p.cur()
	if t.kind == tokPunct || t.kind == tokIdent {
		if op, ok := ast.UnaryOperatorByName[t.text]; ok {
			p.next()
			arg := p.unary()
			return ast.NewUnaryExpression(p.a, p.span(t.start), op, arg).AsExpression()
		}
	}
	if op, ok := ast.UpdateOperatorByName[t.text]; ok && t.kind == tokPunct {
		p.next()
		arg := p.simpleTarget(p.unary())
		return ast.NewUpdateExpression(p.a, p.span(t.start), op, true, arg).AsExpression()
	}
	if p.async && p.isWord("await") {
		p.next()
		arg := p.unary()
		return ast.NewAwaitExpression(p.a, p.span(t.start), arg).AsExpression()
	}

	expr := p.leftHandSide()
	if post := p.cur(); post.kind == tokPunct && !post.nl {
		if op, ok := ast.UpdateOperatorByName[post.text]; ok {
			expr = p.simpleTarget(expr)
			p.next()
			return ast.NewUpdateExpression(p.a, p.span(t.start), op, false, expr).AsExpression()
		}
	}
	return expr
}

// leftHandSide parses member accesses, calls and new expressions.
func (p *parser) leftHandSide() ast.Expression {
	start := p.cur().start
	var callee ast.Callee
	switch {
	case p.isWord("new"):
		callee = p.newExpression().AsCallee()
	case p.isWord("super"):
		t := p.next()
		if !p.is("(") && !p.is(".") && !p.is("[") {
			fail(t.start, "unexpected super")
		}
		callee = ast.NewSuper(p.a, p.span(t.start)).AsCallee()
	default:
		callee = p.primary().AsCallee()
	}
	return p.chain(start, callee, true)
}

// chain parses the accesses, calls and template tags following object. If
// calls is false, the chain stops before the first call, for the callee of a
// new expression.
func (p *parser) chain(start int, object ast.Callee, calls bool) ast.Expression {
	for {
		t := p.cur()
		switch {
		case p.eat("."):
			prop := p.memberName()
			object = ast.NewMemberExpression(p.a, p.span(start), object, prop, false, false).AsCallee()

		case p.is("?.") && calls:
			p.next()
			switch {
			case p.is("("):
				args := p.arguments()
				object = ast.NewCallExpression(p.a, p.span(start), object, args, true).AsCallee()
			case p.eat("["):
				prop := p.expression(false)
				p.expect("]")
				object = ast.NewMemberExpression(p.a, p.span(start), object, prop.AsPropertyKey(), true, true).AsCallee()
			default:
				prop := p.memberName()
				object = ast.NewMemberExpression(p.a, p.span(start), object, prop, false, true).AsCallee()
			}

		case p.eat("["):
			prop := p.expression(false)
			p.expect("]")
			object = ast.NewMemberExpression(p.a, p.span(start), object, prop.AsPropertyKey(), true, false).AsCallee()

		case p.is("(") && calls:
			args := p.arguments()
			object = ast.NewCallExpression(p.a, p.span(start), object, args, false).AsCallee()

		case t.kind == tokTemplate && t.text[0] == '`':
			tag := object.AsExpression(p.a)
			if tag.IsZero() {
				fail(start, "unexpected super")
			}
			quasi := p.template(true)
			object = ast.NewTaggedTemplateExpression(p.a, p.span(start), tag, quasi).AsCallee()

		default:
			return object.AsExpression(p.a)
		}
	}
}

// memberName parses the name after a dot.
func (p *parser) memberName() ast.PropertyKey {
	if t := p.cur(); t.kind == tokPrivate {
		p.next()
		return ast.NewPrivateIdentifier(p.a, p.span(t.start), p.intern(t.text[1:])).AsPropertyKey()
	}
	return p.name().AsPropertyKey()
}

func (p *parser) newExpression() ast.Expression {
	kw := p.expectWord("new")
	if p.eat(".") {
		meta := ast.NewIdentifier(p.a, ast.Span{Start: uint32(kw.start), End: uint32(kw.end)}, p.intern("new"))
		prop := p.name()
		if prop.NameText(p.a) != "target" {
			fail(p.startOf(prop.ID()), "expected new.target")
		}
		return ast.NewMetaProperty(p.a, p.span(kw.start), meta, prop).AsExpression()
	}

	var callee ast.Expression
	if p.isWord("new") {
		callee = p.newExpression()
	} else {
		start := p.cur().start
		callee = p.chain(start, p.primary().AsCallee(), false)
	}
	var args ast.SubRange[ast.Argument]
	if p.is("(") {
		args = p.arguments()
	}
	return ast.NewNewExpression(p.a, p.span(kw.start), callee, args).AsExpression()
}

func (p *parser) arguments() ast.SubRange[ast.Argument] {
	p.expect("(")
	b := p.a.BeginRange()
	for !p.is(")") {
		if t := p.cur(); p.eat("...") {
			arg := p.assignment(false)
			p.a.Push(ast.NewSpreadElement(p.a, p.span(t.start), arg).ID())
		} else {
			p.a.Push(p.assignment(false).ID())
		}
		if !p.eat(",") {
			break
		}
	}
	p.expect(")")
	return ast.EndRange[ast.Argument](p.a, b)
}

func (p *parser) primary() ast.Expression {
	t := p.cur()
	switch t.kind {
	case tokIdent:
		switch t.text {
		case "this":
			p.next()
			return ast.NewThisExpression(p.a, p.span(t.start)).AsExpression()
		case "null":
			p.next()
			return ast.NewNullLiteral(p.a, p.span(t.start)).AsExpression()
		case "true", "false":
			p.next()
			return ast.NewBooleanLiteral(p.a, p.span(t.start), t.text == "true").AsExpression()
		case "function":
			return p.functionExpression(t.start, false)
		case "async":
			if next := p.peek(1); next.kind == tokIdent && next.text == "function" && !next.nl {
				p.next()
				return p.functionExpression(t.start, true)
			}
		case "class":
			return p.classExpression()
		case "import":
			p.next()
			meta := ast.NewIdentifier(p.a, p.span(t.start), p.intern("import"))
			p.expect(".")
			prop := p.name()
			if prop.NameText(p.a) != "meta" {
				fail(p.startOf(prop.ID()), "expected import.meta")
			}
			return ast.NewMetaProperty(p.a, p.span(t.start), meta, prop).AsExpression()
		}
		return p.identifier().AsExpression()

	case tokNumber:
		p.next()
		v, ok := numberValue(t.text)
		if !ok {
			fail(t.start, "invalid numeric literal %q", t.text)
		}
		return ast.NewNumericLiteral(p.a, p.span(t.start), v, text.Some(p.intern(t.text))).AsExpression()

	case tokBigInt:
		p.next()
		v, ok := bigIntValue(t.text)
		if !ok {
			fail(t.start, "invalid bigint literal %q", t.text)
		}
		return ast.NewBigIntLiteral(p.a, p.span(t.start), p.a.NewBigInt(v), text.Some(p.intern(t.text))).AsExpression()

	case tokString:
		return p.stringLiteral().AsExpression()

	case tokTemplate:
		if t.text[0] == '`' {
			return p.template(false).AsExpression()
		}

	case tokRegExp:
		p.next()
		end := strings.LastIndexByte(t.text, '/')
		pattern, flags := p.intern(t.text[1:end]), p.intern(t.text[end+1:])
		return ast.NewRegExpLiteral(p.a, p.span(t.start), pattern, flags).AsExpression()

	case tokPunct:
		switch t.text {
		case "(":
			p.next()
			e := p.expression(false)
			p.expect(")")
			return ast.NewParenthesizedExpression(p.a, p.span(t.start), e).AsExpression()
		case "[":
			return p.arrayLiteral()
		case "{":
			return p.objectLiteral()
		}
	}
	p.unexpected()
	return ast.Expression{}
}

func (p *parser) stringLiteral() ast.StringLiteral {
	t := p.cur()
	if t.kind != tokString {
		p.fail("expected a string, found %s", describe(t))
	}
	p.next()
	units, bad := cook(t.text[1 : len(t.text)-1])
	if bad >= 0 {
		fail(t.start+1+bad, "invalid escape sequence")
	}
	value := p.a.Literals().AddUTF16(units)
	return ast.NewStringLiteral(p.a, p.span(t.start), value, text.Some(p.intern(t.text)))
}

// template parses a template literal. Tagged templates may contain invalid
// escapes; their chunks have no cooked value.
func (p *parser) template(tagged bool) ast.TemplateLiteral {
	start := p.cur().start
	var quasis []ast.TemplateElement
	var exprs []ast.Expression
	for {
		t := p.cur()
		if t.kind != tokTemplate {
			p.fail("expected template continuation, found %s", describe(t))
		}
		p.next()

		body := t.text[1:]
		if t.tail {
			body = body[:len(body)-1]
		} else {
			body = body[:len(body)-2]
		}
		cooked := text.None
		if units, bad := cook(body); bad >= 0 {
			if !tagged {
				fail(t.start+1+bad, "invalid escape sequence")
			}
		} else {
			cooked = text.Some(p.a.Literals().AddUTF16(units))
		}
		raw := strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\r", "\n")
		span := ast.Span{Start: uint32(t.start + 1), End: uint32(t.start + 1 + len(body))}
		quasis = append(quasis, ast.NewTemplateElement(p.a, span, t.tail, cooked, p.intern(raw)))

		if t.tail {
			break
		}
		exprs = append(exprs, p.expression(false))
	}
	return ast.NewTemplateLiteral(p.a, p.span(start), ast.NewRange(p.a, quasis...), ast.NewRange(p.a, exprs...))
}

func (p *parser) functionExpression(start int, async bool) ast.Expression {
	p.expectWord("function")
	generator := p.eat("*")
	var name ast.Identifier
	if !p.is("(") {
		name = p.identifier()
	}
	params, body := p.functionRest(async, generator)
	return ast.NewFunctionExpression(p.a, p.span(start), name, async, generator, params, body).AsExpression()
}

func (p *parser) classExpression() ast.Expression {
	start := p.expectWord("class").start
	var name ast.Identifier
	if p.isIdentifier() {
		name = p.identifier()
	}
	super, body := p.classRest()
	return ast.NewClassExpression(p.a, p.span(start), name, super, body).AsExpression()
}

func (p *parser) arrayLiteral() ast.Expression {
	start := p.expect("[").start
	b := p.a.BeginRange()
	for !p.eat("]") {
		t := p.cur()
		switch {
		case p.is(","):
			p.next()
			p.a.Push(ast.NewElision(p.a, ast.Span{Start: uint32(t.start), End: uint32(t.start)}).ID())
			continue
		case p.eat("..."):
			arg := p.assignment(false)
			p.a.Push(ast.NewSpreadElement(p.a, p.span(t.start), arg).ID())
		default:
			p.a.Push(p.assignment(false).ID())
		}
		if !p.is("]") {
			p.expect(",")
		}
	}
	elems := ast.EndRange[ast.ArrayElement](p.a, b)
	return ast.NewArrayExpression(p.a, p.span(start), elems).AsExpression()
}

func (p *parser) objectLiteral() ast.Expression {
	start := p.expect("{").start
	b := p.a.BeginRange()
	for !p.eat("}") {
		p.a.Push(p.objectMember().ID())
		if !p.is("}") {
			p.expect(",")
		}
	}
	props := ast.EndRange[ast.ObjectMember](p.a, b)
	return ast.NewObjectExpression(p.a, p.span(start), props).AsExpression()
}

func (p *parser) objectMember() ast.ObjectMember {
	t := p.cur()
	if p.eat("...") {
		arg := p.assignment(false)
		return ast.NewSpreadElement(p.a, p.span(t.start), arg).AsObjectMember()
	}

	kind := ast.PropertyKindInit
	var async bool
	switch {
	case (p.isWord("get") || p.isWord("set")) && !p.modifierIsName():
		kind = ast.PropertyKindByName[p.next().text]
	case p.isWord("async") && !p.modifierIsName() && !p.peek(1).nl:
		p.next()
		async = true
	}
	generator := p.eat("*")

	keyTok := p.cur()
	pk, computed := p.propertyKey(false)
	key := pk.AsExpression(p.a)
	switch {
	case p.is("("):
		value := p.method(async, generator)
		method := kind == ast.PropertyKindInit
		return ast.NewProperty(p.a, p.span(t.start), kind, false, computed, method, key, value.AsPropertyValue()).AsObjectMember()
	case kind != ast.PropertyKindInit || async || generator:
		p.fail("expected \"(\", found %s", describe(p.cur()))
	case p.eat(":"):
		value := p.assignment(false)
		return ast.NewProperty(p.a, p.span(t.start), kind, false, computed, false, key, value.AsPropertyValue()).AsObjectMember()
	}

	value := p.shorthand(keyTok, key, computed)
	return ast.NewProperty(p.a, p.span(t.start), kind, true, false, false, key, value).AsObjectMember()
}

// shorthand builds the value of a shorthand property such as {a} or, in a
// pattern, {a = 1}.
func (p *parser) shorthand(keyTok token, key ast.Expression, computed bool) ast.PropertyValue {
	if keyTok.kind != tokIdent || computed || reserved[keyTok.text] {
		p.fail("expected \":\", found %s", describe(p.cur()))
	}
	value := ast.NewIdentifier(p.a, key.Span(p.a), p.intern(keyTok.text))
	if !p.eat("=") {
		return value.AsPropertyValue()
	}
	def := p.assignment(false)
	return ast.NewAssignmentPattern(p.a, p.span(keyTok.start), value.AsPattern(), def).AsPropertyValue()
}
