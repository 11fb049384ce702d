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

// bindingTarget parses an identifier or destructuring pattern.
func (p *parser) bindingTarget() ast.Pattern {
	switch {
	case p.is("["):
		return p.arrayPattern().AsPattern()
	case p.is("{"):
		return p.objectPattern().AsPattern()
	}
	return p.identifier().AsPattern()
}

// bindingElement parses a binding target with an optional default.
func (p *parser) bindingElement() ast.Pattern {
	start := p.cur().start
	target := p.bindingTarget()
	if !p.eat("=") {
		return target
	}
	def := p.assignment(false)
	return ast.NewAssignmentPattern(p.a, p.span(start), target, def).AsPattern()
}

func (p *parser) arrayPattern() ast.ArrayPattern {
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
			arg := p.bindingTarget()
			p.a.Push(ast.NewRestElement(p.a, p.span(t.start), arg).ID())
		default:
			p.a.Push(p.bindingElement().ID())
		}
		if !p.is("]") {
			p.expect(",")
		}
	}
	elems := ast.EndRange[ast.ArrayPatternElement](p.a, b)
	return ast.NewArrayPattern(p.a, p.span(start), elems)
}

func (p *parser) objectPattern() ast.ObjectPattern {
	start := p.expect("{").start
	b := p.a.BeginRange()
	for !p.eat("}") {
		if t := p.cur(); p.eat("...") {
			arg := p.identifier().AsPattern()
			p.a.Push(ast.NewRestElement(p.a, p.span(t.start), arg).ID())
		} else {
			p.a.Push(p.bindingProperty().ID())
		}
		if !p.is("}") {
			p.expect(",")
		}
	}
	props := ast.EndRange[ast.ObjectPatternMember](p.a, b)
	return ast.NewObjectPattern(p.a, p.span(start), props)
}

func (p *parser) bindingProperty() ast.Property {
	t := p.cur()
	pk, computed := p.propertyKey(false)
	key := pk.AsExpression(p.a)
	if p.eat(":") {
		value := p.bindingElement()
		return ast.NewProperty(p.a, p.span(t.start), ast.PropertyKindInit, false, computed, false, key, value.AsPropertyValue())
	}
	value := p.shorthand(t, key, computed)
	return ast.NewProperty(p.a, p.span(t.start), ast.PropertyKindInit, true, false, false, key, value)
}

// toPattern reinterprets an expression already parsed as the target of an
// assignment or for-in/of head. Array and object literals are rebuilt as
// patterns and the nodes they replace are freed.
func (p *parser) toPattern(e ast.Expression) ast.Pattern {
	a := p.a
	switch e.Kind(a) {
	case ast.KindIdentifier, ast.KindMemberExpression:
		return ast.PatternFromID(a, e.ID())

	case ast.KindParenthesizedExpression:
		return ast.PatternFromID(a, p.simpleTarget(e).ID())

	case ast.KindArrayExpression:
		arr := e.AsArrayExpression(a)
		var elems []ast.ArrayPatternElement
		for el := range arr.Elements(a).Values(a) {
			elems = append(elems, p.toArrayPatternElement(el))
		}
		pat := ast.NewArrayPattern(a, arr.Span(a), ast.NewRange(a, elems...))
		a.FreeNode(arr.ID())
		return pat.AsPattern()

	case ast.KindObjectExpression:
		obj := e.AsObjectExpression(a)
		var props []ast.ObjectPatternMember
		for m := range obj.Properties(a).Values(a) {
			if spread := m.AsSpreadElement(a); !spread.IsZero() {
				props = append(props, p.toRest(spread).AsObjectPatternMember())
				continue
			}
			prop := m.AsProperty(a)
			if prop.Method(a) || prop.PropKind(a) != ast.PropertyKindInit {
				fail(p.startOf(prop.ID()), "invalid destructuring target")
			}
			if v := prop.Value(a).AsExpression(a); !v.IsZero() {
				prop.SetValue(a, p.toPattern(v).AsPropertyValue())
			}
			props = append(props, prop.AsObjectPatternMember())
		}
		pat := ast.NewObjectPattern(a, obj.Span(a), ast.NewRange(a, props...))
		a.FreeNode(obj.ID())
		return pat.AsPattern()

	case ast.KindAssignmentExpression:
		asg := e.AsAssignmentExpression(a)
		if asg.Operator(a) != ast.AssignmentOperatorAssign {
			break
		}
		pat := ast.NewAssignmentPattern(a, asg.Span(a), asg.Left(a), asg.Right(a))
		a.FreeNode(asg.ID())
		return pat.AsPattern()
	}
	fail(p.startOf(e.ID()), "invalid assignment target")
	return ast.Pattern{}
}

func (p *parser) toArrayPatternElement(el ast.ArrayElement) ast.ArrayPatternElement {
	a := p.a
	switch el.Kind(a) {
	case ast.KindElision:
		return el.AsElision(a).AsArrayPatternElement()
	case ast.KindSpreadElement:
		return p.toRest(el.AsSpreadElement(a)).AsArrayPatternElement()
	}
	return p.toPattern(el.AsExpression(a)).AsArrayPatternElement()
}

func (p *parser) toRest(spread ast.SpreadElement) ast.RestElement {
	arg := p.toPattern(spread.Argument(p.a))
	rest := ast.NewRestElement(p.a, spread.Span(p.a), arg)
	p.a.FreeNode(spread.ID())
	return rest
}
