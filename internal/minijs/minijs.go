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
// Package minijs reads a small, forgiving subset of ECMAScript into an
// [ast.AST].
//
// It exists so that tests, golden corpora and the esast command can build
// trees from text. It accepts most everyday statements and expressions, but
// makes no attempt at rejecting every program the language forbids, and
// does not resolve scopes.
//
// Nodes built before an error is found are left in the AST, unreachable from
// any root.
package minijs

import (
	"fmt"

	"github.com/bufbuild/esast/ast"
)

// Options configures [Parse].
type Options struct {
	// Parse as a module rather than a script. This only affects the
	// source type recorded on the program.
	Module bool
}

// Error is a syntax error.
type Error struct {
	Offset int // Byte offset of the offending text.
	Msg    string
}

// Error implements [error].
func (e *Error) Error() string {
	return fmt.Sprintf("minijs: offset %d: %s", e.Offset, e.Msg)
}

// Parse reads src as a complete program.
func Parse(a *ast.AST, src string, opts Options) (prog ast.Program, err error) {
	p, err := newParser(a, src)
	if err != nil {
		return ast.Program{}, err
	}
	defer p.cleanup(&err)
	defer catch(&err)
	return p.program(opts), nil
}

// ParseExpression reads src as a single expression.
func ParseExpression(a *ast.AST, src string) (expr ast.Expression, err error) {
	p, err := newParser(a, src)
	if err != nil {
		return ast.Expression{}, err
	}
	defer p.cleanup(&err)
	defer catch(&err)
	e := p.expression(false)
	if !p.at(tokEOF) {
		p.unexpected()
	}
	return e, nil
}
