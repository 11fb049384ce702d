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

// Prologue splits the body of this program into its leading directives, such
// as "use strict", and the remaining items. Nothing is copied.
func (n Program) Prologue(a *AST) (directives SubRange[Directive], rest SubRange[ModuleItem]) {
	return prologue(a, n.Body(a))
}

// Prologue splits the body of this block into its leading directives and the
// remaining statements. Only function bodies have directive prologues.
func (n BlockStatement) Prologue(a *AST) (directives SubRange[Directive], rest SubRange[Statement]) {
	return prologue(a, n.Body(a))
}

func prologue[T Node](a *AST, body SubRange[T]) (SubRange[Directive], SubRange[T]) {
	i := 0
	for i < body.Len() && a.Kind(body.id(a, i)) == KindDirective {
		i++
	}
	head, tail := body.SplitOff(i)
	return Retype[Directive](head), tail
}
