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

	"github.com/bufbuild/esast/text"
)

// CloneNode deep-copies the tree rooted at id in src into dst, and returns
// the ID of the copy in dst. src and dst may be the same AST.
//
// Every child is owned by its parent, so the copy shares no nodes or
// extra-data slots with the original. Text is re-added to dst's allocators,
// unless src and dst are the same, in which case refs are shared.
func CloneNode(src *AST, id NodeID, dst *AST) NodeID {
	c := cloner{src: src, dst: dst}
	return c.node(id)
}

// cloner carries the source and destination of a deep copy.
type cloner struct {
	src, dst *AST
}

func (c *cloner) same() bool {
	return c.src == c.dst
}

func (c *cloner) str(r text.Ref) text.Ref {
	if c.same() {
		return r
	}
	return c.dst.idents.Intern(c.src.idents.Get(r))
}

func (c *cloner) optStr(r text.OptionalRef) text.OptionalRef {
	ref, ok := r.Get()
	if !ok {
		return text.None
	}
	return text.Some(c.str(ref))
}

func (c *cloner) wtf8(r text.Ref) text.Ref {
	if c.same() {
		return r
	}
	return c.dst.literals.AddWTF8(c.src.literals.Get(r))
}

func (c *cloner) optWtf8(r text.OptionalRef) text.OptionalRef {
	ref, ok := r.Get()
	if !ok {
		return text.None
	}
	return text.Some(c.wtf8(ref))
}

func (c *cloner) bigInt(id BigIntID) BigIntID {
	return c.dst.NewBigInt(new(big.Int).Set(c.src.BigInt(id)))
}

func cloneRange[T Node](c *cloner, r SubRange[T]) SubRange[T] {
	b := c.dst.BeginRange()
	for i := range r.Len() {
		c.dst.Push(c.node(r.id(c.src, i)))
	}
	return EndRange[T](c.dst, b)
}

func badKind(what string, k Kind) string {
	return fmt.Sprintf("esast/ast: %s: unexpected %v node", what, k)
}
