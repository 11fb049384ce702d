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

package text

import (
	"github.com/bufbuild/esast/internal/debug"
	"github.com/bufbuild/esast/internal/ext/mapsx"
	"github.com/bufbuild/esast/internal/ext/unsafex"
)

// Interner is a deduplicating string allocator.
//
// Interning equal strings yields equal [Ref]s, so refs issued by the same
// Interner can be compared for equality directly.
//
// The zero value is empty and ready to use. An Interner must not be used by
// multiple goroutines concurrently.
type Interner struct {
	owner debug.Owner
	data  chunks

	// Keys alias the bytes in data, which are never written to again.
	index map[string]Ref
}

// Intern interns s, returning a ref to the stored copy.
func (in *Interner) Intern(s string) Ref {
	if ref, ok := in.Query(s); ok {
		return ref
	}

	in.data.reserve(len(s))
	lo := in.data.offset()
	in.data.writeString(s)
	ref := Ref{lo, in.data.offset()}

	if in.index == nil {
		in.index = make(map[string]Ref)
	}
	in.index[unsafex.StringAlias(in.data.get(ref.lo, ref.hi))] = ref
	return ref
}

// InternBytes is like [Interner.Intern], but takes a byte slice.
//
// b is copied if it needs to be stored, so it may be modified once this
// function returns.
func (in *Interner) InternBytes(b []byte) Ref {
	return in.Intern(unsafex.StringAlias(b))
}

// Query returns the ref for s if it has already been interned.
//
// The empty string is always interned.
func (in *Interner) Query(s string) (Ref, bool) {
	in.owner.Check("esast/text: Interner")
	if s == "" {
		return Ref{}, true
	}
	ref, ok := in.index[s]
	return ref, ok
}

// Get returns the string that ref refers to.
//
// The returned string aliases the interner's storage; it remains valid until
// the interner is reset.
func (in *Interner) Get(ref Ref) string {
	in.owner.Check("esast/text: Interner")
	return unsafex.StringAlias(in.data.get(ref.lo, ref.hi))
}

// GetOptional is like [Interner.Get], but returns false if ref is absent.
func (in *Interner) GetOptional(ref OptionalRef) (string, bool) {
	r, ok := ref.Get()
	if !ok {
		return "", false
	}
	return in.Get(r), true
}

// Len returns the number of distinct non-empty strings interned.
func (in *Interner) Len() int {
	return len(in.index)
}

// Size returns the number of bytes of storage in use.
func (in *Interner) Size() int {
	return in.data.size()
}

// Reset discards every interned string, invalidating all refs issued so far.
// Storage is retained for reuse.
func (in *Interner) Reset() {
	in.owner.Check("esast/text: Interner")
	clear(in.index)
	in.data.reset()
}

// Release gives up this interner's ownership by the current goroutine, so it
// may be handed to another one. This only matters in checked builds.
func (in *Interner) Release() {
	in.owner.Release()
}

// Set is a set of refs issued by a single [Interner].
type Set map[Ref]struct{}

// Contains returns whether s contains the given string.
func (s Set) Contains(in *Interner, key string) bool {
	k, ok := in.Query(key)
	return ok && mapsx.Contains(s, k)
}

// Add adds a ref to s, and returns whether it was added.
func (s Set) Add(ref Ref) (inserted bool) {
	return mapsx.AddZero(s, ref)
}

// Map is a map keyed by refs issued by a single [Interner].
type Map[T any] map[Ref]T

// Get returns the value that key maps to.
func (m Map[T]) Get(in *Interner, key string) (T, bool) {
	k, ok := in.Query(key)
	if !ok {
		var z T
		return z, false
	}
	v, ok := m[k]
	return v, ok
}

// Add adds a ref to m, and returns whether it was added.
func (m Map[T]) Add(ref Ref, v T) (mapped T, inserted bool) {
	return mapsx.Add(m, ref, v)
}
