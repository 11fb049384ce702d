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

// Package mapsx contains helpers for set-like and insert-once maps.
package mapsx

// Contains returns whether k is a key of m.
func Contains[M ~map[K]V, K comparable, V any](m M, k K) bool {
	_, ok := m[k]
	return ok
}

// Add maps k to v unless k is already present. Returns the value k maps to
// afterwards, and whether v was inserted.
func Add[M ~map[K]V, K comparable, V any](m M, k K, v V) (mapped V, inserted bool) {
	if old, ok := m[k]; ok {
		return old, false
	}
	m[k] = v
	return v, true
}

// AddZero is like [Add] with the zero value of V.
func AddZero[M ~map[K]V, K comparable, V any](m M, k K) (inserted bool) {
	var zero V
	_, inserted = Add(m, k, zero)
	return inserted
}
