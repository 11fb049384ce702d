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

// Package ast is a compact, arena-based syntax tree for ECMAScript.
//
// # Storage
//
// Every node lives in an [AST], which stores each node as a fixed 16-byte
// record: its [Span], its [Kind], and a 32-bit payload. Nodes are referred to
// by [NodeID], a 1-based index into that table; zero means "no node".
//
// A node's fields do not live in its record. A kind with no fields has an
// empty payload. A kind with exactly one field small enough to fit in 32 bits
// (a child, an optional child, a bool or an enum) stores it inline in the
// payload. Every other kind stores the offset of its first field in the
// extra-data store, an append-only array of 8-byte [Slot]s; field i lives at
// offset+i. Lists of children are [SubRange]s: a contiguous run of slots, one
// child per slot, described by a start and an end offset stored in a single
// slot.
//
// Strings are not stored in nodes either: identifiers are interned in the
// AST's [text.Interner], and literal values, which may contain lone
// surrogates, are appended to its [text.Buffer].
//
// # Handles
//
// Each node kind has a handle type, such as [BinaryExpression], which wraps a
// NodeID. Handles provide typed getters, setters and builders for the
// kind's fields; they are generated from nodes.yaml. Tagged unions of kinds,
// such as [Expression], are called choices and have handle types of their
// own with conversions to each alternative.
//
// Handles do not hold on to their AST; every operation takes it explicitly.
//
// # Lifetime
//
// Nodes can be freed with [AST.FreeNode], after which their slot is reused,
// most recently freed first, by later builders. IDs are not generational:
// using an ID after its node was freed is a programming error. Building with
// -tags esastdebug turns such uses into panics.
//
// An AST must only be used by one goroutine at a time.
package ast

//go:generate go run github.com/bufbuild/esast/internal/astgen nodes.yaml
