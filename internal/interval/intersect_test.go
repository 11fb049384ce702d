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

package interval_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/esast/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type in struct {
		start, end int
		value      string
	}
	type out = interval.Entry[int, []string]

	tests := []struct {
		name     string
		ranges   []in
		want     []out
		disjoint []bool
	}{
		{
			name:     "one",
			ranges:   []in{{0, 9, "foo"}},
			want:     []out{{0, 9, []string{"foo"}}},
			disjoint: []bool{true},
		},
		{
			name:   "apart",
			ranges: []in{{30, 39, "bar"}, {0, 9, "foo"}, {20, 25, "baz"}},
			want: []out{
				{0, 9, []string{"foo"}},
				{20, 25, []string{"baz"}},
				{30, 39, []string{"bar"}},
			},
			disjoint: []bool{true, true, true},
		},
		{
			name:   "adjacent",
			ranges: []in{{0, 9, "foo"}, {10, 19, "bar"}},
			want: []out{
				{0, 9, []string{"foo"}},
				{10, 19, []string{"bar"}},
			},
			disjoint: []bool{true, true},
		},
		{
			name:   "inside",
			ranges: []in{{0, 9, "foo"}, {1, 2, "bar"}},
			want: []out{
				{0, 0, []string{"foo"}},
				{1, 2, []string{"foo", "bar"}},
				{3, 9, []string{"foo"}},
			},
			disjoint: []bool{true, false},
		},
		{
			name:   "same",
			ranges: []in{{0, 9, "foo"}, {0, 9, "bar"}},
			want: []out{
				{0, 9, []string{"foo", "bar"}},
			},
			disjoint: []bool{true, false},
		},
		{
			name:   "overhang",
			ranges: []in{{0, 9, "foo"}, {9, 12, "bar"}},
			want: []out{
				{0, 8, []string{"foo"}},
				{9, 9, []string{"foo", "bar"}},
				{10, 12, []string{"bar"}},
			},
			disjoint: []bool{true, false},
		},
		{
			name:   "bridge",
			ranges: []in{{0, 9, "foo"}, {30, 39, "bar"}, {5, 34, "baz"}},
			want: []out{
				{0, 4, []string{"foo"}},
				{5, 9, []string{"foo", "baz"}},
				{10, 29, []string{"baz"}},
				{30, 34, []string{"bar", "baz"}},
				{35, 39, []string{"bar"}},
			},
			disjoint: []bool{true, true, false},
		},
		{
			name:   "cover",
			ranges: []in{{5, 6, "foo"}, {8, 9, "bar"}, {0, 20, "baz"}},
			want: []out{
				{0, 4, []string{"baz"}},
				{5, 6, []string{"foo", "baz"}},
				{7, 7, []string{"baz"}},
				{8, 9, []string{"bar", "baz"}},
				{10, 20, []string{"baz"}},
			},
			disjoint: []bool{true, true, false},
		},
		{
			name:   "nested",
			ranges: []in{{0, 20, "a"}, {2, 10, "b"}, {4, 6, "c"}, {12, 14, "d"}},
			want: []out{
				{0, 1, []string{"a"}},
				{2, 3, []string{"a", "b"}},
				{4, 6, []string{"a", "b", "c"}},
				{7, 10, []string{"a", "b"}},
				{11, 11, []string{"a"}},
				{12, 14, []string{"a", "d"}},
				{15, 20, []string{"a"}},
			},
			disjoint: []bool{true, false, false, false},
		},
		{
			name:     "max",
			ranges:   []in{{0, math.MaxInt, "foo"}, {math.MaxInt, math.MaxInt, "bar"}},
			want:     []out{{0, math.MaxInt - 1, []string{"foo"}}, {math.MaxInt, math.MaxInt, []string{"foo", "bar"}}},
			disjoint: []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m interval.Intersect[int, string]
			var disjoint []bool
			for _, r := range tt.ranges {
				disjoint = append(disjoint, m.Insert(r.start, r.end, r.value))
			}
			assert.Equal(t, tt.want, slices.Collect(m.Entries()))
			assert.Equal(t, tt.disjoint, disjoint)
			assert.Equal(t, len(tt.want), m.Len())

			for _, e := range tt.want {
				assert.Equal(t, e, m.Get(e.Start))
				assert.Equal(t, e, m.Get(e.End))
			}
		})
	}
}

func TestGetMiss(t *testing.T) {
	t.Parallel()

	var m interval.Intersect[uint32, int]
	assert.Nil(t, m.Get(5).Value)

	m.Insert(10, 20, 1)
	assert.Nil(t, m.Get(5).Value)
	assert.Nil(t, m.Get(21).Value)
	assert.Equal(t, []int{1}, m.Get(15).Value)
	assert.True(t, m.Get(15).Contains(10))
	assert.False(t, m.Get(15).Contains(21))

	assert.Panics(t, func() { m.Insert(3, 2, 0) })
}
