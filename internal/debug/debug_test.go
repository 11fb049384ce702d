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

package debug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/esast/internal/debug"
)

func TestAssert(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { debug.Assert(true, "fine") })
	if debug.Enabled {
		assert.PanicsWithValue(t, "bad 42", func() { debug.Assert(false, "bad %d", 42) })
	} else {
		assert.NotPanics(t, func() { debug.Assert(false, "bad %d", 42) })
	}
}

func TestOwner(t *testing.T) {
	t.Parallel()

	var o debug.Owner
	o.Check("thing")
	o.Check("thing")

	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		o.Check("thing")
	}()
	if debug.Enabled {
		assert.NotNil(t, <-done)
	} else {
		assert.Nil(t, <-done)
	}

	o.Release()
	go func() {
		defer func() { done <- recover() }()
		o.Check("thing")
	}()
	assert.Nil(t, <-done)
}
