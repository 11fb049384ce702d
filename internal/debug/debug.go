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

// Package debug contains the switch for checked builds.
//
// Building with -tags esastdebug turns on assertions that are too expensive
// for the ordinary fast paths: kind checks on handle construction, slot
// discriminants in the extra-data store, liveness checks on node reads, and
// owner-goroutine checks on the non-thread-safe allocators.
package debug

import (
	"fmt"

	"github.com/petermattis/goid"
)

// Assert panics with the given message if Enabled and cond is false.
//
// Callers on hot paths should guard the call with Enabled themselves, so that
// the arguments are not evaluated in unchecked builds.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Owner records which goroutine owns a value that must not be shared.
//
// The zero value is unowned. The first call to Check claims it for the calling
// goroutine. In unchecked builds Owner is empty and Check does nothing.
type Owner struct {
	gid ownerID
}

// Check claims o for the calling goroutine if it is unowned, and panics if it
// is owned by some other goroutine. what names the guarded value in the panic
// message.
func (o *Owner) Check(what string) {
	if !Enabled {
		return
	}
	id := goid.Get() + 1
	switch o.gid.load() {
	case 0:
		o.gid.store(id)
	case id:
	default:
		panic(fmt.Sprintf("%s: used from goroutine %d, but owned by goroutine %d", what, id-1, o.gid.load()-1))
	}
}

// Release unclaims o, allowing a different goroutine to take ownership.
func (o *Owner) Release() {
	if Enabled {
		o.gid.store(0)
	}
}
