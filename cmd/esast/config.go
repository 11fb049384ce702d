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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings read from ESAST_* environment variables, which flags override.
const (
	keyWorkers = "workers"
	keyWidth   = "width"
)

const (
	envPrefix    = "ESAST"
	defaultWidth = 60
)

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyWorkers, 0)
	v.SetDefault(keyWidth, defaultWidth)
	return v
}

// bind makes the named flags of cmd take precedence over the environment.
//
// Several commands define the same flags, so this must run once the command
// being executed is known, not when it is constructed.
func (e *env) bind(cmd *cobra.Command, keys ...string) error {
	for _, key := range keys {
		if err := e.cfg.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("binding --%s: %w", key, err)
		}
	}
	return nil
}
