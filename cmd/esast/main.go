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

// Command esast inspects ECMAScript syntax trees and regenerates the node
// handles from their schema.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "esast: %v\n", err)
		os.Exit(1)
	}
}

// env is the state shared by every subcommand.
type env struct {
	cfg *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{
		cfg: newConfig(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	var verbose bool
	root := &cobra.Command{
		Use:           "esast",
		Short:         "Inspect ECMAScript syntax trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			e.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		dumpCmd(e),
		atCmd(e),
		layoutCmd(e),
		genCmd(e),
	)
	return root
}
