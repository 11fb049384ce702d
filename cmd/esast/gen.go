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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bufbuild/esast/internal/schema"
)

var errNoPackage = errors.New("no package name: pass --package or set GOPACKAGE")

func genCmd(e *env) *cobra.Command {
	var pkg, outDir string
	cmd := &cobra.Command{
		Use:   "gen schema.yaml",
		Short: "Generate node handles from a schema",
		Long: `Generate node handles from a schema.

For a schema named nodes.yaml, this writes nodes.go, nodes_walk.go and
nodes_clone.go next to it, or into --out-dir. The package clause defaults to
$GOPACKAGE, which go generate sets.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			if filepath.Ext(path) != ".yaml" {
				return fmt.Errorf("%s: schema file must end in .yaml", path)
			}
			if pkg == "" {
				pkg = os.Getenv("GOPACKAGE")
			}
			if pkg == "" {
				return errNoPackage
			}

			s, err := schema.Load(path)
			if err != nil {
				return err
			}
			files, err := schema.Render(s, schema.Options{
				Package: pkg,
				Binary:  "github.com/bufbuild/esast/cmd/esast",
				Prefix:  strings.TrimSuffix(filepath.Base(path), ".yaml"),
			})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			dir := outDir
			if dir == "" {
				dir = filepath.Dir(path)
			}
			for _, f := range files {
				name := filepath.Join(dir, f.Name)
				if err := os.WriteFile(name, f.Data, 0o644); err != nil { //nolint:gosec // Generated source is world-readable.
					return err
				}
				e.log.Info("wrote", "file", name, "size", humanize.IBytes(uint64(len(f.Data))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pkg, "package", "", "package clause of the generated files (default $GOPACKAGE)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory to write into (default: the schema's directory)")
	return cmd
}
