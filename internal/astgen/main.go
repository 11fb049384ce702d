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

// astgen generates node handles from a schema file.
//
// To use it, place a //go:generate directive next to the schema:
//
//	//go:generate go run github.com/bufbuild/esast/internal/astgen nodes.yaml
//
// This writes nodes.go, nodes_walk.go and nodes_clone.go into the same
// directory. See package schema for the file format.
package main

import (
	"debug/buildinfo"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufbuild/esast/internal/schema"
)

// Main generates code for a single schema file.
func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}

	s, err := schema.Load(config)
	if err != nil {
		return err
	}

	files, err := schema.Render(s, schema.Options{
		Package: os.Getenv("GOPACKAGE"),
		Binary:  info.Path,
		Prefix:  strings.TrimSuffix(filepath.Base(config), ".yaml"),
	})
	if err != nil {
		return err
	}

	dir := filepath.Dir(config)
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o644); err != nil { //nolint:gosec // Generated source is world-readable.
			return err
		}
	}
	return nil
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
