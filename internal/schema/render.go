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

package schema

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// outputs maps each template to the suffix of the file it renders.
var outputs = []struct{ tmpl, suffix string }{
	{"nodes.go.tmpl", ".go"},
	{"nodes_walk.go.tmpl", "_walk.go"},
	{"nodes_clone.go.tmpl", "_clone.go"},
}

// File is a rendered Go source file.
type File struct {
	Name string
	Data []byte
}

// Options configures [Render].
type Options struct {
	Package string // The package clause of the generated files.
	Binary  string // The generator's import path, for the DO NOT EDIT line.
	Prefix  string // Generated file names start with this, e.g. "nodes".
}

// Render renders the generated code for s. The returned files are gofmt'd.
func Render(s *Schema, opts Options) ([]File, error) {
	tmpl, err := template.New("schema").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"capfirst": capfirst,
	}).ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	input := struct {
		Binary, Package string
		Schema          *Schema
	}{opts.Binary, opts.Package, s}

	files := make([]File, 0, len(outputs))
	for _, out := range outputs {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, out.tmpl, input); err != nil {
			return nil, err
		}
		name := opts.Prefix + out.suffix
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", name, err)
		}
		files = append(files, File{Name: name, Data: src})
	}
	return files, nil
}

// makeDocs turns data into a // comment, with each line prefixed by indent.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

func capfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
