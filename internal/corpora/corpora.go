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

// Package corpora runs golden tests over a directory of input files.
//
// Each input file is one test case. A case's expected outputs live next to
// it, in files named after the input with an extra extension, so that
// testdata/foo.js is checked against testdata/foo.js.dump and so on.
package corpora

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of golden test cases.
type Corpus struct {
	// The directory holding the cases, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob. Cases whose path matches it
	// have their output files rewritten instead of checked. The test still
	// fails, so that a refresh is never mistaken for a pass.
	Refresh string

	// The extension (without a dot) of input files, e.g. "js".
	Extension string

	// The outputs each case produces. A missing output file is the same as
	// an empty one, and refreshing an empty output deletes its file.
	Outputs []Output

	// Test runs one case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one output of a test case.
type Output struct {
	// Appended to the input file's name, after a dot, to find the expected
	// value.
	Extension string

	// Compares outputs. If nil, outputs must match exactly.
	Compare Compare
}

// Compare compares an output against its expected value, returning a
// description of the mismatch, or "" if they match.
type Compare func(got, want string) string

// Run runs every case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: walking %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no .%s files under %q", c.Extension, root)
	}
	slices.Sort(cases)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs matching %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: reading %q: %v", path, err)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d outputs, want %d", len(results), len(c.Outputs))
			}

			rewrite := false
			if refresh != "" {
				rewrite, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				file := path + "." + output.Extension
				if rewrite {
					if err := write(file, results[i]); err != nil {
						t.Errorf("corpora: refreshing %q: %v", file, err)
					}
					continue
				}

				want, err := os.ReadFile(file)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("corpora: reading %q: %v", file, err)
					continue
				}
				cmp := output.Compare
				if cmp == nil {
					cmp = Diff
				}
				if msg := cmp(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", file, msg)
				}
			}
		})
	}
}

// write replaces the contents of file, deleting it if data is empty.
func write(file, data string) error {
	if data == "" {
		if err := os.Remove(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(file, []byte(data), 0o644)
}

// Diff is the default [Compare]. Mismatches are reported as a colored
// unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine the calling test's directory")
	}
	return filepath.Dir(file)
}
