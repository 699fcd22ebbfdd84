// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

// TestReadText tests reading a corpus text from disk
func TestReadText(t *testing.T) {
	dir := t.TempDir()
	fName := filepath.Join(dir, "sample.txt")
	expect := "他是一个好父亲。"
	if err := os.WriteFile(fName, []byte(expect), 0644); err != nil {
		t.Fatalf("TestReadText: writing fixture: %v", err)
	}
	loader := FileLoader{}
	got, err := loader.ReadText(fName)
	if err != nil {
		t.Fatalf("TestReadText: unexpected error: %v", err)
	}
	if got != expect {
		t.Errorf("TestReadText: expected %q, got: %q", expect, got)
	}
	if _, err := loader.ReadText(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("TestReadText: expected an error for a missing file")
	}
}

// TestListTexts tests directory enumeration with the suffix filter
func TestListTexts(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		subdirs   []string
		expectLen int
	}{
		{
			name:      "empty directory",
			expectLen: 0,
		},
		{
			name:      "only matching suffix",
			files:     []string{"a.txt", "b.txt", "notes.md", "c.csv"},
			expectLen: 2,
		},
		{
			name:      "subdirectories skipped",
			files:     []string{"a.txt"},
			subdirs:   []string{"nested.txt"},
			expectLen: 1,
		},
	}
	loader := FileLoader{}
	for _, tc := range tests {
		dir := t.TempDir()
		for _, f := range tc.files {
			if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644); err != nil {
				t.Fatalf("%s: writing fixture: %v", tc.name, err)
			}
		}
		for _, d := range tc.subdirs {
			if err := os.Mkdir(filepath.Join(dir, d), 0755); err != nil {
				t.Fatalf("%s: creating fixture dir: %v", tc.name, err)
			}
		}
		fNames, err := loader.ListTexts(dir)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if len(fNames) != tc.expectLen {
			t.Errorf("%s: expected %d files, got: %d (%v)", tc.name,
				tc.expectLen, len(fNames), fNames)
		}
	}
}

// TestStem tests the output subdirectory naming
func TestStem(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple file",
			input:  "novel.txt",
			expect: "novel",
		},
		{
			name:   "nested path",
			input:  filepath.Join("texts", "chapter1.txt"),
			expect: "chapter1",
		},
		{
			name:   "no extension",
			input:  "readme",
			expect: "readme",
		},
	}
	for _, tc := range tests {
		if got := Stem(tc.input); got != tc.expect {
			t.Errorf("%s: expected %q, got: %q", tc.name, tc.expect, got)
		}
	}
}

// TestOutputDir tests mirrored output directory creation
func TestOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "output")
	got, err := OutputDir(outDir, filepath.Join("texts", "novel.txt"))
	if err != nil {
		t.Fatalf("TestOutputDir: unexpected error: %v", err)
	}
	expect := filepath.Join(outDir, "novel")
	if got != expect {
		t.Errorf("TestOutputDir: expected %q, got: %q", expect, got)
	}
	info, err := os.Stat(got)
	if err != nil || !info.IsDir() {
		t.Errorf("TestOutputDir: expected directory at %s: %v", got, err)
	}
}
