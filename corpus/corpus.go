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

// Package for resolving corpus input files and mirrored output directories
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TextSuffix is the file suffix matched when enumerating a directory.
const TextSuffix = ".txt"

// A Loader resolves and reads corpus texts.
type Loader interface {

	// Method to read the full contents of a corpus text
	// Param:
	//   fName: the file name containing the text
	ReadText(fName string) (string, error)

	// Method to list the text files directly under a directory, sorted
	// Param:
	//   dir: the directory to enumerate
	ListTexts(dir string) ([]string, error)
}

// A FileLoader loads corpus texts from the local filesystem.
type FileLoader struct{}

// ReadText implements the Loader interface.
func (FileLoader) ReadText(fName string) (string, error) {
	b, err := os.ReadFile(fName)
	if err != nil {
		return "", fmt.Errorf("corpus.ReadText: reading %s: %v", fName, err)
	}
	return string(b), nil
}

// ListTexts implements the Loader interface. Only files directly under dir
// with the text suffix are returned; subdirectories are not descended
// into.
func (FileLoader) ListTexts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus.ListTexts: reading %s: %v", dir, err)
	}
	fNames := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), TextSuffix) {
			continue
		}
		fNames = append(fNames, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(fNames)
	return fNames, nil
}

// Stem returns the file name without directory or extension, used to name
// the per-file output subdirectory.
func Stem(fName string) string {
	base := filepath.Base(fName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputDir returns the mirrored output directory for one input file and
// creates it along with any missing parents.
func OutputDir(outDir, inputFile string) (string, error) {
	dir := filepath.Join(outDir, Stem(inputFile))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("corpus.OutputDir: creating %s: %v", dir, err)
	}
	return dir, nil
}
