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

package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// TestReadSettings tests parsing of the JSON settings document
func TestReadSettings(t *testing.T) {
	simple := `{
		"male_keywords": ["他"],
		"female_keywords": ["她"],
		"stopwords": ["的"],
		"adjective_pos_tags": ["a"],
		"window_size": 2,
		"font_path": "fonts/simhei.ttf"
	}`
	partial := `{"window_size": 5}`
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectWindow int
		expectMale   int
	}{
		{
			name:         "complete document",
			input:        simple,
			expectError:  false,
			expectWindow: 2,
			expectMale:   1,
		},
		{
			name:         "partial document keeps defaults",
			input:        partial,
			expectError:  false,
			expectWindow: 5,
			expectMale:   len(DefaultSettings().MaleKeywords),
		},
		{
			name:        "malformed document",
			input:       "{not json",
			expectError: true,
		},
		{
			name:        "negative window",
			input:       `{"window_size": -1}`,
			expectError: true,
		},
	}
	for _, tc := range tests {
		settings, err := ReadSettings(strings.NewReader(tc.input))
		if tc.expectError {
			if err == nil {
				t.Errorf("%s: expected an error", tc.name)
			}
			if settings.WindowSize != DefaultSettings().WindowSize {
				t.Errorf("%s: expected default fallback, got window %d", tc.name,
					settings.WindowSize)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if settings.WindowSize != tc.expectWindow {
			t.Errorf("%s: expected window %d, got: %d", tc.name, tc.expectWindow,
				settings.WindowSize)
		}
		if len(settings.MaleKeywords) != tc.expectMale {
			t.Errorf("%s: expected %d male keywords, got: %d", tc.name,
				tc.expectMale, len(settings.MaleKeywords))
		}
	}
}

// TestLoadSettingsMissing tests fallback to defaults for a missing file
func TestLoadSettingsMissing(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "no-such.json"))
	if err == nil {
		t.Error("TestLoadSettingsMissing: expected an error")
	}
	if settings.WindowSize != DefaultSettings().WindowSize {
		t.Errorf("TestLoadSettingsMissing: expected default window %d, got: %d",
			DefaultSettings().WindowSize, settings.WindowSize)
	}
}

// TestWriteSettings tests the save and load round trip
func TestWriteSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.WindowSize = 4
	settings.MaleKeywords = []string{"先生"}
	var buf bytes.Buffer
	if err := WriteSettings(settings, &buf); err != nil {
		t.Fatalf("TestWriteSettings: unexpected write error: %v", err)
	}
	got, err := ReadSettings(&buf)
	if err != nil {
		t.Fatalf("TestWriteSettings: unexpected read error: %v", err)
	}
	if got.WindowSize != 4 {
		t.Errorf("TestWriteSettings: expected window 4, got: %d", got.WindowSize)
	}
	if len(got.MaleKeywords) != 1 || got.MaleKeywords[0] != "先生" {
		t.Errorf("TestWriteSettings: expected male keywords [先生], got: %v",
			got.MaleKeywords)
	}
}

// TestSetup tests that Setup writes a loadable settings file
func TestSetup(t *testing.T) {
	fName := filepath.Join(t.TempDir(), DefaultFileName)
	if err := Setup(DefaultSettings(), fName); err != nil {
		t.Fatalf("TestSetup: unexpected error: %v", err)
	}
	got, err := LoadSettings(fName)
	if err != nil {
		t.Fatalf("TestSetup: unexpected load error: %v", err)
	}
	if len(got.FemaleKeywords) != len(DefaultSettings().FemaleKeywords) {
		t.Errorf("TestSetup: expected %d female keywords, got: %d",
			len(DefaultSettings().FemaleKeywords), len(got.FemaleKeywords))
	}
}
