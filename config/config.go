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

// Package for loading and saving analyzer settings
//
// Settings are read from a JSON file and fall back to hardcoded defaults
// when the file is missing or malformed. A Settings value is immutable for
// the duration of a run and passed explicitly to each analysis call.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DefaultFileName is the settings file written by Setup when no explicit
// config path is given.
const DefaultFileName = "config.json"

// Settings holds the keyword vocabularies and extraction parameters for a
// single run.
type Settings struct {
	MaleKeywords     []string `json:"male_keywords"`
	FemaleKeywords   []string `json:"female_keywords"`
	Stopwords        []string `json:"stopwords"`
	AdjectivePOSTags []string `json:"adjective_pos_tags"`
	WindowSize       int      `json:"window_size"`
	FontPath         string   `json:"font_path"`
}

// DefaultSettings returns the hardcoded fallback configuration.
func DefaultSettings() Settings {
	return Settings{
		MaleKeywords:   []string{"他", "父亲", "儿子", "兄弟", "男人", "先生", "男孩"},
		FemaleKeywords: []string{"她", "母亲", "女儿", "姐妹", "女人", "女士", "女孩"},
		Stopwords: []string{"的", "了", "和", "是", "就", "都", "而", "及", "与",
			"着", "或", "一个", "没有", "这个", "那个", "这样", "那样"},
		AdjectivePOSTags: []string{"a", "ad", "an"},
		WindowSize:       3,
		FontPath:         "simhei.ttf",
	}
}

// ReadSettings parses a JSON settings document. Fields absent from the
// document keep their default values.
func ReadSettings(r io.Reader) (Settings, error) {
	settings := DefaultSettings()
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&settings); err != nil {
		return DefaultSettings(), fmt.Errorf("config.ReadSettings: decoding settings: %v", err)
	}
	if settings.WindowSize < 0 {
		return DefaultSettings(), fmt.Errorf("config.ReadSettings: window_size %d is negative",
			settings.WindowSize)
	}
	return settings, nil
}

// LoadSettings reads the settings file at fName. On any failure the
// hardcoded defaults are returned along with the error so the caller can
// log and continue.
func LoadSettings(fName string) (Settings, error) {
	f, err := os.Open(fName)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("config.LoadSettings: opening %s: %v", fName, err)
	}
	defer f.Close()
	return ReadSettings(f)
}

// WriteSettings serializes the settings as indented JSON.
func WriteSettings(settings Settings, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(settings); err != nil {
		return fmt.Errorf("config.WriteSettings: encoding settings: %v", err)
	}
	return nil
}

// SaveSettings writes the settings file to fName, replacing any existing
// file.
func SaveSettings(settings Settings, fName string) error {
	f, err := os.Create(fName)
	if err != nil {
		return fmt.Errorf("config.SaveSettings: creating %s: %v", fName, err)
	}
	defer f.Close()
	return WriteSettings(settings, f)
}

// Setup materializes the effective settings to fName so later runs load
// them from disk. It replaces the interactive first-run prompt of earlier
// versions of this tool and needs no terminal.
func Setup(settings Settings, fName string) error {
	return SaveSettings(settings, fName)
}
