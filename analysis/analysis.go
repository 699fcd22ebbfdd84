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

// Package for gendered co-occurrence analysis of tagged Chinese text
//
// This includes
// - scanning the token sequence for gender keyword occurrences
// - collecting adjectives within a fixed window around each occurrence
// - tallying adjective frequencies per gender class
package analysis

import (
	"sort"

	"github.com/corpustools/genderlens/config"
	"github.com/corpustools/genderlens/tagger"
)

// FreqTable maps an adjective surface form to its occurrence count.
type FreqTable map[string]int

// Put adds one occurrence of the given surface form.
func (ft FreqTable) Put(surface string) {
	ft[surface]++
}

// Merge adds all counts from the other table.
func (ft FreqTable) Merge(other FreqTable) {
	for surface, count := range other {
		ft[surface] += count
	}
}

// UnionKeys returns the sorted union of the keys of both tables. Sorting
// keeps report and chart output stable across runs.
func UnionKeys(male, female FreqTable) []string {
	seen := make(map[string]bool)
	keys := []string{}
	for surface := range male {
		if !seen[surface] {
			seen[surface] = true
			keys = append(keys, surface)
		}
	}
	for surface := range female {
		if !seen[surface] {
			seen[surface] = true
			keys = append(keys, surface)
		}
	}
	sort.Strings(keys)
	return keys
}

// Result bundles the per-gender adjective tallies for one text.
type Result struct {
	Male, Female FreqTable
}

// An Analyzer extracts gendered adjective co-occurrences from a tagged
// token sequence. The settings value is fixed at construction.
type Analyzer struct {
	maleKeywords, femaleKeywords, adjectiveTags map[string]bool
	windowSize                                  int
}

// NewAnalyzer builds an analyzer from the given settings.
func NewAnalyzer(settings config.Settings) *Analyzer {
	return &Analyzer{
		maleKeywords:   toSet(settings.MaleKeywords),
		femaleKeywords: toSet(settings.FemaleKeywords),
		adjectiveTags:  toSet(settings.AdjectivePOSTags),
		windowSize:     settings.WindowSize,
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range words {
		set[w] = true
	}
	return set
}

// windowAdjectives collects the adjectives within the window around
// position i, left side first, then right side. Both sides are clamped to
// the bounds of the token sequence.
func (a *Analyzer) windowAdjectives(tokens []tagger.TaggedToken, i int) []string {
	adjectives := []string{}
	start := i - a.windowSize
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if a.adjectiveTags[tokens[j].Tag] {
			adjectives = append(adjectives, tokens[j].Surface)
		}
	}
	end := i + a.windowSize + 1
	if end > len(tokens) {
		end = len(tokens)
	}
	for j := i + 1; j < end; j++ {
		if a.adjectiveTags[tokens[j].Tag] {
			adjectives = append(adjectives, tokens[j].Surface)
		}
	}
	return adjectives
}

// Analyze scans the token sequence and tallies adjectives around every
// gender keyword occurrence. Each occurrence triggers an independent
// window scan, so an adjective inside overlapping windows is counted once
// per occurrence.
func (a *Analyzer) Analyze(tokens []tagger.TaggedToken) Result {
	result := Result{
		Male:   FreqTable{},
		Female: FreqTable{},
	}
	for i, token := range tokens {
		var table FreqTable
		if a.maleKeywords[token.Surface] {
			table = result.Male
		} else if a.femaleKeywords[token.Surface] {
			table = result.Female
		} else {
			continue
		}
		for _, adjective := range a.windowAdjectives(tokens, i) {
			table.Put(adjective)
		}
	}
	return result
}
