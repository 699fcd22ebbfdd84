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

// Package for segmenting Chinese text into part-of-speech tagged tokens
package tagger

import (
	"fmt"

	"github.com/go-ego/gse"
)

// A single segmented token with its part-of-speech tag
type TaggedToken struct {
	Surface, Tag string
}

// Tagger segments raw text into an ordered sequence of tagged tokens.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

// A GseTagger tags text with the gse segmenter and its HMM POS model.
type GseTagger struct {
	seg gse.Segmenter
}

// NewGseTagger loads the embedded gse dictionary, or a user dictionary if
// dictPaths are given.
func NewGseTagger(dictPaths ...string) (*GseTagger, error) {
	tagger := GseTagger{}
	if err := tagger.seg.LoadDict(dictPaths...); err != nil {
		return nil, fmt.Errorf("tagger.NewGseTagger: loading dictionary: %v", err)
	}
	return &tagger, nil
}

// Tag implements the Tagger interface.
func (g *GseTagger) Tag(text string) ([]TaggedToken, error) {
	if text == "" {
		return nil, nil
	}
	segPos := g.seg.Pos(text, true)
	tokens := make([]TaggedToken, 0, len(segPos))
	for _, sp := range segPos {
		tokens = append(tokens, TaggedToken{Surface: sp.Text, Tag: sp.Pos})
	}
	return tokens, nil
}
