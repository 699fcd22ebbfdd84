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

package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/corpustools/genderlens/analysis"
)

var (
	maleBarColor   = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	femaleBarColor = drawing.Color{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// loadFont parses the configured font file so chart labels can carry CJK
// glyphs.
func loadFont(fontPath string) (*truetype.Font, error) {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("render.loadFont: reading %s: %v", fontPath, err)
	}
	font, err := truetype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("render.loadFont: parsing %s: %v", fontPath, err)
	}
	return font, nil
}

// comparisonBars builds one bar pair per adjective in the sorted key
// union, male first, with missing counts rendered as zero.
func comparisonBars(result analysis.Result) []chart.Value {
	bars := []chart.Value{}
	for _, adjective := range analysis.UnionKeys(result.Male, result.Female) {
		bars = append(bars, chart.Value{
			Label: adjective,
			Value: float64(result.Male[adjective]),
			Style: chart.Style{FillColor: maleBarColor, StrokeWidth: 1},
		})
		bars = append(bars, chart.Value{
			Value: float64(result.Female[adjective]),
			Style: chart.Style{FillColor: femaleBarColor, StrokeWidth: 1},
		})
	}
	return bars
}

// WriteComparisonChart renders the grouped male/female frequency bar chart
// to a PNG at fName. The caller skips this step when the adjective union
// is empty.
func WriteComparisonChart(result analysis.Result, fontPath, fName string) error {
	bars := comparisonBars(result)
	if len(bars) == 0 {
		return fmt.Errorf("render.WriteComparisonChart: no adjectives to chart")
	}
	font, err := loadFont(fontPath)
	if err != nil {
		return err
	}
	graph := chart.BarChart{
		Title:      "Adjective frequency by gender keyword",
		TitleStyle: chart.Style{Font: font, FontSize: 16},
		Width:      1200,
		Height:     600,
		BarWidth:   28,
		BarSpacing: 12,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 48, Right: 24, Bottom: 64},
		},
		XAxis: chart.Style{Font: font, FontSize: 10},
		YAxis: chart.YAxis{
			Style:          chart.Style{Font: font, FontSize: 10},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	}
	f, err := os.Create(fName)
	if err != nil {
		return fmt.Errorf("render.WriteComparisonChart: creating %s: %v", fName, err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render.WriteComparisonChart: rendering %s: %v", fName, err)
	}
	return nil
}
