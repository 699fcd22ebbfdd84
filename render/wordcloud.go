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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/psykhi/wordclouds"

	"github.com/corpustools/genderlens/analysis"
)

// Panel dimensions matching the layout of the original figure: two
// 800x400 clouds side by side.
const (
	cloudWidth  = 800
	cloudHeight = 400
)

var cloudColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// drawCloud renders one frequency table as a word-cloud panel. An empty
// table renders as a blank panel.
func drawCloud(table analysis.FreqTable, fontPath string) image.Image {
	if len(table) == 0 {
		blank := image.NewRGBA(image.Rect(0, 0, cloudWidth, cloudHeight))
		draw.Draw(blank, blank.Bounds(), image.White, image.Point{}, draw.Src)
		return blank
	}
	cloud := wordclouds.NewWordcloud(table,
		wordclouds.FontFile(fontPath),
		wordclouds.FontMaxSize(90),
		wordclouds.FontMinSize(12),
		wordclouds.Width(cloudWidth),
		wordclouds.Height(cloudHeight),
		wordclouds.Colors(cloudColors),
		wordclouds.BackgroundColor(color.White),
	)
	return cloud.Draw()
}

// WriteWordClouds renders the male and female clouds side by side into a
// single PNG at fName.
func WriteWordClouds(result analysis.Result, fontPath, fName string) error {
	if _, err := os.Stat(fontPath); err != nil {
		return fmt.Errorf("render.WriteWordClouds: font %s: %v", fontPath, err)
	}
	male := drawCloud(result.Male, fontPath)
	female := drawCloud(result.Female, fontPath)

	combined := image.NewRGBA(image.Rect(0, 0, 2*cloudWidth, cloudHeight))
	draw.Draw(combined, combined.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(combined, image.Rect(0, 0, cloudWidth, cloudHeight), male,
		male.Bounds().Min, draw.Over)
	draw.Draw(combined, image.Rect(cloudWidth, 0, 2*cloudWidth, cloudHeight),
		female, female.Bounds().Min, draw.Over)

	f, err := os.Create(fName)
	if err != nil {
		return fmt.Errorf("render.WriteWordClouds: creating %s: %v", fName, err)
	}
	defer f.Close()
	if err := png.Encode(f, combined); err != nil {
		return fmt.Errorf("render.WriteWordClouds: encoding %s: %v", fName, err)
	}
	return nil
}
