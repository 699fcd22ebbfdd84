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

// Package for rendering analysis results as images and CSV reports
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/corpustools/genderlens/analysis"
)

// Output file names written for each analyzed text
const (
	WordCloudFile  = "wordcloud.png"
	ComparisonFile = "comparison.png"
	ReportFile     = "report.csv"
)

// WriteReport writes the CSV report over the union of adjective keys in
// both tables, one row per adjective, counts zero-filled where absent. An
// empty union yields the header row only.
func WriteReport(result analysis.Result, w io.Writer) error {
	writer := csv.NewWriter(w)
	header := []string{"adjective", "male_count", "female_count"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("render.WriteReport: writing header: %v", err)
	}
	for _, adjective := range analysis.UnionKeys(result.Male, result.Female) {
		row := []string{
			adjective,
			strconv.Itoa(result.Male[adjective]),
			strconv.Itoa(result.Female[adjective]),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("render.WriteReport: writing row for %s: %v",
				adjective, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("render.WriteReport: flushing: %v", err)
	}
	return nil
}

// WriteReportFile writes the CSV report to fName.
func WriteReportFile(result analysis.Result, fName string) error {
	f, err := os.Create(fName)
	if err != nil {
		return fmt.Errorf("render.WriteReportFile: creating %s: %v", fName, err)
	}
	defer f.Close()
	return WriteReport(result, f)
}
