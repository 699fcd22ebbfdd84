/*
Command line utility to scan Chinese text for adjectives co-occurring with
gendered nouns and render word clouds, a comparison chart and a CSV report.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/corpustools/genderlens/analysis"
	"github.com/corpustools/genderlens/config"
	"github.com/corpustools/genderlens/corpus"
	"github.com/corpustools/genderlens/render"
	"github.com/corpustools/genderlens/tagger"
)

// emptyTagger stands in when the segmenter dictionary cannot be loaded so
// analysis degrades to empty counts instead of aborting.
type emptyTagger struct{}

func (emptyTagger) Tag(text string) ([]tagger.TaggedToken, error) {
	return nil, nil
}

// analyzeFile runs the full pipeline for one input text, writing outputs
// under <outDir>/<input-stem>/. Rendering failures are logged and the run
// continues so a bad font never blocks the CSV report.
func analyzeFile(fName, outDir string, settings config.Settings,
	tg tagger.Tagger, loader corpus.Loader) error {
	text, err := loader.ReadText(fName)
	if err != nil {
		return err
	}

	tokens, err := tg.Tag(text)
	if err != nil {
		log.Printf("main.analyzeFile: tagging %s failed, continuing with empty counts: %v",
			fName, err)
		tokens = nil
	}

	result := analysis.NewAnalyzer(settings).Analyze(tokens)

	dir, err := corpus.OutputDir(outDir, fName)
	if err != nil {
		return err
	}

	cloudFile := filepath.Join(dir, render.WordCloudFile)
	if err := render.WriteWordClouds(result, settings.FontPath, cloudFile); err != nil {
		log.Printf("main.analyzeFile: word cloud for %s: %v", fName, err)
	}

	if len(analysis.UnionKeys(result.Male, result.Female)) > 0 {
		chartFile := filepath.Join(dir, render.ComparisonFile)
		if err := render.WriteComparisonChart(result, settings.FontPath, chartFile); err != nil {
			log.Printf("main.analyzeFile: comparison chart for %s: %v", fName, err)
		}
	}

	reportFile := filepath.Join(dir, render.ReportFile)
	if err := render.WriteReportFile(result, reportFile); err != nil {
		log.Printf("main.analyzeFile: report for %s: %v", fName, err)
	}

	log.Printf("main.analyzeFile: results for %s written to %s", fName, dir)
	return nil
}

// analyzeDir analyzes every text file directly under dir independently. A
// directory with no matching files is a warning, not an error.
func analyzeDir(dir, outDir string, settings config.Settings,
	tg tagger.Tagger, loader corpus.Loader) error {
	fNames, err := loader.ListTexts(dir)
	if err != nil {
		return err
	}
	if len(fNames) == 0 {
		log.Printf("main.analyzeDir: no %s files found in %s", corpus.TextSuffix, dir)
		return nil
	}
	for _, fName := range fNames {
		if err := analyzeFile(fName, outDir, settings, tg, loader); err != nil {
			log.Printf("main.analyzeDir: analyzing %s: %v", fName, err)
		}
	}
	return nil
}

// loadSettings resolves the effective settings and materializes the
// default config file on first run or when setup is forced.
func loadSettings(configFile string, setup bool) config.Settings {
	fName := configFile
	if fName == "" {
		fName = config.DefaultFileName
	}

	settings := config.DefaultSettings()
	if _, err := os.Stat(fName); err == nil {
		settings, err = config.LoadSettings(fName)
		if err != nil {
			log.Printf("main.loadSettings: using defaults: %v", err)
		}
	} else if !setup && configFile != "" {
		log.Printf("main.loadSettings: config %s not found, using defaults", fName)
	} else {
		// First run with no settings file yet
		setup = true
	}

	if setup {
		if err := config.Setup(settings, fName); err != nil {
			log.Printf("main.loadSettings: writing %s: %v", fName, err)
		} else {
			log.Printf("main.loadSettings: settings written to %s", fName)
		}
	}
	return settings
}

// Entry point for the genderlens command line tool.
func main() {
	var outDir, configFile string
	var setup bool
	flag.StringVar(&outDir, "o", "output", "Output directory.")
	flag.StringVar(&outDir, "output", "output", "Output directory.")
	flag.StringVar(&configFile, "c", "", "Path to the settings file.")
	flag.StringVar(&configFile, "config", "", "Path to the settings file.")
	flag.BoolVar(&setup, "setup", false, "Write the effective settings to "+
		"the config path before analyzing.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] input\n\ninput is a text file or a directory of %s files\n\n",
			os.Args[0], corpus.TextSuffix)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	settings := loadSettings(configFile, setup)

	info, err := os.Stat(input)
	if err != nil {
		log.Fatalf("main: input path %s: %v", input, err)
	}

	var tg tagger.Tagger
	tg, err = tagger.NewGseTagger()
	if err != nil {
		log.Printf("main: segmenter unavailable, continuing with empty counts: %v", err)
		tg = emptyTagger{}
	}

	loader := corpus.FileLoader{}
	if info.IsDir() {
		log.Printf("main: analyzing directory %s", input)
		err = analyzeDir(input, outDir, settings, tg, loader)
	} else {
		log.Printf("main: analyzing file %s", input)
		err = analyzeFile(input, outDir, settings, tg, loader)
	}
	if err != nil {
		log.Fatalf("main: %v", err)
	}
}
