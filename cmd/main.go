// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"galley-scan/internal/ai"
	"galley-scan/internal/config"
	"galley-scan/internal/engine"
	"galley-scan/internal/preprocessors"
	"galley-scan/internal/report"
	"galley-scan/internal/submission"
	"galley-scan/internal/version"

	"galley-scan/internal/formatters"
	_ "galley-scan/internal/formatters/json"
	_ "galley-scan/internal/formatters/text"
	_ "galley-scan/internal/formatters/yaml"
)

func main() {
	submissionFile := flag.String("submission", "", "Path to the submission metadata file (YAML or JSON)")
	manuscriptFile := flag.String("manuscript", "", "Path to the manuscript file (txt, pdf, docx, epub, html) for advisory checks")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Display guideline references for each finding")
	debug := flag.Bool("debug", false, "Enable debug logging to show the check and extraction flow")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	enableAI := flag.Bool("enable-ai", false, "Run the AI advisory checks (requires a configured model endpoint, data is sent to it)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	if *outputFormat == "" {
		*outputFormat = cfg.Defaults.Format
	}
	if cfg.Defaults.Verbose {
		*verbose = true
	}
	if cfg.Defaults.Debug {
		*debug = true
	}
	if cfg.Defaults.NoColor {
		*noColor = true
	}
	setupLogging(*debug)

	if *submissionFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -submission is required")
		flag.Usage()
		os.Exit(2)
	}

	sub, err := submission.LoadFile(*submissionFile)
	if err != nil {
		log.Error().Err(err).Str("file", *submissionFile).Msg("could not load submission")
		os.Exit(2)
	}

	var extraction preprocessors.ExtractResult
	if *manuscriptFile != "" {
		extraction = preprocessors.ExtractManuscript(*manuscriptFile)
		if extraction.Diagnostic != "" {
			log.Warn().Str("file", *manuscriptFile).Msg(extraction.Diagnostic)
		}
	}

	var supplements []report.Supplement
	if *enableAI || cfg.AI.Enabled {
		supplements = runAdvisoryChecks(cfg, sub, extraction.Text)
	}

	rep := engine.Run(sub, supplements, engine.Options{ActualPDFPages: extraction.PageCount})

	// Piped output should not carry ANSI color codes.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		*noColor = true
	}
	output, err := formatters.Export(*outputFormat, rep, formatters.FormatterOptions{
		Verbose: *verbose,
		NoColor: *noColor || *outputFile != "",
	})
	if err != nil {
		log.Error().Err(err).Msg("could not format report")
		os.Exit(2)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			log.Error().Err(err).Str("file", *outputFile).Msg("could not write output file")
			os.Exit(2)
		}
	} else {
		fmt.Print(output)
	}

	if rep.ErrorCount > 0 {
		os.Exit(1)
	}
}

// setupLogging configures zerolog with console output on stderr. Debug mode
// lowers the level; otherwise only warnings and errors surface so the report
// stays the primary output.
func setupLogging(debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

// runAdvisoryChecks executes the AI check set. A missing API key downgrades
// to a single skipped supplement instead of failing the run.
func runAdvisoryChecks(cfg *config.Config, sub *submission.Submission, manuscriptText string) []report.Supplement {
	if cfg.AI.APIKey == "" && cfg.AI.BaseURL == "" {
		return []report.Supplement{{
			Check:  "AI advisory checks",
			Status: ai.StatusSkipped,
			Text:   "no API key or endpoint configured; set ai.api_key / ai.base_url in the config file or GALLEY_SCAN_API_KEY in the environment",
		}}
	}

	client := ai.NewClient(ai.ClientConfig{BaseURL: cfg.AI.BaseURL, APIKey: cfg.AI.APIKey})
	analyzer := ai.NewAnalyzer(client, ai.Options{
		Model:       cfg.AI.Model,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
		Timeout:     time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		Concurrency: cfg.AI.Concurrency,
	})
	return analyzer.Run(context.Background(), ai.Input{
		Title:                    sub.Title,
		Subtitle:                 sub.Subtitle,
		Description:              sub.Description,
		Language:                 sub.Language,
		Keywords:                 sub.Keywords,
		IsTranslation:            sub.IsTranslation,
		IsPublicDomain:           sub.IsPublicDomain,
		DifferentiationStatement: sub.DifferentiationStatement,
		ManuscriptText:           manuscriptText,
	})
}
