// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine runs the full set of metadata checks over a submission and
// assembles the results into report sections. The section order is fixed so
// reports stay comparable across runs.
package engine

import (
	"github.com/rs/zerolog/log"

	"galley-scan/internal/findings"
	"galley-scan/internal/printspec"
	"galley-scan/internal/report"
	"galley-scan/internal/submission"
	"galley-scan/internal/validators"
)

// Check pairs a section name with the validator that produces its findings.
type Check struct {
	Name string
	Run  func(sub *submission.Submission) []findings.Finding
}

// Checks returns the full check sequence in report order. Conditional
// validators (series, translation, public domain, low content) return nil
// when they do not apply and their sections are dropped.
func Checks() []Check {
	return []Check{
		{"Title & Subtitle", func(s *submission.Submission) []findings.Finding {
			return validators.Title(s.Title, s.Subtitle)
		}},
		{"Author Name", func(s *submission.Submission) []findings.Finding {
			return validators.Author(s.Author)
		}},
		{"Cover Text", func(s *submission.Submission) []findings.Finding {
			return validators.CoverText(s.CoverTitle, s.CoverAuthor, s.Title, s.Author)
		}},
		{"Description", func(s *submission.Submission) []findings.Finding {
			return validators.DescriptionHTML(s.Description)
		}},
		{"Categories", func(s *submission.Submission) []findings.Finding {
			return validators.Categories(s.Categories)
		}},
		{"Keywords", func(s *submission.Submission) []findings.Finding {
			return validators.Keywords(s.Keywords, s.Title, s.Subtitle, s.Categories)
		}},
		{"Series", func(s *submission.Submission) []findings.Finding {
			return validators.Series(s.IsSeries, s.SeriesName, s.SeriesNumber, s.IsLowContent, s.IsPublicDomain)
		}},
		{"Audience", func(s *submission.Submission) []findings.Finding {
			return validators.Audience(s.SexuallyExplicit, s.MinReadingAge, s.MaxReadingAge, s.Categories)
		}},
		{"ISBN", func(s *submission.Submission) []findings.Finding {
			return validators.ISBN(s.ISBN, s.IsLowContent, s.BookFormat)
		}},
		{"AI Content Declaration", func(s *submission.Submission) []findings.Finding {
			return validators.AIDeclaration(s.AIUsed, s.AIText, s.AIImages, s.AITranslation)
		}},
		{"Low-Content Policies", func(s *submission.Submission) []findings.Finding {
			return validators.LowContent(s.IsLowContent)
		}},
		{"Language & Format", func(s *submission.Submission) []findings.Finding {
			return validators.LanguageFormat(s.Language, s.BookFormat, s.InkPaper, s.UploadFormat)
		}},
		{"Translation", func(s *submission.Submission) []findings.Finding {
			return validators.Translation(s.IsTranslation, s.OriginalAuthor, s.Translator)
		}},
		{"Public Domain", func(s *submission.Submission) []findings.Finding {
			return validators.PublicDomain(s.IsPublicDomain, s.DifferentiationStatement, s.Description)
		}},
		{"Print Specifications", func(s *submission.Submission) []findings.Finding {
			return printspec.Calculate(s.TrimSize, s.PageCount, s.InteriorBleed, s.InkPaper, s.BookFormat)
		}},
	}
}

// Options tweaks a run. ActualPDFPages, when positive, is the page count
// observed in an uploaded PDF manuscript and is cross-checked against the
// declared page count.
type Options struct {
	ActualPDFPages int
}

// Run executes every applicable check and returns the built report.
func Run(sub *submission.Submission, supplements []report.Supplement, opts Options) *report.Report {
	var sections []report.Section
	for _, check := range Checks() {
		results := check.Run(sub)
		if results == nil {
			log.Debug().Str("section", check.Name).Msg("check not applicable, skipping")
			continue
		}
		log.Debug().Str("section", check.Name).Int("findings", len(results)).Msg("check complete")
		sections = append(sections, report.Section{Name: check.Name, Findings: results})
	}

	if f := printspec.CrossCheckPageCount(sub.PageCount, opts.ActualPDFPages); f != nil {
		for i := range sections {
			if sections[i].Name == "Print Specifications" {
				sections[i].Findings = append(sections[i].Findings, *f)
			}
		}
	}

	title := sub.Title
	if title == "" {
		title = "(untitled submission)"
	}
	return report.Build(title, sections, supplements)
}
