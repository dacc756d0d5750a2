// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"testing"

	"galley-scan/internal/findings"
	"galley-scan/internal/report"
	"galley-scan/internal/submission"
)

func sectionNames(rep *report.Report) map[string]bool {
	names := make(map[string]bool)
	for _, s := range rep.Sections {
		names[s.Name] = true
	}
	return names
}

func TestRunSkipsInapplicableSections(t *testing.T) {
	sub := &submission.Submission{
		Title:      "The Silent River",
		Author:     "Jo March",
		Language:   "English",
		BookFormat: "eBook",
	}
	rep := Run(sub, nil, Options{})
	names := sectionNames(rep)

	for _, required := range []string{"Title & Subtitle", "Author Name", "ISBN", "Print Specifications"} {
		if !names[required] {
			t.Errorf("section %q missing from report", required)
		}
	}
	for _, conditional := range []string{"Series", "Translation", "Public Domain", "Low-Content Policies"} {
		if names[conditional] {
			t.Errorf("section %q should be absent when not declared", conditional)
		}
	}
}

func TestRunConditionalSectionsAppear(t *testing.T) {
	sub := &submission.Submission{
		Title:         "The Silent River",
		Author:        "Jo March",
		Language:      "English",
		BookFormat:    "eBook",
		IsSeries:      true,
		SeriesName:    "Rivers",
		IsTranslation: true,
	}
	rep := Run(sub, nil, Options{})
	names := sectionNames(rep)
	if !names["Series"] || !names["Translation"] {
		t.Errorf("declared conditional sections missing: %v", names)
	}
}

func TestRunCleanSubmissionIsNotHighRisk(t *testing.T) {
	sub := &submission.Submission{
		Title:      "The Silent River",
		Author:     "Jo March",
		Language:   "English",
		BookFormat: "eBook",
		Categories: []string{"Fiction > Literary"},
	}
	rep := Run(sub, nil, Options{})
	if rep.ErrorCount != 0 {
		t.Errorf("clean submission should have no errors, got %d: %+v", rep.ErrorCount, rep.Sections)
	}
}

func TestRunPageCountCrossCheck(t *testing.T) {
	sub := &submission.Submission{
		Title:      "The Silent River",
		Author:     "Jo March",
		Language:   "English",
		BookFormat: "Paperback",
		TrimSize:   `6" x 9"`,
		InkPaper:   "Black & white interior with white paper",
		PageCount:  "300",
	}
	rep := Run(sub, nil, Options{ActualPDFPages: 280})
	found := false
	for _, s := range rep.Sections {
		if s.Name != "Print Specifications" {
			continue
		}
		for _, f := range s.Findings {
			if f.Severity == findings.SeverityWarning && f.Field == "Print Specs - Page Count" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a page-count cross-check warning in the print section")
	}
}

func TestRunUntitledSubmission(t *testing.T) {
	rep := Run(&submission.Submission{}, nil, Options{})
	if rep.Title != "(untitled submission)" {
		t.Errorf("unexpected report title %q", rep.Title)
	}
}
