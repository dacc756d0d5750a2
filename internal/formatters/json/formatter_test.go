// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"galley-scan/internal/findings"
	"galley-scan/internal/formatters"
	"galley-scan/internal/report"
)

func TestFormatRoundTrips(t *testing.T) {
	sections := []report.Section{
		{Name: "Keywords", Findings: []findings.Finding{
			findings.Errorf("Keywords", "metadata-guidelines", "Too many keywords."),
		}},
	}
	rep := report.Build("The Silent River", sections, nil)

	out, err := NewFormatter().Format(rep, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded report.Report
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Title != "The Silent River" {
		t.Errorf("title = %q", decoded.Title)
	}
	if decoded.ErrorCount != 1 || decoded.Tier != report.TierHigh {
		t.Errorf("counts/tier lost in serialization: %+v", decoded)
	}
	if len(decoded.Sections) != 1 || len(decoded.Sections[0].Findings) != 1 {
		t.Errorf("sections lost in serialization: %+v", decoded.Sections)
	}
}
