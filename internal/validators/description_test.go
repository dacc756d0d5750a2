// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"strings"
	"testing"

	"galley-scan/internal/findings"
)

func TestDescriptionEmpty(t *testing.T) {
	got := DescriptionHTML("")
	if len(got) != 1 || got[0].Severity != findings.SeverityInfo {
		t.Fatalf("empty description should yield one info finding, got %+v", got)
	}
}

func TestDescriptionSupportedTagsPass(t *testing.T) {
	got := DescriptionHTML("<p>A story of <b>courage</b> and <em>loss</em>.</p>")
	if countSeverity(got, findings.SeverityError) != 0 {
		t.Errorf("supported tags should not error, got %+v", got)
	}
	if countSeverity(got, findings.SeverityWarning) != 0 {
		t.Errorf("balanced tags should not warn, got %+v", got)
	}
}

func TestDescriptionUnsupportedTags(t *testing.T) {
	got := DescriptionHTML(`<div>Intro</div><span>more</span><p>ok</p>`)
	errors := countSeverity(got, findings.SeverityError)
	if errors != 1 {
		t.Fatalf("unsupported tags should yield one combined error, got %+v", got)
	}
	if !hasMessageContaining(got, "div") || !hasMessageContaining(got, "span") {
		t.Errorf("error should list all unsupported tags, got %+v", got)
	}
}

func TestDescriptionHeadingTags(t *testing.T) {
	got := DescriptionHTML("<h1>Big</h1>")
	// h1 is both unsupported and explicitly called out.
	if countSeverity(got, findings.SeverityError) != 2 {
		t.Errorf("h1 should trigger the unsupported and heading errors, got %+v", got)
	}
}

func TestDescriptionUnbalancedTags(t *testing.T) {
	got := DescriptionHTML("<b>bold <i>and</i> more")
	if countSeverity(got, findings.SeverityWarning) != 1 {
		t.Errorf("unclosed <b> should warn once, got %+v", got)
	}
	if !hasMessageContaining(got, "1 opened, 0 closed") {
		t.Errorf("warning should cite the counts, got %+v", got)
	}
}

func TestDescriptionMalformedBrackets(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"space after bracket", "a < b comparison"},
		{"double brackets", "what <<really>> happened"},
		{"empty brackets", "an <> oddity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescriptionHTML(tt.text)
			if countSeverity(got, findings.SeverityError) == 0 {
				t.Errorf("malformed bracket %q should error, got %+v", tt.text, got)
			}
		})
	}
}

func TestDescriptionAlwaysReportsCharCount(t *testing.T) {
	got := DescriptionHTML("short")
	if !hasMessageContaining(got, "5 characters") {
		t.Errorf("expected a character-count info finding, got %+v", got)
	}
}

func TestDescriptionLengthLimit(t *testing.T) {
	long := strings.Repeat("a", 4001)
	got := DescriptionHTML(long)
	if countSeverity(got, findings.SeverityError) != 1 {
		t.Errorf("4001 characters should error, got %d errors", countSeverity(got, findings.SeverityError))
	}
	exact := strings.Repeat("a", 4000)
	got = DescriptionHTML(exact)
	if countSeverity(got, findings.SeverityError) != 0 {
		t.Errorf("exactly 4000 characters should pass, got %+v", got)
	}
}
