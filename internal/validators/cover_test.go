// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"testing"

	"galley-scan/internal/findings"
)

func TestCoverTextMatches(t *testing.T) {
	got := CoverText("The Silent River", "Jo March", "the silent river", "JO MARCH")
	if len(got) != 1 || got[0].Severity != findings.SeveritySuccess {
		t.Fatalf("case-insensitive match should yield one success, got %+v", got)
	}
}

func TestCoverTextMismatch(t *testing.T) {
	got := CoverText("The Quiet River", "Jo March", "The Silent River", "Jo March")
	if countSeverity(got, findings.SeverityWarning) != 1 {
		t.Errorf("title mismatch should warn once, got %+v", got)
	}

	got = CoverText("The Silent River", "J. March", "The Silent River", "Jo March")
	if countSeverity(got, findings.SeverityWarning) != 1 {
		t.Errorf("author mismatch should warn once, got %+v", got)
	}
}

func TestCoverTextMissingSideIsInformational(t *testing.T) {
	got := CoverText("", "Jo March", "The Silent River", "Jo March")
	if countSeverity(got, findings.SeverityWarning) != 0 {
		t.Errorf("missing cover title must not be a mismatch, got %+v", got)
	}
	if countSeverity(got, findings.SeverityInfo) != 1 {
		t.Errorf("missing cover title should be informational, got %+v", got)
	}
}

func TestCoverTextNothingEntered(t *testing.T) {
	got := CoverText("", "", "The Silent River", "Jo March")
	if countSeverity(got, findings.SeverityInfo) == 0 {
		t.Errorf("no cover text should be informational, got %+v", got)
	}
	if countSeverity(got, findings.SeveritySuccess) != 0 {
		t.Errorf("nothing compared means no success, got %+v", got)
	}
}
