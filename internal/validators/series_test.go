// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"testing"

	"galley-scan/internal/findings"
)

func TestSeriesNotDeclared(t *testing.T) {
	if got := Series(false, "", "", false, false); got != nil {
		t.Fatalf("non-series should yield nil, got %+v", got)
	}
}

func TestSeriesEligibility(t *testing.T) {
	got := Series(true, "The Chronicles", "1", true, false)
	if !hasMessageContaining(got, "Low-content") {
		t.Errorf("low-content series should error, got %+v", got)
	}
	got = Series(true, "The Chronicles", "1", false, true)
	if !hasMessageContaining(got, "Public domain") {
		t.Errorf("public-domain series should error, got %+v", got)
	}
}

func TestSeriesNameRequired(t *testing.T) {
	got := Series(true, "", "", false, false)
	if countSeverity(got, findings.SeverityError) != 1 {
		t.Errorf("missing series name should error, got %+v", got)
	}
}

func TestSeriesNameValidatedLikeTitle(t *testing.T) {
	// A prohibited term in the series name surfaces under the Series Name field.
	got := Series(true, "Free Chronicles", "", false, false)
	found := false
	for _, f := range got {
		if f.Field == "Series Name" && f.Severity == findings.SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("prohibited term in series name should warn under Series Name, got %+v", got)
	}
}

func TestSeriesNumber(t *testing.T) {
	got := Series(true, "The Chronicles", "two", false, false)
	if countSeverity(got, findings.SeverityError) != 1 {
		t.Errorf("non-digit series number should error, got %+v", got)
	}

	got = Series(true, "The Chronicles Book 2", "2", false, false)
	if countSeverity(got, findings.SeverityWarning) != 1 {
		t.Errorf("number embedded in name should warn, got %+v", got)
	}

	got = Series(true, "The Chronicles", "12", false, false)
	if countSeverity(got, findings.SeverityError) != 0 || countSeverity(got, findings.SeverityWarning) != 0 {
		t.Errorf("valid number should pass, got %+v", got)
	}
}

func TestSeriesNumberAbsent(t *testing.T) {
	got := Series(true, "The Chronicles", "", false, false)
	if !hasMessageContaining(got, "Usually required") {
		t.Errorf("absent series number should be informational, got %+v", got)
	}
}
