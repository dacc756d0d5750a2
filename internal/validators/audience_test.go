// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"testing"

	"galley-scan/internal/findings"
)

func TestAudienceExplicitWithChildrenCategory(t *testing.T) {
	got := Audience(true, 0, 0, []string{"Children's Books > Animals"})
	if countSeverity(got, findings.SeverityError) != 1 {
		t.Errorf("explicit content with a children's category should error, got %+v", got)
	}
}

func TestAudienceExplicitWithLowMinAge(t *testing.T) {
	got := Audience(true, 13, 18, nil)
	if countSeverity(got, findings.SeverityWarning) != 2 {
		t.Errorf("explicit + min age 13 should yield two warnings, got %+v", got)
	}
}

func TestAudienceAgeRange(t *testing.T) {
	tests := []struct {
		name       string
		minAge     int
		maxAge     int
		wantErrors int
	}{
		{"unset ages", 0, 0, 0},
		{"valid range", 8, 12, 0},
		{"min only", 13, 0, 0},
		{"negative", -1, 5, 1},
		{"inverted", 12, 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Audience(false, tt.minAge, tt.maxAge, nil)
			if countSeverity(got, findings.SeverityError) != tt.wantErrors {
				t.Errorf("Audience(min=%d, max=%d) errors = %d, want %d: %+v",
					tt.minAge, tt.maxAge, countSeverity(got, findings.SeverityError), tt.wantErrors, got)
			}
		})
	}
}

func TestAudienceChildCategoryWithoutAges(t *testing.T) {
	got := Audience(false, 0, 0, []string{"Teen & Young Adult > Fantasy"})
	if countSeverity(got, findings.SeverityWarning) != 1 {
		t.Errorf("teen category without ages should recommend setting them, got %+v", got)
	}
}

func TestAudienceAdultAgeWithChildCategory(t *testing.T) {
	got := Audience(false, 18, 0, []string{"Children's Books > Animals"})
	if countSeverity(got, findings.SeverityWarning) != 1 {
		t.Errorf("adult min age with children's category should warn, got %+v", got)
	}
}
