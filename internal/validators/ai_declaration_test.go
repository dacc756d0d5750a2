// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"testing"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

func TestAIDeclarationNotUsed(t *testing.T) {
	got := AIDeclaration(false, "", "", "")
	if len(got) != 1 || got[0].Severity != findings.SeveritySuccess {
		t.Fatalf("no AI use should yield one success, got %+v", got)
	}
}

func TestAIDeclarationWithDetails(t *testing.T) {
	got := AIDeclaration(true, refdata.AITextOptions[2], "", "")
	// Declared info, text disclosure info, no inconsistency warning.
	if countSeverity(got, findings.SeverityInfo) != 2 {
		t.Errorf("expected declaration + text disclosure notes, got %+v", got)
	}
	if countSeverity(got, findings.SeverityWarning) != 0 {
		t.Errorf("consistent declaration should not warn, got %+v", got)
	}
}

func TestAIDeclarationAllNoneIsInconsistent(t *testing.T) {
	tests := []struct {
		name                     string
		text, images, translation string
	}{
		{"empty details", "", "", ""},
		{"explicit none values", refdata.AITextOptions[0], refdata.AIImageOptions[0], refdata.AITranslationOptions[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AIDeclaration(true, tt.text, tt.images, tt.translation)
			if countSeverity(got, findings.SeverityWarning) != 1 {
				t.Errorf("yes with all-none details should warn, got %+v", got)
			}
		})
	}
}

func TestAIDeclarationIndependentDetails(t *testing.T) {
	got := AIDeclaration(true, refdata.AITextOptions[1], refdata.AIImageOptions[3], refdata.AITranslationOptions[0])
	// Declaration note + two disclosure notes.
	if countSeverity(got, findings.SeverityInfo) != 3 {
		t.Errorf("expected three info findings, got %+v", got)
	}
}
