// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"testing"

	"galley-scan/internal/findings"
)

func TestTranslationNotDeclared(t *testing.T) {
	if got := Translation(false, "", ""); got != nil {
		t.Fatalf("non-translation should yield nil, got %+v", got)
	}
}

func TestTranslationOriginalAuthorRequired(t *testing.T) {
	got := Translation(true, "", "Ana Costa")
	if countSeverity(got, findings.SeverityError) != 1 {
		t.Errorf("missing original author should error, got %+v", got)
	}
}

func TestTranslationMissingTranslatorWarns(t *testing.T) {
	got := Translation(true, "Victor Hugo", "")
	if countSeverity(got, findings.SeverityWarning) != 1 {
		t.Errorf("missing translator should warn, got %+v", got)
	}
}

func TestTranslationAnonymousTranslatorAccepted(t *testing.T) {
	got := Translation(true, "Victor Hugo", "Anonymous")
	if countSeverity(got, findings.SeverityWarning) != 0 || countSeverity(got, findings.SeverityError) != 0 {
		t.Errorf("anonymous translator is acceptable, got %+v", got)
	}
	if !hasMessageContaining(got, "Anonymous") {
		t.Errorf("expected explicit anonymous acknowledgement, got %+v", got)
	}
}
