// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"testing"

	"galley-scan/internal/findings"
)

func TestLowContentNotDeclared(t *testing.T) {
	if got := LowContent(false); got != nil {
		t.Fatalf("non-low-content should yield nil, got %+v", got)
	}
}

func TestLowContentChecklistIsInformational(t *testing.T) {
	got := LowContent(true)
	if len(got) < 5 {
		t.Fatalf("expected the full policy checklist, got %d findings", len(got))
	}
	for _, f := range got {
		if f.Severity != findings.SeverityInfo {
			t.Errorf("low-content notices must all be informational, got %+v", f)
		}
	}
}
