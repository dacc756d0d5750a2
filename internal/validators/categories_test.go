// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"testing"

	"galley-scan/internal/findings"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       findings.Severity
	}{
		{"none selected", nil, findings.SeverityInfo},
		{"one category", []string{"Fiction > Literary"}, findings.SeveritySuccess},
		{"three categories", []string{"A", "B", "C"}, findings.SeveritySuccess},
		{"four categories", []string{"A", "B", "C", "D"}, findings.SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categories(tt.categories)
			if len(got) != 1 || got[0].Severity != tt.want {
				t.Errorf("Categories(%v) = %+v, want one %s finding", tt.categories, got, tt.want)
			}
		})
	}
}
