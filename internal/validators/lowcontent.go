// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import "galley-scan/internal/findings"

const fieldLowContent = "Low-Content Book"

// LowContent emits the fixed checklist of platform restrictions that apply
// to low-content books. These are unconditional notices, not checks.
func LowContent(isLowContent bool) []findings.Finding {
	if !isLowContent {
		return nil
	}
	notices := []string{
		"Not eligible for a free platform ISBN.",
		"Not eligible to be part of a series.",
		"The Look Inside feature may not be supported without your own ISBN; consider A+ Content for interior images.",
		"Transparency codes are not available without your own ISBN.",
		"The set-release-date option for preorders is not offered.",
		"If the platform places a barcode, keep the bottom-right of the back cover clear.",
		"The low-content designation cannot be changed after publishing.",
	}
	results := []findings.Finding{
		findings.Infof(fieldLowContent, GuidelineLowContent,
			"Marked as low-content. The following platform policies apply:"),
	}
	for _, notice := range notices {
		results = append(results, findings.Infof(fieldLowContent, GuidelineLowContent, "%s", notice))
	}
	return results
}
