// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"unicode/utf8"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
	"galley-scan/internal/termscan"
)

const fieldTitle = "Title/Subtitle"

// maxTitleSubtitleLength is the combined character budget for title plus
// subtitle. Exactly 200 is accepted.
const maxTitleSubtitleLength = 200

// Title validates the book title and subtitle.
func Title(title, subtitle string) []findings.Finding {
	if title == "" {
		return []findings.Finding{
			findings.Errorf(fieldTitle, GuidelineTitle, "Title is missing. A title is mandatory."),
		}
	}

	var results []findings.Finding
	combinedLen := utf8.RuneCountInString(title) + utf8.RuneCountInString(subtitle)
	if combinedLen > maxTitleSubtitleLength {
		results = append(results, findings.Errorf(fieldTitle, GuidelineTitle,
			"Combined title and subtitle length (%d) exceeds %d characters.", combinedLen, maxTitleSubtitleLength))
	}

	combined := title
	if subtitle != "" {
		combined += " " + subtitle
	}
	results = append(results, termscan.Scan(combined, refdata.ProhibitedTitleTerms, termscan.Options{
		Field:          fieldTitle,
		Guideline:      GuidelineTitle,
		MatchPhrases:   true,
		TitleExemption: true,
	})...)

	if containsMarkup(combined) {
		results = append(results, findings.Errorf(fieldTitle, GuidelineTitle,
			"Contains markup tags. Markup is not allowed in titles."))
	}
	if punctuationOnly(title) || (subtitle != "" && punctuationOnly(subtitle)) {
		results = append(results, findings.Errorf(fieldTitle, GuidelineTitle,
			"Consists only of punctuation."))
	}
	if isPlaceholder(title) || (subtitle != "" && isPlaceholder(subtitle)) {
		results = append(results, findings.Errorf(fieldTitle, GuidelineTitle,
			"Uses placeholder text (e.g. %q, %q).", "unknown", "untitled"))
	}

	if len(results) == 0 {
		results = append(results, findings.Successf(fieldTitle, GuidelineTitle, "Basic checks passed."))
	}
	return results
}
