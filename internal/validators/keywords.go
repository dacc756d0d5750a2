// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
	"galley-scan/internal/termscan"
)

const fieldKeywords = "Keywords"

const (
	// maxKeywords is the number of keyword slots the platform offers.
	maxKeywords = 7
	// maxKeywordLength is the per-keyword field limit.
	maxKeywordLength = 50
)

// Keywords validates the search keywords, including redundancy against the
// title, subtitle and category strings. Redundancy is informational only.
func Keywords(keywords []string, title, subtitle string, categories []string) []findings.Finding {
	filled := nonEmpty(keywords)
	if len(filled) == 0 {
		return []findings.Finding{
			findings.Infof(fieldKeywords, GuidelineKeywords,
				"No keywords provided. Keywords are crucial for discoverability."),
		}
	}

	var results []findings.Finding
	if len(filled) > maxKeywords {
		results = append(results, findings.Errorf(fieldKeywords, GuidelineKeywords,
			"%d keywords entered. The platform allows up to %d.", len(filled), maxKeywords))
	}

	for i, kw := range filled {
		label := keywordLabel(i, kw)
		if utf8.RuneCountInString(kw) > maxKeywordLength {
			results = append(results, findings.Warningf(label, GuidelineKeywords,
				"Length (%d) may exceed the per-keyword field limit (~%d characters). Verify.",
				utf8.RuneCountInString(kw), maxKeywordLength))
		}

		results = append(results, termscan.Scan(kw, refdata.ProhibitedKeywordTerms, termscan.Options{
			Field:     label,
			Guideline: GuidelineKeywords,
		})...)

		if containsMarkup(kw) {
			results = append(results, findings.Errorf(label, GuidelineKeywords,
				"Contains markup tags."))
		}
		if strings.Contains(kw, `"`) {
			results = append(results, findings.Warningf(label, GuidelineKeywords,
				"Contains quotation marks. Generally not recommended."))
		}

		kwLower := strings.ToLower(kw)
		if title != "" && strings.Contains(strings.ToLower(title), kwLower) {
			results = append(results, findings.Infof(label, GuidelineKeywords,
				"Appears in the title. Avoid redundancy unless it adds new context."))
		}
		if subtitle != "" && strings.Contains(strings.ToLower(subtitle), kwLower) {
			results = append(results, findings.Infof(label, GuidelineKeywords,
				"Appears in the subtitle. Avoid redundancy."))
		}
		for _, cat := range categories {
			if cat != "" && strings.Contains(strings.ToLower(cat), kwLower) {
				results = append(results, findings.Infof(label, GuidelineKeywords,
					"Appears in category %q. Avoid redundancy.", cat))
			}
		}
	}

	if len(results) == 0 {
		results = append(results, findings.Successf(fieldKeywords, GuidelineKeywords, "Basic checks passed."))
	}
	return results
}

func keywordLabel(index int, kw string) string {
	display := kw
	if utf8.RuneCountInString(display) > 20 {
		display = string([]rune(display)[:20]) + "..."
	}
	return fmt.Sprintf("Keyword %d (%q)", index+1, display)
}
