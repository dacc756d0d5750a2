// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validators holds one pure validation routine per metadata field.
// Every routine takes raw field values plus the reference tables and returns
// an ordered finding list; none of them read or write shared state, so runs
// for different submissions can execute in parallel without coordination.
//
// Shared conventions: a missing mandatory field yields a single Error and the
// routine returns without further checks; a routine that completes with zero
// findings emits exactly one Success finding so the report can distinguish
// "checked, clean" from "not checked"; length and character-set checks
// operate on values as entered, and equality comparisons trim surrounding
// whitespace and fold case only.
package validators

import (
	"regexp"
	"strings"

	"galley-scan/internal/refdata"
)

// Guideline citations attached to findings. Opaque strings; never
// interpreted by logic.
const (
	GuidelineTitle        = "Guideline 2, 7"
	GuidelineAuthor       = "Guideline 7"
	GuidelineCover        = "Guideline 2, 4, 12"
	GuidelineDescription  = "Guideline 10"
	GuidelineCategories   = "Guideline 2, 11"
	GuidelineKeywords     = "Guideline 9, 10"
	GuidelineSeries       = "Guideline 2, 6, 7, 11"
	GuidelineAudience     = "Guideline 2, 11"
	GuidelineISBN         = "Guideline 6, 7, 11, 12"
	GuidelineAIContent    = "Guideline 1"
	GuidelineLowContent   = "Guideline 6, 11"
	GuidelineLanguage     = "Guideline 11"
	GuidelineTranslation  = "Guideline 1"
	GuidelinePublicDomain = "Guideline 1"
	GuidelinePrint        = "Guideline 12, 13"
)

var (
	markupPattern = regexp.MustCompile(`<[^>]+>`)
	// Letters and digits in any script count as content, so titles in
	// non-Latin languages are not flagged as punctuation.
	punctuationOnlyPattern = regexp.MustCompile(`^[^\p{L}\p{N}_\s]+$`)
)

// containsMarkup reports whether the value embeds markup tags.
func containsMarkup(s string) bool {
	return markupPattern.MatchString(s)
}

// punctuationOnly reports whether the whole value is punctuation.
func punctuationOnly(s string) bool {
	return punctuationOnlyPattern.MatchString(s)
}

// isPlaceholder reports whether the value is a known placeholder string.
func isPlaceholder(s string) bool {
	lower := strings.ToLower(s)
	return refdata.Contains(refdata.TitlePlaceholders, lower)
}

// foldEqual compares two as-entered values after trimming surrounding
// whitespace, case-insensitively. No other normalization is applied.
func foldEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// nonEmpty returns the trimmed, non-empty entries of a list.
func nonEmpty(list []string) []string {
	var out []string
	for _, v := range list {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// containsAnyFold reports whether s contains any of the terms,
// case-insensitively.
func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
