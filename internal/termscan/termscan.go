// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package termscan flags occurrences of prohibited terms in free text.
// Matching is deterministic: identical input always yields identical ordered
// output, with one finding per distinct matched term.
package termscan

import (
	"regexp"
	"strings"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

// Options controls a scan.
type Options struct {
	// Field tags the produced findings.
	Field string
	// Guideline is the opaque citation attached to findings.
	Guideline string
	// MatchPhrases makes multi-word terms match as literal substrings
	// instead of word-bounded patterns, so a policy phrase like "summary of"
	// matches mid-sentence.
	MatchPhrases bool
	// TitleExemption suppresses generic single terms that occur exactly once
	// in a title-like field longer than the word threshold. It applies only
	// to title/subtitle-class fields, never to keywords.
	TitleExemption bool
}

// titleExemptionWordThreshold is the word count a title must exceed for the
// single-occurrence exemption to apply.
const titleExemptionWordThreshold = 3

// Scan checks text against a prohibited-term list. Prohibited-term use is
// advisory, so every finding is a Warning, never an Error.
func Scan(text string, terms []string, opts Options) []findings.Finding {
	var results []findings.Finding
	textLower := strings.ToLower(text)

	for _, term := range terms {
		if !matches(textLower, term, opts.MatchPhrases) {
			continue
		}
		if opts.TitleExemption && exempt(textLower, term) {
			continue
		}
		results = append(results, findings.Warningf(opts.Field, opts.Guideline,
			"Contains potentially problematic term %q. Review usage before submitting.", term))
	}
	return results
}

func matches(textLower, term string, matchPhrases bool) bool {
	if matchPhrases && strings.Contains(term, " ") {
		return strings.Contains(textLower, term)
	}
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	return pattern.MatchString(textLower)
}

// exempt reports whether a generic term occurs exactly once in a title long
// enough that the occurrence reads as incidental.
func exempt(textLower, term string) bool {
	if !refdata.Contains(refdata.GenericTitleTerms, term) {
		return false
	}
	return strings.Count(textLower, term) == 1 &&
		len(strings.Fields(textLower)) > titleExemptionWordThreshold
}
