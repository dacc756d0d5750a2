// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

const fieldDescription = "Description HTML"

// maxDescriptionLength is the character budget for the description,
// including markup.
const maxDescriptionLength = 4000

// commonFormattingTags are checked for balanced open/close counts.
var commonFormattingTags = []string{"b", "i", "em", "u", "p", "h4", "h5", "h6"}

var bracketSpacePattern = regexp.MustCompile(`< \w`)

// DescriptionHTML validates the constrained HTML subset allowed in a book
// description. Tag names are collected case-insensitively, ignoring
// attributes; malformed bracket sequences are checked against the raw text
// since they never tokenize as tags.
func DescriptionHTML(description string) []findings.Finding {
	if description == "" {
		return []findings.Finding{
			findings.Infof(fieldDescription, GuidelineDescription, "No description provided for HTML check."),
		}
	}

	var results []findings.Finding
	tags, openCounts, closeCounts := tagInventory(description)

	var unsupported []string
	for tag := range tags {
		if !refdata.Contains(refdata.SupportedDescriptionTags, tag) {
			unsupported = append(unsupported, tag)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		results = append(results, findings.Errorf(fieldDescription, GuidelineDescription,
			"Found unsupported HTML tags: %s. Supported tags are: %s.",
			strings.Join(unsupported, ", "), strings.Join(refdata.SupportedDescriptionTags, ", ")))
	}
	if tags["h1"] || tags["h2"] || tags["h3"] {
		results = append(results, findings.Errorf(fieldDescription, GuidelineDescription,
			"Found h1, h2 or h3 tags. These are not supported; use h4, h5 or h6."))
	}

	for _, tag := range commonFormattingTags {
		opened, closed := openCounts[tag], closeCounts[tag]
		if opened > closed {
			results = append(results, findings.Warningf(fieldDescription, GuidelineDescription,
				"Potential unclosed <%s> tag(s): %d opened, %d closed.", tag, opened, closed))
		} else if closed > opened {
			results = append(results, findings.Warningf(fieldDescription, GuidelineDescription,
				"Potential extra closing </%s> tag(s) without an opening tag.", tag))
		}
	}

	if bracketSpacePattern.MatchString(description) {
		results = append(results, findings.Errorf(fieldDescription, GuidelineDescription,
			"Found a space directly after an opening angle bracket (\"< text\"). Not allowed."))
	}
	if strings.Contains(description, "<<") || strings.Contains(description, ">>") {
		results = append(results, findings.Errorf(fieldDescription, GuidelineDescription,
			"Found \"<<\" or \">>\". Not allowed."))
	}
	if strings.Contains(description, "<>") {
		results = append(results, findings.Errorf(fieldDescription, GuidelineDescription,
			"Found empty angle brackets (\"<>\"). Not allowed."))
	}

	charCount := utf8.RuneCountInString(description)
	results = append(results, findings.Infof(fieldDescription, GuidelineDescription,
		"Description is %d characters including markup.", charCount))
	if charCount > maxDescriptionLength {
		results = append(results, findings.Errorf(fieldDescription, GuidelineDescription,
			"Description length %d exceeds the %d character limit (including markup).", charCount, maxDescriptionLength))
	}
	return results
}

// tagInventory tokenizes the description and returns the distinct tag names
// plus open/close counts per tag. The tokenizer lowercases tag names and
// drops attributes, and it leaves malformed sequences like "< text" as plain
// text, which is exactly the split of concerns the checks above need.
func tagInventory(description string) (tags map[string]bool, openCounts, closeCounts map[string]int) {
	tags = make(map[string]bool)
	openCounts = make(map[string]int)
	closeCounts = make(map[string]int)

	z := html.NewTokenizer(strings.NewReader(description))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return tags, openCounts, closeCounts
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tags[string(name)] = true
			openCounts[string(name)]++
		case html.EndTagToken:
			name, _ := z.TagName()
			tags[string(name)] = true
			closeCounts[string(name)]++
		}
	}
}
