// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"regexp"

	"galley-scan/internal/findings"
)

const fieldAuthor = "Author Name"

// authorNamePattern accepts letters including the accented Latin ranges,
// digits, spaces, periods, hyphens and apostrophes. Anything outside this
// set is advisory, not disqualifying.
var authorNamePattern = regexp.MustCompile(`^[a-zA-Z0-9À-ÖØ-öø-ÿĀ-žḀ-ỿ\s.'-]+$`)

// Author validates the primary author name.
func Author(author string) []findings.Finding {
	if author == "" {
		return []findings.Finding{
			findings.Errorf(fieldAuthor, GuidelineAuthor,
				"Primary author name is missing. It is mandatory and cannot be changed after publishing."),
		}
	}

	var results []findings.Finding
	if containsMarkup(author) {
		results = append(results, findings.Errorf(fieldAuthor, GuidelineAuthor,
			"Contains markup tags. Markup is not allowed in author names."))
	}
	if !authorNamePattern.MatchString(author) {
		results = append(results, findings.Warningf(fieldAuthor, GuidelineAuthor,
			"Contains characters beyond typical letters, digits, spaces, periods, hyphens or apostrophes. Review carefully."))
	}
	if len(results) == 0 {
		results = append(results, findings.Successf(fieldAuthor, GuidelineAuthor, "Basic checks passed."))
	}
	return results
}
