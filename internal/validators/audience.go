// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"strconv"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

const fieldAudience = "Primary Audience"

// Audience validates the explicit-content declaration and reading-age range
// against the selected categories. A reading age of zero means "not set".
func Audience(sexuallyExplicit bool, minAge, maxAge int, categories []string) []findings.Finding {
	var results []findings.Finding

	if sexuallyExplicit {
		results = append(results, findings.Warningf(fieldAudience, GuidelineAudience,
			"Sexually explicit content declared. The book will be ineligible for children's categories."))
		if minAge > 0 && minAge < 18 {
			results = append(results, findings.Warningf(fieldAudience, GuidelineAudience,
				"Explicit content declared, but minimum reading age is %d. This may be contradictory.", minAge))
		}
		for _, cat := range categories {
			if cat != "" && containsAnyFold(cat, refdata.ChildrenCategoryTerms) {
				results = append(results, findings.Errorf(fieldAudience, GuidelineAudience,
					"Explicit content declared, but category %q appears to be for children. This is not allowed.", cat))
			}
		}
	}

	switch {
	case minAge < 0 || maxAge < 0:
		results = append(results, findings.Errorf(fieldAudience, GuidelineAudience,
			"Reading ages cannot be negative."))
	case minAge > maxAge && maxAge != 0:
		results = append(results, findings.Errorf(fieldAudience, GuidelineAudience,
			"Minimum reading age (%d) cannot be greater than maximum (%d), unless maximum is 0 (not set).", minAge, maxAge))
	default:
		results = append(results, findings.Successf(fieldAudience, GuidelineAudience,
			"Reading age range: min %s, max %s.", ageOrUnset(minAge), ageOrUnset(maxAge)))
	}

	childOrTeen := false
	for _, cat := range categories {
		if cat != "" && (containsAnyFold(cat, refdata.ChildrenCategoryTerms) ||
			containsAnyFold(cat, refdata.TeenCategoryTerms)) {
			childOrTeen = true
			break
		}
	}
	if childOrTeen && minAge == 0 {
		results = append(results, findings.Warningf(fieldAudience, GuidelineAudience,
			"A children's or teen/YA category is selected. Setting minimum and maximum reading ages is highly recommended for discoverability."))
	} else if childOrTeen && minAge > 17 {
		results = append(results, findings.Warningf(fieldAudience, GuidelineAudience,
			"Minimum reading age (%d) seems adult, but a children's/YA category is selected. Verify this is intentional.", minAge))
	}

	if len(results) == 0 {
		results = append(results, findings.Successf(fieldAudience, GuidelineAudience, "Basic checks passed."))
	}
	return results
}

func ageOrUnset(age int) string {
	if age == 0 {
		return "not set"
	}
	return strconv.Itoa(age)
}
