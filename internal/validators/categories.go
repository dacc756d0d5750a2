// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import "galley-scan/internal/findings"

const fieldCategories = "Categories"

// maxCategories is the number of category selections the platform accepts.
const maxCategories = 3

// Categories validates the category selections.
func Categories(categories []string) []findings.Finding {
	filled := nonEmpty(categories)
	if len(filled) > maxCategories {
		return []findings.Finding{
			findings.Errorf(fieldCategories, GuidelineCategories,
				"%d categories selected. The platform allows up to %d.", len(filled), maxCategories),
		}
	}
	if len(filled) == 0 {
		return []findings.Finding{
			findings.Infof(fieldCategories, GuidelineCategories,
				"No categories provided. Categories are crucial for discoverability."),
		}
	}
	return []findings.Finding{
		findings.Successf(fieldCategories, GuidelineCategories,
			"%d categories provided (max %d allowed).", len(filled), maxCategories),
	}
}
