// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"strings"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

const fieldPublicDomain = "Public Domain Differentiation"

// PublicDomain validates that a public-domain submission states how it is
// substantially differentiated from freely available versions. The
// differentiation statement and the book description are searched together.
func PublicDomain(isPublicDomain bool, statement, description string) []findings.Finding {
	if !isPublicDomain {
		return nil
	}

	results := []findings.Finding{
		findings.Infof(fieldPublicDomain, GuidelinePublicDomain,
			"Public-domain book noted. Differentiation is key to acceptance when a free version already exists."),
		findings.Infof(fieldPublicDomain, GuidelinePublicDomain,
			"Undifferentiated public-domain versions are not allowed when a free version is available. Your version must be substantially differentiated (unique translation, original annotations, scholarly analysis, unique illustrations). Minor formatting changes are not sufficient."),
	}

	searchText := strings.ToLower(statement) + " " + strings.ToLower(description)
	var found []string
	for _, term := range refdata.DifferentiationTerms {
		if strings.Contains(searchText, term) {
			found = append(found, term)
		}
	}

	switch {
	case strings.TrimSpace(statement) == "" && len(found) == 0:
		results = append(results, findings.Errorf(fieldPublicDomain, GuidelinePublicDomain,
			"No clear differentiation stated. Describe how this version is substantially differentiated, or make it obvious in the description using terms like \"annotated by\" or \"new translation\"."))
	case len(found) == 0:
		results = append(results, findings.Warningf(fieldPublicDomain, GuidelinePublicDomain,
			"The differentiation statement does not use common terms indicating substantial differentiation (e.g. \"annotated\", \"new translation\", \"original illustrations\"). Ensure it conveys unique value beyond reformatting."))
	default:
		results = append(results, findings.Successf(fieldPublicDomain, GuidelinePublicDomain,
			"Statement and/or description mention %s, which could indicate differentiation. Ensure it reflects substantial, unique value.",
			strings.Join(found, ", ")))
	}
	return results
}
