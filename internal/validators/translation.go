// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"strings"

	"galley-scan/internal/findings"
)

const fieldTranslation = "Translation"

// Translation validates the original-author and translator attributions for
// a declared translation.
func Translation(isTranslation bool, originalAuthor, translator string) []findings.Finding {
	if !isTranslation {
		return nil
	}

	results := []findings.Finding{
		findings.Infof(fieldTranslation, GuidelineTranslation, "Declared as a translation."),
	}
	if originalAuthor == "" {
		results = append(results, findings.Errorf(fieldTranslation, GuidelineTranslation,
			"The original author's name must be provided for a translation."))
	} else {
		results = append(results, findings.Successf(fieldTranslation, GuidelineTranslation,
			"Original author %q provided.", originalAuthor))
	}

	switch {
	case translator == "":
		results = append(results, findings.Warningf(fieldTranslation, GuidelineTranslation,
			"The translator's name must be provided. Use \"Anonymous\" if the translator of an older work is unknown."))
	case strings.EqualFold(translator, "anonymous"):
		results = append(results, findings.Successf(fieldTranslation, GuidelineTranslation,
			"Translator \"Anonymous\" provided. Acceptable when the translator of an older work is unknown."))
	default:
		results = append(results, findings.Successf(fieldTranslation, GuidelineTranslation,
			"Translator %q provided.", translator))
	}
	return results
}
