// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

const fieldAIDeclaration = "AI Content Declaration"

// AIDeclaration validates the AI-generated-content declaration. A top-level
// "no" short-circuits to a single confirmation; "yes" requires examining the
// three independent detail fields, and a "yes" with every detail still at
// its none value is logically inconsistent.
func AIDeclaration(aiUsed bool, textDetail, imagesDetail, translationDetail string) []findings.Finding {
	if !aiUsed {
		return []findings.Finding{findings.Successf(fieldAIDeclaration, GuidelineAIContent,
			"No AI-based tools were used to create text, images or translations. AI assistance for editing your own content generally requires no disclosure.")}
	}

	results := []findings.Finding{
		findings.Infof(fieldAIDeclaration, GuidelineAIContent,
			"Use of AI tools declared. Review the platform's definitions of AI-generated versus AI-assisted content; you remain responsible for all content, including IP rights."),
	}

	textNone := refdata.IsAINone(textDetail, refdata.AITextOptions)
	imagesNone := refdata.IsAINone(imagesDetail, refdata.AIImageOptions)
	translationNone := refdata.IsAINone(translationDetail, refdata.AITranslationOptions)

	if !textNone {
		results = append(results, findings.Infof(fieldAIDeclaration, GuidelineAIContent,
			"AI-generated text declared: %q. This requires disclosure; text created by AI tools counts as AI-generated even after substantial edits.", textDetail))
	}
	if !imagesNone {
		results = append(results, findings.Infof(fieldAIDeclaration, GuidelineAIContent,
			"AI-generated images declared: %q. This requires disclosure regardless of subsequent edits.", imagesDetail))
	}
	if !translationNone {
		results = append(results, findings.Infof(fieldAIDeclaration, GuidelineAIContent,
			"AI-generated translations declared: %q. This requires disclosure even after substantial edits.", translationDetail))
	}

	if textNone && imagesNone && translationNone {
		results = append(results, findings.Warningf(fieldAIDeclaration, GuidelineAIContent,
			"AI use was declared, but text, images and translations are all set to none. If AI only assisted with your own content, answer no to the top-level question; if AI created any content, specify it in the details."))
	}
	return results
}
