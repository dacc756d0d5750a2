// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"strings"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

const fieldLanguage = "Language & Format"

// LanguageFormat cross-references the metadata language against the book
// format restriction sets and, independently, the intended manuscript upload
// format against the languages supported for it. Both checks run and both
// may fire in the same pass.
func LanguageFormat(language, bookFormat, inkPaper, uploadFormat string) []findings.Finding {
	if language == "" {
		return []findings.Finding{findings.Errorf(fieldLanguage, GuidelineLanguage,
			"Language not selected. This is mandatory.")}
	}

	var results []findings.Finding
	switch {
	case bookFormat == refdata.FormatEbook:
		if refdata.Contains(refdata.PrintOnlyLanguages, language) {
			results = append(results, findings.Errorf(fieldLanguage, GuidelineLanguage,
				"%q is supported for print formats only, not eBooks.", language))
		} else if language == "Hebrew" {
			results = append(results, findings.Errorf(fieldLanguage, GuidelineLanguage,
				"Hebrew is supported for paperback only, not eBooks."))
		} else if language == "Japanese" {
			results = append(results, findings.Warningf(fieldLanguage, GuidelineLanguage,
				"Japanese eBooks have specific reading-direction settings. Ensure they are configured correctly."))
		}

	case refdata.IsPrintFormat(bookFormat):
		if refdata.Contains(refdata.EbookOnlyLanguages, language) {
			results = append(results, findings.Errorf(fieldLanguage, GuidelineLanguage,
				"%q is supported for eBooks only, not for %s.", language, bookFormat))
		}
		if language == "Japanese" && bookFormat == refdata.FormatHardcover {
			results = append(results, findings.Errorf(fieldLanguage, GuidelineLanguage,
				"Japanese is supported for eBook and paperback only, not hardcover."))
		}
		if language == "Hebrew" {
			if bookFormat != refdata.FormatPaperback {
				results = append(results, findings.Errorf(fieldLanguage, GuidelineLanguage,
					"Hebrew is supported for paperback only, not %s.", bookFormat))
			} else if inkPaper != "" && !refdata.Contains(refdata.HebrewAllowedInkPaper, inkPaper) {
				results = append(results, findings.Errorf(fieldLanguage, GuidelineLanguage,
					"Hebrew paperbacks do not support %q. Choose black ink or premium color.", inkPaper))
			}
		}
		if language == "Yiddish" && bookFormat == refdata.FormatHardcover {
			results = append(results, findings.Infof(fieldLanguage, GuidelineLanguage,
				"Yiddish hardcovers must be set up with %s reading direction.", refdata.YiddishHardcoverReadingDirection))
		}
	}

	// Upload-format support is independent of the book-format check above.
	if uploadFormat == "PDF" && !refdata.Contains(refdata.PDFUploadLanguages, language) {
		results = append(results, findings.Warningf(fieldLanguage, GuidelineLanguage,
			"PDF upload intended for %q, but PDF uploads are supported only for: %s. Use HTML, DOCX or EPUB instead.",
			language, strings.Join(refdata.PDFUploadLanguages, ", ")))
	}

	if len(results) == 0 {
		results = append(results, findings.Successf(fieldLanguage, GuidelineLanguage,
			"Basic compatibility checks passed."))
	}
	return results
}
