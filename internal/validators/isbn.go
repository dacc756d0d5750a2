// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"strings"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
)

const fieldISBN = "ISBN"

// ISBN validates the ISBN structurally. Hyphens and spaces are display
// formatting and are stripped before the digit and length checks. No ISBN at
// all is acceptable and only yields informational text, which differs by
// format and low-content status.
func ISBN(isbn string, isLowContent bool, bookFormat string) []findings.Finding {
	isPrint := refdata.IsPrintFormat(bookFormat)

	if isbn == "" {
		switch {
		case isPrint && !isLowContent:
			return []findings.Finding{findings.Infof(fieldISBN, GuidelineISBN,
				"No ISBN provided. A %s requires an ISBN; the platform can provide one for free (except for low-content books).",
				strings.ToLower(bookFormat))}
		case isPrint && isLowContent:
			return []findings.Finding{findings.Infof(fieldISBN, GuidelineISBN,
				"No ISBN provided for a low-content %s. This is acceptable. Note: free platform ISBNs are not offered for low-content books.",
				strings.ToLower(bookFormat))}
		default:
			return []findings.Finding{findings.Infof(fieldISBN, GuidelineISBN,
				"No ISBN provided for an eBook. This is acceptable (ISBNs are optional for eBooks).")}
		}
	}

	var results []findings.Finding
	normalized := strings.NewReplacer("-", "", " ", "").Replace(isbn)
	if !allDigits(normalized) {
		results = append(results, findings.Errorf(fieldISBN, GuidelineISBN,
			"ISBN %q should consist of digits only (hyphens are for display). Found non-digit characters.", isbn))
	}
	if n := len(normalized); n != 10 && n != 13 {
		results = append(results, findings.Errorf(fieldISBN, GuidelineISBN,
			"ISBN %q must be 10 or 13 digits once hyphens and spaces are removed. Found %d digits.", isbn, n))
	} else {
		results = append(results, findings.Successf(fieldISBN, GuidelineISBN,
			"Length (%d digits) is correct for ISBN-10 or ISBN-13.", n))
	}

	if isLowContent && isPrint {
		results = append(results, findings.Warningf(fieldISBN, GuidelineISBN,
			"An ISBN was provided for a low-content %s. Ensure it is your own purchased ISBN; free platform ISBNs are unavailable for low-content books.",
			strings.ToLower(bookFormat)))
	} else if isPrint {
		results = append(results, findings.Infof(fieldISBN, GuidelineISBN,
			"ISBN provided. Ensure it and its imprint, title and author match what is registered with your ISBN agency."))
	}
	return results
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
