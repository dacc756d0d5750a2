// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import "galley-scan/internal/findings"

const fieldCover = "Cover Text Match"

// CoverText compares the text the author transcribed from the cover against
// the metadata title and author. Comparisons run only when both sides are
// present; a missing side while the other is present is informational, not a
// mismatch.
func CoverText(coverTitle, coverAuthor, metaTitle, metaAuthor string) []findings.Finding {
	var results []findings.Finding

	if metaTitle != "" && coverTitle != "" && !foldEqual(coverTitle, metaTitle) {
		results = append(results, findings.Warningf(fieldCover, GuidelineCover,
			"Cover title %q does not match metadata title %q. They must match.", coverTitle, metaTitle))
	}
	if metaAuthor != "" && coverAuthor != "" && !foldEqual(coverAuthor, metaAuthor) {
		results = append(results, findings.Warningf(fieldCover, GuidelineCover,
			"Cover author %q does not match metadata author %q. They must match.", coverAuthor, metaAuthor))
	}

	if coverTitle == "" && metaTitle != "" {
		results = append(results, findings.Infof(fieldCover, GuidelineCover,
			"Metadata title %q provided, but no cover title was entered for comparison.", metaTitle))
	}
	if coverAuthor == "" && metaAuthor != "" {
		results = append(results, findings.Infof(fieldCover, GuidelineCover,
			"Metadata author %q provided, but no cover author was entered for comparison.", metaAuthor))
	}

	// Success only when something was actually compared.
	if len(results) == 0 && (coverTitle != "" || coverAuthor != "") && (metaTitle != "" || metaAuthor != "") {
		results = append(results, findings.Successf(fieldCover, GuidelineCover,
			"Provided cover text is consistent with metadata."))
	} else if coverTitle == "" && coverAuthor == "" {
		results = append(results, findings.Infof(fieldCover, GuidelineCover,
			"No cover text entered for comparison."))
	}
	return results
}
