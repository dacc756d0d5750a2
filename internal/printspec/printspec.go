// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package printspec derives print geometry from a submission's trim size,
// ink/paper type, page count and bleed setting, and validates the page count
// against the platform's published ranges. A combination the tables do not
// cover degrades to a "verify manually" Warning rather than failing the run.
package printspec

import (
	"regexp"
	"strconv"
	"strings"

	"galley-scan/internal/findings"
	"galley-scan/internal/refdata"
	"galley-scan/internal/validators"
)

const fieldPrint = "Print Specs"

// minPrintPages is the absolute platform floor for any print book.
const minPrintPages = 24

// trimSizePattern parses `6" x 9"` style trim strings after spaces are
// removed. Suffixes like "(A4)" are tolerated.
var trimSizePattern = regexp.MustCompile(`^([0-9.]+)"?x([0-9.]+)"?`)

// Calculate validates the print-specific fields and derives document
// geometry. For eBooks the print fields are not applicable and the result is
// a single informational finding, never missing-field errors.
func Calculate(trimSize, pageCountStr string, bleed bool, inkPaper, bookFormat string) []findings.Finding {
	if !refdata.IsPrintFormat(bookFormat) {
		return []findings.Finding{findings.Infof(fieldPrint, validators.GuidelinePrint,
			"Print-specific checks are not applicable for the eBook format.")}
	}

	var results []findings.Finding
	if missing(trimSize, "Select Trim Size") {
		results = append(results, findings.Errorf(fieldPrint+" - Trim Size", validators.GuidelinePrint,
			"Select a trim size."))
	}
	if missing(inkPaper, "Select Ink/Paper") {
		results = append(results, findings.Errorf(fieldPrint+" - Ink & Paper", validators.GuidelinePrint,
			"Select an ink and paper type."))
	}
	if pageCountStr == "" {
		results = append(results, findings.Errorf(fieldPrint+" - Page Count", validators.GuidelinePrint,
			"Page count is required."))
	}
	if len(results) > 0 {
		// The calculations below are meaningless without all three inputs.
		return results
	}

	pageCount, err := strconv.Atoi(strings.TrimSpace(pageCountStr))
	if err != nil || pageCount < minPrintPages {
		return []findings.Finding{findings.Errorf(fieldPrint+" - Page Count", validators.GuidelinePrint,
			"Page count %q must be a whole number of at least %d.", pageCountStr, minPrintPages)}
	}

	results = append(results, findings.Infof(fieldPrint, validators.GuidelinePrint,
		"Format: %s, Trim: %s, Ink/Paper: %s, Bleed: %v, Pages: %d.",
		bookFormat, trimSize, inkPaper, bleed, pageCount))

	results = append(results, checkPageCountLimits(trimSize, inkPaper, bookFormat, pageCount)...)
	results = append(results, documentGeometry(trimSize, bleed)...)
	results = append(results, marginMinimums(bookFormat, pageCount, bleed)...)
	return results
}

func missing(value, placeholder string) bool {
	return value == "" || value == placeholder
}

// checkPageCountLimits resolves the (format, ink) key and compares the page
// count against the published range. Hardcover plus standard color is
// rejected before the lookup: the combination is never offered.
func checkPageCountLimits(trimSize, inkPaper, bookFormat string, pageCount int) []findings.Finding {
	var results []findings.Finding

	inkKey, inkKnown := refdata.InkPaperToKey[inkPaper]
	if bookFormat == refdata.FormatHardcover && inkPaper == refdata.StandardColorInkPaper {
		results = append(results, findings.Errorf(fieldPrint+" - Ink/Paper", validators.GuidelinePrint,
			"%q is not available for hardcovers. Choose premium color or black ink.", inkPaper))
		inkKnown = false
	}

	if inkKnown {
		if limit, ok := refdata.LookupPageLimit(bookFormat, trimSize, inkKey); ok {
			switch {
			case limit.NotAvailable:
				results = append(results, findings.Errorf(fieldPrint+" - Page Count", validators.GuidelinePrint,
					"The combination of %s and %s for %s is listed as not available. Choose a different combination.",
					trimSize, inkPaper, bookFormat))
			case pageCount < limit.Min || pageCount > limit.Max:
				results = append(results, findings.Errorf(fieldPrint+" - Page Count", validators.GuidelinePrint,
					"For %s (%s, %s) pages must be %d-%d. Entered: %d.",
					trimSize, inkPaper, bookFormat, limit.Min, limit.Max, pageCount))
			default:
				results = append(results, findings.Successf(fieldPrint+" - Page Count", validators.GuidelinePrint,
					"%d pages is within %d-%d for %s (%s, %s).",
					pageCount, limit.Min, limit.Max, trimSize, inkPaper, bookFormat))
			}
			return results
		}
	}

	results = append(results, findings.Warningf(fieldPrint+" - Page Count", validators.GuidelinePrint,
		"Could not automatically verify page-count limits for %s with %s (%s). Verify manually against the platform tables.",
		trimSize, inkPaper, bookFormat))
	return results
}

// documentGeometry parses the trim string and reports the manuscript page
// size, including bleed allowances when enabled. A trim string that does not
// parse degrades to a Warning and skips the margin-independent geometry.
func documentGeometry(trimSize string, bleed bool) []findings.Finding {
	match := trimSizePattern.FindStringSubmatch(strings.ReplaceAll(trimSize, " ", ""))
	if match == nil {
		return []findings.Finding{findings.Warningf(fieldPrint+" - Page Setup", validators.GuidelinePrint,
			"Could not parse trim size %q to calculate document page dimensions. Calculate manually.", trimSize)}
	}
	width, errW := strconv.ParseFloat(match[1], 64)
	height, errH := strconv.ParseFloat(match[2], 64)
	if errW != nil || errH != nil {
		return []findings.Finding{findings.Warningf(fieldPrint+" - Page Setup", validators.GuidelinePrint,
			"Could not parse trim size %q to calculate document page dimensions. Calculate manually.", trimSize)}
	}

	if bleed {
		width += refdata.BleedWidthAllowance
		height += refdata.BleedHeightAllowance
	}
	label := "no bleed"
	if bleed {
		label = "with bleed"
	}
	results := []findings.Finding{findings.Successf(fieldPrint+" - Page Setup", validators.GuidelinePrint,
		"For %s (%s), set the document page size to %.3f\" W x %.3f\" H.", trimSize, label, width, height)}
	if bleed {
		results = append(results, findings.Infof(fieldPrint+" - Page Setup", validators.GuidelinePrint,
			"Ensure all bleed elements extend fully to these larger page dimensions."))
	}
	return results
}

// marginMinimums derives the paired inside/outside margin minimums. The
// inside margin scales with page count; hardcovers override it with a flat
// value across their typical band and warn beyond it, since margins outside
// the documented band are not guessable.
func marginMinimums(bookFormat string, pageCount int, bleed bool) []findings.Finding {
	var results []findings.Finding

	inside, found := refdata.InsideMarginFor(pageCount)
	if bookFormat == refdata.FormatHardcover {
		switch {
		case pageCount >= refdata.HardcoverMinPages && pageCount <= refdata.HardcoverMaxPages:
			inside, found = refdata.HardcoverInsideMargin, true
		case pageCount > refdata.HardcoverMaxPages:
			results = append(results, findings.Warningf(fieldPrint+" - Margins", validators.GuidelinePrint,
				"Hardcover page count (%d) exceeds %d, the platform's typical hardcover limit. Verify.",
				pageCount, refdata.HardcoverMaxPages))
		}
	}

	outside := refdata.OutsideMarginNoBleed
	if bleed {
		outside = refdata.OutsideMarginBleed
	}

	if found && inside > 0 {
		results = append(results, findings.Successf(fieldPrint+" - Margins", validators.GuidelinePrint,
			"Inside (gutter): at least %.3f\". Outside (top, bottom, outer edge): at least %.3f\".", inside, outside))
	} else {
		results = append(results, findings.Warningf(fieldPrint+" - Margins", validators.GuidelinePrint,
			"Could not determine the inside margin for %d pages. Minimum outside (top, bottom, outer edge): %.3f\". Consult the platform tables for the inside margin.",
			pageCount, outside))
	}

	results = append(results, findings.Infof(fieldPrint+" - Margins", validators.GuidelinePrint,
		"Set mirror margins in your document tool for print books."))
	if bookFormat == refdata.FormatHardcover {
		results = append(results, findings.Infof(fieldPrint+" - Margins", validators.GuidelinePrint,
			"Hardcover margin requirements can be specific to trim size and page count. Double-check the official documentation."))
	}
	return results
}

// CrossCheckPageCount compares the declared page count against the page
// count observed in an uploaded PDF manuscript. It returns nil when the
// counts agree or either side is unavailable.
func CrossCheckPageCount(declared string, actual int) *findings.Finding {
	if actual <= 0 {
		return nil
	}
	declaredPages, err := strconv.Atoi(strings.TrimSpace(declared))
	if err != nil || declaredPages <= 0 {
		return nil
	}
	if declaredPages == actual {
		return nil
	}
	f := findings.Warningf(fieldPrint+" - Page Count", validators.GuidelinePrint,
		"Declared page count (%d) differs from the uploaded PDF's page count (%d). Align them before submitting.",
		declaredPages, actual)
	return &f
}
