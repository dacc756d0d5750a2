// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"regexp"

	"galley-scan/internal/findings"
)

const fieldSeries = "Series"

var digitsOnlyPattern = regexp.MustCompile(`^[0-9]+$`)

// Series validates series enrollment. The series name must pass the same
// rules as a book title, so Series reuses the Title validator and relabels
// the nested results under its own field.
func Series(isSeries bool, name, number string, isLowContent, isPublicDomain bool) []findings.Finding {
	if !isSeries {
		return nil
	}

	results := []findings.Finding{
		findings.Infof(fieldSeries, GuidelineSeries, "Declared as part of a series."),
	}
	if isLowContent {
		results = append(results, findings.Errorf(fieldSeries, GuidelineSeries,
			"Low-content books are not eligible for series."))
	}
	if isPublicDomain {
		results = append(results, findings.Errorf(fieldSeries, GuidelineSeries,
			"Public domain books are not eligible for series."))
	}

	if name == "" {
		results = append(results, findings.Errorf("Series Name", GuidelineSeries,
			"Series name is required when the book is part of a series."))
	} else {
		nested := Title(name, "")
		if findings.HasAdverse(nested) {
			for _, f := range nested {
				if f.Severity == findings.SeveritySuccess {
					continue
				}
				f.Field = "Series Name"
				results = append(results, f)
			}
		} else {
			results = append(results, findings.Successf("Series Name", GuidelineSeries, "Basic checks passed."))
		}
	}

	if number != "" {
		switch {
		case !digitsOnlyPattern.MatchString(number):
			results = append(results, findings.Errorf("Series Number", GuidelineSeries,
				"Series number %q must be digits only (e.g. \"1\", \"2\").", number))
		case name != "" && numberInName(name, number):
			results = append(results, findings.Warningf("Series Number", GuidelineSeries,
				"Series name %q appears to contain the series number %q. The name field should hold only the series name itself.", name, number))
		default:
			results = append(results, findings.Successf("Series Number", GuidelineSeries,
				"%q is a valid series number.", number))
		}
	} else {
		results = append(results, findings.Infof("Series Number", GuidelineSeries,
			"Not provided. Usually required for numbered series parts."))
	}
	return results
}

// numberInName reports whether the number appears as a whole word inside the
// series name.
func numberInName(name, number string) bool {
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(number) + `\b`)
	return pattern.MatchString(name)
}
