// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package findings

import "fmt"

// Severity classifies a finding. The severity tag alone drives report counts
// and the risk verdict; message text is never inspected.
type Severity string

const (
	// SeverityError blocks submission per platform policy and must be fixed.
	SeverityError Severity = "ERROR"
	// SeverityWarning is advisory; it may cause rejection or a poor outcome.
	SeverityWarning Severity = "WARNING"
	// SeverityInfo carries context, "not applicable" notes and feature reminders.
	SeverityInfo Severity = "INFO"
	// SeveritySuccess is an explicit positive confirmation that a check area
	// was examined and produced no adverse findings.
	SeveritySuccess Severity = "SUCCESS"
)

// Finding is the atomic unit of validation output. Findings are immutable
// once produced; they are only collected into ordered sequences and counted.
type Finding struct {
	Severity  Severity `json:"severity" yaml:"severity"`
	Field     string   `json:"field" yaml:"field"`
	Message   string   `json:"message" yaml:"message"`
	Guideline string   `json:"guideline,omitempty" yaml:"guideline,omitempty"`
}

// New creates a finding with the given severity.
func New(sev Severity, field, guideline, format string, args ...any) Finding {
	return Finding{
		Severity:  sev,
		Field:     field,
		Message:   fmt.Sprintf(format, args...),
		Guideline: guideline,
	}
}

// Errorf creates an Error finding.
func Errorf(field, guideline, format string, args ...any) Finding {
	return New(SeverityError, field, guideline, format, args...)
}

// Warningf creates a Warning finding.
func Warningf(field, guideline, format string, args ...any) Finding {
	return New(SeverityWarning, field, guideline, format, args...)
}

// Infof creates an Info finding.
func Infof(field, guideline, format string, args ...any) Finding {
	return New(SeverityInfo, field, guideline, format, args...)
}

// Successf creates a Success finding.
func Successf(field, guideline, format string, args ...any) Finding {
	return New(SeveritySuccess, field, guideline, format, args...)
}

// Count tallies errors and warnings in a finding sequence. Info and Success
// findings are never counted.
func Count(list []Finding) (errors, warnings int) {
	for _, f := range list {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// HasAdverse reports whether the list contains any Error or Warning finding.
func HasAdverse(list []Finding) bool {
	e, w := Count(list)
	return e > 0 || w > 0
}
