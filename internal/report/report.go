// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report assembles per-field findings into the final compliance
// report: ordered sections, severity tallies, a risk tier derived from the
// tallies, and any advisory supplements from the AI channel. Supplements are
// presentation-only and never influence the tallies or tier.
package report

import (
	"time"

	"galley-scan/internal/findings"
)

// RiskTier is the overall verdict derived from the error and warning counts.
type RiskTier string

const (
	TierHigh     RiskTier = "HIGH"
	TierModerate RiskTier = "MODERATE"
	TierLow      RiskTier = "LOW"
	TierClear    RiskTier = "CLEAR"
)

// moderateWarningThreshold is the warning count above which a report without
// errors is still considered moderate risk.
const moderateWarningThreshold = 5

// Section groups the findings produced for one checked field or concern.
type Section struct {
	Name     string             `json:"name" yaml:"name"`
	Findings []findings.Finding `json:"findings" yaml:"findings"`
}

// Supplement carries one advisory result from a collaborator such as an AI
// check. Status is a structural marker; it is reported verbatim and never
// mapped onto finding severities.
type Supplement struct {
	Check  string `json:"check" yaml:"check"`
	Status string `json:"status" yaml:"status"`
	Text   string `json:"text" yaml:"text"`
}

// Report is the complete result of a compliance run.
type Report struct {
	Title        string       `json:"title" yaml:"title"`
	Timestamp    time.Time    `json:"timestamp" yaml:"timestamp"`
	Sections     []Section    `json:"sections" yaml:"sections"`
	ErrorCount   int          `json:"error_count" yaml:"error_count"`
	WarningCount int          `json:"warning_count" yaml:"warning_count"`
	Tier         RiskTier     `json:"risk_tier" yaml:"risk_tier"`
	Supplements  []Supplement `json:"supplements,omitempty" yaml:"supplements,omitempty"`
}

// TierFor maps severity tallies to a risk tier. Any error dominates; with no
// errors the warning count decides.
func TierFor(errors, warnings int) RiskTier {
	switch {
	case errors > 0:
		return TierHigh
	case warnings > moderateWarningThreshold:
		return TierModerate
	case warnings > 0:
		return TierLow
	default:
		return TierClear
	}
}

// Build tallies the sections and derives the risk tier. A section that
// produced no findings at all is filled with a synthetic all-clear so every
// checked area appears in the output.
func Build(title string, sections []Section, supplements []Supplement) *Report {
	var errors, warnings int
	for i := range sections {
		if len(sections[i].Findings) == 0 {
			sections[i].Findings = []findings.Finding{
				findings.Successf(sections[i].Name, "", "No issues found."),
			}
		}
		e, w := findings.Count(sections[i].Findings)
		errors += e
		warnings += w
	}
	return &Report{
		Title:        title,
		Timestamp:    time.Now(),
		Sections:     sections,
		ErrorCount:   errors,
		WarningCount: warnings,
		Tier:         TierFor(errors, warnings),
		Supplements:  supplements,
	}
}

// Verdict returns the human phrasing used at the bottom of rendered reports.
func (r *Report) Verdict() string {
	switch r.Tier {
	case TierHigh:
		return "HIGH RISK: critical issues found. Address all errors before submitting."
	case TierModerate:
		return "MODERATE RISK: several warnings found. Review them carefully before submitting."
	case TierLow:
		return "LOW RISK: minor warnings found. Review them before submitting."
	default:
		return "ALL CLEAR: no blocking issues found by the automated checks."
	}
}
