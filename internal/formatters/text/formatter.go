// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"galley-scan/internal/findings"
	"galley-scan/internal/formatters"
	"galley-scan/internal/report"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[findings.Severity]*color.Color
	bold   *color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[findings.Severity]*color.Color{
			findings.SeverityError:   color.New(color.FgRed),
			findings.SeverityWarning: color.New(color.FgYellow),
			findings.SeverityInfo:    color.New(color.FgCyan),
			findings.SeveritySuccess: color.New(color.FgGreen),
		},
		bold: color.New(color.Bold),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(rep *report.Report, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	builder.WriteString(f.bold.Sprintf("Pre-Submission Compliance Report: %s\n", rep.Title))
	builder.WriteString(fmt.Sprintf("Generated: %s\n\n", rep.Timestamp.Format("2006-01-02 15:04:05")))

	for _, section := range rep.Sections {
		builder.WriteString(f.bold.Sprintf("--- %s ---\n", section.Name))
		for _, finding := range section.Findings {
			f.appendFinding(&builder, finding, options)
		}
		builder.WriteString("\n")
	}

	if len(rep.Supplements) > 0 {
		builder.WriteString(f.bold.Sprint("--- AI Advisory Checks ---\n"))
		builder.WriteString("These results are advisory only and are not counted in the totals below.\n\n")
		for _, supp := range rep.Supplements {
			builder.WriteString(f.bold.Sprintf("[%s] %s\n", strings.ToUpper(supp.Status), supp.Check))
			if supp.Text != "" {
				builder.WriteString(indent(supp.Text, "  "))
				builder.WriteString("\n")
			}
		}
		builder.WriteString("\n")
	}

	builder.WriteString(f.bold.Sprint("=== Summary ===\n"))
	builder.WriteString(fmt.Sprintf("Errors: %d, Warnings: %d\n", rep.ErrorCount, rep.WarningCount))
	builder.WriteString(f.verdictColor(rep.Tier).Sprintln(rep.Verdict()))
	return builder.String(), nil
}

func (f *Formatter) appendFinding(builder *strings.Builder, finding findings.Finding, options formatters.FormatterOptions) {
	c, ok := f.colors[finding.Severity]
	if !ok {
		c = color.New(color.FgWhite)
	}
	builder.WriteString(c.Sprintf("[%s]", finding.Severity))
	builder.WriteString(fmt.Sprintf(" %s: %s", finding.Field, finding.Message))
	if options.Verbose && finding.Guideline != "" {
		builder.WriteString(fmt.Sprintf(" (%s)", finding.Guideline))
	}
	builder.WriteString("\n")
}

func (f *Formatter) verdictColor(tier report.RiskTier) *color.Color {
	switch tier {
	case report.TierHigh:
		return color.New(color.FgRed, color.Bold)
	case report.TierModerate, report.TierLow:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
