// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package refdata holds the static platform lookup tables consumed by the
// validators. The tables are loaded once at init, treated as read-only, and
// transcribed literally from the platform's published specifications. They
// are contract figures, never derived.
package refdata

// PageLimit is the inclusive page-count range for a trim size and ink/paper
// combination. NotAvailable marks combinations the platform explicitly lists
// as unsupported, which is distinct from a combination absent from the table.
type PageLimit struct {
	Min          int
	Max          int
	NotAvailable bool
}

const (
	InkBWWhite       = "bw_white"
	InkBWCream       = "bw_cream"
	InkStandardColor = "std_color_white"
	InkPremiumColor  = "prem_color_white"
)

var notAvailable = PageLimit{NotAvailable: true}

// PageCountSpecsPaperback maps trim size -> ink key -> page limits for
// paperback books.
var PageCountSpecsPaperback = map[string]map[string]PageLimit{
	`5" x 8"`:             {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`5.06" x 7.81"`:       {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`5.25" x 8"`:          {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`5.5" x 8.5"`:         {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`6" x 9"`:             {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`6.14" x 9.21"`:       {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`6.69" x 9.61"`:       {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`7" x 10"`:            {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`7.44" x 9.69"`:       {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`7.5" x 9.25"`:        {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`8" x 10"`:            {InkBWWhite: {Min: 24, Max: 828}, InkBWCream: {Min: 24, Max: 776}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 828}},
	`8.25" x 6"`:          {InkBWWhite: {Min: 24, Max: 800}, InkBWCream: {Min: 24, Max: 750}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 800}},
	`8.25" x 8.25"`:       {InkBWWhite: {Min: 24, Max: 800}, InkBWCream: {Min: 24, Max: 750}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 800}},
	`8.5" x 8.5"`:         {InkBWWhite: {Min: 24, Max: 590}, InkBWCream: {Min: 24, Max: 550}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 590}},
	`8.5" x 11"`:          {InkBWWhite: {Min: 24, Max: 590}, InkBWCream: {Min: 24, Max: 550}, InkStandardColor: {Min: 72, Max: 600}, InkPremiumColor: {Min: 24, Max: 590}},
	`8.27" x 11.69" (A4)`: {InkBWWhite: {Min: 24, Max: 780}, InkBWCream: {Min: 24, Max: 730}, InkStandardColor: notAvailable, InkPremiumColor: {Min: 24, Max: 590}},
}

// PageCountSpecsHardcover maps trim size -> ink key -> page limits for
// hardcover books. Hardcover limits differ from paperback even for the same
// ink/paper label, so the two tables are separate key namespaces.
var PageCountSpecsHardcover = map[string]map[string]PageLimit{
	`5.5" x 8.5"`:   {InkBWWhite: {Min: 75, Max: 550}, InkBWCream: {Min: 75, Max: 550}, InkStandardColor: notAvailable, InkPremiumColor: {Min: 75, Max: 550}},
	`6" x 9"`:       {InkBWWhite: {Min: 75, Max: 550}, InkBWCream: {Min: 75, Max: 550}, InkStandardColor: notAvailable, InkPremiumColor: {Min: 75, Max: 550}},
	`6.14" x 9.21"`: {InkBWWhite: {Min: 75, Max: 550}, InkBWCream: {Min: 75, Max: 550}, InkStandardColor: notAvailable, InkPremiumColor: {Min: 75, Max: 550}},
	`7" x 10"`:      {InkBWWhite: {Min: 75, Max: 550}, InkBWCream: {Min: 75, Max: 550}, InkStandardColor: notAvailable, InkPremiumColor: {Min: 75, Max: 550}},
	`8.25" x 11"`:   {InkBWWhite: {Min: 75, Max: 550}, InkBWCream: {Min: 75, Max: 550}, InkStandardColor: notAvailable, InkPremiumColor: {Min: 75, Max: 550}},
}

// InkPaperToKey maps the ink/paper labels shown to authors onto table keys.
var InkPaperToKey = map[string]string{
	"Black & white interior with cream paper":  InkBWCream,
	"Black & white interior with white paper":  InkBWWhite,
	"Standard color interior with white paper": InkStandardColor,
	"Premium color interior with white paper":  InkPremiumColor,
}

// LookupPageLimit resolves the page-count limits for a (format, trim, ink key)
// combination. ok is false when the combination is absent from the tables,
// which callers must treat as "cannot auto-verify", not as unsupported.
func LookupPageLimit(bookFormat, trimSize, inkKey string) (PageLimit, bool) {
	specs := PageCountSpecsPaperback
	if bookFormat == FormatHardcover {
		specs = PageCountSpecsHardcover
	}
	byInk, ok := specs[trimSize]
	if !ok {
		return PageLimit{}, false
	}
	limit, ok := byInk[inkKey]
	return limit, ok
}
