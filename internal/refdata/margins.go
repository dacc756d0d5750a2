// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package refdata

// Margin minimums in inches.
const (
	// OutsideMarginNoBleed is the minimum top/bottom/outer-edge margin
	// without interior bleed.
	OutsideMarginNoBleed = 0.25
	// OutsideMarginBleed is the minimum top/bottom/outer-edge margin when
	// interior bleed is enabled.
	OutsideMarginBleed = 0.375
	// HardcoverInsideMargin is the flat gutter minimum hardcovers use across
	// their typical page-count band.
	HardcoverInsideMargin = 0.625
	// HardcoverMinPages and HardcoverMaxPages bound the typical hardcover
	// page-count band the flat margin applies to.
	HardcoverMinPages = 75
	HardcoverMaxPages = 550
)

// Bleed allowances in inches added to the trim size when interior bleed is
// enabled. Width grows by a single outer-edge allowance; height grows by a
// top plus bottom allowance.
const (
	BleedWidthAllowance  = 0.125
	BleedHeightAllowance = 0.250
)

// MarginTier maps an inclusive page-count band to its minimum inside
// (gutter) margin.
type MarginTier struct {
	MinPages int
	MaxPages int
	Inside   float64
}

// InsideMarginTiers is the ascending paperback gutter table. The tier
// boundaries are exact: 150 and 151 pages resolve to different tiers.
var InsideMarginTiers = []MarginTier{
	{24, 150, 0.375},
	{151, 300, 0.5},
	{301, 500, 0.625},
	{501, 700, 0.75},
	{701, 828, 0.875},
}

// InsideMarginFor returns the gutter minimum for a page count, or ok=false
// when the count falls outside every tier.
func InsideMarginFor(pageCount int) (float64, bool) {
	for _, tier := range InsideMarginTiers {
		if pageCount >= tier.MinPages && pageCount <= tier.MaxPages {
			return tier.Inside, true
		}
	}
	return 0, false
}
