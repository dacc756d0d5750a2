// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package refdata

// ProhibitedTitleTerms may not be used in titles or subtitles for marketing
// or keyword-stuffing purposes.
var ProhibitedTitleTerms = []string{
	"free", "bestselling", "best seller", "best book", "sale", "discount",
	"notebook", "journal", "gifts", "books", "summary of", "study guide for",
	"analysis of",
}

// GenericTitleTerms are the subset of prohibited title terms that are exempt
// when they occur exactly once in a title longer than the exemption
// threshold: a single incidental occurrence in an otherwise substantive
// title is not evidence of keyword stuffing.
var GenericTitleTerms = []string{"notebook", "journal", "gifts", "books"}

// TitlePlaceholders are rejected as whole-title values (case-insensitive).
var TitlePlaceholders = []string{
	"unknown", "n/a", "na", "blank", "none", "null", "not applicable",
	"untitled",
}

// ProhibitedKeywordTerms may not appear in search keywords.
var ProhibitedKeywordTerms = []string{
	"free", "bestselling", "on sale", "new", "available now",
	"kindle unlimited", "kdp select", "book", "ebook",
}

// SupportedDescriptionTags is the fixed HTML subset allowed in book
// descriptions.
var SupportedDescriptionTags = []string{
	"br", "p", "b", "em", "i", "u", "h4", "h5", "h6", "ol", "ul", "li",
}

// ChildrenCategoryTerms identify children's categories in category strings.
var ChildrenCategoryTerms = []string{
	"children", "kids", "juvenile", "baby", "toddler", "picture book",
	"early reader", "middle grade",
}

// TeenCategoryTerms identify teen/young-adult categories.
var TeenCategoryTerms = []string{"teen", "young adult", "ya"}

// DifferentiationTerms signal substantial differentiation of a public-domain
// work in a statement or description.
var DifferentiationTerms = []string{
	"annotated", "annotations by", "illustrated by", "original illustrations",
	"new translation by", "critical edition", "introduction by",
	"foreword by", "commentary by", "scholarly analysis", "edited by",
	"with new research", "unique collection of",
}
