// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package refdata

// Book formats.
const (
	FormatEbook     = "eBook"
	FormatPaperback = "Paperback"
	FormatHardcover = "Hardcover"
)

// BookFormats lists the accepted book format values.
var BookFormats = []string{FormatEbook, FormatPaperback, FormatHardcover}

// IsPrintFormat reports whether the format is a physical book.
func IsPrintFormat(bookFormat string) bool {
	return bookFormat == FormatPaperback || bookFormat == FormatHardcover
}

// StandardColorInkPaper is the ink/paper label that hardcovers reject
// outright.
const StandardColorInkPaper = "Standard color interior with white paper"

// TrimSizesPaperback lists the paperback trim sizes the platform offers.
var TrimSizesPaperback = []string{
	`5" x 8"`, `5.06" x 7.81"`, `5.25" x 8"`, `5.5" x 8.5"`, `6" x 9"`,
	`6.14" x 9.21"`, `6.69" x 9.61"`, `7" x 10"`, `7.44" x 9.69"`,
	`7.5" x 9.25"`, `8" x 10"`, `8.25" x 6"`, `8.25" x 8.25"`, `8.5" x 8.5"`,
	`8.5" x 11"`, `8.27" x 11.69" (A4)`,
}

// TrimSizesHardcover lists the hardcover trim sizes the platform offers.
var TrimSizesHardcover = []string{
	`5.5" x 8.5"`, `6" x 9"`, `6.14" x 9.21"`, `7" x 10"`, `8.25" x 11"`,
}

// InkPaperOptionsPaperback lists the paperback ink/paper choices.
var InkPaperOptionsPaperback = []string{
	"Black & white interior with cream paper",
	"Black & white interior with white paper",
	"Standard color interior with white paper",
	"Premium color interior with white paper",
}

// InkPaperOptionsHardcover lists the hardcover ink/paper choices (standard
// color is not offered).
var InkPaperOptionsHardcover = []string{
	"Black & white interior with cream paper",
	"Black & white interior with white paper",
	"Premium color interior with white paper",
}

// UploadFormats lists the manuscript upload formats an author can declare.
var UploadFormats = []string{"Other", "PDF", "DOCX", "EPUB", "HTML", "TXT"}

// AI-generated-content declaration options. Each list is a 5-value ordinal
// scale; index 0 is the "none" value that requires no disclosure.
var (
	AITextOptions = []string{
		"None (AI was only used for assistance like brainstorming or editing my own writing)",
		"Some sections created by AI, with minimal or no editing by you",
		"Some sections created by AI, with extensive editing by you",
		"Entire work created by AI, with minimal or no editing by you",
		"Entire work created by AI, with extensive editing by you",
	}
	AIImageOptions = []string{
		"None (AI was only used for assistance like brainstorming or editing my own images)",
		"One or a few AI-generated images, with minimal or no editing by you",
		"One or a few AI-generated images, with extensive editing by you",
		"Many AI-generated images, with minimal or no editing by you",
		"Many AI-generated images, with extensive editing by you",
	}
	AITranslationOptions = []string{
		"None (AI was only used for assistance like brainstorming or editing my own translations)",
		"Some sections translated by AI, with minimal or no editing by you",
		"Some sections translated by AI, with extensive editing by you",
		"Entire work translated by AI, with minimal or no editing by you",
		"Entire work translated by AI, with extensive editing by you",
	}
)

// IsAINone reports whether an AI detail declaration is at its "none" value.
// An empty string means the field was left untouched, which is the same as
// selecting the none option.
func IsAINone(value string, options []string) bool {
	return value == "" || value == options[0]
}
