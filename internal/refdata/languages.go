// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package refdata

// SupportedLanguages lists every language the platform accepts in metadata.
var SupportedLanguages = []string{
	"Afrikaans", "Alsatian", "Arabic", "Basque", "Bokmål Norwegian", "Breton",
	"Catalan", "Chinese (Traditional)", "Cornish", "Corsican", "Danish",
	"Dutch/Flemish", "Eastern Frisian", "English", "Finnish", "French",
	"Frisian", "Galician", "German", "Gujarati", "Hebrew", "Hindi",
	"Icelandic", "Irish", "Italian", "Japanese", "Latin", "Luxembourgish",
	"Malayalam", "Manx", "Marathi", "Northern Frisian", "Norwegian",
	"Nynorsk Norwegian", "Polish", "Portuguese", "Provençal", "Romansh",
	"Scots", "Scottish Gaelic", "Spanish", "Swedish", "Tamil", "Ukrainian",
	"Welsh", "Yiddish",
}

// EbookOnlyLanguages are supported for eBooks only, never print.
var EbookOnlyLanguages = []string{
	"Arabic", "Chinese (Traditional)", "Gujarati", "Hindi", "Malayalam",
	"Marathi", "Tamil",
}

// PrintOnlyLanguages are supported for paperback/hardcover only, not eBooks.
var PrintOnlyLanguages = []string{"Polish", "Latin", "Ukrainian"}

// Hebrew is paperback-only with a restricted ink/paper set (no standard
// color interior).
var HebrewAllowedInkPaper = []string{
	"Black & white interior with cream paper",
	"Black & white interior with white paper",
	"Premium color interior with white paper",
}

// Japanese is listed for eBook and paperback only.
var JapaneseAllowedFormats = []string{FormatEbook, FormatPaperback}

// Yiddish hardcovers must be set up with left-to-right reading direction.
const YiddishHardcoverReadingDirection = "LTR"

// PDFUploadLanguages are the only languages accepted for PDF manuscript
// uploads; other languages must use HTML, DOCX, EPUB or similar.
var PDFUploadLanguages = []string{
	"English", "French", "German", "Italian", "Portuguese", "Spanish",
	"Catalan", "Galician", "Basque",
}

// Contains reports whether list holds value exactly.
func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
