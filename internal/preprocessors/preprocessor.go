// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns an uploaded manuscript file into plain text
// for the advisory checks. Extraction is best effort: a manuscript that
// cannot be read produces an empty result with a diagnostic, never a failed
// run.
package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	textextractepublib "galley-scan/internal/preprocessors/text-extractors/text-extract-epublib"
	textextracthtmllib "galley-scan/internal/preprocessors/text-extractors/text-extract-htmllib"
	textextractofficetextlib "galley-scan/internal/preprocessors/text-extractors/text-extract-officetextlib"
	textextractpdftextlib "galley-scan/internal/preprocessors/text-extractors/text-extract-pdftextlib"
)

// ExtractResult is the outcome of manuscript text extraction. Diagnostic is
// set when extraction failed or was partial; PageCount is only populated for
// PDF manuscripts.
type ExtractResult struct {
	Filename   string
	Format     string
	Text       string
	PageCount  int
	WordCount  int
	Diagnostic string
}

// SupportedExtensions lists the manuscript formats extraction understands.
var SupportedExtensions = []string{".txt", ".pdf", ".docx", ".epub", ".html", ".htm"}

// ExtractManuscript extracts plain text from a manuscript file, dispatching
// on the file extension. It never returns an error: callers get whatever
// text could be recovered plus a diagnostic describing any shortfall.
func ExtractManuscript(filePath string) ExtractResult {
	result := ExtractResult{Filename: filepath.Base(filePath)}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".txt":
		result.Format = "Plain Text"
		text, diag := readPlainText(filePath)
		result.Text, result.Diagnostic = text, diag
	case ".pdf":
		result.Format = "PDF"
		content, err := textextractpdftextlib.ExtractText(filePath)
		result.Text = content.Text
		result.PageCount = content.PageCount
		if err != nil {
			result.Diagnostic = err.Error()
		}
	case ".docx":
		result.Format = "Word Document"
		content, err := textextractofficetextlib.ExtractText(filePath)
		result.Text = content.Text
		if err != nil {
			result.Diagnostic = err.Error()
		}
	case ".epub":
		result.Format = "EPUB"
		content, err := textextractepublib.ExtractText(filePath)
		result.Text = content.Text
		if err != nil {
			result.Diagnostic = err.Error()
		}
	case ".html", ".htm":
		result.Format = "HTML"
		content, err := textextracthtmllib.ExtractText(filePath)
		result.Text = content.Text
		if err != nil {
			result.Diagnostic = err.Error()
		}
	default:
		result.Format = "Unknown"
		result.Diagnostic = fmt.Sprintf("unsupported manuscript format %q (supported: %s)",
			ext, strings.Join(SupportedExtensions, ", "))
	}

	result.WordCount = len(strings.Fields(result.Text))
	log.Debug().
		Str("file", result.Filename).
		Str("format", result.Format).
		Int("words", result.WordCount).
		Int("pages", result.PageCount).
		Str("diagnostic", result.Diagnostic).
		Msg("manuscript extraction complete")
	return result
}

// readPlainText reads a .txt manuscript. Files that are not valid UTF-8 are
// decoded as Latin-1, which maps every byte to a rune and cannot fail.
func readPlainText(filePath string) (string, string) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Sprintf("error reading text file: %v", err)
	}
	if utf8.Valid(data) {
		return string(data), ""
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), "file was not valid UTF-8; decoded as Latin-1"
}
