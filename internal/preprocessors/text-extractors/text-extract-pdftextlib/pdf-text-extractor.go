// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textextractpdftextlib

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// TextContent represents the extracted text content from a PDF manuscript
type TextContent struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
	CharCount int
}

// maxPages caps extraction for very large manuscripts. The page count is
// still reported for the whole document.
const maxPages = 500

// ExtractText extracts text from a PDF manuscript using ledongthuc/pdf. The
// authoritative page count comes from pdfcpu, which handles documents whose
// page tree the text extractor cannot fully walk.
func ExtractText(filePath string) (*TextContent, error) {
	content := &TextContent{
		Filename: filepath.Base(filePath),
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return content, fmt.Errorf("error opening PDF: %v", err)
	}
	defer f.Close()

	content.PageCount = r.NumPage()
	if count, err := api.PageCountFile(filePath); err == nil && count > 0 {
		content.PageCount = count
	}

	pages := content.PageCount
	if pages > maxPages {
		pages = maxPages
	}

	var buf bytes.Buffer
	failedPages := 0
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			failedPages++
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			failedPages++
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	content.Text = buf.String()
	content.WordCount = countWords(content.Text)
	content.CharCount = len(content.Text)

	if content.Text == "" && failedPages > 0 {
		return content, fmt.Errorf("no extractable text: %d of %d pages failed (likely a scanned or image-only PDF)", failedPages, pages)
	}
	return content, nil
}

func countWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			inWord = false
		case !inWord:
			inWord = true
			count++
		}
	}
	return count
}
