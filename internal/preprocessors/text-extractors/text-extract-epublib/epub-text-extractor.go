// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textextractepublib

import (
	"archive/zip"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	textextracthtmllib "galley-scan/internal/preprocessors/text-extractors/text-extract-htmllib"
)

// TextContent represents the extracted text content from an EPUB manuscript
type TextContent struct {
	Filename  string
	Text      string
	Chapters  int
	WordCount int
	CharCount int
}

// ExtractText extracts the text from an EPUB manuscript. An EPUB is a zip
// archive of XHTML content documents; every .xhtml/.html entry is parsed and
// its visible text collected. Entries are processed in archive path order,
// which matches the spine order for the common single-directory layout.
func ExtractText(filePath string) (*TextContent, error) {
	content := &TextContent{
		Filename: filepath.Base(filePath),
	}

	reader, err := zip.OpenReader(filePath)
	if err != nil {
		return content, fmt.Errorf("error opening EPUB archive: %v", err)
	}
	defer reader.Close()

	var entries []*zip.File
	for _, file := range reader.File {
		ext := strings.ToLower(filepath.Ext(file.Name))
		if ext == ".xhtml" || ext == ".html" || ext == ".htm" {
			entries = append(entries, file)
		}
	}
	if len(entries) == 0 {
		return content, fmt.Errorf("no XHTML content documents found in EPUB")
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	var builder strings.Builder
	for _, entry := range entries {
		rc, err := entry.Open()
		if err != nil {
			continue
		}
		doc, err := html.Parse(rc)
		rc.Close()
		if err != nil {
			continue
		}
		text := textextracthtmllib.CollectText(doc)
		if text == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
		content.Chapters++
	}

	content.Text = builder.String()
	content.WordCount = len(strings.Fields(content.Text))
	content.CharCount = len(content.Text)
	if content.Text == "" {
		return content, fmt.Errorf("no extractable text in EPUB content documents")
	}
	return content, nil
}
