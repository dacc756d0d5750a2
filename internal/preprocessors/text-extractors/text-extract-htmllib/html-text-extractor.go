// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textextracthtmllib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// TextContent represents the extracted text content from an HTML manuscript
type TextContent struct {
	Filename  string
	Text      string
	WordCount int
	CharCount int
}

// ExtractText extracts the visible text from an HTML manuscript. Script and
// style contents are skipped; block-level elements become line breaks.
func ExtractText(filePath string) (*TextContent, error) {
	content := &TextContent{
		Filename: filepath.Base(filePath),
	}

	f, err := os.Open(filePath)
	if err != nil {
		return content, fmt.Errorf("error opening HTML file: %v", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return content, fmt.Errorf("error parsing HTML: %v", err)
	}

	content.Text = CollectText(doc)
	content.WordCount = len(strings.Fields(content.Text))
	content.CharCount = len(content.Text)
	return content, nil
}

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "blockquote": true,
}

// CollectText walks a parsed HTML tree and returns its visible text. It is
// exported so the EPUB extractor can reuse it on chapter documents.
func CollectText(doc *html.Node) string {
	var builder strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			builder.WriteString("\n")
		}
	}
	walk(doc)
	return normalizeWhitespace(builder.String())
}

// normalizeWhitespace collapses runs of spaces within lines and drops blank
// lines, keeping one line per block element.
func normalizeWhitespace(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
