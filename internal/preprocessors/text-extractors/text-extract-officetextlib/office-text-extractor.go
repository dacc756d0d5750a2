// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textextractofficetextlib

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// TextContent represents the extracted text content from a Word manuscript
type TextContent struct {
	Filename   string
	Text       string
	Paragraphs int
	WordCount  int
	CharCount  int
}

// ExtractText extracts the body text from a .docx manuscript. A .docx file
// is a zip archive; the text lives in word/document.xml as w:t runs grouped
// into w:p paragraphs.
func ExtractText(filePath string) (*TextContent, error) {
	content := &TextContent{
		Filename: filepath.Base(filePath),
	}

	reader, err := zip.OpenReader(filePath)
	if err != nil {
		return content, fmt.Errorf("error opening docx archive: %v", err)
	}
	defer reader.Close()

	var documentXML io.ReadCloser
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			documentXML, err = file.Open()
			if err != nil {
				return content, fmt.Errorf("error opening word/document.xml: %v", err)
			}
			break
		}
	}
	if documentXML == nil {
		return content, fmt.Errorf("word/document.xml not found: not a Word document")
	}
	defer documentXML.Close()

	text, paragraphs, err := walkDocumentXML(documentXML)
	if err != nil {
		return content, fmt.Errorf("error parsing word/document.xml: %v", err)
	}

	content.Text = text
	content.Paragraphs = paragraphs
	content.WordCount = len(strings.Fields(text))
	content.CharCount = len(text)
	return content, nil
}

// walkDocumentXML streams the document with xml.Decoder, collecting
// character data inside w:t elements and inserting a newline at every
// paragraph end. Tabs and explicit breaks become whitespace.
func walkDocumentXML(r io.Reader) (string, int, error) {
	decoder := xml.NewDecoder(r)
	var builder strings.Builder
	paragraphs := 0
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				builder.WriteString("\t")
			case "br":
				builder.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				builder.WriteString("\n")
				paragraphs++
			}
		case xml.CharData:
			if inText {
				builder.Write(t)
			}
		}
	}
	return builder.String(), paragraphs, nil
}
