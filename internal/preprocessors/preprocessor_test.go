// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractManuscriptPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	if err := os.WriteFile(path, []byte("Chapter one. The river was quiet."), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ExtractManuscript(path)
	if result.Format != "Plain Text" {
		t.Errorf("format = %q, want Plain Text", result.Format)
	}
	if result.Diagnostic != "" {
		t.Errorf("unexpected diagnostic: %q", result.Diagnostic)
	}
	if result.WordCount != 6 {
		t.Errorf("word count = %d, want 6", result.WordCount)
	}
}

func TestExtractManuscriptLatin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	// "café" encoded as Latin-1: 0xE9 is not valid UTF-8 on its own.
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ExtractManuscript(path)
	if result.Text != "café" {
		t.Errorf("text = %q, want café", result.Text)
	}
	if !strings.Contains(result.Diagnostic, "Latin-1") {
		t.Errorf("expected a Latin-1 diagnostic, got %q", result.Diagnostic)
	}
}

func TestExtractManuscriptUnsupportedFormat(t *testing.T) {
	result := ExtractManuscript("/tmp/manuscript.mobi")
	if result.Format != "Unknown" {
		t.Errorf("format = %q, want Unknown", result.Format)
	}
	if !strings.Contains(result.Diagnostic, "unsupported manuscript format") {
		t.Errorf("expected an unsupported-format diagnostic, got %q", result.Diagnostic)
	}
	if result.Text != "" {
		t.Errorf("unsupported format should yield no text, got %q", result.Text)
	}
}

func TestExtractManuscriptMissingFile(t *testing.T) {
	result := ExtractManuscript("/nonexistent/book.txt")
	if result.Diagnostic == "" {
		t.Error("missing file should produce a diagnostic")
	}
	if result.Text != "" {
		t.Errorf("missing file should yield no text, got %q", result.Text)
	}
}

func TestExtractManuscriptDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.docx")
	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>The river was quiet.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Nobody spoke.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	writeZip(t, path, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   document,
	})

	result := ExtractManuscript(path)
	if result.Format != "Word Document" {
		t.Errorf("format = %q, want Word Document", result.Format)
	}
	if result.Diagnostic != "" {
		t.Errorf("unexpected diagnostic: %q", result.Diagnostic)
	}
	if !strings.Contains(result.Text, "The river was quiet.") || !strings.Contains(result.Text, "Nobody spoke.") {
		t.Errorf("paragraph text missing from extraction: %q", result.Text)
	}
}

func TestExtractManuscriptHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.html")
	page := `<html><head><style>p { color: red }</style><script>alert(1)</script></head>
<body><h1>Chapter One</h1><p>The river was quiet.</p></body></html>`
	if err := os.WriteFile(path, []byte(page), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ExtractManuscript(path)
	if result.Format != "HTML" {
		t.Errorf("format = %q, want HTML", result.Format)
	}
	if !strings.Contains(result.Text, "Chapter One") || !strings.Contains(result.Text, "The river was quiet.") {
		t.Errorf("visible text missing: %q", result.Text)
	}
	if strings.Contains(result.Text, "alert") || strings.Contains(result.Text, "color") {
		t.Errorf("script/style contents leaked into text: %q", result.Text)
	}
}

func TestExtractManuscriptEPUB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.epub")
	writeZip(t, path, map[string]string{
		"mimetype":               "application/epub+zip",
		"OEBPS/ch01.xhtml":       `<html><body><p>The river was quiet.</p></body></html>`,
		"OEBPS/ch02.xhtml":       `<html><body><p>Nobody spoke.</p></body></html>`,
		"OEBPS/styles/style.css": "p { margin: 0 }",
	})

	result := ExtractManuscript(path)
	if result.Format != "EPUB" {
		t.Errorf("format = %q, want EPUB", result.Format)
	}
	if result.Diagnostic != "" {
		t.Errorf("unexpected diagnostic: %q", result.Diagnostic)
	}
	if !strings.Contains(result.Text, "The river was quiet.") || !strings.Contains(result.Text, "Nobody spoke.") {
		t.Errorf("chapter text missing from extraction: %q", result.Text)
	}
	if strings.Contains(result.Text, "margin") {
		t.Errorf("stylesheet contents leaked into text: %q", result.Text)
	}
}

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, body := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(body)); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize archive: %v", err)
	}
}
