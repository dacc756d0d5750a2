// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package submission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.yaml")
	content := `
title: The Silent River
author: Jo March
language: English
keywords:
  - space opera
  - found family
book_format: Paperback
trim_size: 6" x 9"
page_count: "300"
interior_bleed: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	sub, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "The Silent River", sub.Title)
	assert.Equal(t, "Jo March", sub.Author)
	assert.Len(t, sub.Keywords, 2)
	assert.True(t, sub.InteriorBleed)
	assert.Equal(t, "300", sub.PageCount, "page count should stay a string")
}

func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.json")
	content := `{"title": "The Silent River", "is_series": true, "series_name": "Rivers", "series_number": "2"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	sub, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, sub.IsSeries)
	assert.Equal(t, "Rivers", sub.SeriesName)
	assert.Equal(t, "2", sub.SeriesNumber)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/book.yaml")
	assert.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	original := &Submission{
		Title:          "The Silent River",
		Author:         "Jo March",
		IsPublicDomain: true,
		Categories:     []string{"Fiction > Literary"},
	}
	require.NoError(t, SaveFile(path, original))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.Title, loaded.Title)
	assert.True(t, loaded.IsPublicDomain)
	assert.Equal(t, original.Categories, loaded.Categories)
}
