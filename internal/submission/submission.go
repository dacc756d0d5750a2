// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package submission defines the book submission record the validators
// consume. A submission is a plain value: validation never mutates it, so any
// number of runs over different submissions can proceed without coordination.
package submission

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Submission is the flat record of everything an author has entered for one
// book. Print-specific fields are only meaningful when BookFormat is a print
// format; validators treat them as not-applicable otherwise.
type Submission struct {
	Title       string `yaml:"title" json:"title"`
	Subtitle    string `yaml:"subtitle" json:"subtitle"`
	Author      string `yaml:"author" json:"author"`
	CoverTitle  string `yaml:"cover_title" json:"cover_title"`
	CoverAuthor string `yaml:"cover_author" json:"cover_author"`
	Language    string `yaml:"language" json:"language"`

	// Description may embed the platform's constrained HTML subset.
	Description string   `yaml:"description" json:"description"`
	Categories  []string `yaml:"categories" json:"categories"`
	Keywords    []string `yaml:"keywords" json:"keywords"`

	IsSeries     bool   `yaml:"is_series" json:"is_series"`
	SeriesName   string `yaml:"series_name" json:"series_name"`
	SeriesNumber string `yaml:"series_number" json:"series_number"`

	SexuallyExplicit bool `yaml:"sexually_explicit" json:"sexually_explicit"`
	MinReadingAge    int  `yaml:"min_reading_age" json:"min_reading_age"`
	MaxReadingAge    int  `yaml:"max_reading_age" json:"max_reading_age"`

	IsPublicDomain           bool   `yaml:"is_public_domain" json:"is_public_domain"`
	DifferentiationStatement string `yaml:"differentiation_statement" json:"differentiation_statement"`

	IsTranslation  bool   `yaml:"is_translation" json:"is_translation"`
	OriginalAuthor string `yaml:"original_author" json:"original_author"`
	Translator     string `yaml:"translator" json:"translator"`

	IsLowContent bool   `yaml:"is_low_content" json:"is_low_content"`
	ISBN         string `yaml:"isbn" json:"isbn"`

	AIUsed        bool   `yaml:"ai_used" json:"ai_used"`
	AIText        string `yaml:"ai_text" json:"ai_text"`
	AIImages      string `yaml:"ai_images" json:"ai_images"`
	AITranslation string `yaml:"ai_translation" json:"ai_translation"`

	BookFormat    string `yaml:"book_format" json:"book_format"`
	TrimSize      string `yaml:"trim_size" json:"trim_size"`
	InkPaper      string `yaml:"ink_paper" json:"ink_paper"`
	PageCount     string `yaml:"page_count" json:"page_count"`
	InteriorBleed bool   `yaml:"interior_bleed" json:"interior_bleed"`
	UploadFormat  string `yaml:"upload_format" json:"upload_format"`
}

// LoadFile reads a submission from a YAML or JSON file. JSON is selected by
// the .json extension; everything else is parsed as YAML.
func LoadFile(path string) (*Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading submission file: %w", err)
	}
	sub := &Submission{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, sub); err != nil {
			return nil, fmt.Errorf("parsing submission JSON: %w", err)
		}
		return sub, nil
	}
	if err := yaml.Unmarshal(data, sub); err != nil {
		return nil, fmt.Errorf("parsing submission YAML: %w", err)
	}
	return sub, nil
}

// SaveFile writes the submission as YAML so authors can share and reload
// their entries.
func SaveFile(path string, sub *Submission) error {
	data, err := yaml.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing submission file: %w", err)
	}
	return nil
}
