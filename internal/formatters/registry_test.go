// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"strings"
	"testing"

	"galley-scan/internal/report"
)

type stubFormatter struct{ name string }

func (s *stubFormatter) Format(rep *report.Report, options FormatterOptions) (string, error) {
	return "stub:" + rep.Title, nil
}
func (s *stubFormatter) Name() string          { return s.name }
func (s *stubFormatter) Description() string   { return "stub formatter" }
func (s *stubFormatter) FileExtension() string { return ".stub" }

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubFormatter{name: "stub"})

	formatter, exists := registry.Get("stub")
	if !exists {
		t.Fatal("registered formatter should be retrievable")
	}
	if formatter.Name() != "stub" {
		t.Errorf("unexpected formatter name %q", formatter.Name())
	}
	if _, exists := registry.Get("missing"); exists {
		t.Error("unregistered name should not resolve")
	}
	if len(registry.List()) != 1 {
		t.Errorf("expected one registered formatter, got %v", registry.List())
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := Export("bogus", &report.Report{}, FormatterOptions{})
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format 'bogus'") {
		t.Errorf("unexpected error message: %v", err)
	}
}
