// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package findings

import "testing"

func TestCount(t *testing.T) {
	list := []Finding{
		Errorf("Title", "", "bad"),
		Warningf("Title", "", "iffy"),
		Warningf("Keywords", "", "iffy"),
		Infof("ISBN", "", "note"),
		Successf("Author", "", "ok"),
	}
	errors, warnings := Count(list)
	if errors != 1 {
		t.Errorf("expected 1 error, got %d", errors)
	}
	if warnings != 2 {
		t.Errorf("expected 2 warnings, got %d", warnings)
	}
}

func TestCountIgnoresInfoAndSuccess(t *testing.T) {
	list := []Finding{
		Infof("A", "", "note"),
		Successf("B", "", "ok"),
	}
	errors, warnings := Count(list)
	if errors != 0 || warnings != 0 {
		t.Errorf("expected 0/0, got %d/%d", errors, warnings)
	}
}

func TestHasAdverse(t *testing.T) {
	if HasAdverse([]Finding{Successf("A", "", "ok")}) {
		t.Error("success-only list should not be adverse")
	}
	if !HasAdverse([]Finding{Warningf("A", "", "iffy")}) {
		t.Error("warning should be adverse")
	}
	if !HasAdverse([]Finding{Errorf("A", "", "bad")}) {
		t.Error("error should be adverse")
	}
}

func TestConstructorsSetSeverityAndFormat(t *testing.T) {
	f := Errorf("Title", "G2", "length %d over %d", 210, 200)
	if f.Severity != SeverityError {
		t.Errorf("expected ERROR severity, got %s", f.Severity)
	}
	if f.Field != "Title" || f.Guideline != "G2" {
		t.Errorf("unexpected field/guideline: %q %q", f.Field, f.Guideline)
	}
	if f.Message != "length 210 over 200" {
		t.Errorf("unexpected message: %q", f.Message)
	}
}
