package symlib

import (
	"errors"
	"testing"
)

func TestCheckAcceptsWellFormedLibrary(t *testing.T) {
	lib := &Library{Path: writeLib(t, v6Lib), Version: V6}

	if err := lib.Check(); err != nil {
		t.Fatalf("Expected well-formed library to pass, got %v", err)
	}
}

func TestCheckRejectsUnbalancedLibrary(t *testing.T) {
	lib := &Library{Path: writeLib(t, "(kicad_symbol_lib\n  (version 20211014)\n"), Version: V6}

	err := lib.Check()
	if !errors.Is(err, ErrMalformedLibrary) {
		t.Fatalf("Expected ErrMalformedLibrary for unbalanced file, got %v", err)
	}
}

func TestCheckRejectsWrongRootForm(t *testing.T) {
	lib := &Library{Path: writeLib(t, "(kicad_sch\n  (version 20211014)\n)"), Version: V6}

	err := lib.Check()
	if !errors.Is(err, ErrMalformedLibrary) {
		t.Fatalf("Expected ErrMalformedLibrary for wrong root form, got %v", err)
	}
}

func TestCheckUnsupportedForLegacy(t *testing.T) {
	lib := &Library{Path: writeLib(t, v5Header), Version: V5}

	err := lib.Check()
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("Expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestCheckPassesAfterMutations(t *testing.T) {
	lib := &Library{Path: writeLib(t, ic1Lib), Version: V6}

	if err := lib.Add(v6EntryC0402); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := lib.AddUnits("IC1", []string{candidateUnit("10")}); err != nil {
		t.Fatalf("AddUnits failed: %v", err)
	}

	if err := lib.Check(); err != nil {
		t.Errorf("Expected library to stay structurally sound after mutations, got %v", err)
	}
}
