// Package symlib mutates KiCad symbol library files in place.
//
// A library file is treated as a single text blob. Entries are located with
// per-version regex grammars and rewritten by splicing text, so every byte the
// package does not own survives a mutation unchanged. This is a deliberate
// textual-patch design, not a parser: large hand-maintained libraries keep
// their formatting, comments and ordering.
package symlib

import "fmt"

// Version selects the library file grammar.
type Version int

const (
	// V5 is the legacy .lib grammar (KiCad 5.x): entries delimited by a
	// comment banner and an ENDDEF keyword.
	V5 Version = iota
	// V6 is the s-expression .kicad_sym grammar (KiCad 6 and later).
	V6
	// V699 is reserved for the 6.99 development grammar. No entry grammar
	// is registered for it yet; operations against it fail with
	// ErrUnsupportedVersion.
	V699
)

// String returns the tag used in logs and CLI flags.
func (v Version) String() string {
	switch v {
	case V5:
		return "v5"
	case V6:
		return "v6"
	case V699:
		return "v6_99"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// Extension returns the library file extension (without the dot) KiCad
// expects for this grammar.
func (v Version) Extension() string {
	if v == V5 {
		return "lib"
	}
	return "kicad_sym"
}

// ParseVersion maps a CLI tag to a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "v5", "5":
		return V5, nil
	case "v6", "6":
		return V6, nil
	case "v6_99", "6.99":
		return V699, nil
	default:
		return 0, fmt.Errorf("unknown KiCad version %q (want v5, v6 or v6_99)", s)
	}
}

// emptyLibrary returns the content of a freshly bootstrapped library file.
func (v Version) emptyLibrary() string {
	if v == V5 {
		return "EESchema-LIBRARY Version 2.4\n#encoding utf-8\n"
	}
	return "(kicad_symbol_lib\n" +
		"  (version 20211014)\n" +
		"  (generator " + generatorURL + ")\n" +
		")"
}
