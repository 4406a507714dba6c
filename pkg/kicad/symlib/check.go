package symlib

import (
	"fmt"
	"os"

	"github.com/easyeda2kicad/easyeda2kicad/pkg/kicad/sexp"
	"github.com/easyeda2kicad/easyeda2kicad/pkg/kicad/sexp/kicadsexp"
)

// Check verifies that an s-expression library is structurally sound: the file
// parses as balanced s-expressions and its root form is (kicad_symbol_lib ...).
// Mutations never call this implicitly; the patch-based design trusts its
// callers and only ever checks the anchors it splices at. Check exists for
// explicit sanity runs, typically after a batch of conversions.
func (l *Library) Check() error {
	if l.Version != V6 {
		return fmt.Errorf("structural check needs the s-expression grammar, library is %s: %w",
			l.Version, ErrUnsupportedVersion)
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return fmt.Errorf("opening library %s: %w", l.Path, err)
	}
	defer f.Close()

	forms, err := kicadsexp.Parse(f)
	if err != nil {
		return fmt.Errorf("library %s does not parse: %v: %w", l.Path, err, ErrMalformedLibrary)
	}
	if len(forms) == 0 {
		return fmt.Errorf("library %s is empty: %w", l.Path, ErrMalformedLibrary)
	}

	root, err := sexp.GetNodeName(forms[0])
	if err != nil {
		return fmt.Errorf("library %s has no root form name: %w", l.Path, ErrMalformedLibrary)
	}
	if root != "kicad_symbol_lib" {
		return fmt.Errorf("library %s root form is %q, want kicad_symbol_lib: %w",
			l.Path, root, ErrMalformedLibrary)
	}

	return nil
}
