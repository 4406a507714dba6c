package kicadsexp

import (
	"strings"
	"testing"
)

func TestParseSymbolLibrary(t *testing.T) {
	input := `(kicad_symbol_lib
		(version 20211014)
		(generator "eeschema")
		(symbol "R_0603"
			(property "Reference" "R" (at 0 0 0))
		)
	)`

	forms, err := ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("Expected 1 top-level form, got %d", len(forms))
	}

	root, ok := forms[0].(*List)
	if !ok {
		t.Fatal("Expected root to be a list")
	}
	if head, _ := root.Get(0).(Symbol); head != "kicad_symbol_lib" {
		t.Errorf("Expected kicad_symbol_lib root, got %q", head)
	}
	if root.Len() != 4 {
		t.Errorf("Expected 4 elements in root, got %d", root.Len())
	}
}

func TestParseQuotedStringEscapes(t *testing.T) {
	forms, err := ParseString(`(property "Line1\nLine2" "say \"hi\"" "doubled ""quote""")`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	list := forms[0].(*List)
	if got := string(list.Get(1).(Symbol)); got != "Line1\nLine2" {
		t.Errorf("Expected newline escape resolved, got %q", got)
	}
	if got := string(list.Get(2).(Symbol)); got != `say "hi"` {
		t.Errorf("Expected backslash quote resolved, got %q", got)
	}
	if got := string(list.Get(3).(Symbol)); got != `doubled "quote"` {
		t.Errorf("Expected doubled quote resolved, got %q", got)
	}
}

func TestParseSkipsComments(t *testing.T) {
	input := "# banner\n(a b) # trailing\n(c)"

	forms, err := ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("Expected 2 forms with comments skipped, got %d", len(forms))
	}
}

func TestParseUnbalancedInput(t *testing.T) {
	if _, err := ParseString("(a (b c)"); err == nil {
		t.Fatal("Expected error for unclosed list")
	}
	if _, err := ParseString("a) b"); err == nil {
		t.Fatal("Expected error for stray closing parenthesis")
	}
}

func TestParseEmptyInput(t *testing.T) {
	forms, err := ParseString("   \n# only a comment\n")
	if err != nil {
		t.Fatalf("Expected clean EOF, got %v", err)
	}
	if len(forms) != 0 {
		t.Errorf("Expected no forms, got %d", len(forms))
	}
}

func TestStringRoundTrip(t *testing.T) {
	forms, err := ParseString("(a (b 1 2) c)")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if got := forms[0].String(); got != "(a (b 1 2) c)" {
		t.Errorf("Expected re-rendered form, got %q", got)
	}
}

func TestParseLargeInputFromReader(t *testing.T) {
	var b strings.Builder
	b.WriteString("(kicad_symbol_lib\n")
	for i := 0; i < 2000; i++ {
		b.WriteString("  (symbol \"S\" (pin passive line (at 0 0 0)))\n")
	}
	b.WriteString(")")

	forms, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Failed to parse large input: %v", err)
	}
	if forms[0].(*List).Len() != 2001 {
		t.Errorf("Expected 2001 elements, got %d", forms[0].(*List).Len())
	}
}
