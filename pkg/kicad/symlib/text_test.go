package symlib

import "testing"

func TestIndentLinesSkipsBlankLines(t *testing.T) {
	got := indentLines("(symbol \"X\"\n\n  (pin)\n)")
	want := "  (symbol \"X\"\n\n    (pin)\n  )"
	if got != want {
		t.Errorf("indentLines:\ngot  %q\nwant %q", got, want)
	}
}

func TestDedentStripsCommonPrefix(t *testing.T) {
	got := dedent("    (symbol \"X\"\n      (pin)\n    )")
	want := "(symbol \"X\"\n  (pin)\n)"
	if got != want {
		t.Errorf("dedent:\ngot  %q\nwant %q", got, want)
	}
}

func TestDedentNoCommonPrefix(t *testing.T) {
	in := "(symbol \"X\"\n    (pin)\n  )"
	if got := dedent(in); got != in {
		t.Errorf("Expected input unchanged when first line is flush, got %q", got)
	}
}

func TestDedentIgnoresBlankLines(t *testing.T) {
	got := dedent("  (a)\n\n  (b)")
	want := "(a)\n\n(b)"
	if got != want {
		t.Errorf("dedent:\ngot  %q\nwant %q", got, want)
	}
}
