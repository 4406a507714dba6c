package symlib

import (
	"fmt"
	"regexp"
)

// Per-version regex templates that isolate one symbol entry's full text span.
// The %s slot receives a regex-escaped name spelling. Matching is always done
// with (?s) so '.' spans newlines.
//
// V5 entries run from their comment banner to the ENDDEF line. V6 entries are
// the named top-level (symbol ...) form, closed by the two-space-indented ')'
// at the library's nesting depth. Supporting a new grammar means adding one
// template here; nothing else changes.
var entryTemplates = map[Version]string{
	V5: "#\n# %s\n#\n.*?ENDDEF\n",
	V6: "\n  \\(symbol \"%s\".*?\n  \\)",
}

// entryPattern compiles the entry grammar for one name spelling. An
// unregistered version is a configuration error, reported as
// ErrUnsupportedVersion.
func entryPattern(v Version, spelling string) (*regexp.Regexp, error) {
	tmpl, ok := entryTemplates[v]
	if !ok {
		return nil, fmt.Errorf("no symbol entry grammar for %s: %w", v, ErrUnsupportedVersion)
	}

	re, err := regexp.Compile("(?s)" + fmt.Sprintf(tmpl, regexp.QuoteMeta(spelling)))
	if err != nil {
		return nil, fmt.Errorf("compiling %s entry grammar for %q: %w", v, spelling, err)
	}
	return re, nil
}

// findEntry locates the first entry span matching any spelling of name.
// It returns the [start, end) byte span and the spelling that matched.
// Absence is reported as ok=false, not as an error: looking up a symbol that
// is not there is an expected outcome. Spans are computed fresh on every call
// because the file may have been rewritten since the last one.
func findEntry(content string, v Version, name string) (span [2]int, spelling string, ok bool, err error) {
	for _, variant := range NameVariants(name) {
		re, err := entryPattern(v, variant)
		if err != nil {
			return span, "", false, err
		}
		if loc := re.FindStringIndex(content); loc != nil {
			return [2]int{loc[0], loc[1]}, variant, true, nil
		}
	}
	return span, "", false, nil
}
