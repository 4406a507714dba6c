package symlib

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Errors that abort a single mutation. The file on disk is left untouched
// whenever one of these is returned.
var (
	// ErrMalformedLibrary means a structural anchor (closing parenthesis,
	// entry closing marker) could not be located.
	ErrMalformedLibrary = errors.New("malformed symbol library")
	// ErrSymbolNotFound means an operation that requires an existing entry
	// could not find one under any name spelling.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrUnsupportedVersion means the requested operation has no grammar for
	// the library's version tag.
	ErrUnsupportedVersion = errors.New("unsupported kicad version")
)

// Generator attribution. Files written by KiCad itself carry the default tag;
// every mutation rewrites it to point at this tool. The rewrite only fires on
// the default tag, so applying it again is a no-op.
const (
	generatorURL        = "https://github.com/easyeda2kicad/easyeda2kicad"
	defaultGeneratorTag = "(generator kicad_symbol_editor)"
	toolGeneratorTag    = "(generator " + generatorURL + ")"
)

// Library is one symbol library file plus the grammar it is written in.
//
// All mutations are read-modify-write against Path with no locking: a
// concurrent writer between the read and the write loses its update. Callers
// needing safety under concurrent invocation must serialize access to a given
// path themselves.
type Library struct {
	Path    string
	Version Version

	// Log receives warnings about recoverable outcomes (fallback insert,
	// skipped sub-units). slog.Default() is used when nil.
	Log *slog.Logger

	// DryRun, when set, diverts every write into a unified diff of the
	// would-be rewrite. The file on disk is never touched.
	DryRun io.Writer
}

func (l *Library) logger() *slog.Logger {
	if l.Log != nil {
		return l.Log
	}
	return slog.Default()
}

func (l *Library) read() (string, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return "", fmt.Errorf("reading library %s: %w", l.Path, err)
	}
	return string(data), nil
}

func (l *Library) write(current, updated string) error {
	if l.DryRun != nil {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(current),
			B:        difflib.SplitLines(updated),
			FromFile: l.Path,
			ToFile:   l.Path + " (preview)",
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("rendering preview diff: %w", err)
		}
		_, err = io.WriteString(l.DryRun, diff)
		return err
	}

	if err := os.WriteFile(l.Path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing library %s: %w", l.Path, err)
	}
	return nil
}

// retagGenerator rewrites the default generator tag to attribute the file to
// this tool. Idempotent: an already-rewritten tag no longer matches.
func retagGenerator(content string) string {
	return strings.ReplaceAll(content, defaultGeneratorTag, toolGeneratorTag)
}

// Ensure creates the library file with an empty-library header when it does
// not exist yet. It reports whether the file was created.
func (l *Library) Ensure() (bool, error) {
	if _, err := os.Stat(l.Path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking library %s: %w", l.Path, err)
	}

	if err := os.WriteFile(l.Path, []byte(l.Version.emptyLibrary()), 0o644); err != nil {
		return false, fmt.Errorf("creating library %s: %w", l.Path, err)
	}
	return true, nil
}

// Exists reports whether any spelling of name has an entry in the library,
// and which spelling matched.
func (l *Library) Exists(name string) (bool, string, error) {
	current, err := l.read()
	if err != nil {
		return false, "", err
	}
	_, spelling, ok, err := findEntry(current, l.Version, name)
	if err != nil {
		return false, "", err
	}
	return ok, spelling, nil
}

// Add appends a new entry to the library.
//
// V5 appends the entry verbatim at end of file. V6 splices the entry, each
// non-blank line indented one level, immediately before the last ')' in the
// file. That last parenthesis is a textual heuristic for the library's
// closing form: trailing text after the true closer would defeat it, which is
// an accepted limitation of the patch-based design. A file with no ')' at all
// is malformed and left untouched.
func (l *Library) Add(content string) error {
	current, err := l.read()
	if err != nil {
		return err
	}

	updated, err := insertEntry(current, content, l.Version)
	if err != nil {
		return err
	}

	return l.write(current, retagGenerator(updated))
}

func insertEntry(current, entry string, v Version) (string, error) {
	switch v {
	case V5:
		return current + entry, nil
	case V6:
		last := strings.LastIndex(current, ")")
		if last == -1 {
			return "", fmt.Errorf("library has no closing parenthesis: %w", ErrMalformedLibrary)
		}
		return current[:last] + indentLines(entry) + "\n" + current[last:], nil
	default:
		return "", fmt.Errorf("cannot insert into a %s library: %w", v, ErrUnsupportedVersion)
	}
}

// Set overwrites the entry for name with content. The located span is
// replaced verbatim; content is trusted to be well-formed for the grammar.
// When no spelling of name matches, Set falls back to Add: updating a symbol
// that was never published is a legitimate first-time publish, not an error.
func (l *Library) Set(name, content string) error {
	current, err := l.read()
	if err != nil {
		return err
	}

	span, spelling, ok, err := findEntry(current, l.Version, name)
	if err != nil {
		return err
	}
	if !ok {
		l.logger().Warn("symbol not found for update, appending new entry instead",
			"name", name, "lib", l.Path)
		return l.Add(content)
	}

	l.logger().Debug("replacing symbol entry", "name", name, "spelling", spelling, "lib", l.Path)
	updated := current[:span[0]] + content + current[span[1]:]
	return l.write(current, retagGenerator(updated))
}

// AddUnits appends extra body units to an existing multi-unit symbol.
//
// Each candidate in units is a full miniature entry for what would be unit
// "_0_1" of a symbol named name. The unit sub-block is extracted from each
// candidate, renumbered past the highest unit index already present in the
// base entry, re-indented one level, and spliced just before the base entry's
// closing marker. Candidates whose sub-block cannot be extracted are skipped
// with a warning; if none survive, the file is left untouched and no error is
// returned.
func (l *Library) AddUnits(name string, units []string) error {
	if l.Version != V6 {
		return fmt.Errorf("multi-unit append needs the s-expression grammar, library is %s: %w",
			l.Version, ErrUnsupportedVersion)
	}

	current, err := l.read()
	if err != nil {
		return err
	}

	span, _, ok, err := findEntry(current, l.Version, name)
	if err != nil {
		return err
	}
	if !ok {
		l.logger().Warn("base symbol not found, cannot append units", "name", name, "lib", l.Path)
		return fmt.Errorf("base symbol %q not in %s: %w", name, l.Path, ErrSymbolNotFound)
	}
	base := current[span[0]:span[1]]

	unitRe, err := regexp.Compile(`(?s)\(symbol "` + regexp.QuoteMeta(name) + `_0_1".*?\n\s*\)`)
	if err != nil {
		return fmt.Errorf("compiling unit grammar for %q: %w", name, err)
	}

	next := maxUnitIndex(base, name) + 1
	var blocks []string
	for i, unit := range units {
		block := unitRe.FindString(unit)
		if block == "" {
			l.logger().Warn("skipping sub-symbol, no extractable unit body",
				"name", name, "candidate", i+1)
			continue
		}

		block = strings.ReplaceAll(block,
			fmt.Sprintf("%s_0_1", name),
			fmt.Sprintf("%s_%d_1", name, next))
		next++

		blocks = append(blocks, "\n"+indentLines(strings.Trim(dedent(block), "\n")))
	}
	if len(blocks) == 0 {
		return nil
	}

	closer := strings.LastIndex(base, "\n  )")
	if closer == -1 {
		return fmt.Errorf("entry for %q has no closing marker: %w", name, ErrMalformedLibrary)
	}

	rebuilt := base[:closer] + strings.Join(blocks, "") + base[closer:]
	updated := current[:span[0]] + rebuilt + current[span[1]:]
	return l.write(current, retagGenerator(updated))
}

// Delete removes a V5 entry matched by both its name banner and the LCSC id
// stored in its F6 field. Entries of the s-expression grammar are not
// deletable this way.
func (l *Library) Delete(id, name string) error {
	if l.Version != V5 {
		return fmt.Errorf("delete-by-id only supports the legacy grammar, library is %s: %w",
			l.Version, ErrUnsupportedVersion)
	}

	current, err := l.read()
	if err != nil {
		return err
	}

	updated := current
	for _, variant := range NameVariants(name) {
		re, err := regexp.Compile(`(?s)#\n# ` + regexp.QuoteMeta(variant) +
			`\n#\n.*?F6 "` + regexp.QuoteMeta(id) + `".*?ENDDEF\n`)
		if err != nil {
			return fmt.Errorf("compiling delete grammar for %q: %w", variant, err)
		}
		updated = re.ReplaceAllLiteralString(updated, "")
		if updated != current {
			break
		}
	}
	if updated == current {
		l.logger().Warn("no entry matched for delete", "name", name, "id", id, "lib", l.Path)
		return nil
	}

	return l.write(current, updated)
}

// maxUnitIndex returns the highest unit index present in a base entry span,
// or 1 when no numbered unit is found (the base body itself occupies index 1).
func maxUnitIndex(base, name string) int {
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(name) + `_(\d+)_1"`)
	max := 1
	for _, m := range re.FindAllStringSubmatch(base, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max
}
