package kicadsexp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads all top-level s-expressions from r.
func Parse(r io.Reader) ([]Sexp, error) {
	p := &parser{r: bufio.NewReader(r)}

	var forms []Sexp
	for {
		node, err := p.next()
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return nil, err
		}
		forms = append(forms, node)
	}
}

// ParseString parses s-expressions from a string.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	r *bufio.Reader
}

// next parses one expression, returning io.EOF at clean end of input.
func (p *parser) next() (Sexp, error) {
	ch, err := p.skipBlanks()
	if err != nil {
		return nil, err
	}

	switch ch {
	case '(':
		return p.list()
	case ')':
		return nil, fmt.Errorf("unexpected ')'")
	case '"':
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return Symbol(s), nil
	default:
		if err := p.r.UnreadRune(); err != nil {
			return nil, err
		}
		s, err := p.bare()
		if err != nil {
			return nil, err
		}
		return Symbol(s), nil
	}
}

// list parses the remainder of a parenthesized form, the '(' already consumed.
func (p *parser) list() (Sexp, error) {
	var elements []Sexp
	for {
		ch, err := p.skipBlanks()
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected EOF in list")
		}
		if err != nil {
			return nil, err
		}
		if ch == ')' {
			return &List{Elements: elements}, nil
		}
		if err := p.r.UnreadRune(); err != nil {
			return nil, err
		}

		elem, err := p.next()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}
}

// skipBlanks consumes whitespace and '#' line comments, returning the first
// significant rune. Comments only exist between tokens; '#' inside a quoted
// string is handled by quoted.
func (p *parser) skipBlanks() (rune, error) {
	for {
		ch, _, err := p.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(ch) {
			continue
		}
		if ch == '#' {
			for {
				c, _, err := p.r.ReadRune()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		return ch, nil
	}
}

// quoted reads a double-quoted string, the opening quote already consumed.
// Both backslash escapes and doubled quotes are accepted; KiCad emits the
// former, some third-party generators the latter.
func (p *parser) quoted() (string, error) {
	var b strings.Builder
	for {
		ch, _, err := p.r.ReadRune()
		if err != nil {
			return "", fmt.Errorf("unexpected EOF in string")
		}

		switch ch {
		case '"':
			next, _, err := p.r.ReadRune()
			if err == nil && next == '"' {
				b.WriteByte('"')
				continue
			}
			if err == nil {
				if err := p.r.UnreadRune(); err != nil {
					return "", err
				}
			}
			return b.String(), nil

		case '\\':
			esc, _, err := p.r.ReadRune()
			if err != nil {
				return "", fmt.Errorf("unexpected EOF after backslash")
			}
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteRune(esc)
			}

		default:
			b.WriteRune(ch)
		}
	}
}

// bare reads an unquoted atom up to the next delimiter.
func (p *parser) bare() (string, error) {
	var b strings.Builder
	for {
		ch, _, err := p.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			if err := p.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		b.WriteRune(ch)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("empty symbol")
	}
	return b.String(), nil
}
