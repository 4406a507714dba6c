// Package kicadsexp reads KiCad s-expression files into generic node trees.
// It streams from an io.Reader so large symbol libraries are parsed in one
// pass, and it skips the '#' comment lines found in legacy-era files.
package kicadsexp

import (
	"strings"
)

// Sexp is an s-expression node: either a Symbol atom or a List.
type Sexp interface {
	// IsLeaf returns true for atoms.
	IsLeaf() bool
	// String renders the node back as s-expression text.
	String() string
}

// Symbol is an atom: an identifier, number, or quoted string (quotes and
// escapes already resolved).
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return string(s) }

// List is a parenthesized sequence of nodes.
type List struct {
	Elements []Sexp
}

func (l *List) IsLeaf() bool { return false }

func (l *List) Len() int { return len(l.Elements) }

// Get returns the element at index, or nil when out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.Elements) {
		return nil
	}
	return l.Elements[index]
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.Elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}
