// Package sexp provides navigation helpers over parsed KiCad s-expression
// trees. It is the read-only companion to the textual mutators: inspection
// commands parse a library and walk it with these helpers instead of building
// a typed model of the whole file.
package sexp

import (
	"fmt"
	"strconv"

	"github.com/easyeda2kicad/easyeda2kicad/pkg/kicad/sexp/kicadsexp"
)

// FindNode returns the first child of s that is a list keyed by key.
// Example: FindNode(root, "version") finds (version 20211014).
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return nil, false
	}

	for _, item := range list.Elements {
		if keyOf(item) == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes returns every child list of s keyed by key, in file order.
func FindAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return nil
	}

	var results []kicadsexp.Sexp
	for _, item := range list.Elements {
		if _, isList := item.(*kicadsexp.List); isList && keyOf(item) == key {
			results = append(results, item)
		}
	}
	return results
}

// keyOf returns the leading symbol of a list, or the symbol itself for atoms.
func keyOf(s kicadsexp.Sexp) string {
	switch n := s.(type) {
	case kicadsexp.Symbol:
		return string(n)
	case *kicadsexp.List:
		if head, ok := n.Get(0).(kicadsexp.Symbol); ok {
			return string(head)
		}
	}
	return ""
}

// GetNodeName returns the node's key (first symbol of a list, or the atom).
func GetNodeName(s kicadsexp.Sexp) (string, error) {
	if name := keyOf(s); name != "" {
		return name, nil
	}
	return "", fmt.Errorf("node has no symbol name")
}

// GetString extracts the atom at index in a list. Index 0 is the key, 1 the
// first value.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return "", fmt.Errorf("expected list, got atom %q", s.String())
	}

	item := list.Get(index)
	if item == nil {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, list.Len())
	}
	sym, ok := item.(kicadsexp.Symbol)
	if !ok {
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}
	return string(sym), nil
}

// GetInt extracts an integer atom at index.
func GetInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}
	return val, nil
}
