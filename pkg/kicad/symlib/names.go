package symlib

import "strings"

// Colon placeholder tokens. Early releases of the converter stored a literal
// ':' in symbol names; later ones encode it so the name stays safe inside the
// entry grammars. Lookups must accept both spellings or old entries become
// invisible to updates.
const (
	colonToken      = "{colon}"
	colonTokenUpper = "{COLON}"
)

// NameVariants returns every spelling under which a symbol may be stored,
// canonical name first, duplicates collapsed. The order is stable so the
// first structural match always wins deterministically.
func NameVariants(name string) []string {
	variants := []string{name}

	literal := strings.ReplaceAll(name, colonToken, ":")
	literal = strings.ReplaceAll(literal, colonTokenUpper, ":")
	if literal != name {
		variants = append(variants, literal)
	}

	return variants
}

// EncodeName replaces the reserved colon with its placeholder token, the
// spelling newly written entries use.
func EncodeName(name string) string {
	return strings.ReplaceAll(name, ":", colonToken)
}
