package errors

import (
	"regexp"
	"unicode"
)

// variableNameRegex matches valid EGIF variable names: a letter or underscore
// followed by letters, digits, or underscores.
var variableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateVariableName validates an EGIF variable name (the part after `*`
// in a defining occurrence, or a bare bound occurrence).
func ValidateVariableName(name string) error {
	if name == "" {
		return New(ErrCodeSyntax, "variable name cannot be empty")
	}
	if !variableNameRegex.MatchString(name) {
		return New(ErrCodeSyntax, "invalid variable name: %q", name)
	}
	return nil
}

// ValidateRelationName validates a relation name used in a predicate.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No EGIF delimiter characters (parens, brackets, quotes, `*`, `~`)
//   - Maximum length of 256 characters
func ValidateRelationName(name string) error {
	if name == "" {
		return New(ErrCodeSyntax, "relation name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeSyntax, "relation name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeSyntax, "relation name contains whitespace or control characters: %q", name)
		}
		switch r {
		case '(', ')', '[', ']', '"', '*', '~':
			return New(ErrCodeSyntax, "relation name contains reserved character %q: %q", r, name)
		}
	}

	return nil
}

// ValidateConstantLabel validates the label of a named constant
// (the content between quotes in EGIF).
func ValidateConstantLabel(label string) error {
	if label == "" {
		return New(ErrCodeSyntax, "constant label cannot be empty")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeSyntax, "constant label contains control characters")
		}
		if r == '"' {
			return New(ErrCodeSyntax, "constant label contains embedded quote")
		}
	}
	return nil
}
