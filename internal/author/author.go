// Package author derives the given and family name placeholders from the
// single full-name answer.
package author

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/primer/pkg/primer"
)

// Split divides full at its first whitespace character. Everything before it
// is the given name, everything after it the family name; neither part is
// trimmed, so "Mary Jane Watson" yields ("Mary", "Jane Watson").
//
// Returns primer.ErrMalformedName when full contains no whitespace.
func Split(full string) (given, family string, err error) {
	i := strings.IndexFunc(full, unicode.IsSpace)
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q", primer.ErrMalformedName, full)
	}
	_, width := utf8.DecodeRuneInString(full[i:])
	return full[:i], full[i+width:], nil
}

// Validate reports whether full can be split. It is the form field validator.
func Validate(full string) error {
	_, _, err := Split(full)
	return err
}
