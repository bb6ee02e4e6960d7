package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name folds a display name into a lookup key: lower case, collapsed spaces,
// accents removed ("  Ramón " and "ramon" key the same).
func Name(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return out
}
