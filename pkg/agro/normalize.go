package agro

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder strips combining marks after NFD decomposition, which turns the
// extended Latin letters of crop and soil names (é, ğ, ş, ễ, ...) into their
// base letters. Letters that are not combinations, like đ and ı, are mapped
// separately below.
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var specialFold = strings.NewReplacer(
	"đ", "d",
	"ı", "i",
	"ø", "o",
	"ß", "ss",
)

// NormalizeKey derives the lookup key used by every reference table: lower
// case, diacritics folded to base Latin, surrounding space trimmed. Empty
// input yields the empty key. Unknown keys are not an error; callers fall
// back to the default table row.
func NormalizeKey(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(folder, s); err == nil {
		s = folded
	}
	return specialFold.Replace(s)
}
