package generators

import (
	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// Transliterate maps s to a best-effort ASCII approximation. Input is NFKC
// normalised first so decomposed accents and compatibility forms (full-width
// letters, ligatures) hit the unidecode tables as single runes.
func Transliterate(s string) string {
	return unidecode.Unidecode(norm.NFKC.String(s))
}
