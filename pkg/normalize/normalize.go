package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto en minúsculas y sin acentos, para búsquedas
// insensibles a tildes: "Café Luna" -> "cafe luna".
func Fold(s string) string {
	out, _, err := transform.String(foldTransform, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
