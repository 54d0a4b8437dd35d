package tools

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Dobras úteis: variantes comuns digitadas no admin apontando para a
// chave canônica dos slots da home. Sinônimo novo entra aqui.
var slugSynonyms = map[string]string{
	"sedans":  "sedan",
	"suv":     "suvs",
	"special": "especial",
}

// SlugKey normaliza um slug/rótulo para chave de comparação:
// minúsculas, sem acentos, runs de não-alfanuméricos viram um hífen.
// A operação é idempotente.
func SlugKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// decompõe (NFD) e remove marcas combinantes = tira acentos
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	s = slugNonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if canonical, ok := slugSynonyms[s]; ok {
		return canonical
	}
	return s
}
