package storage

import "strings"

// ResolveImageURL converte a referência guardada no modelo (URL completa
// ou só o nome do arquivo) em uma URL servível no HTML.
func ResolveImageURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	// guarda só o nome final (referências antigas podem ter caminho)
	parts := strings.Split(ref, "/")
	filename := parts[len(parts)-1]
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
