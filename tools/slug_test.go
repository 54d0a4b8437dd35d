package tools

import "testing"

func TestSlugKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Compacto", "compacto"},
		{"  Luxo  ", "luxo"},
		{"Sedã", "seda"},
		{"Carros & Vans", "carros-vans"},
		{"--minivans--", "minivans"},
		{"Utilitário Médio", "utilitario-medio"},
	}
	for _, c := range cases {
		if got := SlugKey(c.in); got != c.want {
			t.Errorf("SlugKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugKeySynonyms(t *testing.T) {
	if SlugKey("Sedans") != SlugKey("sedan") {
		t.Errorf("Sedans e sedan deveriam ter a mesma chave")
	}
	if SlugKey("SUV") != SlugKey("suvs") {
		t.Errorf("SUV e suvs deveriam ter a mesma chave")
	}
	if SlugKey("Special") != SlugKey("especial") {
		t.Errorf("Special e especial deveriam ter a mesma chave")
	}
}

func TestSlugKeyIdempotent(t *testing.T) {
	inputs := []string{"Sedã", "Sedans", "SUV", "Special", "Compacto", "Carros & Vans", ""}
	for _, in := range inputs {
		once := SlugKey(in)
		if twice := SlugKey(once); twice != once {
			t.Errorf("SlugKey não idempotente: %q -> %q -> %q", in, once, twice)
		}
	}
}
