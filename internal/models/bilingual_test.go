package models

import (
	"encoding/json"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		b    Bilingual
		lang Lang
		want string
	}{
		{"both present es", Bilingual{ES: "Hola", EN: "Hello"}, LangES, "Hola"},
		{"both present en", Bilingual{ES: "Hola", EN: "Hello"}, LangEN, "Hello"},
		{"missing en falls back to es", Bilingual{ES: "Hola"}, LangEN, "Hola"},
		{"missing es falls back to en", Bilingual{EN: "Hello"}, LangES, "Hello"},
		{"empty", Bilingual{}, LangEN, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Resolve(tt.lang); got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestFromStringResolvesIdentically(t *testing.T) {
	b := FromString("Go")
	for _, lang := range []Lang{LangES, LangEN} {
		if got := b.Resolve(lang); got != "Go" {
			t.Errorf("Resolve(%v) = %q, want %q", lang, got, "Go")
		}
	}
}

func TestBilingualUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Bilingual
	}{
		{"object", `{"es":"Hola","en":"Hello"}`, Bilingual{ES: "Hola", EN: "Hello"}},
		{"legacy plain string", `"Ingeniero"`, Bilingual{ES: "Ingeniero", EN: "Ingeniero"}},
		{"null", `null`, Bilingual{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bilingual
			if err := json.Unmarshal([]byte(tt.in), &b); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if b != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, b, tt.want)
			}
		})
	}
}

func TestParseLang(t *testing.T) {
	if got := ParseLang("en"); got != LangEN {
		t.Errorf("ParseLang(en) = %v", got)
	}
	// everything else defaults to Spanish
	for _, s := range []string{"es", "", "fr"} {
		if got := ParseLang(s); got != LangES {
			t.Errorf("ParseLang(%q) = %v, want es", s, got)
		}
	}
}
