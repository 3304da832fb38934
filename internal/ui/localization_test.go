package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s has no texts", code)
			continue
		}
		for key := range l.texts["en"] {
			if texts[key] == "" {
				t.Errorf("Language %s is missing %s", code, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{"russian", "ru", "ru"},
		{"system falls back to english", "system", "en"},
		{"unknown keeps current", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText(KeyExportSVG); got != "Exportar SVG" {
		t.Errorf("Expected Portuguese text, got %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got %q", got)
	}
}

func TestCompactTheme_LightBackground(t *testing.T) {
	th := NewCompactTheme()

	r, g, b, _ := th.Color(theme.ColorNameBackground, theme.VariantDark).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Error("Background should stay white in the dark variant")
	}
	if th.Size(theme.SizeNamePadding) != 3 {
		t.Errorf("Expected compact padding 3, got %v", th.Size(theme.SizeNamePadding))
	}
}
