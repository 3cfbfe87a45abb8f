package models

// Supported UI languages. A translations slice holds at most one entry per
// language; a missing entry means "not yet localized", never an error.
const (
	LangAZ = "az"
	LangEN = "en"
	LangRU = "ru"
)

// Languages lists the supported language codes in display order.
var Languages = []string{LangAZ, LangEN, LangRU}

// KnownLanguage reports whether lang is one of the supported codes.
func KnownLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Translation is a language-specific projection of a step or section.
type Translation struct {
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TranslationFor returns the entry for lang, or nil when not localized.
func TranslationFor(ts []Translation, lang string) *Translation {
	for i := range ts {
		if ts[i].Language == lang {
			return &ts[i]
		}
	}
	return nil
}
