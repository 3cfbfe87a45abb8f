package models

// Section groups attributes within a step. Sort order is unique and dense
// only within the owning step; cross-step ordering is not comparable.
type Section struct {
	ID           int           `json:"id"`
	StepID       int           `json:"stepId"`
	SortOrder    int           `json:"sortOrder"`
	IsActive     bool          `json:"isActive"`
	IsChangeable bool          `json:"isChangeable"`
	StepName     string        `json:"stepName,omitempty"`
	Translations []Translation `json:"translations"`
}

// Title returns the section title in lang, falling back to the first
// available translation.
func (s *Section) Title(lang string) string {
	if t := TranslationFor(s.Translations, lang); t != nil {
		return t.Title
	}
	if len(s.Translations) > 0 {
		return s.Translations[0].Title
	}
	return ""
}
