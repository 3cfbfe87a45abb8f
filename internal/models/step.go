package models

// Step is a top-level phase of the CV or vacancy intake workflow.
// It owns an ordered list of sections.
type Step struct {
	ID           int           `json:"id"`
	Type         ContextType   `json:"type"`
	SortOrder    int           `json:"sortOrder"`
	IsActive     bool          `json:"isActive"`
	Translations []Translation `json:"translations"`

	// Sections is populated on resume and vacancy detail responses,
	// where the step schema comes back denormalized.
	Sections []Section `json:"sections,omitempty"`
}

// Title returns the step title in lang, falling back to the first
// available translation.
func (s *Step) Title(lang string) string {
	if t := TranslationFor(s.Translations, lang); t != nil {
		return t.Title
	}
	if len(s.Translations) > 0 {
		return s.Translations[0].Title
	}
	return ""
}

// StepOrderItem is one entry of a bulk reorder queue. The server assigns
// sequential sort orders from array position.
type StepOrderItem struct {
	ID   int         `json:"id"`
	Type ContextType `json:"type"`
}
