package models

import "fmt"

// ContextType discriminates the two universes the step hierarchy is
// partitioned into: CV intake forms and vacancy forms.
type ContextType int

const (
	ContextCV      ContextType = 1
	ContextVacancy ContextType = 2
)

// String returns the lowercase name used in CLI flags and log fields.
func (c ContextType) String() string {
	switch c {
	case ContextCV:
		return "cv"
	case ContextVacancy:
		return "vacancy"
	default:
		return fmt.Sprintf("context(%d)", int(c))
	}
}

// Valid reports whether c is one of the two known contexts.
func (c ContextType) Valid() bool {
	return c == ContextCV || c == ContextVacancy
}

// ParseContextType accepts "cv", "vacancy" or the numeric wire values.
func ParseContextType(s string) (ContextType, error) {
	switch s {
	case "cv", "1":
		return ContextCV, nil
	case "vacancy", "2":
		return ContextVacancy, nil
	default:
		return 0, fmt.Errorf("unknown context %q (want cv or vacancy)", s)
	}
}
