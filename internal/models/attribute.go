package models

import "time"

// ValueType identifies the primitive type an attribute's values carry.
type ValueType int

const (
	ValueString   ValueType = 1
	ValueDecimal  ValueType = 2
	ValueDateTime ValueType = 3
	ValueBool     ValueType = 4
)

// Attribute is a single field definition (e.g. "Eye color") with metadata
// controlling visibility, printability and importance.
type Attribute struct {
	AttributeID int              `json:"attributeId"`
	SectionID   int              `json:"sectionId,omitempty"`
	Name        string           `json:"name"`
	ValueType   ValueType        `json:"valueType"`
	IsValuable  bool             `json:"isValuable"`
	IsPrinted   bool             `json:"isPrinted"`
	IsVisible   bool             `json:"isVisible"`
	IsImportant bool             `json:"isImportant"`
	IsActive    bool             `json:"isActive"`
	Order       int              `json:"order"`
	Values      []AttributeValue `json:"values,omitempty"`
}

// ValueSet is one language-specific projection of an attribute value.
// Exactly one of the typed value fields is populated, per the attribute's
// ValueType.
type ValueSet struct {
	Language      string     `json:"language"`
	StringValue   string     `json:"stringValue,omitempty"`
	DecimalValue  *float64   `json:"decimalValue,omitempty"`
	DateTimeValue *time.Time `json:"dateTimeValue,omitempty"`
	BoolValue     *bool      `json:"boolValue,omitempty"`
}

// AttributeValue is one selectable value for an attribute. Its identity is
// stable across languages: one id, N language projections in Sets.
type AttributeValue struct {
	AttributeValueID int        `json:"attributeValueId"`
	Display          string     `json:"display"`
	Sets             []ValueSet `json:"sets"`
}

// SetFor returns the projection for lang, or nil when the value has not
// been localized into lang.
func (v *AttributeValue) SetFor(lang string) *ValueSet {
	for i := range v.Sets {
		if v.Sets[i].Language == lang {
			return &v.Sets[i]
		}
	}
	return nil
}
