package models

import "time"

// ResumeItem is the aggregate root for one candidate record: the step
// schema denormalized together with the submitted values.
type ResumeItem struct {
	ResumeID  int       `json:"resumeId"`
	FullName  string    `json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	Steps     []Step    `json:"steps"`
}

// VacancyItem is the aggregate root for one vacancy record.
type VacancyItem struct {
	VacancyID int       `json:"vacancyId"`
	Title     string    `json:"title,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	Steps     []Step    `json:"steps"`
}
