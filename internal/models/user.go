package models

// User is a flat administrative record, independent of the step hierarchy.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname,omitempty"`
	FinCode string `json:"finCode"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Status  bool   `json:"status"`
}
