package models

// Contact is a message left through the contact form.
type Contact struct {
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Message string `json:"message" db:"message"`
}
