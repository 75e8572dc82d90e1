package models

type User struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	FirstName   string  `json:"first_name"`
	MiddleName  *string `json:"middle_name,omitempty"`
	LastName    string  `json:"last_name"`
}
