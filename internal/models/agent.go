package models

type Agent struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	JobTitle   *string `json:"job_title,omitempty"`
	Agency     *string `json:"agency,omitempty"`
	AddressID  *int64  `json:"address_id,omitempty"`
	LangSpoken *string `json:"lang_spoken,omitempty"`
}

// Identity is the slice of a profile row the login flow needs: the
// role-specific id plus the display name from the underlying user.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
}
