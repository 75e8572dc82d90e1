package dtos

// ----------------------
// Requests
// ----------------------

// RegisterRequest carries the contact fields plus the optional address
// and the role-specific sections; only the section matching Role is read.
type RegisterRequest struct {
	Role        string  `json:"role" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber string  `json:"phone_number" validate:"required,min=1,max=20"`
	FirstName   string  `json:"first_name" validate:"required,min=1,max=100"`
	MiddleName  *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName    string  `json:"last_name" validate:"required,min=1,max=100"`

	// Address (optional; an empty line_1 means no address row at all)
	Line1   *string `json:"line_1,omitempty" validate:"omitempty,max=255"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode *string `json:"zip_code,omitempty" validate:"omitempty,max=20"`

	// Renter section
	MoveInDate   *string  `json:"move_in_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Budget       *float64 `json:"budget,omitempty"`
	PrefLocation *string  `json:"pref_location,omitempty" validate:"omitempty,max=255"`
	ReferralCode *string  `json:"referral_code,omitempty" validate:"omitempty,max=50"`

	// Agent section
	JobTitle   *string `json:"job_title,omitempty" validate:"omitempty,max=100"`
	Agency     *string `json:"agency,omitempty" validate:"omitempty,max=255"`
	LangSpoken *string `json:"lang_spoken,omitempty" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ----------------------
// Responses
// ----------------------

type RegisterResponse struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Role        string `json:"role"`
	ActorID     int64  `json:"actor_id"`
	DisplayName string `json:"display_name"`
	AccessToken string `json:"access_token,omitempty"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
