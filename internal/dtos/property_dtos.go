package dtos

import "github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"

// ----------------------
// Requests
// ----------------------

type CreatePropertyRequest struct {
	// Address
	Line1   string  `json:"line_1" validate:"required,min=1,max=255"`
	City    string  `json:"city" validate:"required,min=1,max=100"`
	State   string  `json:"state" validate:"required,min=1,max=50"`
	ZipCode *string `json:"zip_code,omitempty" validate:"omitempty,max=20"`

	// Property
	SqFt      *int     `json:"sq_ft,omitempty" validate:"omitempty,gt=0"`
	Price     *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DateAvail *string  `json:"date_of_availability,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Utilities bool     `json:"utilities"`
	Parking   bool     `json:"parking"`

	// Details
	Category     string  `json:"category" validate:"required"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Rooms        *int    `json:"rooms,omitempty" validate:"omitempty,gt=0"`
	CrimeRate    *string `json:"crime_rate,omitempty" validate:"omitempty,max=100"`
	BusinessType *string `json:"business_type,omitempty" validate:"omitempty,max=100"`
}

// SearchPropertiesQuery mirrors the query parameters of the search
// route; absent fields impose no constraint.
type SearchPropertiesQuery struct {
	City     *string  `validate:"omitempty,max=100"`
	MinPrice *float64 `validate:"omitempty,gte=0"`
	MaxPrice *float64 `validate:"omitempty,gte=0"`
	Category *string  `validate:"omitempty,max=100"`
	Rooms    *int     `validate:"omitempty,gt=0"`
	SortBy   string   `validate:"omitempty,oneof=price rooms city"`
}

// ----------------------
// Responses
// ----------------------

type CreatePropertyResponse struct {
	PropID int64 `json:"prop_id"`
}

type PropertyListResponse struct {
	Properties []*models.PropertyListing `json:"properties"`
}

type CategoryListResponse struct {
	Categories []*models.PropertyCategory `json:"categories"`
}

// PropertyDetailResponse backs the booking form: the listing, the
// renter's saved cards and whether booking is possible at all.
type PropertyDetailResponse struct {
	Property *models.PropertyListing `json:"property"`
	Cards    []*models.CardListing   `json:"cards"`
	CanBook  bool                    `json:"can_book"`
}
