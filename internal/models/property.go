package models

import "time"

type Property struct {
	ID        int64      `json:"id"`
	AgentID   int64      `json:"agent_id"`
	AddressID int64      `json:"address_id"`
	SqFt      *int       `json:"sq_ft,omitempty"`
	Price     *float64   `json:"price,omitempty"`
	DateAvail *time.Time `json:"date_of_availability,omitempty"`
	Utilities bool       `json:"utilities"`
	Parking   bool       `json:"parking"`
}

type PropertyCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PropertyDetails struct {
	PropID       int64   `json:"prop_id"`
	CategoryID   int64   `json:"property_category_id"`
	Description  *string `json:"description,omitempty"`
	Rooms        *int    `json:"rooms,omitempty"`
	CrimeRate    *string `json:"crime_rate,omitempty"`
	BusinessType *string `json:"business_type,omitempty"`
}

// PropertyListing is a property joined to its address, category and
// details, the shape every property-facing read returns.
type PropertyListing struct {
	PropID    int64      `json:"prop_id"`
	Line1     string     `json:"line_1"`
	City      string     `json:"city"`
	State     string     `json:"state"`
	Price     *float64   `json:"price,omitempty"`
	Rooms     *int       `json:"rooms,omitempty"`
	Category  string     `json:"category"`
	SqFt      *int       `json:"sq_ft,omitempty"`
	DateAvail *time.Time `json:"date_of_availability,omitempty"`
	Utilities bool       `json:"utilities"`
	Parking   bool       `json:"parking"`
}
