package models

import "time"

type Renter struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	AddressID    *int64     `json:"address_id,omitempty"`
	MoveInDate   *time.Time `json:"move_in_date,omitempty"`
	Budget       *float64   `json:"budget,omitempty"`
	PrefLocation *string    `json:"pref_location,omitempty"`
	ReferralCode *string    `json:"referral_code,omitempty"`
}
