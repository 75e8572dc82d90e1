package models

import "time"

type Booking struct {
	ID          int64      `json:"id"`
	PropID      int64      `json:"prop_id"`
	RenterID    int64      `json:"renter_id"`
	CardID      int64      `json:"card_id"`
	BookingDate *time.Time `json:"booking_date,omitempty"`
}

type Reward struct {
	BookingID int64 `json:"booking_id"`
	RenterID  int64 `json:"renter_id"`
	Points    int   `json:"points"`
}

// RenterBookingRow is one row of a renter's booking history, reward
// points coalesced to zero when the reward row is absent.
type RenterBookingRow struct {
	BookingID   int64      `json:"booking_id"`
	BookingDate *time.Time `json:"booking_date,omitempty"`
	PropID      int64      `json:"prop_id"`
	Line1       string     `json:"line_1"`
	City        string     `json:"city"`
	Price       *float64   `json:"price,omitempty"`
	Points      int        `json:"points"`
}

// AgentBookingRow is one booking on a property the agent owns.
type AgentBookingRow struct {
	BookingID   int64      `json:"booking_id"`
	BookingDate *time.Time `json:"booking_date,omitempty"`
	PropID      int64      `json:"prop_id"`
	Line1       string     `json:"line_1"`
	City        string     `json:"city"`
	Price       *float64   `json:"price,omitempty"`
	RenterEmail string     `json:"renter_email"`
}
