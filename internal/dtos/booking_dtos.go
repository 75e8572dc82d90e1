package dtos

import "github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"

type CreateBookingRequest struct {
	PropID      int64   `json:"prop_id" validate:"required,gt=0"`
	CardID      int64   `json:"card_id" validate:"required,gt=0"`
	BookingDate *string `json:"booking_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type CreateBookingResponse struct {
	BookingID int64 `json:"booking_id"`
}

type RenterBookingListResponse struct {
	Bookings []*models.RenterBookingRow `json:"bookings"`
}

type AgentBookingListResponse struct {
	Bookings []*models.AgentBookingRow `json:"bookings"`
}

type CancelBookingResponse struct {
	Message string `json:"message"`
}
