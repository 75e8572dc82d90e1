package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/services"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

var bookingValidate = validator.New()

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// GET /api/v1/properties/{prop_id} — the booking form data.
func (c *BookingController) PropertyDetail(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}
	propID, ok := pathID(r, "prop_id")
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property id")
		return
	}

	detail, err := c.bookings.PropertyDetail(r.Context(), propID, sess.ActorID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found")
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load property", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// POST /api/v1/renter/bookings
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}

	var req dtos.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := bookingValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid booking fields", err)
		return
	}

	bookingID, err := c.bookings.Book(r.Context(), sess.ActorID, req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found")
		case errors.Is(err, utils.ErrCardNotOwned):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Card does not belong to this renter")
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Booking failed", err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateBookingResponse{BookingID: bookingID})
}

// GET /api/v1/renter/bookings
func (c *BookingController) ListMine(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}

	rows, err := c.bookings.ListMine(r.Context(), sess.ActorID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list bookings", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.RenterBookingListResponse{Bookings: rows})
}

// DELETE /api/v1/renter/bookings/{booking_id}
func (c *BookingController) Cancel(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}
	bookingID, ok := pathID(r, "booking_id")
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid booking id")
		return
	}

	if err := c.bookings.Cancel(r.Context(), bookingID, sess.ActorID); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to cancel booking", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.CancelBookingResponse{Message: "Booking cancelled"})
}

// GET /api/v1/agent/bookings
func (c *BookingController) ListForAgent(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}

	rows, err := c.bookings.ListForAgent(r.Context(), sess.ActorID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list bookings", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AgentBookingListResponse{Bookings: rows})
}
