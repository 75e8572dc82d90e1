package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/repositories"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

// BookingService runs the renter booking flow and both booking views.
type BookingService struct {
	bookings repositories.BookingRepository
	cards    repositories.CardRepository
	props    repositories.PropertyRepository
}

func NewBookingService(
	bookings repositories.BookingRepository,
	cards repositories.CardRepository,
	props repositories.PropertyRepository,
) *BookingService {
	return &BookingService{bookings: bookings, cards: cards, props: props}
}

// PropertyDetail backs the booking form: the joined listing, the
// renter's saved cards and whether booking is possible. A renter with
// no cards gets CanBook=false, and Book enforces the same rule
// server-side.
func (s *BookingService) PropertyDetail(ctx context.Context, propID, renterID int64) (*dtos.PropertyDetailResponse, error) {
	listing, err := s.props.GetListing(ctx, propID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, utils.ErrNotFound
	}

	cards, err := s.cards.ListByRenterID(ctx, renterID)
	if err != nil {
		return nil, err
	}

	return &dtos.PropertyDetailResponse{
		Property: listing,
		Cards:    cards,
		CanBook:  len(cards) > 0,
	}, nil
}

// Book creates the booking and its reward atomically. The card must
// belong to the booking renter (utils.ErrCardNotOwned otherwise) and
// the property must exist (utils.ErrNotFound). Reward points are the
// integer truncation of the property price at booking time, zero when
// the price is unset.
func (s *BookingService) Book(ctx context.Context, renterID int64, req dtos.CreateBookingRequest) (int64, error) {
	owned, err := s.cards.Owned(ctx, req.CardID, renterID)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, utils.ErrCardNotOwned
	}

	listing, err := s.props.GetListing(ctx, req.PropID)
	if err != nil {
		return 0, err
	}
	if listing == nil {
		return 0, utils.ErrNotFound
	}

	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		return 0, err
	}

	points := 0
	if listing.Price != nil {
		points = int(*listing.Price)
	}

	return s.bookings.CreateWithReward(ctx, &models.Booking{
		PropID:      req.PropID,
		RenterID:    renterID,
		CardID:      req.CardID,
		BookingDate: bookingDate,
	}, points)
}

func (s *BookingService) ListMine(ctx context.Context, renterID int64) ([]*models.RenterBookingRow, error) {
	return s.bookings.ListByRenterID(ctx, renterID)
}

func (s *BookingService) ListForAgent(ctx context.Context, agentID int64) ([]*models.AgentBookingRow, error) {
	return s.bookings.ListByAgentID(ctx, agentID)
}

// Cancel removes the reward and the booking together when the booking
// belongs to the renter. A foreign or unknown booking id is a silent
// no-op that leaves both rows untouched.
func (s *BookingService) Cancel(ctx context.Context, bookingID, renterID int64) error {
	err := s.bookings.CancelOwned(ctx, bookingID, renterID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}
