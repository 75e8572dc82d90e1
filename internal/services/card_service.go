package services

import (
	"context"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/repositories"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

// CardService manages a renter's saved payment cards. Card numbers are
// stored exactly as supplied; no format check, no uniqueness.
type CardService struct {
	cards repositories.CardRepository
}

func NewCardService(cards repositories.CardRepository) *CardService {
	return &CardService{cards: cards}
}

func (s *CardService) List(ctx context.Context, renterID int64) ([]*models.CardListing, error) {
	return s.cards.ListByRenterID(ctx, renterID)
}

// Add inserts the billing address and the card atomically and returns
// the new card id.
func (s *CardService) Add(ctx context.Context, renterID int64, req dtos.AddCardRequest) (int64, error) {
	billing := &models.Address{
		Line1:   req.BillingLine1,
		City:    req.BillingCity,
		State:   req.BillingState,
		ZipCode: req.BillingZip,
	}
	card := &models.CardDetails{
		CardNo:     req.CardNo,
		NameOnCard: req.NameOnCard,
	}
	return s.cards.CreateWithBillingAddress(ctx, renterID, billing, card)
}

// Delete refuses with utils.ErrCardInUse while any booking still
// references the card — whoever made the booking. Otherwise the delete
// is ownership-scoped and a foreign id is a silent no-op.
func (s *CardService) Delete(ctx context.Context, cardID, renterID int64) error {
	used, err := s.cards.HasBookings(ctx, cardID)
	if err != nil {
		return err
	}
	if used {
		return utils.ErrCardInUse
	}
	return s.cards.DeleteOwned(ctx, cardID, renterID)
}
