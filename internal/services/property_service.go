package services

import (
	"context"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/repositories"
)

// PropertyService covers the agent's inventory management and the
// renter-facing search.
type PropertyService struct {
	props repositories.PropertyRepository
}

func NewPropertyService(props repositories.PropertyRepository) *PropertyService {
	return &PropertyService{props: props}
}

// ListOwned returns the agent's properties, lowest property id first.
func (s *PropertyService) ListOwned(ctx context.Context, agentID int64) ([]*models.PropertyListing, error) {
	return s.props.ListByAgentID(ctx, agentID)
}

// Create inserts the address, property and details atomically and
// returns the new property id. An unknown category name surfaces as
// utils.ErrUnknownCategory with nothing written.
func (s *PropertyService) Create(ctx context.Context, agentID int64, req dtos.CreatePropertyRequest) (int64, error) {
	dateAvail, err := parseDate(req.DateAvail)
	if err != nil {
		return 0, err
	}

	addr := &models.Address{
		Line1:   req.Line1,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	}
	prop := &models.Property{
		SqFt:      req.SqFt,
		Price:     req.Price,
		DateAvail: dateAvail,
		Utilities: req.Utilities,
		Parking:   req.Parking,
	}
	det := &models.PropertyDetails{
		Description:  req.Description,
		Rooms:        req.Rooms,
		CrimeRate:    req.CrimeRate,
		BusinessType: req.BusinessType,
	}
	return s.props.CreateWithDetails(ctx, agentID, addr, prop, det, req.Category)
}

// Delete removes a property only when the agent owns it; anything else
// is a silent no-op.
func (s *PropertyService) Delete(ctx context.Context, propID, agentID int64) error {
	return s.props.DeleteOwned(ctx, propID, agentID)
}

// Search applies the conjunctive filter and single-column ascending sort.
func (s *PropertyService) Search(ctx context.Context, q dtos.SearchPropertiesQuery) ([]*models.PropertyListing, error) {
	return s.props.Search(ctx, repositories.SearchFilter{
		City:     q.City,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Category: q.Category,
		Rooms:    q.Rooms,
		SortBy:   q.SortBy,
	})
}

func (s *PropertyService) Categories(ctx context.Context) ([]*models.PropertyCategory, error) {
	return s.props.ListCategories(ctx)
}
