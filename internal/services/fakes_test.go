package services

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v4"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/repositories"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

/* ------------------------------------------------------------------
   In-memory repository fakes
------------------------------------------------------------------ */

type fakeAccountRepo struct {
	nextID       int64
	usersByEmail map[string]*models.User
	renterIdents map[string]*models.Identity
	agentIdents  map[string]*models.Identity
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		usersByEmail: map[string]*models.User{},
		renterIdents: map[string]*models.Identity{},
		agentIdents:  map[string]*models.Identity{},
	}
}

func (f *fakeAccountRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	return f.usersByEmail[email], nil
}

func (f *fakeAccountRepo) CreateRenter(_ context.Context, u *models.User, _ *models.Address, _ *models.Renter) (int64, error) {
	f.nextID++
	u.ID = f.nextID
	f.usersByEmail[u.Email] = u
	f.renterIdents[u.Email] = &models.Identity{ID: f.nextID, FirstName: u.FirstName}
	return f.nextID, nil
}

func (f *fakeAccountRepo) CreateAgent(_ context.Context, u *models.User, _ *models.Address, _ *models.Agent) (int64, error) {
	f.nextID++
	u.ID = f.nextID
	f.usersByEmail[u.Email] = u
	f.agentIdents[u.Email] = &models.Identity{ID: f.nextID, FirstName: u.FirstName}
	return f.nextID, nil
}

func (f *fakeAccountRepo) FindRenterIdentityByEmail(_ context.Context, email string) (*models.Identity, error) {
	return f.renterIdents[email], nil
}

func (f *fakeAccountRepo) FindAgentIdentityByEmail(_ context.Context, email string) (*models.Identity, error) {
	return f.agentIdents[email], nil
}

type fakePropertyRepo struct {
	nextID     int64
	categories []string
	listings   map[int64]*models.PropertyListing
	owners     map[int64]int64 // prop id -> agent id
	lastFilter *repositories.SearchFilter
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{
		categories: []string{"commercial", "land", "residential"},
		listings:   map[int64]*models.PropertyListing{},
		owners:     map[int64]int64{},
	}
}

func (f *fakePropertyRepo) CreateWithDetails(
	_ context.Context,
	agentID int64,
	addr *models.Address,
	p *models.Property,
	d *models.PropertyDetails,
	categoryName string,
) (int64, error) {
	known := false
	for _, c := range f.categories {
		if c == categoryName {
			known = true
			break
		}
	}
	if !known {
		return 0, utils.ErrUnknownCategory
	}

	f.nextID++
	f.listings[f.nextID] = &models.PropertyListing{
		PropID:    f.nextID,
		Line1:     addr.Line1,
		City:      addr.City,
		State:     addr.State,
		Price:     p.Price,
		Rooms:     d.Rooms,
		Category:  categoryName,
		SqFt:      p.SqFt,
		DateAvail: p.DateAvail,
		Utilities: p.Utilities,
		Parking:   p.Parking,
	}
	f.owners[f.nextID] = agentID
	return f.nextID, nil
}

func (f *fakePropertyRepo) ListByAgentID(_ context.Context, agentID int64) ([]*models.PropertyListing, error) {
	var out []*models.PropertyListing
	for id, l := range f.listings {
		if f.owners[id] == agentID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PropID < out[j].PropID })
	return out, nil
}

func (f *fakePropertyRepo) GetListing(_ context.Context, propID int64) (*models.PropertyListing, error) {
	return f.listings[propID], nil
}

func (f *fakePropertyRepo) Search(_ context.Context, filter repositories.SearchFilter) ([]*models.PropertyListing, error) {
	f.lastFilter = &filter
	var out []*models.PropertyListing
	for _, l := range f.listings {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PropID < out[j].PropID })
	return out, nil
}

func (f *fakePropertyRepo) DeleteOwned(_ context.Context, propID, agentID int64) error {
	if f.owners[propID] == agentID {
		delete(f.listings, propID)
		delete(f.owners, propID)
	}
	return nil
}

func (f *fakePropertyRepo) ListCategories(_ context.Context) ([]*models.PropertyCategory, error) {
	var out []*models.PropertyCategory
	for i, name := range f.categories {
		out = append(out, &models.PropertyCategory{ID: int64(i + 1), Name: name})
	}
	return out, nil
}

type fakeCardRepo struct {
	nextID      int64
	cards       map[int64]*models.CardDetails
	cardsInUse  map[int64]bool
	billingAddr map[int64]*models.Address
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{
		cards:       map[int64]*models.CardDetails{},
		cardsInUse:  map[int64]bool{},
		billingAddr: map[int64]*models.Address{},
	}
}

func (f *fakeCardRepo) CreateWithBillingAddress(_ context.Context, renterID int64, billing *models.Address, card *models.CardDetails) (int64, error) {
	f.nextID++
	card.ID = f.nextID
	card.RenterID = renterID
	f.cards[f.nextID] = card
	f.billingAddr[f.nextID] = billing
	return f.nextID, nil
}

func (f *fakeCardRepo) ListByRenterID(_ context.Context, renterID int64) ([]*models.CardListing, error) {
	var out []*models.CardListing
	for id, c := range f.cards {
		if c.RenterID != renterID {
			continue
		}
		a := f.billingAddr[id]
		out = append(out, &models.CardListing{
			CardID:     id,
			CardNo:     c.CardNo,
			NameOnCard: c.NameOnCard,
			Line1:      a.Line1,
			City:       a.City,
			State:      a.State,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })
	return out, nil
}

func (f *fakeCardRepo) HasBookings(_ context.Context, cardID int64) (bool, error) {
	return f.cardsInUse[cardID], nil
}

func (f *fakeCardRepo) Owned(_ context.Context, cardID, renterID int64) (bool, error) {
	c, ok := f.cards[cardID]
	return ok && c.RenterID == renterID, nil
}

func (f *fakeCardRepo) DeleteOwned(_ context.Context, cardID, renterID int64) error {
	if c, ok := f.cards[cardID]; ok && c.RenterID == renterID {
		delete(f.cards, cardID)
		delete(f.billingAddr, cardID)
	}
	return nil
}

type fakeBookingRepo struct {
	nextID   int64
	bookings map[int64]*models.Booking
	rewards  map[int64]int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[int64]*models.Booking{},
		rewards:  map[int64]int{},
	}
}

func (f *fakeBookingRepo) CreateWithReward(_ context.Context, b *models.Booking, points int) (int64, error) {
	f.nextID++
	b.ID = f.nextID
	f.bookings[f.nextID] = b
	f.rewards[f.nextID] = points
	return f.nextID, nil
}

func (f *fakeBookingRepo) ListByRenterID(_ context.Context, renterID int64) ([]*models.RenterBookingRow, error) {
	var out []*models.RenterBookingRow
	for id, b := range f.bookings {
		if b.RenterID != renterID {
			continue
		}
		out = append(out, &models.RenterBookingRow{
			BookingID: id,
			PropID:    b.PropID,
			Points:    f.rewards[id],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingID > out[j].BookingID })
	return out, nil
}

func (f *fakeBookingRepo) ListByAgentID(_ context.Context, _ int64) ([]*models.AgentBookingRow, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CancelOwned(_ context.Context, bookingID, renterID int64) error {
	b, ok := f.bookings[bookingID]
	if !ok || b.RenterID != renterID {
		return pgx.ErrNoRows
	}
	delete(f.rewards, bookingID)
	delete(f.bookings, bookingID)
	return nil
}
