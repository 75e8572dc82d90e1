package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

type bookingFixture struct {
	svc      *BookingService
	props    *fakePropertyRepo
	cards    *fakeCardRepo
	bookings *fakeBookingRepo

	propID int64
	cardID int64
}

// One listed property at 450.95 and one card owned by renter 1.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	props := newFakePropertyRepo()
	cards := newFakeCardRepo()
	bookings := newFakeBookingRepo()

	price := 450.95
	rooms := 3
	propID, err := props.CreateWithDetails(
		context.Background(), 7,
		&models.Address{Line1: "12 Elm St", City: "Austin", State: "TX"},
		&models.Property{Price: &price},
		&models.PropertyDetails{Rooms: &rooms},
		"residential",
	)
	require.NoError(t, err)

	cardID, err := cards.CreateWithBillingAddress(
		context.Background(), 1,
		&models.Address{Line1: "12 Elm St", City: "Austin", State: "TX"},
		&models.CardDetails{CardNo: "4111111111111111", NameOnCard: "Asha Rao"},
	)
	require.NoError(t, err)

	return &bookingFixture{
		svc:      NewBookingService(bookings, cards, props),
		props:    props,
		cards:    cards,
		bookings: bookings,
		propID:   propID,
		cardID:   cardID,
	}
}

func TestBookTruncatesPriceToPoints(t *testing.T) {
	f := newBookingFixture(t)

	bookingID, err := f.svc.Book(context.Background(), 1, dtos.CreateBookingRequest{
		PropID:      f.propID,
		CardID:      f.cardID,
		BookingDate: strPtr("2026-09-15"),
	})
	require.NoError(t, err)
	require.Equal(t, 450, f.bookings.rewards[bookingID])
}

func TestBookZeroPointsWhenUnpriced(t *testing.T) {
	f := newBookingFixture(t)

	propID, err := f.props.CreateWithDetails(
		context.Background(), 7,
		&models.Address{Line1: "3 Oak Ave", City: "Austin", State: "TX"},
		&models.Property{},
		&models.PropertyDetails{},
		"land",
	)
	require.NoError(t, err)

	bookingID, err := f.svc.Book(context.Background(), 1, dtos.CreateBookingRequest{
		PropID: propID,
		CardID: f.cardID,
	})
	require.NoError(t, err)
	require.Zero(t, f.bookings.rewards[bookingID])
}

func TestBookRejectsForeignCard(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), 2, dtos.CreateBookingRequest{
		PropID: f.propID,
		CardID: f.cardID,
	})
	require.ErrorIs(t, err, utils.ErrCardNotOwned)
	require.Empty(t, f.bookings.bookings)
}

func TestBookUnknownProperty(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), 1, dtos.CreateBookingRequest{
		PropID: 9999,
		CardID: f.cardID,
	})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCancelRemovesBookingAndReward(t *testing.T) {
	f := newBookingFixture(t)

	bookingID, err := f.svc.Book(context.Background(), 1, dtos.CreateBookingRequest{
		PropID: f.propID,
		CardID: f.cardID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(context.Background(), bookingID, 1))
	require.Empty(t, f.bookings.bookings)
	require.Empty(t, f.bookings.rewards)
}

// Cancelling someone else's booking must leave both the booking and its
// reward untouched, and report nothing to the caller.
func TestCancelForeignBookingIsNoOp(t *testing.T) {
	f := newBookingFixture(t)

	bookingID, err := f.svc.Book(context.Background(), 1, dtos.CreateBookingRequest{
		PropID: f.propID,
		CardID: f.cardID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(context.Background(), bookingID, 2))
	require.Contains(t, f.bookings.bookings, bookingID)
	require.Contains(t, f.bookings.rewards, bookingID)
}

func TestPropertyDetail(t *testing.T) {
	f := newBookingFixture(t)

	detail, err := f.svc.PropertyDetail(context.Background(), f.propID, 1)
	require.NoError(t, err)
	require.Equal(t, f.propID, detail.Property.PropID)
	require.Len(t, detail.Cards, 1)
	require.True(t, detail.CanBook)

	// Renter 2 has no cards saved.
	detail, err = f.svc.PropertyDetail(context.Background(), f.propID, 2)
	require.NoError(t, err)
	require.Empty(t, detail.Cards)
	require.False(t, detail.CanBook)
}

func TestPropertyDetailUnknownProperty(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.PropertyDetail(context.Background(), 9999, 1)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListMine(t *testing.T) {
	f := newBookingFixture(t)

	first, err := f.svc.Book(context.Background(), 1, dtos.CreateBookingRequest{PropID: f.propID, CardID: f.cardID})
	require.NoError(t, err)
	second, err := f.svc.Book(context.Background(), 1, dtos.CreateBookingRequest{PropID: f.propID, CardID: f.cardID})
	require.NoError(t, err)

	rows, err := f.svc.ListMine(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Newest first.
	require.Equal(t, second, rows[0].BookingID)
	require.Equal(t, first, rows[1].BookingID)
}
