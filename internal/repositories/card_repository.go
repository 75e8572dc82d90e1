package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type CardRepository interface {
	// CreateWithBillingAddress inserts the billing address and the card
	// in one transaction and returns the new card id.
	CreateWithBillingAddress(ctx context.Context, renterID int64, billing *models.Address, card *models.CardDetails) (int64, error)

	ListByRenterID(ctx context.Context, renterID int64) ([]*models.CardListing, error)

	// HasBookings reports whether any booking references the card,
	// regardless of who owns either.
	HasBookings(ctx context.Context, cardID int64) (bool, error)

	// Owned reports whether the card belongs to the renter.
	Owned(ctx context.Context, cardID, renterID int64) (bool, error)

	// DeleteOwned removes the card only when it belongs to renterID;
	// a foreign or unknown id is a silent no-op.
	DeleteOwned(ctx context.Context, cardID, renterID int64) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type cardRepo struct {
	db DB
}

func NewCardRepository(db DB) CardRepository {
	return &cardRepo{db}
}

func (r *cardRepo) CreateWithBillingAddress(
	ctx context.Context,
	renterID int64,
	billing *models.Address,
	card *models.CardDetails,
) (int64, error) {
	var cardID int64
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		addrID, err := insertAddress(ctx, tx, billing)
		if err != nil {
			return err
		}
		return tx.QueryRow(ctx, `
            INSERT INTO card_details (renter_id, card_no, billing_address_id, name_on_card)
            VALUES ($1,$2,$3,$4)
            RETURNING card_id
        `,
			renterID, card.CardNo, addrID, card.NameOnCard,
		).Scan(&cardID)
	})
	if err != nil {
		return 0, err
	}
	return cardID, nil
}

func (r *cardRepo) ListByRenterID(ctx context.Context, renterID int64) ([]*models.CardListing, error) {
	rows, err := r.db.Query(ctx, `
        SELECT c.card_id, c.card_no, c.name_on_card,
               a.line_1, a.city, a.state_
        FROM card_details c
        JOIN addresses a ON c.billing_address_id = a.address_id
        WHERE c.renter_id=$1
        ORDER BY c.card_id
    `, renterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.CardListing
	for rows.Next() {
		var c models.CardListing
		if err := rows.Scan(&c.CardID, &c.CardNo, &c.NameOnCard, &c.Line1, &c.City, &c.State); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *cardRepo) HasBookings(ctx context.Context, cardID int64) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM bookings WHERE card_id=$1 LIMIT 1`, cardID).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *cardRepo) Owned(ctx context.Context, cardID, renterID int64) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `
        SELECT 1 FROM card_details WHERE card_id=$1 AND renter_id=$2
    `, cardID, renterID).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *cardRepo) DeleteOwned(ctx context.Context, cardID, renterID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM card_details WHERE card_id=$1 AND renter_id=$2`, cardID, renterID)
	return err
}
