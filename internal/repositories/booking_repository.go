package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type BookingRepository interface {
	// CreateWithReward inserts the booking and its reward in one
	// transaction and returns the new booking id.
	CreateWithReward(ctx context.Context, b *models.Booking, points int) (int64, error)

	ListByRenterID(ctx context.Context, renterID int64) ([]*models.RenterBookingRow, error)
	ListByAgentID(ctx context.Context, agentID int64) ([]*models.AgentBookingRow, error)

	// CancelOwned deletes the reward and the booking in one transaction,
	// but only when the booking belongs to renterID. A foreign or unknown
	// booking id rolls back, leaving both rows in place.
	CancelOwned(ctx context.Context, bookingID, renterID int64) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type bookingRepo struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &bookingRepo{db}
}

func (r *bookingRepo) CreateWithReward(ctx context.Context, b *models.Booking, points int) (int64, error) {
	var bookingID int64
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            INSERT INTO bookings (prop_id, renter_id, card_id, booking_date)
            VALUES ($1,$2,$3,$4)
            RETURNING booking_id
        `,
			b.PropID, b.RenterID, b.CardID, b.BookingDate,
		).Scan(&bookingID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO rewards (booking_id, renter_id, points)
            VALUES ($1,$2,$3)
        `, bookingID, b.RenterID, points)
		return err
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

func (r *bookingRepo) ListByRenterID(ctx context.Context, renterID int64) ([]*models.RenterBookingRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT b.booking_id, b.booking_date,
               p.prop_id, a.line_1, a.city, p.price,
               COALESCE(rw.points, 0)
        FROM bookings b
        JOIN properties p ON b.prop_id = p.prop_id
        JOIN addresses a ON p.address_id = a.address_id
        LEFT JOIN rewards rw ON b.booking_id = rw.booking_id
        WHERE b.renter_id=$1
        ORDER BY b.booking_id DESC
    `, renterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.RenterBookingRow
	for rows.Next() {
		var row models.RenterBookingRow
		if err := rows.Scan(
			&row.BookingID, &row.BookingDate,
			&row.PropID, &row.Line1, &row.City, &row.Price,
			&row.Points,
		); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (r *bookingRepo) ListByAgentID(ctx context.Context, agentID int64) ([]*models.AgentBookingRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT b.booking_id, b.booking_date,
               p.prop_id, a.line_1, a.city, p.price,
               u.email AS renter_email
        FROM bookings b
        JOIN properties p ON b.prop_id = p.prop_id
        JOIN addresses a ON p.address_id = a.address_id
        JOIN renters r ON b.renter_id = r.renter_id
        JOIN users u ON r.user_id = u.user_id
        WHERE p.agent_id=$1
        ORDER BY b.booking_id DESC
    `, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.AgentBookingRow
	for rows.Next() {
		var row models.AgentBookingRow
		if err := rows.Scan(
			&row.BookingID, &row.BookingDate,
			&row.PropID, &row.Line1, &row.City, &row.Price,
			&row.RenterEmail,
		); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (r *bookingRepo) CancelOwned(ctx context.Context, bookingID, renterID int64) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM rewards WHERE booking_id=$1`, bookingID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `
            DELETE FROM bookings WHERE booking_id=$1 AND renter_id=$2
        `, bookingID, renterID)
		if err != nil {
			return err
		}
		// Ownership mismatch: roll back so the reward survives with
		// its booking.
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}
