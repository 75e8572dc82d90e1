package repositories

import (
	"context"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
)

// insertAddress writes an address row and returns its generated id.
// Addresses are inserted unconditionally, even when an identical row
// already exists; nothing in the schema deduplicates them.
func insertAddress(ctx context.Context, q DB, a *models.Address) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
        INSERT INTO addresses (line_1, city, state_, zip_code)
        VALUES ($1,$2,$3,$4)
        RETURNING address_id
    `,
		a.Line1, a.City, a.State, a.ZipCode,
	).Scan(&id)
	return id, err
}
