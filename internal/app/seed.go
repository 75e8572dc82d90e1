package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

// The category vocabulary the portal ships with. The handlers only
// reference categories by name, so seeding is the single source of
// these rows.
var defaultCategories = []string{
	"residential",
	"commercial",
	"land",
}

// SeedCategories inserts the fixed category vocabulary, skipping names
// that already exist.
func SeedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range defaultCategories {
		_, err := db.Exec(ctx, `
            INSERT INTO property_categories (category_name)
            VALUES ($1)
            ON CONFLICT (category_name) DO NOTHING
        `, name)
		if err != nil {
			return err
		}
	}
	utils.Logger.Infof("Seeded %d property categories", len(defaultCategories))
	return nil
}
