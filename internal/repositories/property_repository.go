package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// SearchFilter is a conjunctive filter over listings; nil fields impose
// no constraint. SortBy must be one of price, rooms, city (price is the
// default) and always sorts ascending.
type SearchFilter struct {
	City     *string
	MinPrice *float64
	MaxPrice *float64
	Category *string
	Rooms    *int
	SortBy   string
}

type PropertyRepository interface {
	// CreateWithDetails inserts the address, the property and its details
	// in one transaction and returns the new property id. An unknown
	// category name fails the whole transaction with ErrUnknownCategory.
	CreateWithDetails(ctx context.Context, agentID int64, addr *models.Address, p *models.Property, d *models.PropertyDetails, categoryName string) (int64, error)

	ListByAgentID(ctx context.Context, agentID int64) ([]*models.PropertyListing, error)
	GetListing(ctx context.Context, propID int64) (*models.PropertyListing, error)
	Search(ctx context.Context, f SearchFilter) ([]*models.PropertyListing, error)

	// DeleteOwned removes the property only when it belongs to agentID;
	// a foreign or unknown id is a silent no-op.
	DeleteOwned(ctx context.Context, propID, agentID int64) error

	ListCategories(ctx context.Context) ([]*models.PropertyCategory, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db}
}

func (r *propertyRepo) CreateWithDetails(
	ctx context.Context,
	agentID int64,
	addr *models.Address,
	p *models.Property,
	d *models.PropertyDetails,
	categoryName string,
) (int64, error) {
	var propID int64
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var categoryID int64
		err := tx.QueryRow(ctx, `
            SELECT property_category_id FROM property_categories WHERE category_name=$1
        `, categoryName).Scan(&categoryID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return utils.ErrUnknownCategory
			}
			return err
		}

		addrID, err := insertAddress(ctx, tx, addr)
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
            INSERT INTO properties (agent_id, address_id, sq_ft, price, date_of_availability, utilities, parking)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            RETURNING prop_id
        `,
			agentID, addrID, p.SqFt, p.Price, p.DateAvail, p.Utilities, p.Parking,
		).Scan(&propID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO property_details (prop_id, property_category_id, description_, rooms, crime_rate, business_type)
            VALUES ($1,$2,$3,$4,$5,$6)
        `,
			propID, categoryID, d.Description, d.Rooms, d.CrimeRate, d.BusinessType,
		)
		return err
	})
	if err != nil {
		return 0, err
	}
	return propID, nil
}

func (r *propertyRepo) ListByAgentID(ctx context.Context, agentID int64) ([]*models.PropertyListing, error) {
	rows, err := r.db.Query(ctx, baseSelectListing()+`
        WHERE p.agent_id=$1
        ORDER BY p.prop_id
    `, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *propertyRepo) GetListing(ctx context.Context, propID int64) (*models.PropertyListing, error) {
	row := r.db.QueryRow(ctx, baseSelectListing()+` WHERE p.prop_id=$1`, propID)
	return scanListing(row)
}

func (r *propertyRepo) Search(ctx context.Context, f SearchFilter) ([]*models.PropertyListing, error) {
	sql, args := buildSearchQuery(f)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *propertyRepo) DeleteOwned(ctx context.Context, propID, agentID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM properties WHERE prop_id=$1 AND agent_id=$2`, propID, agentID)
	return err
}

func (r *propertyRepo) ListCategories(ctx context.Context) ([]*models.PropertyCategory, error) {
	rows, err := r.db.Query(ctx, `
        SELECT property_category_id, category_name
        FROM property_categories
        ORDER BY category_name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyCategory
	for rows.Next() {
		var c models.PropertyCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// buildSearchQuery assembles the conjunctive WHERE clause from the
// supplied fields only, with numbered placeholders, and whitelists the
// sort column so user input never reaches the ORDER BY verbatim.
func buildSearchQuery(f SearchFilter) (string, []interface{}) {
	sql := baseSelectListing() + " WHERE 1=1"
	var args []interface{}

	add := func(clause string, val interface{}) {
		args = append(args, val)
		sql += fmt.Sprintf(" AND "+clause, len(args))
	}

	if f.City != nil {
		add("LOWER(a.city) = LOWER($%d)", *f.City)
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if f.Category != nil {
		add("pc.category_name = $%d", *f.Category)
	}
	if f.Rooms != nil {
		add("pd.rooms = $%d", *f.Rooms)
	}

	switch f.SortBy {
	case "rooms":
		sql += " ORDER BY pd.rooms"
	case "city":
		sql += " ORDER BY a.city"
	default:
		sql += " ORDER BY p.price"
	}
	return sql, args
}

func baseSelectListing() string {
	return `
        SELECT
            p.prop_id, a.line_1, a.city, a.state_,
            p.price, pd.rooms, pc.category_name,
            p.sq_ft, p.date_of_availability, p.utilities, p.parking
        FROM properties p
        JOIN addresses a ON p.address_id = a.address_id
        JOIN property_details pd ON p.prop_id = pd.prop_id
        JOIN property_categories pc ON pd.property_category_id = pc.property_category_id
    `
}

func scanListing(row pgx.Row) (*models.PropertyListing, error) {
	var l models.PropertyListing
	err := row.Scan(
		&l.PropID, &l.Line1, &l.City, &l.State,
		&l.Price, &l.Rooms, &l.Category,
		&l.SqFt, &l.DateAvail, &l.Utilities, &l.Parking,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]*models.PropertyListing, error) {
	var out []*models.PropertyListing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
