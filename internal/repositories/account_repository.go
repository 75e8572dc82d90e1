package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type AccountRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateRenter inserts the user, the optional address and the renter
	// profile in one transaction and returns the new renter id.
	CreateRenter(ctx context.Context, u *models.User, addr *models.Address, r *models.Renter) (int64, error)

	// CreateAgent is the agent-side counterpart of CreateRenter.
	CreateAgent(ctx context.Context, u *models.User, addr *models.Address, a *models.Agent) (int64, error)

	FindRenterIdentityByEmail(ctx context.Context, email string) (*models.Identity, error)
	FindAgentIdentityByEmail(ctx context.Context, email string) (*models.Identity, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type accountRepo struct {
	db DB
}

func NewAccountRepository(db DB) AccountRepository {
	return &accountRepo{db}
}

func (r *accountRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
        SELECT user_id, email, phone_number, first_name, middle_name, last_name
        FROM users
        WHERE email=$1
    `, email)

	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.FirstName, &u.MiddleName, &u.LastName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *accountRepo) CreateRenter(ctx context.Context, u *models.User, addr *models.Address, rent *models.Renter) (int64, error) {
	var renterID int64
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		userID, addrID, err := insertUserAndAddress(ctx, tx, u, addr)
		if err != nil {
			return err
		}
		return tx.QueryRow(ctx, `
            INSERT INTO renters (user_id, address_id, move_in_date, budget, pref_location, referral_code)
            VALUES ($1,$2,$3,$4,$5,$6)
            RETURNING renter_id
        `,
			userID, addrID, rent.MoveInDate, rent.Budget, rent.PrefLocation, rent.ReferralCode,
		).Scan(&renterID)
	})
	if err != nil {
		return 0, err
	}
	return renterID, nil
}

func (r *accountRepo) CreateAgent(ctx context.Context, u *models.User, addr *models.Address, ag *models.Agent) (int64, error) {
	var agentID int64
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		userID, addrID, err := insertUserAndAddress(ctx, tx, u, addr)
		if err != nil {
			return err
		}
		return tx.QueryRow(ctx, `
            INSERT INTO agents (user_id, job_title, agency, address_id, lang_spoken)
            VALUES ($1,$2,$3,$4,$5)
            RETURNING agent_id
        `,
			userID, ag.JobTitle, ag.Agency, addrID, ag.LangSpoken,
		).Scan(&agentID)
	})
	if err != nil {
		return 0, err
	}
	return agentID, nil
}

func (r *accountRepo) FindRenterIdentityByEmail(ctx context.Context, email string) (*models.Identity, error) {
	row := r.db.QueryRow(ctx, `
        SELECT r.renter_id, u.first_name
        FROM renters r
        JOIN users u ON r.user_id = u.user_id
        WHERE u.email=$1
    `, email)
	return scanIdentity(row)
}

func (r *accountRepo) FindAgentIdentityByEmail(ctx context.Context, email string) (*models.Identity, error) {
	row := r.db.QueryRow(ctx, `
        SELECT a.agent_id, u.first_name
        FROM agents a
        JOIN users u ON a.user_id = u.user_id
        WHERE u.email=$1
    `, email)
	return scanIdentity(row)
}

func insertUserAndAddress(ctx context.Context, tx pgx.Tx, u *models.User, addr *models.Address) (userID int64, addrID *int64, err error) {
	err = tx.QueryRow(ctx, `
        INSERT INTO users (email, phone_number, first_name, middle_name, last_name)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING user_id
    `,
		u.Email, u.PhoneNumber, u.FirstName, u.MiddleName, u.LastName,
	).Scan(&userID)
	if err != nil {
		return 0, nil, err
	}

	if addr != nil {
		id, aErr := insertAddress(ctx, tx, addr)
		if aErr != nil {
			return 0, nil, aErr
		}
		addrID = &id
	}
	return userID, addrID, nil
}

func scanIdentity(row pgx.Row) (*models.Identity, error) {
	var ident models.Identity
	err := row.Scan(&ident.ID, &ident.FirstName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ident, nil
}
