package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/config"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/repositories"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/services"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/migrations"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App wires the connection pool, repositories and services together.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool

	Registration *services.RegistrationService
	Auth         *services.AuthService
	Properties   *services.PropertyService
	Cards        *services.CardService
	Bookings     *services.BookingService
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("%s connected to DB on attempt %d", cfg.AppName, i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	if err := bootstrapSchema(context.Background(), dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("schema bootstrap: %w", err)
	}
	if err := SeedCategories(context.Background(), dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("category seed: %w", err)
	}

	accountRepo := repositories.NewAccountRepository(dbPool)
	propertyRepo := repositories.NewPropertyRepository(dbPool)
	cardRepo := repositories.NewCardRepository(dbPool)
	bookingRepo := repositories.NewBookingRepository(dbPool)

	return &App{
		Config:       cfg,
		DB:           dbPool,
		Registration: services.NewRegistrationService(accountRepo),
		Auth:         services.NewAuthService(accountRepo, cfg.SessionSecret, cfg.SessionTTL),
		Properties:   services.NewPropertyService(propertyRepo),
		Cards:        services.NewCardService(cardRepo),
		Bookings:     services.NewBookingService(bookingRepo, cardRepo, propertyRepo),
	}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("DB connection closed.")
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}

func bootstrapSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, migrations.Schema())
	return err
}
