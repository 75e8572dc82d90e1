package config

import (
	"os"
	"time"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

const AppName = "rental-portal-server"

const defaultSessionTTL = 12 * time.Hour

type Config struct {
	AppName       string
	AppPort       string
	AppUrl        string
	DBUrl         string
	SessionSecret []byte
	SessionTTL    time.Duration
}

// LoadConfig reads the runtime environment, fatal on anything missing.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		utils.Logger.Fatal("SESSION_SECRET env var is missing")
	}

	sessionTTL := defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			utils.Logger.WithError(err).Fatalf("Invalid SESSION_TTL %q", raw)
		}
		sessionTTL = ttl
	}

	utils.Logger.Infof("Loaded config for %s", AppName)

	return &Config{
		AppName:       AppName,
		AppPort:       appPort,
		AppUrl:        appURL,
		DBUrl:         dbURL,
		SessionSecret: []byte(secret),
		SessionTTL:    sessionTTL,
	}
}
