// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds all tunables of the data service.
type App struct {
	// Substrate. Empty means the in-memory store.
	DBPath string `envconfig:"DB_PATH" default:"./data/invoicepad.db"`

	// Lifecycle
	DataTTLMin     int `envconfig:"DATA_TTL_MIN" default:"10"`
	SimLatencyMs   int `envconfig:"SIM_LATENCY_MS" default:"500"`
	SweepIntervalS int `envconfig:"SWEEP_INTERVAL_SEC" default:"60"`

	// Session tokens
	JWTSecret     string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	TokenExpireHr int    `envconfig:"TOKEN_EXPIRE_HR" default:"24"`

	// Demo credentials accepted by login.
	DemoEmail    string `envconfig:"DEMO_EMAIL" default:"demo@example.com"`
	DemoPassword string `envconfig:"DEMO_PASSWORD" default:"password"`
}

// Load reads .env if present, then the process environment.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found")
	}

	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// TTL returns the collection TTL as a duration.
func (c App) TTL() time.Duration {
	return time.Duration(c.DataTTLMin) * time.Minute
}

// Latency returns the simulated per-call latency as a duration.
func (c App) Latency() time.Duration {
	return time.Duration(c.SimLatencyMs) * time.Millisecond
}

// SweepInterval returns the janitor interval as a duration.
func (c App) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalS) * time.Second
}

// TokenDuration returns the session token lifetime as a duration.
func (c App) TokenDuration() time.Duration {
	return time.Duration(c.TokenExpireHr) * time.Hour
}
