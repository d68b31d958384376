// apps/go-server/internal/config/config.go
//
// Process configuration, read from the environment.
// A `.env` file in the working directory is loaded first (development only);
// real environment variables always win over it.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable for the server and the terminal client.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	CorpusFile     string        `env:"WORDS_CORPUS_FILE"`
	TokenSecret    string        `env:"GAME_TOKEN_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL       time.Duration `env:"GAME_TOKEN_TTL" envDefault:"24h"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	Seed           uint64        `env:"HANGMAN_SEED" envDefault:"0"` // 0 = crypto random
}

// Load reads `.env` (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	return parse(env.Options{})
}

// parse reads opts.Environment when set, the process environment otherwise.
func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("GAME_TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.SessionIdleTTL <= 0 || cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("SESSION_IDLE_TTL and SWEEP_INTERVAL must be positive")
	}
	return cfg, nil
}
