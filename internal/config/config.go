// internal/config/config.go
//
// Environment-driven configuration.
//
// A `.env` file in the working directory is loaded first (missing is fine);
// real environment variables win over it.
//
// Environment variables:
//   PORT            HTTP port (default 5175)
//   LOG_LEVEL       zerolog level (default info)
//   LOG_FORMAT      "json" (default) or "console"
//   PUZZLES_FILE    YAML dataset; empty uses the embedded proverbs
//   PUZZLE_TZ       IANA zone deciding "today" (default: local time)
//   STORE           "memory" (default) or "sqlite"
//   DB_PATH         SQLite file (default ./data/proverbial.db)
//   SESSION_SECRET  HMAC key for session cookies (default dev value)
//   CLIENT_ORIGIN   CORS origin (default http://localhost:5173)
//   COOKIE_SECURE   "true" marks the session cookie Secure; SameSite=None

package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const devSecret = "dev_secret_change_me"

// Config is the validated runtime configuration.
type Config struct {
	Port          int
	LogLevel      zerolog.Level
	LogFormat     string
	PuzzlesFile   string
	Location      *time.Location
	Store         string
	DBPath        string
	SessionSecret string
	ClientOrigin  string
	CookieSecure  bool
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		PuzzlesFile:   os.Getenv("PUZZLES_FILE"),
		Store:         getEnv("STORE", "memory"),
		DBPath:        getEnv("DB_PATH", "./data/proverbial.db"),
		SessionSecret: getEnv("SESSION_SECRET", devSecret),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Location:      time.Local,
	}

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: COOKIE_SECURE: %w", err)
		}
		c.CookieSecure = b
	}

	port, err := strconv.Atoi(getEnv("PORT", "5175"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("config: invalid PORT %q", os.Getenv("PORT"))
	}
	c.Port = port

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	if tz := os.Getenv("PUZZLE_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("config: PUZZLE_TZ: %w", err)
		}
		c.Location = loc
	}

	switch c.Store {
	case "memory", "sqlite":
	default:
		return nil, fmt.Errorf("config: unknown STORE %q (want memory or sqlite)", c.Store)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return nil, fmt.Errorf("config: unknown LOG_FORMAT %q (want json or console)", c.LogFormat)
	}
	return c, nil
}

// SetupLogging configures the global zerolog logger.
func (c *Config) SetupLogging(w io.Writer) {
	zerolog.SetGlobalLevel(c.LogLevel)
	if c.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// InsecureSecret reports whether the development session secret is in use.
func (c *Config) InsecureSecret() bool { return c.SessionSecret == devSecret }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
