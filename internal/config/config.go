package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time provides duration types for timeouts
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Secrets and identifiers are strings; durations
// and costs are typed the way the application consumes them. The struct is
// passed explicitly into the store, token and handler constructors instead
// of living in process-wide globals.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	DataDir        string        // directory holding the per-table JSON documents
	StaticDir      string        // directory with the static front-end assets
	JWTSecret      string        // secret used to sign JWTs
	TokenTTLDays   int           // credential time-to-live in days
	BcryptCost     int           // bcrypt cost for password hashing
	WeatherTimeout time.Duration // upper bound on one weather proxy call
}

// Load reads configuration values from environment variables and returns a
// Config. JWT_SECRET is the only hard requirement; everything else has a
// sensible default for a single-process demo deployment.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "3000"),
		DataDir:        getenv("DATA_DIR", "data"),
		StaticDir:      getenv("STATIC_DIR", "public"),
		JWTSecret:      must("JWT_SECRET"),
		TokenTTLDays:   envInt("TOKEN_TTL_DAYS", 7),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		WeatherTimeout: envDur("WEATHER_TIMEOUT", 8*time.Second),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
