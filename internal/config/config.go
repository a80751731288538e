// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Database and auth values are required;
// the schedule values default to the restaurant's actual hours so a
// bare environment still produces a working policy.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign staff access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for staff password hashing

	// Booking policy. The time zone is the restaurant's own, never the
	// caller's; policy checks are evaluated in it.
	Timezone    string // IANA zone name, e.g. "America/New_York"
	ClosedDay   string // weekly closed day, e.g. "Tuesday"
	OpeningTime string // first bookable slot, "HH:MM"
	LastSeating string // last bookable slot, "HH:MM"
}

// Load reads configuration values from environment variables. Missing
// required variables cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"), // empty allowed
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBName:       must("DB_NAME"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),
		Timezone:     getenv("RESTAURANT_TIMEZONE", "America/New_York"),
		ClosedDay:    getenv("RESTAURANT_CLOSED_DAY", "Tuesday"),
		OpeningTime:  getenv("RESTAURANT_OPENING_TIME", "10:30"),
		LastSeating:  getenv("RESTAURANT_LAST_SEATING", "21:30"),
	}
}

// Location resolves the configured restaurant time zone, falling back
// to UTC when the zone database does not know the name.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("config: unknown timezone %q, falling back to UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// ClosedWeekday parses the configured closed day name. Unknown names
// fall back to Tuesday.
func (c Config) ClosedWeekday() time.Weekday {
	name := strings.ToLower(strings.TrimSpace(c.ClosedDay))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d
		}
	}
	log.Printf("config: unknown closed day %q, falling back to Tuesday", c.ClosedDay)
	return time.Tuesday
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

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
