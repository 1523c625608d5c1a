package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr       string
	AllowedOrigins []string
	// Dealer selects the shape-dealing strategy: "random" or "density".
	Dealer string
	// RoomTTL and JanitorSpec drive the idle-room sweep.
	RoomTTL     time.Duration
	JanitorSpec string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "*"), ","),
		Dealer:         getenv("PUZZLE_DEALER", "random"),
		RoomTTL:        getenvDuration("ROOM_TTL", 2*time.Hour),
		JanitorSpec:    getenv("JANITOR_SPEC", "@every 10m"),
	}
}
