package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	GinMode         string
	DefaultMode     string
	Seed            int64 // 0 seeds from the clock
	ShutdownTimeout time.Duration
	PingInterval    time.Duration
	SessionTTL      time.Duration
	SweepInterval   time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		GinMode:         getenv("GIN_MODE", "release"),
		DefaultMode:     getenv("DEFAULT_MODE", "human_vs_computer"),
		Seed:            getenvInt64("GAME_SEED", 0),
		ShutdownTimeout: time.Duration(getenvInt("SHUTDOWN_TIMEOUT_SEC", 5)) * time.Second,
		PingInterval:    time.Duration(getenvInt("WS_PING_INTERVAL_SEC", 30)) * time.Second,
		SessionTTL:      time.Duration(getenvInt("SESSION_TTL_MIN", 120)) * time.Minute,
		SweepInterval:   time.Duration(getenvInt("SESSION_SWEEP_SEC", 60)) * time.Second,
	}
}
