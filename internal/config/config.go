// Package config loads gdcf's tunables from the environment, following the
// teacher's Config/DefaultConfig pattern (warming/service.go) rather than a
// third-party flags/viper-style loader — the teacher never reaches for one
// either, so neither does gdcf.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds gdcf's tunables: per-request-kind TTLs, the L1 cache size,
// client rate limiting, and coalescing. gdcf.New reads only the TTLs;
// ClientRPS, ClientBurst and CoalesceRequests are loaded but not applied by
// the facade, and L1MaxEntries is used by whoever builds the cache.
type Config struct {
	LevelTTL     time.Duration
	LevelsTTL    time.Duration
	UserTTL      time.Duration
	CommentsTTL  time.Duration

	L1MaxEntries int

	ClientRPS   float64
	ClientBurst int

	CoalesceRequests bool
}

// DefaultConfig returns gdcf's out-of-the-box tunables.
func DefaultConfig() Config {
	return Config{
		LevelTTL:         15 * time.Minute,
		LevelsTTL:        5 * time.Minute,
		UserTTL:          30 * time.Minute,
		CommentsTTL:      2 * time.Minute,
		L1MaxEntries:     100_000,
		ClientRPS:        5,
		ClientBurst:      10,
		CoalesceRequests: true,
	}
}

// FromEnv overlays DefaultConfig with any GDCF_* environment variables that
// are set, leaving unset ones at their default.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v, ok := durationEnv("GDCF_LEVEL_TTL"); ok {
		cfg.LevelTTL = v
	}
	if v, ok := durationEnv("GDCF_LEVELS_TTL"); ok {
		cfg.LevelsTTL = v
	}
	if v, ok := durationEnv("GDCF_USER_TTL"); ok {
		cfg.UserTTL = v
	}
	if v, ok := durationEnv("GDCF_COMMENTS_TTL"); ok {
		cfg.CommentsTTL = v
	}
	if v, ok := intEnv("GDCF_L1_MAX_ENTRIES"); ok {
		cfg.L1MaxEntries = v
	}
	if v, ok := floatEnv("GDCF_CLIENT_RPS"); ok {
		cfg.ClientRPS = v
	}
	if v, ok := intEnv("GDCF_CLIENT_BURST"); ok {
		cfg.ClientBurst = v
	}
	if v, ok := boolEnv("GDCF_COALESCE_REQUESTS"); ok {
		cfg.CoalesceRequests = v
	}

	return cfg
}

func durationEnv(key string) (time.Duration, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false
	}
	return d, true
}

func intEnv(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func floatEnv(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func boolEnv(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}
