package config

import (
	"testing"
	"time"
)

func TestDefaultConfigSaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LevelTTL <= 0 || cfg.LevelsTTL <= 0 || cfg.UserTTL <= 0 || cfg.CommentsTTL <= 0 {
		t.Fatalf("expected all TTLs to be positive, got %+v", cfg)
	}
	if !cfg.CoalesceRequests {
		t.Fatalf("expected coalescing to default on")
	}
}

func TestFromEnvOverlaysSetVariables(t *testing.T) {
	t.Setenv("GDCF_LEVEL_TTL", "1h")
	t.Setenv("GDCF_CLIENT_RPS", "42.5")
	t.Setenv("GDCF_COALESCE_REQUESTS", "false")

	cfg := FromEnv()
	if cfg.LevelTTL != time.Hour {
		t.Fatalf("expected overridden LevelTTL of 1h, got %v", cfg.LevelTTL)
	}
	if cfg.ClientRPS != 42.5 {
		t.Fatalf("expected overridden ClientRPS of 42.5, got %v", cfg.ClientRPS)
	}
	if cfg.CoalesceRequests {
		t.Fatalf("expected CoalesceRequests overridden to false")
	}

	// Untouched fields keep their defaults.
	def := DefaultConfig()
	if cfg.UserTTL != def.UserTTL {
		t.Fatalf("expected untouched UserTTL to keep its default, got %v", cfg.UserTTL)
	}
}

func TestFromEnvIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("GDCF_L1_MAX_ENTRIES", "not-a-number")

	cfg := FromEnv()
	if cfg.L1MaxEntries != DefaultConfig().L1MaxEntries {
		t.Fatalf("expected unparseable value to fall back to default, got %d", cfg.L1MaxEntries)
	}
}
