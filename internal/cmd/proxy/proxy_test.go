package proxy

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("proxy", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("EMBERHOLLOW_PROXY_PORT", "9080")

	fs := flag.NewFlagSet("proxy", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9081"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9081 {
		t.Fatalf("expected port override 9081, got %d", cfg.Port)
	}
}

func TestParseConfigEnvOnly(t *testing.T) {
	t.Setenv("EMBERHOLLOW_PROXY_PORT", "9080")

	fs := flag.NewFlagSet("proxy", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9080 {
		t.Fatalf("expected env port 9080, got %d", cfg.Port)
	}
}
