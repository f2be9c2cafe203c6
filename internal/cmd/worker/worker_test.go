package worker

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("worker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 50051 {
		t.Fatalf("expected default port 50051, got %d", cfg.Port)
	}
	if cfg.EngineCLI != "claude" {
		t.Fatalf("expected default engine cli, got %q", cfg.EngineCLI)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("AGENTWORKER_PORT", "9002")
	t.Setenv("AGENTWORKER_ENGINE_CLI", "/opt/engine/claude")

	fs := flag.NewFlagSet("worker", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9010", "-db-path", "/tmp/worker.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9010 {
		t.Fatalf("expected port override 9010, got %d", cfg.Port)
	}
	if cfg.EngineCLI != "/opt/engine/claude" {
		t.Fatalf("expected env engine cli, got %q", cfg.EngineCLI)
	}
	if cfg.DBPath != "/tmp/worker.db" {
		t.Fatalf("expected db path flag, got %q", cfg.DBPath)
	}
}
