package server

import (
	"net"
	"path/filepath"
	"testing"
)

func TestNewSuccess(t *testing.T) {
	srv, err := New(Config{DBPath: filepath.Join(t.TempDir(), "worker.db")})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(func() {
		srv.Close()
	})
	if srv.Addr() == "" {
		t.Fatal("expected non-empty address")
	}
}

func TestServerCloseReleasesListener(t *testing.T) {
	srv, err := New(Config{DBPath: filepath.Join(t.TempDir(), "worker.db")})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	addr := srv.Addr()
	if addr == "" {
		t.Fatal("expected non-empty address")
	}

	srv.Close()

	l, err := net.Listen("tcp", addr)
	if err != nil {
		t.Fatalf("listen after close: %v", err)
	}
	_ = l.Close()
}

func TestServerCloseIsIdempotent(t *testing.T) {
	srv, err := New(Config{DBPath: filepath.Join(t.TempDir(), "worker.db")})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	srv.Close()
	srv.Close()
}

func TestConfigEnvDefaults(t *testing.T) {
	t.Setenv("AGENTWORKER_DB_PATH", "/var/lib/worker.db")
	t.Setenv("AGENTWORKER_ENGINE_CLI", "/usr/local/bin/claude")

	cfg := Config{}.withEnvDefaults()
	if cfg.DBPath != "/var/lib/worker.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.EngineCLI != "/usr/local/bin/claude" {
		t.Errorf("engine cli = %q", cfg.EngineCLI)
	}
}

func TestConfigExplicitValuesWin(t *testing.T) {
	t.Setenv("AGENTWORKER_DB_PATH", "/var/lib/worker.db")

	cfg := Config{DBPath: "/tmp/other.db"}.withEnvDefaults()
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
}

func TestNewWithoutDBPathDisablesLedger(t *testing.T) {
	t.Setenv("AGENTWORKER_DB_PATH", "")

	srv, err := New(Config{})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(func() {
		srv.Close()
	})
	if srv.store != nil {
		t.Error("expected no store without a db path")
	}
}
