package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	agentv1 "github.com/calderasoft/agentworker/api/gen/go/agent/v1"
	"github.com/calderasoft/agentworker/internal/platform/config"
	agentservice "github.com/calderasoft/agentworker/internal/services/worker/api/grpc/agent"
	"github.com/calderasoft/agentworker/internal/services/worker/engine"
	"github.com/calderasoft/agentworker/internal/services/worker/session"
	workersqlite "github.com/calderasoft/agentworker/internal/services/worker/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config controls worker server startup. Zero fields fall back to env and
// then to defaults.
type Config struct {
	Port      int
	EngineCLI string
	DBPath    string
}

// serverEnv holds env-parsed configuration for the worker server.
type serverEnv struct {
	DBPath    string `env:"AGENTWORKER_DB_PATH"`
	EngineCLI string `env:"AGENTWORKER_ENGINE_CLI"`
}

func (c Config) withEnvDefaults() Config {
	var env serverEnv
	_ = config.ParseEnv(&env)
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = env.DBPath
	}
	if strings.TrimSpace(c.EngineCLI) == "" {
		c.EngineCLI = env.EngineCLI
	}
	return c
}

// Server hosts the agent worker service.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *workersqlite.Store
	registry   *session.Registry
	closeOnce  sync.Once
}

// New creates a configured worker server listening on cfg.Port.
func New(cfg Config) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", cfg.Port), cfg)
}

// NewWithAddr creates a configured worker server listening on the provided
// address.
func NewWithAddr(addr string, cfg Config) (*Server, error) {
	cfg = cfg.withEnvDefaults()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	// An empty DB path disables the turn ledger; the worker still serves
	// sessions, it just keeps no metrics.
	var store *workersqlite.Store
	if strings.TrimSpace(cfg.DBPath) != "" {
		store, err = openWorkerStore(cfg.DBPath)
		if err != nil {
			_ = listener.Close()
			return nil, err
		}
	}

	eng := engine.NewCLI(cfg.EngineCLI)
	registry := session.NewRegistry(eng)
	service := agentservice.NewService(registry)
	if store != nil {
		registry.WithLedger(store)
		service.WithLedger(store)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	agentv1.RegisterAgentWorkerServer(grpcServer, service)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("agent.v1.AgentWorker", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		registry:   registry,
	}, nil
}

// Addr returns the listener address for the worker server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a worker server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the worker server and blocks until it stops or context ends.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("worker server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases server resources. Registered engine sessions are
// disconnected before the listener and store shut down.
func (s *Server) Close() {
	if s == nil {
		return
	}

	s.closeOnce.Do(func() {
		if s.health != nil {
			s.health.Shutdown()
		}
		if s.registry != nil {
			s.registry.Shutdown()
		}
		if s.grpcServer != nil {
			s.grpcServer.Stop()
		}
		if s.listener != nil {
			if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
				log.Printf("close worker listener: %v", err)
			}
		}
		if s.store != nil {
			if err := s.store.Close(); err != nil {
				log.Printf("close worker store: %v", err)
			}
		}
	})
}

func openWorkerStore(path string) (*workersqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := workersqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open worker sqlite store: %w", err)
	}
	return store, nil
}
