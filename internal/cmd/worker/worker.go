// Package worker parses worker command flags and launches the agent worker
// service.
package worker

import (
	"context"
	"flag"

	"github.com/calderasoft/agentworker/internal/platform/cmd"
	"github.com/calderasoft/agentworker/internal/platform/config"
	server "github.com/calderasoft/agentworker/internal/services/worker/app"
)

// Config holds worker command configuration.
type Config struct {
	Port      int    `env:"AGENTWORKER_PORT" envDefault:"50051"`
	EngineCLI string `env:"AGENTWORKER_ENGINE_CLI" envDefault:"claude"`
	DBPath    string `env:"AGENTWORKER_DB_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The worker gRPC server port")
	fs.StringVar(&cfg.EngineCLI, "engine-cli", cfg.EngineCLI, "Path to the agent engine binary")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the turn ledger database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the agent worker service.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceWorker, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Port:      cfg.Port,
			EngineCLI: cfg.EngineCLI,
			DBPath:    cfg.DBPath,
		})
	})
}
