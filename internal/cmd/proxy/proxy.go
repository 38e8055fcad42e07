// Package proxy parses proxy service flags and launches the service.
package proxy

import (
	"context"
	"flag"

	entrypoint "github.com/emberhollow/proxy/internal/platform/cmd"
	server "github.com/emberhollow/proxy/internal/proxy/app"
)

// Config holds proxy command configuration.
type Config struct {
	Port int `env:"EMBERHOLLOW_PROXY_PORT" envDefault:"8080"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The proxy gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the proxy service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceProxy, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
