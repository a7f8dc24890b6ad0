// Package gallery parses gallery flags and launches the HTTP server.
package gallery

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/iconselect/internal/platform/cmd"
	"github.com/louisbranch/iconselect/internal/platform/config"
	"github.com/louisbranch/iconselect/internal/services/gallery"
)

// Config holds gallery command configuration.
type Config struct {
	HTTPAddr string `env:"GALLERY_HTTP_ADDR" envDefault:"localhost:8095"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := entrypoint.LoadConfig(fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address (env "+config.EnvName("GALLERY_HTTP_ADDR")+")")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the icon gallery.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGallery, func(ctx context.Context) error {
		server, err := gallery.NewServer(gallery.Config{HTTPAddr: cfg.HTTPAddr})
		if err != nil {
			return fmt.Errorf("init gallery server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve gallery: %w", err)
		}
		return nil
	})
}
