// Package cmd holds the startup plumbing shared by iconselect commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/iconselect/internal/platform/config"
	"github.com/louisbranch/iconselect/internal/platform/otel"
	"github.com/louisbranch/iconselect/internal/platform/timeouts"
)

// Service identifiers used as the telemetry service name.
const (
	ServiceGallery     = "gallery"
	ServiceIconCatalog = "icon-catalog"
)

// LoadConfig fills cfg from ICONSELECT_ environment variables, lets bind
// register flags whose defaults are those values, then parses args. Flags
// given on the command line win over the environment.
func LoadConfig[T any](fs *flag.FlagSet, args []string, bind func(fs *flag.FlagSet, cfg *T)) (T, error) {
	var cfg T
	if fs == nil {
		return cfg, errors.New("flag parser is required")
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if bind != nil {
		bind(fs, &cfg)
	}
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RunWithTelemetry configures tracing for service, executes run and flushes
// pending spans within timeouts.Shutdown once run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
