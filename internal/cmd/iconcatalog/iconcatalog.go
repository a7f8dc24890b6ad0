// Package iconcatalog renders the core icon catalog reference.
package iconcatalog

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/louisbranch/iconselect/internal/platform/cmd"
	"github.com/louisbranch/iconselect/internal/platform/config"
	"github.com/louisbranch/iconselect/internal/platform/icons"
	"github.com/louisbranch/iconselect/internal/platform/icons/families"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// Config holds icon-catalog command configuration.
type Config struct {
	Out    string `env:"ICON_CATALOG_OUT"`
	Format string `env:"ICON_CATALOG_FORMAT" envDefault:"markdown"`
	// Render, when set, is an icon reference ("lucide:house") to render as
	// SVG instead of writing the catalog.
	Render string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := entrypoint.LoadConfig(fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.Out, "out", cfg.Out, "Output file, stdout when empty (env "+config.EnvName("ICON_CATALOG_OUT")+")")
		fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: markdown or yaml (env "+config.EnvName("ICON_CATALOG_FORMAT")+")")
		fs.StringVar(&cfg.Render, "render", "", "Render one icon reference (namespace:name) instead of the catalog")
	})
	if err != nil {
		return Config{}, err
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format != FormatMarkdown && cfg.Format != FormatYAML {
		return Config{}, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return cfg, nil
}

// Run writes the catalog, or the single icon named by cfg.Render, to cfg.Out
// or to stdout when no file is set.
func Run(ctx context.Context, cfg Config, stdout io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconCatalog, func(ctx context.Context) error {
		var body string
		var err error
		if strings.TrimSpace(cfg.Render) != "" {
			body, err = RenderIcon(ctx, cfg.Render)
		} else {
			body, err = Render(cfg.Format)
		}
		if err != nil {
			return err
		}
		out := strings.TrimSpace(cfg.Out)
		if out == "" {
			_, err := io.WriteString(stdout, body)
			return err
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		return nil
	})
}

type catalogEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Lucide      string `yaml:"lucide"`
	Description string `yaml:"description"`
}

// Render formats the catalog.
func Render(format string) (string, error) {
	switch format {
	case FormatMarkdown, "":
		return icons.CatalogMarkdown(), nil
	case FormatYAML:
		catalog := icons.Catalog()
		entries := make([]catalogEntry, 0, len(catalog))
		for _, def := range catalog {
			entries = append(entries, catalogEntry{
				ID:          string(def.ID),
				Name:        def.Name,
				Lucide:      icons.LucideNameOrDefault(def.ID),
				Description: def.Description,
			})
		}
		data, err := yaml.Marshal(map[string][]catalogEntry{"icons": entries})
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// RenderIcon renders one textual reference through the built-in families.
func RenderIcon(ctx context.Context, reference string) (string, error) {
	ref, err := icons.ParseReference(reference)
	if err != nil {
		return "", err
	}
	registry, err := icons.NewRegistry(families.Default())
	if err != nil {
		return "", err
	}
	component, err := icons.Resolve(registry, icons.SelectProps{Select: ref})
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		return "", fmt.Errorf("render %s: %w", ref, err)
	}
	b.WriteString("\n")
	return b.String(), nil
}
