package iconcatalog

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/iconselect/internal/platform/errors"
	"github.com/louisbranch/iconselect/internal/platform/icons"
	"gopkg.in/yaml.v3"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("icon-catalog", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Out != "" || cfg.Format != FormatMarkdown {
		t.Fatalf("cfg = %+v, want stdout markdown", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("icon-catalog", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-out", "docs/icons.yaml", "-format", "YAML"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Out != "docs/icons.yaml" || cfg.Format != FormatYAML {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigUsageNamesEnvVars(t *testing.T) {
	fs := flag.NewFlagSet("icon-catalog", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	for name, envName := range map[string]string{
		"out":    "ICONSELECT_ICON_CATALOG_OUT",
		"format": "ICONSELECT_ICON_CATALOG_FORMAT",
	} {
		f := fs.Lookup(name)
		if f == nil {
			t.Fatalf("expected %s flag", name)
		}
		if !strings.Contains(f.Usage, envName) {
			t.Fatalf("%s usage = %q, want %s", name, f.Usage, envName)
		}
	}
}

func TestParseConfigRejectsUnknownFormat(t *testing.T) {
	fs := flag.NewFlagSet("icon-catalog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-format", "csv"}); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestRunWritesStdout(t *testing.T) {
	t.Setenv("ICONSELECT_OTEL_ENDPOINT", "")

	var stdout bytes.Buffer
	if err := Run(context.Background(), Config{Format: FormatMarkdown}, &stdout); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stdout.String() != icons.CatalogMarkdown() {
		t.Fatalf("stdout does not match catalog markdown")
	}
}

func TestRunWritesFile(t *testing.T) {
	t.Setenv("ICONSELECT_OTEL_ENDPOINT", "")

	out := filepath.Join(t.TempDir(), "reference", "icons.md")
	if err := Run(context.Background(), Config{Out: out, Format: FormatMarkdown}, io.Discard); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Icon Catalog") {
		t.Fatalf("unexpected output %q", string(data)[:40])
	}
}

func TestRenderYAMLListsEveryIcon(t *testing.T) {
	body, err := Render(FormatYAML)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var decoded struct {
		Icons []catalogEntry `yaml:"icons"`
	}
	if err := yaml.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(decoded.Icons) != len(icons.Catalog()) {
		t.Fatalf("entries = %d, want %d", len(decoded.Icons), len(icons.Catalog()))
	}
	for _, entry := range decoded.Icons {
		if entry.ID == string(icons.IDHome) && entry.Lucide != "house" {
			t.Fatalf("home lucide = %q, want house", entry.Lucide)
		}
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	if _, err := Render("toml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRenderIcon(t *testing.T) {
	body, err := RenderIcon(context.Background(), " lucide : house ")
	if err != nil {
		t.Fatalf("RenderIcon() error = %v", err)
	}
	if !strings.Contains(body, `<use href="#lucide-house"></use>`) {
		t.Fatalf("body = %q", body)
	}
}

func TestRenderIconErrors(t *testing.T) {
	tests := map[string]apperrors.Code{
		"house":          apperrors.CodeIconReferenceInvalid,
		"material:house": apperrors.CodeIconNamespaceUnknown,
		"brand:retired":  apperrors.CodeIconNameUnknown,
	}
	for reference, want := range tests {
		_, err := RenderIcon(context.Background(), reference)
		if got := apperrors.CodeOf(err); got != want {
			t.Fatalf("RenderIcon(%q) code = %q, want %q (err %v)", reference, got, want, err)
		}
	}
}

func TestRunRendersIconToStdout(t *testing.T) {
	t.Setenv("ICONSELECT_OTEL_ENDPOINT", "")

	var stdout bytes.Buffer
	if err := Run(context.Background(), Config{Render: "brand:mark"}, &stdout); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "<svg") {
		t.Fatalf("stdout = %q", stdout.String())
	}
}
