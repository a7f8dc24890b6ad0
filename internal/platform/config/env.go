// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable this module reads.
const EnvPrefix = "ICONSELECT_"

// ParseEnv loads configuration from environment variables. Struct tags name
// variables without EnvPrefix; `env:"GALLERY_HTTP_ADDR"` reads
// ICONSELECT_GALLERY_HTTP_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// EnvName returns the full variable name for a prefix-relative key.
func EnvName(key string) string {
	return EnvPrefix + key
}
