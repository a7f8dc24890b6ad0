// Package main writes the core icon catalog reference.
package main

import (
	"context"
	"flag"
	"os"

	iconcatalogcmd "github.com/louisbranch/iconselect/internal/cmd/iconcatalog"
	"github.com/louisbranch/iconselect/internal/platform/config"
)

func main() {
	cfg, err := iconcatalogcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := iconcatalogcmd.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("icon-catalog: %v", err)
	}
}
