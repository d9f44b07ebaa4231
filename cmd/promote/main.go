// Command promote marks a provisional semantic constant as curated.
// Curation is a one-way, human-reviewed transition; promoting an
// already-curated constant is a no-op success.
//
// Usage:
//
//	promote --id=AUSPICIOUS
//
// The registry backend comes from the usual configuration (CONFIG_PATH /
// environment), same as the reduce tools.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/okeanid/glossarion/internal/app"
	"github.com/okeanid/glossarion/internal/config"
	"github.com/okeanid/glossarion/internal/domain"
)

func main() {
	id := flag.String("id", "", "constant id to promote to curated")
	flag.Parse()

	if *id == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --id=CONSTANT_ID")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reg, closeRegistry, err := app.OpenRegistry(ctx, logger, cfg.Registry)
	if err != nil {
		logger.Error("open registry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRegistry()

	if reg == nil {
		fmt.Fprintln(os.Stderr, "promote requires a registry backend (driver postgres or sqlite)")
		os.Exit(1)
	}

	if err := reg.Promote(ctx, domain.ConstantID(*id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("No constant found with id %q.\n", *id)
			os.Exit(1)
		}
		logger.Error("promote", slog.String("constant_id", *id), slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Constant %q promoted to curated.\n", *id)
}
