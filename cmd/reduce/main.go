// Command reduce runs the semantic reduction pipeline for a single
// lemma: it reads a lemma document (JSON) from a file or stdin,
// clusters the witness sense units into sense buckets, pins them to
// the constant registry when one is configured, and writes the reduced
// sense set as JSON to stdout.
//
// Flags:
//
//	--input     path to the lemma document JSON (default: stdin)
//	--mode      clustering mode: open | skeptic (default: from config)
//	--evidence  include the full witness list per bucket in the output
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/okeanid/glossarion/internal/app"
	"github.com/okeanid/glossarion/internal/config"
	"github.com/okeanid/glossarion/internal/domain"
	"github.com/okeanid/glossarion/internal/reduce"
	"github.com/okeanid/glossarion/internal/registry"
	"github.com/okeanid/glossarion/pkg/ctxutil"
)

func main() {
	inputFlag := flag.String("input", "", "path to lemma document JSON (default: stdin)")
	modeFlag := flag.String("mode", "", "clustering mode: open | skeptic (default: from config)")
	evidenceFlag := flag.Bool("evidence", false, "include full witness lists in the output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("reduce starting", slog.String("version", app.BuildVersion()))

	mode := cfg.Reduction.Mode()
	if *modeFlag != "" {
		mode, err = domain.ParseMode(*modeFlag)
		if err != nil {
			logger.Error("parse mode", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	in := io.Reader(os.Stdin)
	if *inputFlag != "" {
		f, err := os.Open(*inputFlag)
		if err != nil {
			logger.Error("open input", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	lemma, language, wsus, err := reduce.DecodeLemmaDocument(in)
	if err != nil {
		logger.Error("read lemma document", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = ctxutil.WithNewRunID(ctx)

	reg, closeRegistry, err := app.OpenRegistry(ctx, logger, cfg.Registry)
	if err != nil {
		logger.Error("open registry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRegistry()

	svc := newReducer(logger, reg)

	set, err := svc.Reduce(ctx, lemma, language, wsus, mode)
	if err != nil {
		logger.Error("reduce", slog.String("lemma", lemma), slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reduce.Render(set, *evidenceFlag)); err != nil {
		logger.Error("encode result", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newReducer keeps a nil *registry.Service from becoming a non-nil
// interface inside the reduce service.
func newReducer(logger *slog.Logger, reg *registry.Service) *reduce.Service {
	if reg == nil {
		return reduce.NewService(logger, nil)
	}
	return reduce.NewService(logger, reg)
}
