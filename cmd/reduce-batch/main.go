// Command reduce-batch runs the reduction pipeline over a directory of
// lemma documents (one JSON file per lemma), reducing lemmas
// concurrently. Results are written one JSON file per lemma into the
// output directory, named after the input file. A lemma that fails does
// not stop the batch; failures are logged and counted in the exit
// status.
//
// Flags:
//
//	--input-dir   directory of lemma document JSON files (required)
//	--output-dir  directory for reduced sense set JSON files (required)
//	--mode        clustering mode: open | skeptic (default: from config)
//	--workers     concurrent reductions (default: from config)
//	--evidence    include full witness lists per bucket in the output
//
// Exit codes: 0 = all lemmas reduced, 1 = fatal error or any lemma failed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/okeanid/glossarion/internal/app"
	"github.com/okeanid/glossarion/internal/config"
	"github.com/okeanid/glossarion/internal/domain"
	"github.com/okeanid/glossarion/internal/reduce"
	"github.com/okeanid/glossarion/internal/registry"
)

func main() {
	inputDirFlag := flag.String("input-dir", "", "directory of lemma document JSON files")
	outputDirFlag := flag.String("output-dir", "", "directory for reduced sense set JSON files")
	modeFlag := flag.String("mode", "", "clustering mode: open | skeptic (default: from config)")
	workersFlag := flag.Int("workers", 0, "concurrent reductions (default: from config)")
	evidenceFlag := flag.Bool("evidence", false, "include full witness lists in the output")
	flag.Parse()

	if *inputDirFlag == "" || *outputDirFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: reduce-batch --input-dir=DIR --output-dir=DIR [--mode=open|skeptic]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("reduce-batch starting", slog.String("version", app.BuildVersion()))

	mode := cfg.Reduction.Mode()
	if *modeFlag != "" {
		mode, err = domain.ParseMode(*modeFlag)
		if err != nil {
			logger.Error("parse mode", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	workers := cfg.Reduction.BatchWorkers
	if *workersFlag > 0 {
		workers = *workersFlag
	}

	requests, names, err := loadRequests(*inputDirFlag)
	if err != nil {
		logger.Error("load lemma documents", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(requests) == 0 {
		logger.Warn("no lemma documents found", slog.String("dir", *inputDirFlag))
		return
	}

	if err := os.MkdirAll(*outputDirFlag, 0o755); err != nil {
		logger.Error("create output dir", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	reg, closeRegistry, err := app.OpenRegistry(ctx, logger, cfg.Registry)
	if err != nil {
		logger.Error("open registry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRegistry()

	svc := newReducer(logger, reg)

	results := svc.ReduceBatch(ctx, requests, mode, workers)

	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("reduce lemma",
				slog.String("lemma", res.Lemma),
				slog.String("file", names[i]),
				slog.String("error", res.Err.Error()),
			)
			continue
		}
		if err := writeResult(*outputDirFlag, names[i], res.Set, *evidenceFlag); err != nil {
			failed++
			logger.Error("write result",
				slog.String("lemma", res.Lemma),
				slog.String("error", err.Error()),
			)
		}
	}

	logger.Info("batch finished",
		slog.Int("total", len(results)),
		slog.Int("failed", failed),
	)
	if failed > 0 {
		os.Exit(1)
	}
}

// loadRequests reads every *.json file in dir, in name order so batch
// output is reproducible. Returns the requests and the base file names.
func loadRequests(dir string) ([]reduce.BatchRequest, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	requests := make([]reduce.BatchRequest, 0, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", name, err)
		}
		lemma, language, wsus, err := reduce.DecodeLemmaDocument(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", name, err)
		}
		requests = append(requests, reduce.BatchRequest{
			Lemma:    lemma,
			Language: language,
			WSUs:     wsus,
		})
	}

	return requests, names, nil
}

func writeResult(dir, name string, set *domain.ReducedSenseSet, evidence bool) error {
	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(reduce.Render(set, evidence))
}

// newReducer keeps a nil *registry.Service from becoming a non-nil
// interface inside the reduce service.
func newReducer(logger *slog.Logger, reg *registry.Service) *reduce.Service {
	if reg == nil {
		return reduce.NewService(logger, nil)
	}
	return reduce.NewService(logger, reg)
}
