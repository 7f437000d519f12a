// cmd/fmareport/run.go
package main

import (
	"fmt"
	"io"

	"github.com/signalnine/fmareport/internal/aggregate"
	"github.com/signalnine/fmareport/internal/config"
	"github.com/signalnine/fmareport/internal/hwgrok"
	"github.com/signalnine/fmareport/internal/logger"
	"github.com/signalnine/fmareport/internal/report"
	"github.com/signalnine/fmareport/internal/store"
)

// validate checks cfg before a run, including the settings only the
// renderer and logger know how to interpret.
func validate(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !report.ValidFormat(cfg.Format) {
		return fmt.Errorf("unknown format %q (want text, json or yaml)", cfg.Format)
	}
	if !logger.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}

func newLogger(cfg *config.Config) *logger.Logger {
	return logger.New(cfg.LogLevel)
}

// buildDocument consumes the whole event log before anything is rendered,
// so a fatal input error never produces a partial report.
func buildDocument(cfg *config.Config, log *logger.Logger) (*report.Document, error) {
	inv, err := hwgrok.Load(cfg.HWGrokPath)
	if err != nil {
		return nil, err
	}
	for _, path := range inv.Duplicates() {
		log.Warnf("Device path %s appears more than once in %s; using the first entry", path, cfg.HWGrokPath)
	}

	res, err := aggregate.AggregateFile(cfg.FMLogPath, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.FMLogPath, err)
	}

	return report.Build(res, inv), nil
}

func runReport(cfg *config.Config, out io.Writer, log *logger.Logger) error {
	defer log.Sync()

	doc, err := buildDocument(cfg, log)
	if err != nil {
		return err
	}
	return report.Render(out, doc, report.Options{Format: cfg.Format, Color: cfg.Color})
}

func runExport(cfg *config.Config, out io.Writer, log *logger.Logger) error {
	defer log.Sync()

	doc, err := buildDocument(cfg, log)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.ExportDB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	run := store.NewRun(cfg.FMLogPath, cfg.HWGrokPath)
	if err := db.WriteSnapshot(run, doc); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	log.Infow("Snapshot written", "db", cfg.ExportDB, "run", run.ID, "devices", len(doc.Devices))
	fmt.Fprintln(out, run.ID)
	return nil
}
