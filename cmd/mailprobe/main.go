package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/optimode/mailprobe"
	"github.com/optimode/mailprobe/internal/config"
	"github.com/optimode/mailprobe/internal/input"
	"github.com/optimode/mailprobe/internal/logger"
	"github.com/optimode/mailprobe/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configDir  string
		inputPath  string
		outputPath string
		limit      int
		workers    int
		dryRun     bool
		table      bool
		logLevel   string
	)

	flag.StringVar(&configDir, "config", ".", "directory containing mailprobe.yaml")
	flag.StringVar(&inputPath, "input", "", "path to the address list (default from config)")
	flag.StringVar(&inputPath, "i", "", "shorthand for -input")
	flag.StringVar(&outputPath, "output", "", "path for the JSON report (default from config)")
	flag.StringVar(&outputPath, "o", "", "shorthand for -output")
	flag.IntVar(&limit, "limit", 0, "validate at most this many addresses (0 = all)")
	flag.IntVar(&limit, "n", 0, "shorthand for -limit")
	flag.IntVar(&workers, "workers", 0, "concurrent validations (default from config)")
	flag.BoolVar(&dryRun, "dry-run", false, "print the JSON report to stdout instead of writing it")
	flag.BoolVar(&table, "table", false, "print a per-address table to stdout")
	flag.StringVar(&logLevel, "log-level", "", "debug|info|warn|error (default from config)")
	flag.Parse()

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Flags override config, config overrides defaults.
	if inputPath == "" {
		inputPath = cfg.Input
	}
	if outputPath == "" {
		outputPath = cfg.Output
	}
	if workers <= 0 {
		workers = cfg.Workers
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}

	log := logger.New(logLevel).With().Str("run_id", logger.NewRunID()).Logger()

	emails, err := input.ReadFile(inputPath, limit)
	if err != nil {
		log.Error().Err(err).Str("path", inputPath).Msg("failed to load addresses")
		return 1
	}
	if len(emails) == 0 {
		log.Warn().Str("path", inputPath).Msg("no addresses to validate")
	}

	log.Info().
		Str("input", inputPath).
		Int("count", len(emails)).
		Int("workers", workers).
		Int("dns_timeout_s", cfg.DNS.TimeoutSeconds).
		Int("smtp_timeout_s", cfg.SMTP.TimeoutSeconds).
		Msg("starting validation")

	v := mailprobe.New(mailprobe.Options{
		DNSTimeout:  cfg.DNSTimeout(),
		SMTPTimeout: cfg.SMTPTimeout(),
		SMTPPort:    cfg.SMTP.Port,
		HostOnly:    cfg.DNS.HostOnly,
		Logger:      log,
	})

	start := time.Now()
	verdicts := v.VerifyMany(context.Background(), emails, mailprobe.BatchOptions{Workers: workers})
	summary := report.Summarize(verdicts, time.Since(start))

	log.Info().
		Int("total", summary.Total).
		Int("valid", summary.Valid).
		Int("invalid", summary.Invalid).
		Int("unknown", summary.Unknown).
		Int64("duration_ms", summary.DurationMs).
		Msg("validation finished")

	if table {
		report.PrintResultsTable(os.Stdout, verdicts)
	}

	if dryRun {
		if err := report.Encode(os.Stdout, verdicts); err != nil {
			log.Error().Err(err).Msg("failed to encode report")
			return 1
		}
	} else {
		if err := report.WriteFile(outputPath, verdicts); err != nil {
			log.Error().Err(err).Str("path", outputPath).Msg("failed to write report")
			return 1
		}
		log.Info().Str("path", outputPath).Int("count", len(verdicts)).Msg("report written")
	}

	report.PrintSummary(os.Stderr, summary)
	return 0
}
