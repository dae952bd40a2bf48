// SPDX-License-Identifier: MIT

// Command modcat builds the modification-combination catalogues of the
// configured search profiles and prints them.
//
//	modcat -config configs/modcat.yaml [-profile NAME] [-dump]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lonelu/Informed-Proteomics/catalogue"
	"github.com/lonelu/Informed-Proteomics/config"
	"github.com/lonelu/Informed-Proteomics/logger"
	"github.com/lonelu/Informed-Proteomics/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "modcat: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("modcat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "configs/modcat.yaml", "path to config file")
	profile := fs.String("profile", "", "only print this profile")
	dump := fs.Bool("dump", false, "print every combination and its transitions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *profile != "" {
		p, ok := cfg.Profile(*profile)
		if !ok {
			return fmt.Errorf("%w: %q", catalogue.ErrUnknownProfile, *profile)
		}
		cfg.Profiles = []config.ProfileConfig{p}
	}

	logger.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("building catalogues", "profiles", len(cfg.Profiles), "config", *configPath)

	opts := []catalogue.Option{
		catalogue.WithMaxCombinations(cfg.Catalogue.MaxCombinations),
		catalogue.WithConcurrency(cfg.Catalogue.Concurrency),
	}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, catalogue.WithRecorder(m))
	}

	reg, err := catalogue.Build(ctx, cfg.Profiles, opts...)
	if m != nil {
		// Failures are worth exporting too.
		if werr := m.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			slog.Error("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", werr)
		} else {
			slog.Debug("metrics written", "path", cfg.Metrics.Textfile)
		}
	}
	if err != nil {
		return err
	}

	for _, name := range reg.Names() {
		cat, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, catalogue.Summary(name, cat))
		if *dump {
			if err := catalogue.Describe(stdout, cat); err != nil {
				return err
			}
			fmt.Fprintln(stdout)
		}
	}
	return nil
}
