// SPDX-License-Identifier: MIT

// Package catalogue builds and holds the modification catalogues of every
// configured search profile.
package catalogue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lonelu/Informed-Proteomics/config"
	"github.com/lonelu/Informed-Proteomics/logger"
	"github.com/lonelu/Informed-Proteomics/modcomb"
	"github.com/lonelu/Informed-Proteomics/modification"
)

// ErrUnknownProfile is returned by Get for a name that was not built.
var ErrUnknownProfile = errors.New("catalogue: unknown profile")

// Catalogue is the modification catalogue of one profile.
type Catalogue = modcomb.Catalogue[modification.Modification]

// Recorder receives build outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	ObserveBuild(profile string, took time.Duration, combinations, transitions int)
	ObserveFailure(profile string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveBuild(string, time.Duration, int, int) {}
func (nopRecorder) ObserveFailure(string)                        {}

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	recorder        Recorder
	log             *slog.Logger
	maxCombinations int
	concurrency     int
}

// WithRecorder sends build outcomes to r. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("catalogue: WithRecorder(nil)")
	}
	return func(c *buildConfig) { c.recorder = r }
}

// WithLogger logs through l instead of the default logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("catalogue: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.log = l }
}

// WithMaxCombinations forwards the per-catalogue size limit.
// Values below 1 keep modcomb.DefaultMaxCombinations.
func WithMaxCombinations(n int) Option {
	return func(c *buildConfig) {
		if n >= 1 {
			c.maxCombinations = n
		}
	}
}

// WithConcurrency caps parallel builds; 0 means GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *buildConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Registry maps profile names to their catalogues. It is read-only after
// Build returns and safe for concurrent use.
type Registry struct {
	names      []string
	catalogues map[string]*Catalogue
}

// Build constructs one catalogue per profile, in parallel. The first failure
// cancels the remaining builds and is returned wrapped with its profile name.
func Build(ctx context.Context, profiles []config.ProfileConfig, opts ...Option) (*Registry, error) {
	cfg := buildConfig{
		recorder:        nopRecorder{},
		log:             logger.WithComponent("catalogue"),
		maxCombinations: modcomb.DefaultMaxCombinations,
		concurrency:     runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	names := make([]string, len(profiles))
	for i, p := range profiles {
		if slices.Contains(names[:i], p.Name) {
			return nil, fmt.Errorf("catalogue: duplicate profile %q", p.Name)
		}
		names[i] = p.Name
	}

	built := make([]*Catalogue, len(profiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, p := range profiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cat, err := buildOne(p, cfg)
			if err != nil {
				return err
			}
			built[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Registry{
		names:      names,
		catalogues: make(map[string]*Catalogue, len(profiles)),
	}
	for i, name := range names {
		r.catalogues[name] = built[i]
	}
	return r, nil
}

func buildOne(p config.ProfileConfig, cfg buildConfig) (*Catalogue, error) {
	dynamic := p.Modifications.Dynamic()
	start := time.Now()
	cat, err := modcomb.New(dynamic, p.MaxModifications, modcomb.WithMaxCombinations(cfg.maxCombinations))
	took := time.Since(start)
	if err != nil {
		cfg.recorder.ObserveFailure(p.Name)
		cfg.log.Error("catalogue build failed", "profile", p.Name, "error", err)
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}

	cfg.recorder.ObserveBuild(p.Name, took, cat.Len(), cat.NumTransitions())
	cfg.log.Info("catalogue built",
		"profile", p.Name,
		"modifications", len(dynamic),
		"max_modifications", p.MaxModifications,
		"combinations", cat.Len(),
		"transitions", cat.NumTransitions(),
		"took", took,
	)
	return cat, nil
}

// Names returns profile names in configuration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Get returns the catalogue built for profile name.
func (r *Registry) Get(name string) (*Catalogue, error) {
	cat, ok := r.catalogues[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return cat, nil
}
