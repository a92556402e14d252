// Package app wires the store adapter, fact provider and logger into
// runnable generator and auditor services.
package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/fleetlab/rentgen/config"
	"github.com/fleetlab/rentgen/core/audit"
	"github.com/fleetlab/rentgen/core/generate"
	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
	infrafacts "github.com/fleetlab/rentgen/infra/facts"
	"github.com/fleetlab/rentgen/infra/logger"
	"github.com/fleetlab/rentgen/infra/store/postgres"
)

// Service holds the wired collaborators of one tool invocation.
type Service struct {
	Store store.Store
	Today model.Date

	cfg *config.Config
}

// New connects to the store and resolves the reference day.
func New(cfg *config.Config) (*Service, error) {
	st, err := postgres.Open(cfg.Store.URL, cfg.Store.Key)
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}
	return &Service{
		Store: st,
		Today: cfg.Generate.ReferenceDay(),
		cfg:   cfg,
	}, nil
}

// Close releases the store connection.
func (s *Service) Close() error { return s.Store.Close() }

// GenerationContext builds a generation context from the configured seed. A
// zero seed yields a different dataset per run.
func (s *Service) GenerationContext() *generate.Context {
	seed := s.cfg.Generate.Seed
	facts := infrafacts.New(uint64(seed))
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return generate.NewContext(s.Store, facts, rng, logger.New("generate"), s.Today)
}

// Audit runs the consistency battery and returns its results.
func (s *Service) Audit(ctx context.Context) []audit.Result {
	return audit.New(s.Store, logger.New("audit"), s.Today).Run(ctx)
}
