// Package generate produces the synthetic rental dataset: clients, vehicles
// and mechanics first, then rentals and maintenances scheduled over
// conflict-free date ranges.
package generate

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/fleetlab/rentgen/core/facts"
	"github.com/fleetlab/rentgen/core/logger"
	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

// Retries allowed per generated record before giving up on uniqueness.
const maxUniqueAttempts = 100

// Context bundles everything a generation run needs. It is built once per
// run and threaded through the generators explicitly.
type Context struct {
	Store store.Store
	Facts facts.Provider
	Rand  *rand.Rand
	Log   logger.Logger
	Today model.Date
	RunID string
}

// NewContext assembles a generation context with a fresh run id.
func NewContext(st store.Store, fp facts.Provider, rng *rand.Rand, log logger.Logger, today model.Date) *Context {
	return &Context{
		Store: st,
		Facts: fp,
		Rand:  rng,
		Log:   log,
		Today: today,
		RunID: uuid.NewString(),
	}
}
