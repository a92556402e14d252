// Package facts implements the fact provider on top of gofakeit.
package facts

import (
	"github.com/brianvoe/gofakeit/v7"

	corefacts "github.com/fleetlab/rentgen/core/facts"
)

// Provider mirrors the core provider interface.
type Provider = corefacts.Provider

// Faker generates synthetic values with gofakeit.
type Faker struct {
	f *gofakeit.Faker
}

// New returns a Faker. A non-zero seed makes the sequence of generated
// values deterministic.
func New(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed)}
}

func (g *Faker) PersonName() string { return g.f.Name() }

func (g *Faker) Email() string { return g.f.Email() }

func (g *Faker) Phone() string { return g.f.Phone() }

func (g *Faker) Sentence(n int) string { return g.f.Sentence(n) }

// Plate returns a Mercosul (LLLDLDD) or legacy (LLLDDDD) plate.
func (g *Faker) Plate() string {
	if g.f.Bool() {
		return g.f.Regex(`[A-Z]{3}[0-9][A-Z][0-9]{2}`)
	}
	return g.f.Regex(`[A-Z]{3}[0-9]{4}`)
}

func (g *Faker) NumericString(n int) string { return g.f.DigitN(uint(n)) }
