package generate

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetlab/rentgen/core/model"
	infralogger "github.com/fleetlab/rentgen/infra/logger"
	"github.com/fleetlab/rentgen/infra/store/memstore"
)

// seqFacts hands out strictly increasing values so every generated field is
// unique and format-valid.
type seqFacts struct{ n int }

func (s *seqFacts) next() int { s.n++; return s.n }

func (s *seqFacts) PersonName() string { return fmt.Sprintf("Person %d", s.next()) }
func (s *seqFacts) Email() string      { return fmt.Sprintf("person%d@example.com", s.next()) }
func (s *seqFacts) Phone() string      { return fmt.Sprintf("+55 11 9%04d-%04d", s.next()%10000, s.n%10000) }
func (s *seqFacts) Sentence(int) string {
	return "Scheduled inspection of the braking system."
}
func (s *seqFacts) Plate() string { return fmt.Sprintf("ABC%04d", s.next()%10000) }
func (s *seqFacts) NumericString(n int) string {
	return fmt.Sprintf("%0*d", n, s.next())
}

// fixedFacts always returns the same values, forcing uniqueness collisions.
type fixedFacts struct{}

func (fixedFacts) PersonName() string         { return "Same Person" }
func (fixedFacts) Email() string              { return "same@example.com" }
func (fixedFacts) Phone() string              { return "+55 11 90000-0000" }
func (fixedFacts) Sentence(int) string        { return "Same sentence." }
func (fixedFacts) Plate() string              { return "ABC1234" }
func (fixedFacts) NumericString(n int) string { return "00000000000"[:n] }

func testContext(t *testing.T, seed int64) *Context {
	t.Helper()
	return NewContext(
		memstore.New(),
		&seqFacts{},
		rand.New(rand.NewSource(seed)),
		infralogger.NopLogger{},
		model.NewDate(2026, 6, 15),
	)
}

func TestGenerateClientsUnique(t *testing.T) {
	gc := testContext(t, 1)
	ctx := context.Background()

	clients, err := GenerateClients(ctx, gc, 10)
	require.NoError(t, err)
	require.Len(t, clients, 10)

	emails := make(map[string]bool)
	licenses := make(map[string]bool)
	for _, c := range clients {
		assert.NotZero(t, c.ID)
		assert.False(t, emails[c.Email], "duplicate email %s", c.Email)
		assert.False(t, licenses[c.LicenseNumber], "duplicate license %s", c.LicenseNumber)
		assert.True(t, model.ValidLicense(c.LicenseNumber))
		assert.True(t, model.ValidEmail(c.Email))
		emails[c.Email] = true
		licenses[c.LicenseNumber] = true
	}
}

func TestGenerateClientsExhaustion(t *testing.T) {
	gc := testContext(t, 1)
	gc.Facts = fixedFacts{}
	ctx := context.Background()

	_, err := GenerateClients(ctx, gc, 2)
	var exhausted *ExhaustionError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "client", exhausted.Entity)
	assert.Equal(t, maxUniqueAttempts, exhausted.Attempts)
}

func TestGenerateVehiclesUniquePlates(t *testing.T) {
	gc := testContext(t, 2)
	ctx := context.Background()

	vehicles, err := GenerateVehicles(ctx, gc, 8)
	require.NoError(t, err)
	require.Len(t, vehicles, 8)

	plates := make(map[string]bool)
	for _, v := range vehicles {
		assert.False(t, plates[v.Plate], "duplicate plate %s", v.Plate)
		assert.True(t, model.ValidPlate(v.Plate), "invalid plate %s", v.Plate)
		assert.Equal(t, model.VehicleAvailable, v.Status)
		assert.Contains(t, []model.Tier{model.TierBasic, model.TierAdvanced}, v.Tier)
		plates[v.Plate] = true
	}
}

func TestGenerateVehiclesExhaustion(t *testing.T) {
	gc := testContext(t, 2)
	gc.Facts = fixedFacts{}
	ctx := context.Background()

	_, err := GenerateVehicles(ctx, gc, 2)
	var exhausted *ExhaustionError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "vehicle", exhausted.Entity)
}

func TestGenerateMechanicsSpecialties(t *testing.T) {
	gc := testContext(t, 3)
	ctx := context.Background()

	mechanics, err := GenerateMechanics(ctx, gc, 5)
	require.NoError(t, err)
	require.Len(t, mechanics, 5)
	for _, m := range mechanics {
		assert.Contains(t, specialties, m.Specialty)
	}
}

func TestSeedCatalogIdempotent(t *testing.T) {
	gc := testContext(t, 4)
	ctx := context.Background()

	require.NoError(t, SeedCatalog(ctx, gc))
	require.NoError(t, SeedCatalog(ctx, gc))

	insurances, err := gc.Store.Select(ctx, model.TableInsurances, nil, nil)
	require.NoError(t, err)
	assert.Len(t, insurances, 1)

	services, err := gc.Store.Select(ctx, model.TableServices, nil, nil)
	require.NoError(t, err)
	assert.Len(t, services, len(defaultServices))
}

func TestCountsForLevel(t *testing.T) {
	small, err := CountsForLevel(1)
	require.NoError(t, err)
	assert.Equal(t, Counts{Clients: 10, Vehicles: 5, Mechanics: 5, Rentals: 2, Maintenances: 1}, small)

	large, err := CountsForLevel(5)
	require.NoError(t, err)
	assert.Equal(t, Counts{Clients: 50, Vehicles: 30, Mechanics: 5, Rentals: 20, Maintenances: 10}, large)

	_, err = CountsForLevel(0)
	assert.Error(t, err)
	_, err = CountsForLevel(6)
	assert.Error(t, err)
}
