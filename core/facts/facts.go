// Package facts defines the random-fact source entity generators draw from.
package facts

// Provider generates synthetic field values. Implementations may be seeded
// for reproducible runs.
type Provider interface {
	PersonName() string
	Email() string
	Phone() string
	// Sentence returns a short sentence of roughly n words.
	Sentence(n int) string
	// Plate returns a vehicle plate in one of the accepted formats.
	Plate() string
	// NumericString returns a string of exactly n digits.
	NumericString(n int) string
}
