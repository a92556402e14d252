package generate

import (
	"errors"
	"fmt"
)

// ExhaustionError is returned when the uniqueness retry cap is exceeded
// while generating an entity. Rows already inserted stand.
type ExhaustionError struct {
	Entity   string
	Attempts int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("could not generate a unique %s after %d attempts", e.Entity, e.Attempts)
}

// Resource shortages during scheduling. A missing vehicle stops the whole
// batch; a missing client only skips the current iteration.
var (
	ErrNoVehicleFree = errors.New("no conflict-free vehicle for the planned period")
	ErrNoClientFree  = errors.New("no conflict-free client for the planned period")
)
