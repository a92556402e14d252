package schedule

import (
	"math/rand"

	"github.com/fleetlab/rentgen/core/model"
)

// Planning window around the reference day.
const (
	lookbackDays = 90
	horizonDays  = 60
)

// Plan produces a (status, start, end) triple consistent with today.
//
// The start is drawn uniformly from [today-90d, today]. A Concluded record
// must fit entirely in the past (end in [start+1, today-1]); when the start
// is too recent for that window to exist, the record falls back to Active.
// An Active record ends in [max(today, start+1), today+60d]. A degenerate
// window always resolves to a one-day duration rather than failing, so
// planning is total.
func Plan(today model.Date, target model.RecordStatus, rng *rand.Rand) (model.RecordStatus, model.Date, model.Date) {
	start := today.AddDays(-rng.Intn(lookbackDays + 1))

	if target == model.StatusConcluded {
		minEnd := start.AddDays(1)
		lastEnd := today.AddDays(-1)
		if width := minEnd.DaysUntil(lastEnd); width >= 0 {
			end := minEnd.AddDays(rng.Intn(width + 1))
			return model.StatusConcluded, start, end
		}
		// Too recent to have concluded already; the record is still ongoing.
	}

	minEnd := today
	if s := start.AddDays(1); s.After(minEnd.Time) {
		minEnd = s
	}
	width := minEnd.DaysUntil(today.AddDays(horizonDays))
	if width < 0 {
		return model.StatusActive, start, start.AddDays(1)
	}
	end := minEnd.AddDays(rng.Intn(width + 1))
	return model.StatusActive, start, end
}
