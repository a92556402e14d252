package generate

import (
	"math"

	"github.com/fleetlab/rentgen/core/model"
)

// RentalBasePrice is the tier daily rate times the rental duration in days,
// plus the tier-matched insurance flat fee. Service lines are added on top.
func RentalBasePrice(tier model.Tier, days int, ins model.Insurance) float64 {
	return model.DailyRate(tier)*float64(days) + ins.FeeFor(tier)
}

// ServiceLinePrice is the service standard price times the quantity. No
// perturbation is applied, so the auditor can reconcile totals exactly.
func ServiceLinePrice(s model.Service, quantity int) float64 {
	return round2(s.StandardPrice * float64(quantity))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
