package reconciliation

import (
	"math"

	"inventory-manager/feature/reconciliation/models"
)

// Outcome classifies a discrepancy.
type Outcome string

const (
	OutcomeMatch Outcome = "match"
	OutcomeGain  Outcome = "gain"
	OutcomeLoss  Outcome = "loss"
)

// Discrepancy returns the signed difference between the counted and the
// expected quantity.
func Discrepancy(expected, actual float64) float64 {
	return actual - expected
}

// Classify maps a discrepancy onto match, gain or loss.
func Classify(discrepancy float64) Outcome {
	switch {
	case discrepancy > 0:
		return OutcomeGain
	case discrepancy < 0:
		return OutcomeLoss
	default:
		return OutcomeMatch
	}
}

// AdjustmentCents returns the signed monetary impact of a discrepancy in
// integer minor-currency units. Positive means inventory gained value,
// negative means loss. A zero unit cost means the cost is unknown and
// the adjustment carries no value.
//
// Fractional quantities are rounded to whole cents here, at the item
// level, so that aggregates can be summed without accumulating
// floating-point drift.
func AdjustmentCents(discrepancy float64, unitCostCents int64) int64 {
	if unitCostCents == 0 {
		return 0
	}
	return int64(math.Round(discrepancy * float64(unitCostCents)))
}

// TotalAdjustmentCents recomputes the aggregate adjustment value from
// current item state. It is deliberately a full recomputation; the total
// is never maintained incrementally.
func TotalAdjustmentCents(items []models.ReconciliationItem) int64 {
	var total int64
	for _, it := range items {
		total += AdjustmentCents(Discrepancy(it.ExpectedQuantity, it.ActualQuantity), it.UnitCostCents)
	}
	return total
}
