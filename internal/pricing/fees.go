package pricing

import (
	"math"

	"renohub/internal/domain/entities"
)

const (
	platformFeeRate      = 0.10
	platformFeeCap       = 399
	platformFeeThreshold = 30000
	largeProjectFeeRate  = 0.05
	gstRate              = 0.05
)

// PlatformFee is the customer-facing marketplace fee: 10% of the subtotal
// capped at $399 for projects up to $30k, 5% uncapped above that. The upper
// tier intentionally has no cap; see the pricing schedule.
func PlatformFee(subtotal float64) float64 {
	if subtotal > platformFeeThreshold {
		return math.Round(subtotal * largeProjectFeeRate)
	}
	return math.Min(subtotal*platformFeeRate, platformFeeCap)
}

// ContractorTotal resolves an estimate against one contractor's hourly rate:
// labor cost, platform fee and 5% GST on (subtotal + fee). Pure function;
// recomputed whenever the rate or the base estimate changes.
func ContractorTotal(e entities.Estimate, hourlyRate float64) entities.ContractorPricing {
	laborCost := e.LaborHours * hourlyRate
	subtotal := e.MaterialCost + laborCost + e.Transportation + e.Disposal
	platformFee := PlatformFee(subtotal)
	gst := (subtotal + platformFee) * gstRate

	return entities.ContractorPricing{
		MaterialCost:   e.MaterialCost,
		LaborCost:      math.Round(laborCost),
		LaborHours:     e.LaborHours,
		HourlyRate:     hourlyRate,
		Transportation: e.Transportation,
		Disposal:       e.Disposal,
		Subtotal:       math.Round(subtotal),
		PlatformFee:    math.Round(platformFee),
		GST:            math.Round(gst),
		Total:          math.Round(subtotal + platformFee + gst),
	}
}

// TechnicianPayout splits a project total between the platform and the
// technician. The commission rate here is the technician-side percentage and
// is independent of PlatformFee above; the two are configured separately and
// no reconciliation between them is defined.
func TechnicianPayout(projectTotal, commissionRate float64) entities.PayoutBreakdown {
	commission := math.Round(projectTotal * commissionRate / 100)
	payout := math.Round(projectTotal * (1 - commissionRate/100))
	return entities.PayoutBreakdown{
		PlatformCommission: commission,
		TechnicianPayout:   payout,
	}
}
