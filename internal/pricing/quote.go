package pricing

import (
	"math"
	"math/rand"

	"renohub/internal/domain/entities"
)

// PerturbQuote simulates a contractor's final offer: the asking price with a
// uniform adjustment of up to +/-5% applied to Total only. All other fields
// are copied unchanged. The random source is injected so tests can fix the
// seed and assert exact values.
func PerturbQuote(asking entities.ContractorPricing, r *rand.Rand) entities.ContractorPricing {
	variation := (r.Float64() - 0.5) * 0.1
	quoted := asking
	quoted.Total = math.Round(asking.Total * (1 + variation))
	return quoted
}
