package pricing

import (
	"math"
	"math/rand"
	"testing"

	"renohub/internal/domain/entities"
)

func TestPerturbQuote_WithinFivePercent(t *testing.T) {
	asking := entities.ContractorPricing{Total: 5252, Subtotal: 4603, PlatformFee: 399, GST: 250}
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		quoted := PerturbQuote(asking, r)
		if quoted.Total < math.Floor(asking.Total*0.95) || quoted.Total > math.Ceil(asking.Total*1.05) {
			t.Fatalf("quote %v outside +/-5%% of asking %v", quoted.Total, asking.Total)
		}
		if quoted.Total != math.Round(quoted.Total) {
			t.Fatalf("quoted total %v is not a whole amount", quoted.Total)
		}
	}
}

func TestPerturbQuote_OnlyTotalChanges(t *testing.T) {
	asking := entities.ContractorPricing{
		MaterialCost: 1150,
		LaborCost:    3328,
		Subtotal:     4603,
		PlatformFee:  399,
		GST:          250,
		Total:        5252,
	}

	quoted := PerturbQuote(asking, rand.New(rand.NewSource(42)))

	if quoted.MaterialCost != asking.MaterialCost ||
		quoted.LaborCost != asking.LaborCost ||
		quoted.Subtotal != asking.Subtotal ||
		quoted.PlatformFee != asking.PlatformFee ||
		quoted.GST != asking.GST {
		t.Fatalf("expected only Total to change, got %+v", quoted)
	}
	if asking.Total != 5252 {
		t.Fatalf("asking price mutated to %v", asking.Total)
	}
}

func TestPerturbQuote_SeededIsReproducible(t *testing.T) {
	asking := entities.ContractorPricing{Total: 1000}

	a := PerturbQuote(asking, rand.New(rand.NewSource(7)))
	b := PerturbQuote(asking, rand.New(rand.NewSource(7)))
	if a.Total != b.Total {
		t.Fatalf("same seed produced %v and %v", a.Total, b.Total)
	}
}
