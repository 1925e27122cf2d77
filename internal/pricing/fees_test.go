package pricing

import (
	"testing"

	"renohub/internal/domain/entities"
)

func TestPlatformFee(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"ten percent below cap", 2000, 200},
		{"capped at 399", 5000, 399},
		{"cap boundary", 3990, 399},
		{"at threshold still capped", 30000, 399},
		{"above threshold five percent uncapped", 40000, 2000},
		{"just above threshold", 30000.01, 1500},
		{"zero subtotal", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlatformFee(tc.subtotal); !nearlyEqual(got, tc.want) {
				t.Fatalf("PlatformFee(%v): expected %v, got %v", tc.subtotal, tc.want, got)
			}
		})
	}
}

func TestContractorTotal(t *testing.T) {
	estimate := entities.Estimate{
		MaterialCost:   1150,
		LaborHours:     51.2,
		Transportation: 50,
		Disposal:       75,
	}

	got := ContractorTotal(estimate, 65)

	// labor 51.2 * 65 = 3328, subtotal 4603, fee capped at 399,
	// gst 5% of 5002 = 250.1 -> 250
	if !nearlyEqual(got.LaborCost, 3328) {
		t.Fatalf("expected labor cost 3328, got %v", got.LaborCost)
	}
	if !nearlyEqual(got.Subtotal, 4603) {
		t.Fatalf("expected subtotal 4603, got %v", got.Subtotal)
	}
	if !nearlyEqual(got.PlatformFee, 399) {
		t.Fatalf("expected platform fee 399, got %v", got.PlatformFee)
	}
	if !nearlyEqual(got.GST, 250) {
		t.Fatalf("expected GST 250, got %v", got.GST)
	}
	if !nearlyEqual(got.Total, 5252) {
		t.Fatalf("expected total 5252, got %v", got.Total)
	}
	if got.Total < got.Subtotal {
		t.Fatalf("total %v must never be below subtotal %v", got.Total, got.Subtotal)
	}
}

func TestContractorTotal_RateMonotonic(t *testing.T) {
	estimate := entities.Estimate{MaterialCost: 500, LaborHours: 10, Transportation: 50, Disposal: 25}

	low := ContractorTotal(estimate, 55)
	high := ContractorTotal(estimate, 75)
	if high.Total <= low.Total {
		t.Fatalf("expected a higher rate to cost more: %v vs %v", high.Total, low.Total)
	}
}

func TestTechnicianPayout(t *testing.T) {
	got := TechnicianPayout(1000, 25)

	if !nearlyEqual(got.PlatformCommission, 250) {
		t.Fatalf("expected commission 250, got %v", got.PlatformCommission)
	}
	if !nearlyEqual(got.TechnicianPayout, 750) {
		t.Fatalf("expected payout 750, got %v", got.TechnicianPayout)
	}
}

func TestTechnicianPayout_SplitsAddUp(t *testing.T) {
	for _, total := range []float64{0, 99.5, 1234, 50000} {
		got := TechnicianPayout(total, 20)
		sum := got.PlatformCommission + got.TechnicianPayout
		if diff := sum - total; diff > 1 || diff < -1 {
			t.Fatalf("split of %v drifted by %v", total, diff)
		}
	}
}
