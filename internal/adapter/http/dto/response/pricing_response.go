package response

import "renohub/internal/domain/entities"

// ContractorPricingResponse is a per-contractor resolved total.
type ContractorPricingResponse struct {
	MaterialCost   float64 `json:"material_cost"`
	LaborCost      float64 `json:"labor_cost"`
	LaborHours     float64 `json:"labor_hours"`
	HourlyRate     float64 `json:"hourly_rate"`
	Transportation float64 `json:"transportation"`
	Disposal       float64 `json:"disposal"`
	Subtotal       float64 `json:"subtotal"`
	PlatformFee    float64 `json:"platform_fee"`
	GST            float64 `json:"gst"`
	Total          float64 `json:"total"`
}

func FromContractorPricing(p entities.ContractorPricing) ContractorPricingResponse {
	return ContractorPricingResponse{
		MaterialCost:   p.MaterialCost,
		LaborCost:      p.LaborCost,
		LaborHours:     p.LaborHours,
		HourlyRate:     p.HourlyRate,
		Transportation: p.Transportation,
		Disposal:       p.Disposal,
		Subtotal:       p.Subtotal,
		PlatformFee:    p.PlatformFee,
		GST:            p.GST,
		Total:          p.Total,
	}
}

// PayoutResponse splits a project total between platform and technician.
type PayoutResponse struct {
	PlatformCommission float64 `json:"platform_commission"`
	TechnicianPayout   float64 `json:"technician_payout"`
}

func FromPayout(p entities.PayoutBreakdown) PayoutResponse {
	return PayoutResponse{
		PlatformCommission: p.PlatformCommission,
		TechnicianPayout:   p.TechnicianPayout,
	}
}

// PlatformFeeResponse answers the fee lookup endpoint.
type PlatformFeeResponse struct {
	Subtotal    float64 `json:"subtotal"`
	PlatformFee float64 `json:"platform_fee"`
}
