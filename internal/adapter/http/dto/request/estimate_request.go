package request

import "renohub/internal/pricing"

// CalculateEstimateRequest is the payload of POST /v1/estimates/calculate.
// FormData is intentionally loose: the calculator tolerates partial input
// while a form is still being filled in.
type CalculateEstimateRequest struct {
	TemplateID string         `json:"template_id" binding:"required"`
	FormData   map[string]any `json:"form_data"`
	UserID     string         `json:"user_id"`
}

func (r CalculateEstimateRequest) Form() pricing.FormData {
	if r.FormData == nil {
		return pricing.FormData{}
	}
	return pricing.FormData(r.FormData)
}
