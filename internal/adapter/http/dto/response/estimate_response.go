package response

import "renohub/internal/domain/entities"

// EstimateResponse is the wire shape of a calculated estimate.
type EstimateResponse struct {
	TemplateID     string                      `json:"template_id"`
	Materials      []entities.MaterialLineItem `json:"materials"`
	MaterialCost   float64                     `json:"material_cost"`
	LaborHours     float64                     `json:"labor_hours"`
	Transportation float64                     `json:"transportation"`
	Disposal       float64                     `json:"disposal"`
	Complexity     string                      `json:"complexity"`
	EstimatedTime  string                      `json:"estimated_time"`
	Breakdown      map[string]float64          `json:"breakdown"`
	Total          float64                     `json:"total"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		TemplateID:     e.TemplateID,
		Materials:      e.Materials,
		MaterialCost:   e.MaterialCost,
		LaborHours:     e.LaborHours,
		Transportation: e.Transportation,
		Disposal:       e.Disposal,
		Complexity:     string(e.Complexity),
		EstimatedTime:  e.EstimatedTime,
		Breakdown:      e.Breakdown,
		Total:          e.Total,
	}
}
