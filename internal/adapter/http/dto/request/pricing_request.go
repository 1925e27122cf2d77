package request

import "renohub/internal/domain/entities"

// ContractorTotalRequest resolves an estimate against one hourly rate.
type ContractorTotalRequest struct {
	Estimate   entities.Estimate `json:"estimate" binding:"required"`
	HourlyRate float64           `json:"hourly_rate" binding:"required,gte=0"`
}

// TechnicianPayoutRequest splits a project total by commission rate.
type TechnicianPayoutRequest struct {
	ProjectTotal   float64 `json:"project_total" binding:"required,gte=0"`
	CommissionRate float64 `json:"commission_rate" binding:"gte=0,lte=100"`
}
