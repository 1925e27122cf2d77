package response

import (
	"time"

	"renohub/internal/domain/entities"
)

// ProjectResponse is the wire shape of a persisted project record.
type ProjectResponse struct {
	ID                 string               `json:"id"`
	TemplateID         string               `json:"template_id"`
	FormData           map[string]any       `json:"form_data"`
	Files              []entities.FileMeta  `json:"files,omitempty"`
	Estimate           EstimateResponse     `json:"estimate"`
	UserID             string               `json:"user_id"`
	Status             string               `json:"status"`
	SelectedContractor *entities.Contractor `json:"selected_contractor,omitempty"`
	FinalQuote         *entities.Quote      `json:"final_quote,omitempty"`
	ScheduledDate      string               `json:"scheduled_date,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

func FromProject(p entities.ProjectRecord) ProjectResponse {
	return ProjectResponse{
		ID:                 p.ID,
		TemplateID:         p.TemplateID,
		FormData:           p.FormData,
		Files:              p.Files,
		Estimate:           FromEstimate(p.Estimate),
		UserID:             p.UserID,
		Status:             string(p.Status),
		SelectedContractor: p.SelectedContractor,
		FinalQuote:         p.FinalQuote,
		ScheduledDate:      p.ScheduledDate,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProjects(projects []entities.ProjectRecord) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
