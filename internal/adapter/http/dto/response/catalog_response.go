package response

import "renohub/internal/domain/entities"

// TemplateResponse exposes a template's identity and form schema. Pricing
// tables stay server-side; clients only ever see computed estimates.
type TemplateResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	EstimatedTime string               `json:"estimated_time"`
	Complexity    string               `json:"complexity"`
	Icon          string               `json:"icon"`
	Fields        []entities.FieldSpec `json:"fields"`
}

func FromTemplate(t entities.Template) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		EstimatedTime: t.EstimatedTime,
		Complexity:    string(t.Complexity),
		Icon:          t.Icon,
		Fields:        t.Fields,
	}
}

func FromTemplates(templates []entities.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, FromTemplate(t))
	}
	return out
}
