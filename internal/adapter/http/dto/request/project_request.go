package request

import (
	"renohub/internal/domain/entities"
	"renohub/internal/pricing"
	"renohub/internal/usecase"
)

// FileMetaRequest is the client-side metadata of an uploaded file. Content
// is uploaded elsewhere; only metadata reaches the record store.
type FileMetaRequest struct {
	Name    string `json:"name" binding:"required"`
	Size    int64  `json:"size"`
	FieldID string `json:"field_id"`
}

// CreateProjectRequest is the payload of POST /v1/projects.
type CreateProjectRequest struct {
	TemplateID string            `json:"template_id" binding:"required"`
	FormData   map[string]any    `json:"form_data" binding:"required"`
	Files      []FileMetaRequest `json:"files"`
	UserID     string            `json:"user_id"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	files := make([]entities.FileMeta, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, entities.FileMeta{Name: f.Name, Size: f.Size, FieldID: f.FieldID})
	}
	return usecase.CreateProjectInput{
		TemplateID: r.TemplateID,
		FormData:   pricing.FormData(r.FormData),
		Files:      files,
		UserID:     r.UserID,
	}
}

// ConfirmScheduleRequest is the payload of POST /v1/projects/:id/confirm.
type ConfirmScheduleRequest struct {
	ScheduledDate string `json:"scheduled_date" binding:"required"`
}
