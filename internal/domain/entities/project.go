package entities

import "time"

// ProjectStatus represents the lifecycle of a submitted project.
//
// Domain notes:
//   - created on submission (pending)
//   - contractor finalization attaches SelectedContractor + FinalQuote
//   - scheduling confirmation moves it to confirmed
//   - in-progress/completed are carried for technician dashboards
type ProjectStatus string

const (
	ProjectStatusPending            ProjectStatus = "pending"
	ProjectStatusContractorSelected ProjectStatus = "contractor-selected"
	ProjectStatusConfirmed          ProjectStatus = "confirmed"
	ProjectStatusInProgress         ProjectStatus = "in-progress"
	ProjectStatusCompleted          ProjectStatus = "completed"
)

// FileMeta is the persisted metadata of an uploaded file. Raw content never
// reaches the record store or the activity sink.
type FileMeta struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	FieldID string `json:"fieldId"`
}

// ProjectRecord is the persisted submission: template, raw form data, file
// metadata, the computed estimate and the selection outcome.
type ProjectRecord struct {
	ID                 string         `json:"id"`
	TemplateID         string         `json:"templateId"`
	FormData           map[string]any `json:"formData"`
	Files              []FileMeta     `json:"files,omitempty"`
	Estimate           Estimate       `json:"estimate"`
	UserID             string         `json:"userId"`
	Status             ProjectStatus  `json:"status"`
	SelectedContractor *Contractor    `json:"selectedContractor,omitempty"`
	FinalQuote         *Quote         `json:"finalQuote,omitempty"`
	ScheduledDate      string         `json:"scheduledDate,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
