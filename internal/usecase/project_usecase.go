package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"renohub/internal/domain/catalog"
	"renohub/internal/domain/entities"
	"renohub/internal/pricing"
	"renohub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProjectID    = errors.New("invalid project id")
	ErrProjectNotFinalized = errors.New("project has no finalized contractor")
)

// ValidationError carries the form-layer issues that blocked a submission.
type ValidationError struct {
	Issues []pricing.ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Message
	}
	return fmt.Sprintf("invalid form data: %s", strings.Join(parts, "; "))
}

// CreateProjectInput is the submission payload from the form flow.
type CreateProjectInput struct {
	TemplateID string
	FormData   pricing.FormData
	Files      []entities.FileMeta
	UserID     string
}

// IProjectUseCase exposes the project-record lifecycle.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (entities.ProjectRecord, error)
	GetByID(ctx context.Context, id string) (entities.ProjectRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entities.ProjectRecord, error)
	ConfirmSchedule(ctx context.Context, projectID, scheduledDate string) (entities.ProjectRecord, error)
}

// ProjectUseCase owns the persisted project lifecycle:
// pending -> contractor-selected -> confirmed.
//
// The repository it talks to is expected to handle primary-store failures
// itself (the failover wrapper), so a submission never fails from the user's
// point of view because the remote store is down.
type ProjectUseCase struct {
	repo interfaces.IProjectRepository
	sink interfaces.IActivitySink
	log  *zap.Logger
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, sink interfaces.IActivitySink, log *zap.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, sink: sink, log: log}
}

// CreateProject validates the submission against the template schema,
// recomputes the estimate server-side (the client's copy is advisory), and
// persists the record with status pending.
func (u *ProjectUseCase) CreateProject(ctx context.Context, in CreateProjectInput) (entities.ProjectRecord, error) {
	tpl, ok := catalog.Get(in.TemplateID)
	if !ok {
		return entities.ProjectRecord{}, ErrTemplateNotFound
	}

	if issues := pricing.ValidateForm(tpl, in.FormData); len(issues) > 0 {
		return entities.ProjectRecord{}, &ValidationError{Issues: issues}
	}

	now := time.Now().UTC()
	record := entities.ProjectRecord{
		ID:         uuid.NewString(),
		TemplateID: in.TemplateID,
		FormData:   in.FormData,
		Files:      in.Files,
		Estimate:   pricing.Calculate(tpl, in.FormData),
		UserID:     in.UserID,
		Status:     entities.ProjectStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, record)
	if err != nil {
		return entities.ProjectRecord{}, err
	}

	u.sink.Emit(ctx, NewActivityEvent(in.UserID, entities.ActionProjectCreated, map[string]any{
		"projectId":  created.ID,
		"templateId": created.TemplateID,
	}))

	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.ProjectRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectRecord{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	if p.ID == "" {
		return entities.ProjectRecord{}, ErrProjectNotFound
	}
	return p, nil
}

// ListByUser returns the user's projects, newest first. An empty result is an
// empty slice, never nil.
func (u *ProjectUseCase) ListByUser(ctx context.Context, userID string) ([]entities.ProjectRecord, error) {
	projects, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []entities.ProjectRecord{}
	}
	return projects, nil
}

// ConfirmSchedule moves a contractor-selected project to confirmed.
func (u *ProjectUseCase) ConfirmSchedule(ctx context.Context, projectID, scheduledDate string) (entities.ProjectRecord, error) {
	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	if p.Status != entities.ProjectStatusContractorSelected {
		return entities.ProjectRecord{}, ErrProjectNotFinalized
	}

	p.Status = entities.ProjectStatusConfirmed
	p.ScheduledDate = scheduledDate
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.ProjectRecord{}, err
	}

	u.sink.Emit(ctx, NewActivityEvent(p.UserID, entities.ActionScheduleConfirmed, map[string]any{
		"projectId":     updated.ID,
		"scheduledDate": scheduledDate,
	}))

	return updated, nil
}
