package interfaces

import (
	"context"

	"renohub/internal/domain/entities"
)

// IProjectRepository abstracts persistence for submitted projects.
//
// The core consumes the store through this contract only:
//   - create on submission (status=pending)
//   - update on contractor finalization and scheduling confirmation
//   - query by user for the dashboard
//
// FindByUser returns an empty slice, never nil, when nothing is found.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error)
	GetByID(ctx context.Context, id string) (entities.ProjectRecord, error)
	Update(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error)
	FindByUser(ctx context.Context, userID string) ([]entities.ProjectRecord, error)
}
