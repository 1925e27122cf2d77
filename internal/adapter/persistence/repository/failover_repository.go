package repository

import (
	"context"

	"renohub/internal/domain/entities"
	"renohub/internal/infrastructure/metrics"
	"renohub/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// FailoverProjectRepository tries the primary store first and falls back to
// the local store when the primary is unavailable. Store failures are an
// operational concern, never a user-facing one: a submission must succeed
// even with the remote store down.
//
// Point reads check the primary first and then the local store; listings
// merge both, because a record lives wherever its create landed.
type FailoverProjectRepository struct {
	primary interfaces.IProjectRepository
	local   interfaces.IProjectRepository
	log     *zap.Logger
}

var _ interfaces.IProjectRepository = (*FailoverProjectRepository)(nil)

func NewFailoverProjectRepository(primary, local interfaces.IProjectRepository, log *zap.Logger) *FailoverProjectRepository {
	return &FailoverProjectRepository{primary: primary, local: local, log: log}
}

func (r *FailoverProjectRepository) Create(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error) {
	created, err := r.primary.Create(ctx, p)
	if err == nil {
		return created, nil
	}

	r.log.Warn("primary project store create failed, using local store",
		zap.String("project_id", p.ID), zap.Error(err))
	metrics.ProjectStoreFallbacks.Inc()
	return r.local.Create(ctx, p)
}

func (r *FailoverProjectRepository) GetByID(ctx context.Context, id string) (entities.ProjectRecord, error) {
	p, err := r.primary.GetByID(ctx, id)
	if err == nil && p.ID != "" {
		return p, nil
	}
	if err != nil {
		r.log.Warn("primary project store read failed, trying local store",
			zap.String("project_id", id), zap.Error(err))
		metrics.ProjectStoreFallbacks.Inc()
	}
	return r.local.GetByID(ctx, id)
}

func (r *FailoverProjectRepository) Update(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error) {
	updated, err := r.primary.Update(ctx, p)
	if err == nil && updated.ID != "" {
		return updated, nil
	}
	if err != nil {
		r.log.Warn("primary project store update failed, using local store",
			zap.String("project_id", p.ID), zap.Error(err))
		metrics.ProjectStoreFallbacks.Inc()
	}
	return r.local.Update(ctx, p)
}

// FindByUser returns whatever can be listed: primary results when the
// primary answers, local results plus a warning otherwise. Never nil.
func (r *FailoverProjectRepository) FindByUser(ctx context.Context, userID string) ([]entities.ProjectRecord, error) {
	projects, err := r.primary.FindByUser(ctx, userID)
	if err == nil {
		local, lerr := r.local.FindByUser(ctx, userID)
		if lerr == nil {
			projects = append(projects, local...)
		}
		return projects, nil
	}

	r.log.Warn("primary project store list failed, using local store",
		zap.String("user_id", userID), zap.Error(err))
	metrics.ProjectStoreFallbacks.Inc()

	local, lerr := r.local.FindByUser(ctx, userID)
	if lerr != nil {
		r.log.Error("local project store list failed", zap.Error(lerr))
		return []entities.ProjectRecord{}, nil
	}
	return local, nil
}
