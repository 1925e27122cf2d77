package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"renohub/internal/domain/entities"
	"renohub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var errPrimaryDown = errors.New("primary store unavailable")

func TestFailoverRepository_Create(t *testing.T) {
	t.Run("primary healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mocks.NewMockIProjectRepository(ctrl)
		local := mocks.NewMockIProjectRepository(ctrl)

		p := entities.ProjectRecord{ID: "p-1"}
		primary.EXPECT().Create(gomock.Any(), p).Return(p, nil)

		repo := NewFailoverProjectRepository(primary, local, zap.NewNop())
		got, err := repo.Create(context.Background(), p)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "p-1" {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("primary down falls back to local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mocks.NewMockIProjectRepository(ctrl)
		local := mocks.NewMockIProjectRepository(ctrl)

		p := entities.ProjectRecord{ID: "p-1"}
		primary.EXPECT().Create(gomock.Any(), p).Return(entities.ProjectRecord{}, errPrimaryDown)
		local.EXPECT().Create(gomock.Any(), p).Return(p, nil)

		repo := NewFailoverProjectRepository(primary, local, zap.NewNop())
		got, err := repo.Create(context.Background(), p)
		if err != nil {
			t.Fatalf("expected the local store to save, got %v", err)
		}
		if got.ID != "p-1" {
			t.Fatalf("unexpected record: %+v", got)
		}
	})
}

func TestFailoverRepository_GetByID(t *testing.T) {
	t.Run("miss on primary checks local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mocks.NewMockIProjectRepository(ctrl)
		local := mocks.NewMockIProjectRepository(ctrl)

		primary.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.ProjectRecord{}, nil)
		local.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.ProjectRecord{ID: "p-1"}, nil)

		repo := NewFailoverProjectRepository(primary, local, zap.NewNop())
		got, err := repo.GetByID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "p-1" {
			t.Fatalf("expected the locally stored record, got %+v", got)
		}
	})

	t.Run("primary error checks local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mocks.NewMockIProjectRepository(ctrl)
		local := mocks.NewMockIProjectRepository(ctrl)

		primary.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.ProjectRecord{}, errPrimaryDown)
		local.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.ProjectRecord{ID: "p-1"}, nil)

		repo := NewFailoverProjectRepository(primary, local, zap.NewNop())
		got, err := repo.GetByID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "p-1" {
			t.Fatalf("expected the locally stored record, got %+v", got)
		}
	})
}

func TestFailoverRepository_FindByUser(t *testing.T) {
	record := func(id string, created time.Time) entities.ProjectRecord {
		return entities.ProjectRecord{ID: id, UserID: "user-1", CreatedAt: created}
	}

	t.Run("merges primary and local results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mocks.NewMockIProjectRepository(ctrl)
		local := mocks.NewMockIProjectRepository(ctrl)

		now := time.Now().UTC()
		primary.EXPECT().FindByUser(gomock.Any(), "user-1").
			Return([]entities.ProjectRecord{record("p-1", now)}, nil)
		local.EXPECT().FindByUser(gomock.Any(), "user-1").
			Return([]entities.ProjectRecord{record("p-2", now)}, nil)

		repo := NewFailoverProjectRepository(primary, local, zap.NewNop())
		got, err := repo.FindByUser(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("both stores down still yields an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		primary := mocks.NewMockIProjectRepository(ctrl)
		local := mocks.NewMockIProjectRepository(ctrl)

		primary.EXPECT().FindByUser(gomock.Any(), "user-1").Return(nil, errPrimaryDown)
		local.EXPECT().FindByUser(gomock.Any(), "user-1").Return(nil, errors.New("disk full"))

		repo := NewFailoverProjectRepository(primary, local, zap.NewNop())
		got, err := repo.FindByUser(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("listing must not surface store failures, got %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected an empty slice, got %v", got)
		}
	})
}
