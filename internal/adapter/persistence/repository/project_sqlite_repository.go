package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"renohub/internal/domain/entities"
	"renohub/internal/usecase/interfaces"
)

// ProjectSQLiteRepository is the local-only fallback store. It guarantees
// create/update and query-by-user even when the remote store is unreachable,
// so a submission always succeeds from the user's point of view.
type ProjectSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IProjectRepository = (*ProjectSQLiteRepository)(nil)

const projectsSchema = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	status     TEXT NOT NULL,
	document   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_user_id ON projects(user_id);
`

func NewProjectSQLiteRepository(db *sql.DB) (*ProjectSQLiteRepository, error) {
	if _, err := db.Exec(projectsSchema); err != nil {
		return nil, fmt.Errorf("create projects schema: %w", err)
	}
	return &ProjectSQLiteRepository{db: db}, nil
}

func (r *ProjectSQLiteRepository) Create(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, status, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, string(p.Status), string(doc),
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
		p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return entities.ProjectRecord{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (r *ProjectSQLiteRepository) GetByID(ctx context.Context, id string) (entities.ProjectRecord, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM projects WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ProjectRecord{}, nil
	}
	if err != nil {
		return entities.ProjectRecord{}, fmt.Errorf("select project: %w", err)
	}

	var p entities.ProjectRecord
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return entities.ProjectRecord{}, err
	}
	return p, nil
}

func (r *ProjectSQLiteRepository) Update(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET user_id = ?, status = ?, document = ?, updated_at = ? WHERE id = ?`,
		p.UserID, string(p.Status), string(doc),
		p.UpdatedAt.UTC().Format(time.RFC3339Nano), p.ID,
	)
	if err != nil {
		return entities.ProjectRecord{}, fmt.Errorf("update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ProjectRecord{}, nil
	}
	return p, nil
}

func (r *ProjectSQLiteRepository) FindByUser(ctx context.Context, userID string) ([]entities.ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT document FROM projects WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select projects by user: %w", err)
	}
	defer rows.Close()

	projects := []entities.ProjectRecord{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var p entities.ProjectRecord
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
