// Package tasks provides the PostgreSQL-backed repository for task rows.
// Every query is owner-scoped or id-targeted and excludes soft-deleted rows.
package tasks

import (
	"context"
	"fmt"

	"todoapp/internal/dbx"
	"todoapp/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns the owner's active tasks ordered by id.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Task, error) {
	query :=
		`SELECT id, title, is_done, owner_id, created_at FROM tasks
		 WHERE owner_id = $1 AND deleted_at IS NULL
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(&item.ID, &item.Title, &item.IsDone, &item.OwnerID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new task row and fills in the storage-assigned id and
// creation timestamp.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (title, is_done, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.IsDone, task.OwnerID).Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Update replaces title, done flag, and owner of the active row matching
// task.ID. Soft-deleted rows are not touched.
func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) (int64, error) {
	query :=
		`UPDATE tasks SET title = $2, is_done = $3, owner_id = $4
		 WHERE id = $1 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, task.ID, task.Title, task.IsDone, task.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

// Exists reports whether an active task with the given id is present.
func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1 AND deleted_at IS NULL)
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// SoftDelete stamps deleted_at on the active row with the given id.
func (r *PostgresRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	query :=
		`UPDATE tasks SET deleted_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

// ListActiveIDs returns ids of the owner's active tasks with the given done flag.
func (r *PostgresRepository) ListActiveIDs(ctx context.Context, ownerID int64, isDone bool) ([]int64, error) {
	query :=
		`SELECT id FROM tasks
		 WHERE owner_id = $1 AND deleted_at IS NULL AND is_done = $2
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID, isDone)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetDone updates the done flag of the active row with the given id.
func (r *PostgresRepository) SetDone(ctx context.Context, id int64, isDone bool) (int64, error) {
	query :=
		`UPDATE tasks SET is_done = $2
		 WHERE id = $1 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, id, isDone)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
