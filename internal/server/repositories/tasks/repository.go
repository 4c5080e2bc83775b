package tasks

import (
	"context"

	"todoapp/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// Update replaces the mutable fields of the active row with the given id
	// and reports the number of rows affected.
	Update(ctx context.Context, task *models.Task) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// SoftDelete stamps deleted_at on the active row with the given id and
	// reports the number of rows affected.
	SoftDelete(ctx context.Context, id int64) (int64, error)

	// ListActiveIDs returns the ids of the owner's active tasks whose done
	// flag equals isDone, for snapshot-then-mutate bulk operations.
	ListActiveIDs(ctx context.Context, ownerID int64, isDone bool) ([]int64, error)
	SetDone(ctx context.Context, id int64, isDone bool) (int64, error)
}
