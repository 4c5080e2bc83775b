// This file implements TaskService, the owner-scoped CRUD and bulk
// operations over task rows. Soft delete is used throughout: rows are
// stamped with deleted_at and excluded from every read.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"todoapp/internal/common"
	"todoapp/internal/dbx"
	"todoapp/internal/server/models"
	"todoapp/internal/server/repositories/repomanager"
)

// TaskService performs create/read/update/delete and the three bulk
// operations for one owner's tasks.
//
// Update trusts the owner id supplied in the payload: a caller who knows a
// task's numeric id can overwrite it regardless of ownership. That matches
// the observed behavior of the system this one replaces; close it only as a
// deliberate contract change.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService over the given connection and
// repository manager.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// List returns the owner's active tasks.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	result, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// Create persists a new task for draft.OwnerID. The owner id must be
// positive; the referenced account is not verified to exist. The task always
// starts not-done.
func (s *TaskService) Create(ctx context.Context, draft *models.Task) (*models.Task, error) {
	if draft.OwnerID <= 0 {
		return nil, common.ErrorInvalidOwner
	}

	task := &models.Task{Title: draft.Title, IsDone: false, OwnerID: draft.OwnerID}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

// Update replaces the mutable fields of the task with the given id. The
// draft's id must equal the target id. When the row was not updated, the
// existence of the target decides between not-found and a fatal conflict.
func (s *TaskService) Update(ctx context.Context, id int64, draft *models.Task) error {
	if draft.ID != id {
		return common.ErrorIDMismatch
	}

	repo := s.repomanager.Tasks(s.db)
	n, err := repo.Update(ctx, draft)
	if err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	if n == 0 {
		exists, err := repo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("error re-checking task: %w", err)
		}
		if !exists {
			return common.ErrorNotFound
		}
		return fmt.Errorf("update conflict on task %d", id)
	}
	return nil
}

// Delete soft-deletes the task with the given id.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Tasks(s.db)
	n, err := repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// CompleteAll marks every active, not-yet-done task of the owner as done and
// returns how many rows changed. The affected set is snapshotted first and
// mutated inside one transaction, so tasks created concurrently are not
// swept in and a partial batch is never visible.
func (s *TaskService) CompleteAll(ctx context.Context, ownerID int64) (int64, error) {
	return s.setDoneAll(ctx, ownerID, true)
}

// UncompleteAll is the mirror of CompleteAll: active done tasks become
// not-done.
func (s *TaskService) UncompleteAll(ctx context.Context, ownerID int64) (int64, error) {
	return s.setDoneAll(ctx, ownerID, false)
}

func (s *TaskService) setDoneAll(ctx context.Context, ownerID int64, done bool) (int64, error) {
	var count int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)
		ids, err := repo.ListActiveIDs(ctx, ownerID, !done)
		if err != nil {
			return fmt.Errorf("error selecting tasks: %w", err)
		}
		for _, id := range ids {
			if _, err := repo.SetDone(ctx, id, done); err != nil {
				return fmt.Errorf("error updating task %d: %w", id, err)
			}
		}
		count = int64(len(ids))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCompleted soft-deletes every active, done task of the owner and
// returns how many rows were removed. Same snapshot-then-mutate contract as
// CompleteAll.
func (s *TaskService) DeleteCompleted(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)
		ids, err := repo.ListActiveIDs(ctx, ownerID, true)
		if err != nil {
			return fmt.Errorf("error selecting tasks: %w", err)
		}
		for _, id := range ids {
			if _, err := repo.SoftDelete(ctx, id); err != nil {
				return fmt.Errorf("error deleting task %d: %w", id, err)
			}
		}
		count = int64(len(ids))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
