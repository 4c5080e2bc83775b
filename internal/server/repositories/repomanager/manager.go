package repomanager

import (
	"context"
	"database/sql"

	"todoapp/internal/dbx"
	"todoapp/internal/server/repositories/tasks"
	"todoapp/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
