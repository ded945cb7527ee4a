package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovs/benfordapp/internal/dbx"
	"github.com/avolkovs/benfordapp/internal/server/repositories/jobs"
	"github.com/avolkovs/benfordapp/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Jobs(db dbx.DBTX) jobs.Repository
}
