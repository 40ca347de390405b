// Package repomanager opens the configured database, runs the embedded goose
// migrations for its dialect and vends repositories bound to a DBTX.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/identities"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Identities(db dbx.DBTX) identities.Repository
}
