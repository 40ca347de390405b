package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open picks a driver from dsn and checks the connection:
//
//	""                      private in-memory SQLite database
//	postgres://, host=...   Postgres through pgx
//	sqlite://path, file:... SQLite file
func Open(ctx context.Context, dsn string) (*sql.DB, dbx.Dialect, error) {
	driver, dialect, source := resolve(dsn)

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == dbx.SQLite {
		// one writer; shared-cache memory databases also vanish with the last connection
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}
	return db, dialect, nil
}

func resolve(dsn string) (driver string, dialect dbx.Dialect, source string) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return "sqlite", dbx.SQLite, "file:gophauth-" + uuid.NewString() + "?mode=memory&cache=shared"
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", dbx.SQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		return "sqlite", dbx.SQLite, dsn
	default:
		return "pgx", dbx.Postgres, dsn
	}
}
