package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/identities"
	"github.com/pressly/goose/v3"
)

type dialectSettings struct {
	goose string
	dir   string
}

var dialects = map[dbx.Dialect]dialectSettings{
	dbx.Postgres: {goose: "pgx", dir: "postgres"},
	dbx.SQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// SQLRepositoryManager vends SQL repositories for one dialect. When a codec
// is set every identities repository is wrapped in the encrypting decorator.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
	codec   *identities.FieldCodec
	logger  logging.Logger
}

func NewSQLRepositoryManager(dialect dbx.Dialect, codec *identities.FieldCodec) (*SQLRepositoryManager, error) {
	if _, ok := dialects[dialect]; !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	return &SQLRepositoryManager{dialect: dialect, codec: codec, logger: logging.Nop()}, nil
}

// WithLogger sets where migration progress is logged. Without it goose
// output is discarded.
func (m *SQLRepositoryManager) WithLogger(l logging.Logger) *SQLRepositoryManager {
	if l != nil {
		m.logger = l.With("module", "migrations")
	}
	return m
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect {
	return m.dialect
}

// Identities returns an identities.Repository bound to db.
func (m *SQLRepositoryManager) Identities(db dbx.DBTX) identities.Repository {
	repo := identities.NewSQLRepository(db, m.dialect)
	if m.codec == nil {
		return repo
	}
	return identities.NewEncryptedRepository(repo, m.codec)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations of the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	d := dialects[m.dialect]

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{logger: m.logger})
	if err := goose.SetDialect(d.goose); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, d.dir); err != nil {
		return fmt.Errorf("migrate %s: %w", m.dialect, err)
	}
	return nil
}
