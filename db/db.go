package db

import (
	"embed"
	"fmt"

	_ "github.com/Ananya178/spacex-launch-prediction/db/migrations"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql migrations/*.go
var embedMigrations embed.FS

// Repository is the dashboard's SQLite storage: the launch table the Store is
// loaded from, the dashboard logs and the row counts reported by Stats.
type Repository struct {
	dbConn *sqlx.DB
}

// NewRepository wraps a connection returned by New.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		dbConn: db,
	}
}

// Close closes the connection. The dashboard calls it from Dashboard.Close.
func (repo *Repository) Close() error {
	err := repo.dbConn.Close()
	if err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}

// New opens the launch database at path name, creating it when missing, and
// migrates it. A fresh database is seeded with the four sample launches, so
// dataset.Load on a new file yields the same Store as dataset.Sample.
func New(name string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", name)
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	// One connection serializes log writes from concurrent renders.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode = WAL;", "PRAGMA busy_timeout = 5000;"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("executing %s : %w", pragma, err)
		}
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migration : %w", err)
	}
	return db, nil
}
