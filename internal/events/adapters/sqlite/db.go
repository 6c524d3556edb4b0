package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type DB interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Open connects to the sqlite file at path, or a private in-memory database
// for ":memory:".
//
// journal_mode(WAL): readers do not block the writer
// busy_timeout(5000): wait 5s for a lock
// foreign_keys(1):   enforce relations
func Open(path string) (*sqlx.DB, error) {
	dsn := path
	if path != ":memory:" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		dsn = path + sep + "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; one connection also keeps :memory: shared.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
