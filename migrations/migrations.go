package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationFiles embed.FS

// dialects maps a store driver to its sql-migrate dialect.
var dialects = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

// Source returns the embedded migrations for driver ("postgres" or "sqlite").
func Source(driver string) (migrate.MigrationSource, error) {
	if _, ok := dialects[driver]; !ok {
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       driver,
	}, nil
}

// Apply runs every pending up migration and returns how many were applied.
func Apply(db *sql.DB, driver string) (int, error) {
	src, err := Source(driver)
	if err != nil {
		return 0, err
	}

	n, err := migrate.Exec(db, dialects[driver], src, migrate.Up)
	if err != nil {
		return n, fmt.Errorf("apply %s migrations: %w", driver, err)
	}
	return n, nil
}
