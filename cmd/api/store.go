package main

import (
	"fmt"
	"time"

	"calendar-events/internal/config"
	eventsRepoMem "calendar-events/internal/events/adapters/memory"
	eventsRepoPg "calendar-events/internal/events/adapters/postgres"
	eventsRepoSqlite "calendar-events/internal/events/adapters/sqlite"
	"calendar-events/internal/events/core/ports"
	"calendar-events/migrations"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// openDB connects to the SQL database selected by c.StoreDriver.
func openDB(c *config.Config) (*sqlx.DB, error) {
	switch c.StoreDriver {
	case config.DriverPostgres:
		db, err := sqlx.Open("postgres", c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}

		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		return db, nil
	case config.DriverSQLite:
		db, err := eventsRepoSqlite.Open(c.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite %s: %w", c.SQLitePath, err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("driver %q has no database", c.StoreDriver)
	}
}

// openStore returns the repository for c.StoreDriver and a func releasing it.
func openStore(c *config.Config, log logrus.FieldLogger) (ports.EventRepositoryPort, func() error, error) {
	if c.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store, events are lost on exit")
		return eventsRepoMem.NewEventRepository(), func() error { return nil }, nil
	}

	db, err := openDB(c)
	if err != nil {
		return nil, nil, err
	}

	if c.AutoMigrate {
		n, err := migrations.Apply(db.DB, c.StoreDriver)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.WithField("applied", n).Info("migrations applied")
	}

	var repo ports.EventRepositoryPort
	switch c.StoreDriver {
	case config.DriverPostgres:
		repo = eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
	case config.DriverSQLite:
		repo = eventsRepoSqlite.NewEventRepository(db)
	}

	log.WithField("driver", c.StoreDriver).Info("store ready")
	return repo, db.Close, nil
}
