package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type DB interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqlDB struct {
	db *sqlx.DB
}

func NewSQLDB(db *sqlx.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return s.db.SelectContext(ctx, dest, query, args...)
}

func (s *sqlDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return s.db.GetContext(ctx, dest, query, args...)
}

func (s *sqlDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}
