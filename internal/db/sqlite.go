package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"agrofund/internal/config/configs"
)

// NewSQLite opens the sqlite database file named by cfg. SQLite allows a
// single writer, so the pool is capped at one connection.
func NewSQLite(ctx context.Context, cfg configs.SQLite) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = conn.PingContext(ctxPing); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
