// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers itself as "sqlite", which sqlx does not
	// know a bind type for out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects and pings the database. Queries throughout the store layer
// are written with ? placeholders and rebound per driver, so both "postgres"
// (lib/pq) and "sqlite" (modernc.org/sqlite) work.
func Open(driver, dsn string) (*sqlx.DB, error) {
	conn, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if driver == "sqlite" {
		// A pooled :memory: connection would see a different database per
		// conn; a single connection also keeps file-based SQLite writes
		// serialized.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
