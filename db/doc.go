// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides database connection and schema management.

# Connection

	conn, err := db.Open("postgres", cfg.DatabaseURL)

Open supports two drivers: "postgres" (lib/pq, production) and "sqlite"
(modernc.org/sqlite, local development and tests). The store layer writes
queries with ? placeholders and rebinds per driver.

# Schema

	err := db.CreateSchema(conn)

Creates the users, events and participants tables with IF NOT EXISTS, so it
is safe to run on every start. IDs are random hex TEXT generated in Go and
timestamps are RFC 3339 TEXT, which keeps the DDL identical across both
drivers.
*/
package db
