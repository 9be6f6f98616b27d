// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the event check-in API server.

The server backs a race-day check-in station: staff log in, pick an event,
search the imported roster, and record a check-in with the participant's
signature and photo.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=checkin.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 8787 -d "postgres://..." -t postgres -token-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - JWT_SECRET (-token-secret): Secret for bearer token HMAC

Optional settings:

  - PORT (-p): Server port (default: 8787)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - STORAGE_ENDPOINT (-storage-endpoint): S3-compatible endpoint for images;
    when unset, uploads fall back to an in-memory store
  - STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY, STORAGE_BUCKET, STORAGE_USE_SSL
  - STORAGE_TIMEOUT (-storage-timeout): per-upload deadline (default: 10s)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, events, participants, checkin, stats)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, auth, JSON helpers
  - models: Request/response types
  - auth: Password hashing and token signing
  - store: Database access behind an injected interface
  - db: Connection setup and schema creation
  - roster: CSV/XLSX roster parsing
  - blob: Object storage for captured images
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
