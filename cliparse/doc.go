// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. CLI flags take precedence; every flag has an env fallback so the
server runs flag-less in containers.

Required settings:

  - DATABASE_URL (-d): database connection string
  - JWT_SECRET (-token-secret): bearer token signing secret

Optional settings:

  - PORT (-p): server port (default: 8787)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - STORAGE_ENDPOINT / STORAGE_ACCESS_KEY / STORAGE_SECRET_KEY /
    STORAGE_BUCKET (-storage-*): S3-compatible object storage for captured
    signatures and photos; when unset, an in-memory store is used (local
    development only)
  - STORAGE_TIMEOUT (-storage-timeout): per-call deadline for storage
    writes (default: 10s)
*/
package cliparse
