// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - CORS: permissive `*` headers on every response, OPTIONS preflight
    answered with an empty 200. Wraps the whole mux.
  - WithRecovery: converts handler panics into a generic 500 JSON error,
    logging the detail server-side only. Wraps the whole mux.
  - WithLogging: request start/completion logging per route.
  - RequireAuth: Bearer token verification per route; verified claims are
    available to handlers via ClaimsFrom(r).

# JSON Helpers

JSONResponse, ErrorResponse and ParseJSONBody keep handlers terse. Error
bodies are always {"error": "..."}.
*/
package middleware
