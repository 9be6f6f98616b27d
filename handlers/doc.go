// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the check-in API.

# Handler Types

Each handler is a struct with its store, storage and config dependencies:

  - AuthHandler: login and token issuance
  - EventsHandler: event listing, detail, creation with roster import
  - ParticipantsHandler: search, detail, lookup by bib number
  - CheckinHandler: the check-in transaction (image uploads + row update)
  - StatsHandler: aggregate counts and recent check-ins

Handlers are created via constructor functions that accept the injected
dependencies:

	eventsHandler := handlers.NewEventsHandler(st, cfg)

# Scoping

Every route except login runs behind middleware.RequireAuth. Handlers pull
the verified claims from the request context and pass the user ID into the
store, which scopes event lookups by owner in the WHERE clause. Rows outside
the caller's scope come back as 404, never 403.

# Check-in Flow

	POST /api/checkin {participant_id, signature, photo, checkin_by, note}

The two image uploads are independent and each falls back to inline base64
persistence when the object store write fails; the row update is a single
statement. The endpoint answers 200 {success:bool} and never surfaces
storage or database errors to the client.
*/
package handlers
