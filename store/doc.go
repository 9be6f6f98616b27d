// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists users, events and participants.

Handlers depend on the Store interface and receive an injected
implementation; there is no package-level state. The SQL implementation is
the only one: production runs it on PostgreSQL, tests run the very same
queries on in-memory SQLite (see testutil.SetupTestDB).

# Ownership Scoping

Every event lookup filters by the owning user_id in the WHERE clause, and
the check-in UPDATE restricts the participant to events the staff user
owns. Rows outside that scope surface as ErrNotFound, indistinguishable
from rows that do not exist.

# Check-in Semantics

CheckIn is a single UPDATE that sets signature, photo, checkin_at,
checkin_by and note together. It reports true iff exactly one row changed.
There is no idempotency guard: checking in twice overwrites, last write
wins.
*/
package store
