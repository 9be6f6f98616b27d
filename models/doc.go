// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request and response types shared across
the check-in API.

# Domain Types

  - User: staff account; owns events. The password hash is never serialized.
  - Event: belongs to one user; participant_count is computed, not stored.
  - Participant: one roster row per event, plus check-in state.
  - SearchResult: the slim participant projection returned by search.

# Check-in State

A participant is either fully checked in (checkin_at, checkin_by, signature
and uploaded_image all set by one UPDATE) or not at all. checkin_at == nil
means not checked in.

Signature and photo values are tagged: signature_kind / uploaded_image_kind
hold "stored" when the value is an object-storage key and "inline" when the
object store was unavailable and the raw base64 data was persisted instead.

# JSON Field Names

JSON tags follow the wire contract consumed by the existing frontend
(user_name, event_name, event_start_date, bib_no, checkin_at, ...), so the
structs double as the persistence row types via their db tags.
*/
package models
