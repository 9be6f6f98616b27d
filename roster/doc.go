// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster parses uploaded participant roster files.

# Formats

CSV (RFC 4180, double-quoted fields may contain commas) and XLSX (first
sheet). Any other extension fails the import. Fields are trimmed of
surrounding whitespace after unquoting.

# Validation

Strict at the file-structure level: the header must contain exactly the
RequiredColumns set (order-independent, no extras, no duplicates) and every
data row must match the header's column count. A structurally invalid file
is rejected whole, before any row reaches the database.

# Defaults

Blank full_name and name_on_bib cells default to "{first_name} {last_name}"
(trimmed).
*/
package roster
