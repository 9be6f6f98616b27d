// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP route table.

Routes are registered with method+pattern syntax on http.ServeMux, so the
literal /api/participants/search route takes precedence over the wildcard
/api/participants/{id} by specificity. Login and /health are public;
everything else is wrapped in middleware.RequireAuth. Unmatched /api/ paths
answer a JSON 404 instead of the default text page.
*/
package router
