// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, bearer tokens and ID generation.

# Passwords

Salted bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, candidate)

# Bearer Tokens

Tokens are HMAC-SHA256 signed and carry the user identity with a 24-hour
expiry:

	token, err := auth.SignToken(userID, userName, secret)
	claims, err := auth.VerifyToken(token, secret)

The format is base64url(JSON claims) + "." + base64url(signature). VerifyToken
checks signature and expiry only - there is no revocation list, so a token
remains valid for its full lifetime regardless of server-side state.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
