// Package auth provides authentication for the application.
//
// Identity is established by register or login; both open a session cookie
// and issue an opaque bearer token. Requests authenticate with either,
// bearer token first:
//
//	Authorization: Bearer <token>
//
// Tokens are stored hashed (SHA-256) in the access_tokens table, one row
// per token, many per user. There is no token expiry; logout revokes all of
// the caller's tokens at once. Passwords are bcrypt hashes, cost set by
// AUTH_BCRYPT_COST.
//
// The middleware gates every route except /login, /register, /health and
// /ping, and places the authenticated user in the gin context; handlers
// read it with GetUserID/GetUser rather than any ambient global.
package auth
