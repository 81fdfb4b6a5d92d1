// Package auth provides authentication for iotcore.
//
// It implements:
//   - Argon2id password hashing with inline salt (PHC string format)
//   - HS256 JWT access tokens carrying the user's email as subject
//   - A SQLite-backed credential store with email uniqueness enforced
//     by the database, not by read-then-write checks
//
// Passwords never leave this package in plaintext: handlers hand the
// plaintext to HashPassword or VerifyPassword and store only the opaque
// hash. Token verification trusts nothing on failure; a bad signature,
// expired claim, or missing subject all yield the same rejection.
package auth
