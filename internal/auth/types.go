package auth

import (
	"errors"
	"time"
)

// Role represents an authorisation tier. Only "user" is acted upon today;
// the column exists so future tiers don't need a schema change.
type Role string

// RoleUser is the default role assigned at registration.
const RoleUser Role = "user"

// User represents a registered account.
//
// Email is the stable identity carried in token subjects and is matched
// exactly (case-sensitive) everywhere.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialised
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Sentinel errors for auth operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")
)
