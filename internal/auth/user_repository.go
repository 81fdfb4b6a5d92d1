package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create inserts a new user and sets its generated ID.
	// Returns ErrEmailExists if the email is already registered.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by numeric ID.
	// Returns ErrUserNotFound if no such user exists.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by exact email match.
	// Returns ErrUserNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int, error)
}

// SQLiteUserRepository implements UserRepository using SQLite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed user repository.
func NewUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user account.
//
// The users.email UNIQUE constraint is the only authority on duplicates:
// two concurrent registrations for the same email both reach the INSERT
// and exactly one wins.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *User) error {
	if user.Role == "" {
		user.Role = RoleUser
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash, string(user.Role), now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetByID retrieves a user by their numeric ID.
func (r *SQLiteUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getUser(ctx,
		"SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = ?", id)
}

// GetByEmail retrieves a user by exact email match.
func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getUser(ctx,
		"SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = ?", email)
}

// Count returns the total number of user accounts.
func (r *SQLiteUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// getUser executes a query and scans a single user result.
func (r *SQLiteUserRepository) getUser(ctx context.Context, query string, args ...any) (*User, error) {
	var u User
	var role, createdAt string

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.Role = Role(role)
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled

	return &u, nil
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "unique constraint"))
}
