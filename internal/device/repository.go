package device

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Repository defines the interface for device persistence.
//
// Methods taking an ownerID filter by it inside the query itself, never
// fetch-then-check.
type Repository interface {
	// Create inserts a new device owned by ownerID and sets its ID.
	Create(ctx context.Context, d *Device) error

	// GetOwned retrieves a device by ID, scoped to its owner.
	// Returns ErrDeviceNotFound when the device is absent or owned by
	// someone else.
	GetOwned(ctx context.Context, id, ownerID int64) (*Device, error)

	// ListByOwner retrieves all devices owned by ownerID.
	ListByOwner(ctx context.Context, ownerID int64) ([]Device, error)

	// UpdateStatus sets the status of an owned device in a single
	// owner-scoped statement. Returns ErrInvalidStatus for values outside
	// the closed set and ErrDeviceNotFound when no owned row matches.
	UpdateStatus(ctx context.Context, id, ownerID int64, status Status) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed device repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new device.
func (r *SQLiteRepository) Create(ctx context.Context, d *Device) error {
	if d.Status == "" {
		d.Status = StatusActive
	}
	if !IsValidStatus(d.Status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, d.Status)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	d.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO devices (user_id, name, location, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		d.UserID, d.Name, nullString(d.Location), string(d.Status), now,
	)
	if err != nil {
		return fmt.Errorf("creating device: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new device id: %w", err)
	}
	d.ID = id

	return nil
}

// GetOwned retrieves a device by ID, scoped to its owner.
func (r *SQLiteRepository) GetOwned(ctx context.Context, id, ownerID int64) (*Device, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, location, status, created_at
		 FROM devices
		 WHERE id = ? AND user_id = ?`,
		id, ownerID,
	)

	d, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("querying device: %w", err)
	}
	return d, nil
}

// ListByOwner retrieves all devices owned by ownerID.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]Device, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, location, status, created_at
		 FROM devices
		 WHERE user_id = ?
		 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	defer rows.Close()

	var devices []Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning device: %w", err)
		}
		devices = append(devices, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating devices: %w", err)
	}

	if devices == nil {
		devices = []Device{}
	}
	return devices, nil
}

// UpdateStatus sets the status of an owned device.
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id, ownerID int64, status Status) error {
	if !IsValidStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE devices SET status = ? WHERE id = ? AND user_id = ?",
		string(status), id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("updating device status: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

// scanner is an interface for sql.Row and sql.Rows Scan methods.
type scanner interface {
	Scan(dest ...any) error
}

// scanDevice scans a device from a row.
func scanDevice(s scanner) (*Device, error) {
	var d Device
	var location sql.NullString
	var status, createdAt string

	if err := s.Scan(&d.ID, &d.UserID, &d.Name, &location, &status, &createdAt); err != nil {
		return nil, err
	}

	d.Status = Status(status)
	if location.Valid {
		d.Location = location.String
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled

	return &d, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
