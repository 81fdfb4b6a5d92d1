package telemetry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Repository defines the interface for telemetry persistence.
//
// There is no update or delete: readings are immutable once written.
// Ownership checks happen in the API layer against the device table, so
// this repository only ever sees device IDs the caller may touch.
type Repository interface {
	// Create appends a reading for a device, assigning its ID and a
	// server-side UTC timestamp.
	Create(ctx context.Context, tm *Telemetry) error

	// ListByDevice retrieves all readings for a device in insertion
	// order, oldest first.
	ListByDevice(ctx context.Context, deviceID int64) ([]Telemetry, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB

	// now is swappable for tests.
	now func() time.Time
}

// NewSQLiteRepository creates a new SQLite-backed telemetry repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// Create appends a reading for a device.
func (r *SQLiteRepository) Create(ctx context.Context, tm *Telemetry) error {
	if tm.Data == nil {
		tm.Data = map[string]any{}
	}
	payload, err := json.Marshal(tm.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	tm.Timestamp = r.now().UTC()

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO telemetries (device_id, timestamp, data) VALUES (?, ?, ?)",
		tm.DeviceID, tm.Timestamp.Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("creating telemetry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new telemetry id: %w", err)
	}
	tm.ID = id

	return nil
}

// ListByDevice retrieves all readings for a device, oldest first.
func (r *SQLiteRepository) ListByDevice(ctx context.Context, deviceID int64) ([]Telemetry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, device_id, timestamp, data
		 FROM telemetries
		 WHERE device_id = ?
		 ORDER BY id`,
		deviceID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing telemetry: %w", err)
	}
	defer rows.Close()

	var readings []Telemetry
	for rows.Next() {
		var tm Telemetry
		var timestamp, data string

		if err := rows.Scan(&tm.ID, &tm.DeviceID, &timestamp, &data); err != nil {
			return nil, fmt.Errorf("scanning telemetry: %w", err)
		}

		tm.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("parsing telemetry timestamp: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &tm.Data); err != nil {
			return nil, fmt.Errorf("decoding telemetry payload: %w", err)
		}

		readings = append(readings, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating telemetry: %w", err)
	}

	if readings == nil {
		readings = []Telemetry{}
	}
	return readings, nil
}
