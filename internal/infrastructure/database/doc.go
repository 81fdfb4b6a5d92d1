// Package database manages the SQLite connection for iotcore.
//
// It opens the database with foreign keys enforced and optional WAL mode,
// applies embedded SQL migrations, and exposes health checks. The
// connection pool hands each request exactly one handle for the duration
// of its queries and reclaims it on every exit path.
package database
