// Package telemetry stores readings reported by devices.
//
// Readings are append-only. Each row carries a server-assigned UTC
// timestamp and an opaque JSON payload; the service never interprets
// the payload beyond validating that it is a JSON object.
package telemetry
