// Package api provides the HTTP REST API for the IoT device-management
// service.
//
// It exposes account registration, token issuance, device registry
// operations, and telemetry ingestion. All device and telemetry routes
// require a bearer token and operate only on resources owned by the
// authenticated account.
//
// The server follows the same lifecycle pattern as the infrastructure
// components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api
