package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/farrand/iotcore/internal/device"
	"github.com/farrand/iotcore/internal/telemetry"
)

// createTelemetryRequest is the request body for POST /telemetry.
type createTelemetryRequest struct {
	DeviceID int64          `json:"device_id"`
	Data     map[string]any `json:"data"`
}

// handleCreateTelemetry appends a reading for an owned device.
func (s *Server) handleCreateTelemetry(w http.ResponseWriter, r *http.Request) {
	user := principalFromContext(r.Context())

	var req createTelemetryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.DeviceID == 0 {
		writeBadRequest(w, "device_id is required")
		return
	}

	// Ownership gate: the device must exist and belong to the caller
	// before anything is written.
	if _, err := s.deviceRepo.GetOwned(r.Context(), req.DeviceID, user.ID); err != nil {
		if errors.Is(err, device.ErrDeviceNotFound) {
			writeNotFound(w, "device not found")
			return
		}
		s.logger.Error("check device ownership failed", "error", err, "device_id", req.DeviceID)
		writeInternalError(w, "failed to record telemetry")
		return
	}

	tm := &telemetry.Telemetry{
		DeviceID: req.DeviceID,
		Data:     req.Data,
	}

	if err := s.telemetryRepo.Create(r.Context(), tm); err != nil {
		if errors.Is(err, telemetry.ErrInvalidPayload) {
			writeBadRequest(w, "data must be a JSON object")
			return
		}
		s.logger.Error("create telemetry failed", "error", err, "device_id", req.DeviceID)
		writeInternalError(w, "failed to record telemetry")
		return
	}

	writeJSON(w, http.StatusOK, tm)
}

// handleListTelemetry returns all readings for an owned device, oldest first.
func (s *Server) handleListTelemetry(w http.ResponseWriter, r *http.Request) {
	user := principalFromContext(r.Context())

	deviceID, err := strconv.ParseInt(chi.URLParam(r, "device_id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "invalid device id")
		return
	}

	if _, err := s.deviceRepo.GetOwned(r.Context(), deviceID, user.ID); err != nil {
		if errors.Is(err, device.ErrDeviceNotFound) {
			writeNotFound(w, "device not found")
			return
		}
		s.logger.Error("check device ownership failed", "error", err, "device_id", deviceID)
		writeInternalError(w, "failed to list telemetry")
		return
	}

	readings, err := s.telemetryRepo.ListByDevice(r.Context(), deviceID)
	if err != nil {
		s.logger.Error("list telemetry failed", "error", err, "device_id", deviceID)
		writeInternalError(w, "failed to list telemetry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"telemetry": readings,
		"count":     len(readings),
	})
}
