package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/farrand/iotcore/internal/device"
)

// createDeviceRequest is the request body for POST /devices.
type createDeviceRequest struct {
	Name     string        `json:"name"`
	Location string        `json:"location,omitempty"`
	Status   device.Status `json:"status,omitempty"`
}

// setDeviceStateRequest is the request body for PUT /devices/{id}/state.
type setDeviceStateRequest struct {
	Status device.Status `json:"status"`
}

// handleListDevices returns all devices owned by the authenticated account.
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	user := principalFromContext(r.Context())

	devices, err := s.deviceRepo.ListByOwner(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("list devices failed", "error", err)
		writeInternalError(w, "failed to list devices")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"devices": devices,
		"count":   len(devices),
	})
}

// handleCreateDevice registers a new device owned by the authenticated account.
func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	user := principalFromContext(r.Context())

	var req createDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	d := &device.Device{
		UserID:   user.ID,
		Name:     req.Name,
		Location: req.Location,
		Status:   req.Status,
	}

	if err := s.deviceRepo.Create(r.Context(), d); err != nil {
		if errors.Is(err, device.ErrInvalidStatus) {
			writeBadRequest(w, "status must be active, inactive, or maintenance")
			return
		}
		s.logger.Error("create device failed", "error", err)
		writeInternalError(w, "failed to create device")
		return
	}

	s.logger.Info("device created", "device_id", d.ID, "user_id", user.ID)

	writeJSON(w, http.StatusOK, d)
}

// handleSetDeviceState updates the status of an owned device.
func (s *Server) handleSetDeviceState(w http.ResponseWriter, r *http.Request) {
	user := principalFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "invalid device id")
		return
	}

	var req setDeviceStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := s.deviceRepo.UpdateStatus(r.Context(), id, user.ID, req.Status); err != nil {
		switch {
		case errors.Is(err, device.ErrInvalidStatus):
			writeBadRequest(w, "status must be active, inactive, or maintenance")
		case errors.Is(err, device.ErrDeviceNotFound):
			writeNotFound(w, "device not found")
		default:
			s.logger.Error("update device status failed", "error", err, "device_id", id)
			writeInternalError(w, "failed to update device status")
		}
		return
	}

	d, err := s.deviceRepo.GetOwned(r.Context(), id, user.ID)
	if err != nil {
		s.logger.Error("reload device after status update failed", "error", err, "device_id", id)
		writeInternalError(w, "failed to update device status")
		return
	}

	s.logger.Info("device status updated", "device_id", d.ID, "status", d.Status)

	writeJSON(w, http.StatusOK, d)
}
