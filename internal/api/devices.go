package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/hearth-core/internal/device"
)

// handleGetDevice returns a single device by its global id, flattened out
// of its room.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dev, err := s.devices.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, device.ErrDeviceNotFound) {
			writeNotFound(w, "Device not found")
			return
		}
		s.logger.Error("failed to get device", "device_id", id, "error", err)
		writeInternalError(w, "failed to get device")
		return
	}

	writeJSON(w, http.StatusOK, dev)
}

// handleUpdateDeviceState applies a partial state/value update to a device.
//
// Only state and value are mutable; absent fields are untouched and an
// empty body is a successful no-op. The update never creates a device.
func (s *Server) handleUpdateDeviceState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch device.StatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	dev, err := s.devices.UpdateState(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, device.ErrDeviceNotFound) {
			writeNotFound(w, "Device not found")
			return
		}
		s.logger.Error("failed to update device state", "device_id", id, "error", err)
		writeInternalError(w, "failed to update device")
		return
	}

	// Record the transition for history, if the recorder is wired up.
	if s.telemetry != nil && !patch.IsEmpty() {
		s.telemetry.WriteDeviceState(dev.ID, dev.RoomID, dev.Type, dev.State, dev.Value)
	}

	writeJSON(w, http.StatusOK, dev)
}
