package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nerrad567/hearth-core/internal/device"
	"github.com/nerrad567/hearth-core/internal/room"
)

// RoomView is the room representation the dashboard consumes: the room
// itself with its ordered device list embedded.
type RoomView struct {
	room.Room
	Devices []device.Device `json:"devices"`
}

// roomUpsertRequest is the PUT /rooms/{id} payload. All fields are optional;
// absent fields leave the stored value untouched. A present devices field
// replaces the room's entire device set. Any id field in the payload is
// ignored — the URL path names the room.
type roomUpsertRequest struct {
	room.Patch
	Devices *[]device.Device `json:"devices"`
}

// handleListRooms returns all rooms in storage order, each with its devices.
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		s.logger.Error("failed to list rooms", "error", err)
		writeInternalError(w, "failed to list rooms")
		return
	}

	// One devices query for the whole listing, grouped in memory.
	devices, err := s.devices.List(ctx)
	if err != nil {
		s.logger.Error("failed to list devices", "error", err)
		writeInternalError(w, "failed to list rooms")
		return
	}
	byRoom := make(map[string][]device.Device, len(rooms))
	for _, dev := range devices {
		byRoom[dev.RoomID] = append(byRoom[dev.RoomID], dev)
	}

	views := make([]RoomView, 0, len(rooms))
	for _, rm := range rooms {
		devs := byRoom[rm.ID]
		if devs == nil {
			devs = []device.Device{}
		}
		views = append(views, RoomView{Room: rm, Devices: devs})
	}

	writeJSON(w, http.StatusOK, views)
}

// handleUpsertRoom creates or updates a room by the id in the URL path.
//
// Existing rooms receive a shallow merge of the supplied fields; absent
// rooms are created from the payload with zero values for omitted fields.
// When the payload carries a devices array the room's device set is
// replaced wholesale, with each device's room_id forced to the path id.
func (s *Server) handleUpsertRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req roomUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	rm, err := s.rooms.Get(ctx, id)
	switch {
	case err == nil:
		req.Patch.Apply(rm)
		if err := s.rooms.Update(ctx, rm); err != nil {
			s.logger.Error("failed to update room", "room_id", id, "error", err)
			writeInternalError(w, "failed to update room")
			return
		}
	case errors.Is(err, room.ErrRoomNotFound):
		rm = room.FromPatch(id, req.Patch)
		if err := s.rooms.Create(ctx, rm); err != nil {
			s.logger.Error("failed to create room", "room_id", id, "error", err)
			writeInternalError(w, "failed to create room")
			return
		}
	default:
		s.logger.Error("failed to get room", "room_id", id, "error", err)
		writeInternalError(w, "failed to get room")
		return
	}

	if req.Devices != nil {
		devs := *req.Devices
		for i := range devs {
			if devs[i].ID == "" {
				devs[i].ID = uuid.NewString()
			}
		}
		if err := s.devices.ReplaceForRoom(ctx, id, devs); err != nil {
			if errors.Is(err, device.ErrDeviceExists) {
				writeConflict(w, "device id already in use by another room")
				return
			}
			s.logger.Error("failed to replace room devices", "room_id", id, "error", err)
			writeInternalError(w, "failed to update room devices")
			return
		}
	}

	devs, err := s.devices.ListByRoom(ctx, id)
	if err != nil {
		s.logger.Error("failed to list room devices", "room_id", id, "error", err)
		writeInternalError(w, "failed to get room")
		return
	}
	if devs == nil {
		devs = []device.Device{}
	}

	writeJSON(w, http.StatusOK, RoomView{Room: *rm, Devices: devs})
}
