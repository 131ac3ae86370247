package api

import (
	"net/http"

	"github.com/nerrad567/hearth-core/internal/energy"
)

// handleListEnergy returns all per-room energy usage records. Energy data
// is written at seed time only; there is no update endpoint.
func (s *Server) handleListEnergy(w http.ResponseWriter, r *http.Request) {
	records, err := s.energy.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list energy usage", "error", err)
		writeInternalError(w, "failed to list energy usage")
		return
	}
	if records == nil {
		records = []energy.Usage{}
	}
	writeJSON(w, http.StatusOK, records)
}
