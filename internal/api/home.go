package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/hearth-core/internal/home"
)

// handleGetSecurity returns the whole-home security state.
func (s *Server) handleGetSecurity(w http.ResponseWriter, r *http.Request) {
	sec, err := s.home.GetSecurity(r.Context())
	if err != nil {
		if errors.Is(err, home.ErrSecurityNotFound) {
			writeNotFound(w, "Security system not found")
			return
		}
		s.logger.Error("failed to get security state", "error", err)
		writeInternalError(w, "failed to get security state")
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// handleUpsertSecurity merges a partial update into the security state,
// creating it when absent.
func (s *Server) handleUpsertSecurity(w http.ResponseWriter, r *http.Request) {
	var patch home.SecurityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	sec, err := s.home.UpsertSecurity(r.Context(), patch)
	if err != nil {
		s.logger.Error("failed to update security state", "error", err)
		writeInternalError(w, "failed to update security state")
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// handleGetMedia returns the whole-home media playback state.
func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	media, err := s.home.GetMedia(r.Context())
	if err != nil {
		if errors.Is(err, home.ErrMediaNotFound) {
			writeNotFound(w, "Media control not found")
			return
		}
		s.logger.Error("failed to get media state", "error", err)
		writeInternalError(w, "failed to get media state")
		return
	}
	writeJSON(w, http.StatusOK, media)
}

// handleUpsertMedia merges a partial update into the media state,
// creating it when absent.
func (s *Server) handleUpsertMedia(w http.ResponseWriter, r *http.Request) {
	var patch home.MediaPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	media, err := s.home.UpsertMedia(r.Context(), patch)
	if err != nil {
		s.logger.Error("failed to update media state", "error", err)
		writeInternalError(w, "failed to update media state")
		return
	}
	writeJSON(w, http.StatusOK, media)
}

// handleGetPreferences returns the user preferences. When none have ever
// been stored the documented default is returned without persisting it.
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.home.GetPreferences(r.Context())
	if err != nil {
		if errors.Is(err, home.ErrPreferencesNotFound) {
			writeJSON(w, http.StatusOK, home.DefaultPreferences())
			return
		}
		s.logger.Error("failed to get preferences", "error", err)
		writeInternalError(w, "failed to get preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// handleUpsertPreferences merges a partial update into the preferences,
// creating them when absent.
func (s *Server) handleUpsertPreferences(w http.ResponseWriter, r *http.Request) {
	var patch home.PreferencesPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	prefs, err := s.home.UpsertPreferences(r.Context(), patch)
	if err != nil {
		s.logger.Error("failed to update preferences", "error", err)
		writeInternalError(w, "failed to update preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
