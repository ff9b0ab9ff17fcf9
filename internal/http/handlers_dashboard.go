package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", "error", err, "url", r.URL.Path)
	}
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	records := s.dataset.Records(r.Context())
	writeJSON(w, r, http.StatusOK, buildRecordsResponse(records))
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	records := s.dataset.Records(r.Context())
	writeJSON(w, r, http.StatusOK, buildOverviewResponse(records))
}

func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	records := s.dataset.Records(r.Context())
	writeJSON(w, r, http.StatusOK, buildStrategyResponse(records))
}

// handleWeekly compares the last two full weeks relative to a reference
// instant, taken from the ref query parameter (RFC 3339) or the clock.
func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	ref := time.Now()
	if v := strings.TrimSpace(r.URL.Query().Get("ref")); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			slog.WarnContext(r.Context(), "Invalid ref parameter", "ref", v, "error", err)
			writeJSON(w, r, http.StatusBadRequest, map[string]string{
				"error": "ref must be an RFC 3339 timestamp",
			})
			return
		}
		ref = parsed
	}

	records := s.dataset.Records(r.Context())
	writeJSON(w, r, http.StatusOK, buildWeeklyResponse(records, ref))
}
