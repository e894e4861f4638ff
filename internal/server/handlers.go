package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/adithyavalsaraj/folio/internal/ads"
	"github.com/adithyavalsaraj/folio/internal/library"
	"github.com/adithyavalsaraj/folio/internal/publication"
	"github.com/adithyavalsaraj/folio/internal/storage"
)

// Caller-facing failure reasons. Upstream detail is logged, never exposed.
const (
	msgTokenMissing = "ADS API token missing"
	msgFetchFailed  = "Failed to fetch ADS data"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFetchError maps a pipeline error onto the two caller-facing
// failure shapes: a missing token is a distinct configuration error,
// everything else is the generic fetch failure.
func (s *Server) writeFetchError(w http.ResponseWriter, err error) {
	if ads.IsTokenMissing(err) {
		writeError(w, http.StatusInternalServerError, msgTokenMissing)
		return
	}
	s.logger.Error("ADS fetch failed", "error", err)
	writeError(w, http.StatusInternalServerError, msgFetchFailed)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePublications runs the full pipeline and returns the classified,
// role-resolved publication list with aggregate counts.
func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.Publications(r.Context())
	if err != nil {
		s.writeFetchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleStats returns citation totals over the raw unfiltered library.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	m, err := s.svc.Stats(r.Context())
	if err != nil {
		s.writeFetchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// timelineResponse wraps the year-grouped merged list.
type timelineResponse struct {
	Live   bool                    `json:"live"` // false when serving curated data only
	Groups []publication.YearGroup `json:"groups"`
}

// handleTimeline serves the merged curated+live timeline. When the
// upstream fetch fails the curated list is served on its own: the
// timeline is a display surface and the curated list is authoritative
// for it. highlight=1 wraps the subject's name in each authors field.
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	var fetched []publication.Publication

	resp, err := s.svc.Publications(r.Context())
	if err != nil {
		if ads.IsTokenMissing(err) {
			s.logger.Warn("serving curated-only timeline", "reason", "token missing")
		} else {
			s.logger.Warn("serving curated-only timeline", "error", err)
		}
	} else {
		fetched = resp.Publications
	}

	groups := library.BuildTimeline(s.curated, fetched)

	if r.URL.Query().Get("highlight") == "1" && s.highlighter != nil {
		for gi := range groups {
			for pi := range groups[gi].Publications {
				p := &groups[gi].Publications[pi]
				p.Authors = s.highlighter.Highlight(p.Authors)
			}
		}
	}

	writeJSON(w, http.StatusOK, timelineResponse{
		Live:   fetched != nil,
		Groups: groups,
	})
}

// handleCurated queries the curated publication index directly.
func (s *Server) handleCurated(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		writeError(w, http.StatusServiceUnavailable, "curated index not available")
		return
	}

	q := storage.Query{Search: r.URL.Query().Get("search")}

	if roleParam := r.URL.Query().Get("role"); roleParam != "" {
		role, ok := parseRole(roleParam)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown role: "+roleParam)
			return
		}
		q.Role = role
	}

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year: "+yearParam)
			return
		}
		q.Year = year
	}

	pubs, err := s.index.Search(q)
	if err != nil {
		s.logger.Error("curated query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "curated query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":        len(pubs),
		"publications": pubs,
	})
}

// parseRole accepts the short filter names used by the site's UI as well
// as the stored role strings.
func parseRole(s string) (publication.Role, bool) {
	switch strings.ToLower(s) {
	case "first":
		return publication.RoleFirst, true
	case "second":
		return publication.RoleSecond, true
	case "coauthor", "co-author":
		return publication.RoleCoAuthor, true
	}
	switch r := publication.Role(s); r {
	case publication.RoleFirst, publication.RoleSecond, publication.RoleCoAuthor:
		return r, true
	}
	return "", false
}
