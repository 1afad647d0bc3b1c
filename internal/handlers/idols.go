package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"idolapi/internal/models"
	"idolapi/internal/store"
)

// HandleAllIdols serves GET /. An empty table yields an empty array, never 404.
func HandleAllIdols(s *store.IdolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idols, err := s.All(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, http.StatusOK, idols)
	}
}

// HandleIdolByStageName serves GET /idol/{stage_name}.
func HandleIdolByStageName(s *store.IdolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stageName := chi.URLParam(r, "stage_name")
		idols, err := s.ByStageName(r.Context(), stageName)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db error")
			return
		}
		if len(idols) == 0 {
			writeError(w, http.StatusNotFound, "Idol not found.")
			return
		}
		writeJSON(w, http.StatusOK, idols)
	}
}

// HandleIdolsByGroup serves GET /group/{group_name}.
func HandleIdolsByGroup(s *store.IdolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupName := chi.URLParam(r, "group_name")
		idols, err := s.ByGroup(r.Context(), groupName)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db error")
			return
		}
		if len(idols) == 0 {
			writeError(w, http.StatusNotFound, "Group not found or has no members in the dataset.")
			return
		}
		writeJSON(w, http.StatusOK, idols)
	}
}

// HandleSearch serves GET /search?field=&value=. The field must name a
// declared column; it is resolved through the schema allow-list before any
// SQL is built.
func HandleSearch(s *store.IdolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field := r.URL.Query().Get("field")
		value := r.URL.Query().Get("value")
		if field == "" || value == "" {
			writeError(w, http.StatusBadRequest, "Both 'field' and 'value' are required.")
			return
		}
		column, ok := models.LookupColumn(field)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Field '%s' not found in the data.", field))
			return
		}
		idols, err := s.Search(r.Context(), column, value)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db error")
			return
		}
		if len(idols) == 0 {
			writeError(w, http.StatusNotFound, "No idols found matching the search criteria.")
			return
		}
		writeJSON(w, http.StatusOK, idols)
	}
}

// HandleFilter serves GET /filter with optional AND-combined criteria.
// Empty and zero-valued parameters count as absent; with no criteria the
// whole table comes back.
func HandleFilter(s *store.IdolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		criteria := store.FilterCriteria{
			Gender:  q.Get("gender"),
			Country: q.Get("country"),
			Company: q.Get("company"),
		}

		for _, p := range []struct {
			name string
			dst  *int
		}{
			{"debut_year", &criteria.DebutYear},
			{"age_from", &criteria.AgeFrom},
			{"age_to", &criteria.AgeTo},
		} {
			raw := q.Get(p.name)
			if raw == "" {
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Parameter '%s' must be an integer.", p.name))
				return
			}
			*p.dst = n
		}

		idols, err := s.Filter(r.Context(), criteria)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db error")
			return
		}
		if len(idols) == 0 {
			writeError(w, http.StatusNotFound, "No idols found matching the filter criteria.")
			return
		}
		writeJSON(w, http.StatusOK, idols)
	}
}
