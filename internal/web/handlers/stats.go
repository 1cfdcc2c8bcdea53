package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
)

// StatsHandler serves the exploration queries over the loaded data.
type StatsHandler struct {
	DB *sql.DB
}

// ValueCount is one row of a top-N report.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopStreets returns the most-referenced street names. Street names live in
// addr/street tags on both kinds of record, and additionally in the name tag
// of ways that carry a highway tag.
func (h *StatsHandler) TopStreets(w http.ResponseWriter, r *http.Request) {
	h.topN(w, r, `
		SELECT street_names.value, COUNT(street_names.value) AS n
		FROM (
			SELECT nodes_tags.value
			FROM nodes_tags
			WHERE type = 'addr' AND key = 'street'
			UNION ALL
			SELECT ways_tags.value
			FROM ways_tags
			WHERE type = 'addr' AND key = 'street'
				OR id IN (
					SELECT id FROM ways_tags WHERE key = 'highway'
				)
				AND key = 'name'
		) AS street_names
		GROUP BY street_names.value
		ORDER BY n DESC
		LIMIT $1
	`)
}

// TopAmenities returns the most frequent amenity values across both kinds.
func (h *StatsHandler) TopAmenities(w http.ResponseWriter, r *http.Request) {
	h.topN(w, r, `
		SELECT value, COUNT(value) AS n
		FROM (
			SELECT * FROM nodes_tags
			UNION ALL
			SELECT * FROM ways_tags
		) AS tags
		WHERE key = 'amenity'
		GROUP BY value
		ORDER BY n DESC
		LIMIT $1
	`)
}

// TopUsers returns the contributors with the most records.
func (h *StatsHandler) TopUsers(w http.ResponseWriter, r *http.Request) {
	h.topN(w, r, `
		SELECT nodes_ways."user", COUNT(*) AS n
		FROM (
			SELECT "user" FROM nodes
			UNION ALL
			SELECT "user" FROM ways
		) AS nodes_ways
		GROUP BY nodes_ways."user"
		ORDER BY n DESC
		LIMIT $1
	`)
}

func (h *StatsHandler) topN(w http.ResponseWriter, r *http.Request, query string) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	rows, err := h.DB.Query(query, limit)
	if err != nil {
		http.Error(w, "failed to query stats", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	results := []ValueCount{}
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			http.Error(w, "failed to scan stats row", http.StatusInternalServerError)
			return
		}
		results = append(results, vc)
	}

	writeJSON(w, results)
}
