package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
)

// ProblemsHandler serves the manual-resolution report.
type ProblemsHandler struct {
	DB *sql.DB
}

// Problem is one flagged record in the report.
type Problem struct {
	RecordID string `json:"record_id"`
	Category string `json:"category"`
	Value    string `json:"value"`
}

// ListProblems returns every queued problem in append order.
func (h *ProblemsHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.Query(`
		SELECT record_id, category, value
		FROM problems
		ORDER BY problem_id
	`)
	if err != nil {
		http.Error(w, "failed to query problems", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	problems := []Problem{}
	for rows.Next() {
		var p Problem
		if err := rows.Scan(&p.RecordID, &p.Category, &p.Value); err != nil {
			http.Error(w, "failed to scan problem", http.StatusInternalServerError)
			return
		}
		problems = append(problems, p)
	}

	writeJSON(w, problems)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
