package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/osmwrangle/internal/resolve"
)

// RecordsHandler serves per-record context for manual resolution.
type RecordsHandler struct {
	DB *sql.DB
}

type recordTags struct {
	RecordID string            `json:"record_id"`
	Kind     string            `json:"kind"`
	Tags     []resolve.TagInfo `json:"tags"`
}

// GetRecordTags returns the full tag set of one record, node or way.
func (h *RecordsHandler) GetRecordTags(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	kind, tags, err := resolve.LookupTags(h.DB, id)
	if err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	writeJSON(w, recordTags{RecordID: id, Kind: kind, Tags: tags})
}
