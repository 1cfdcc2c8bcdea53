package resolve

import (
	"database/sql"
	"fmt"
)

// TagInfo is one stored tag of a flagged record.
type TagInfo struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// LookupTags fetches the full tag set of a flagged record from the store so
// the operator sees its context before deciding on a correction. Returns
// the record kind ("node" or "way") alongside the tags.
func LookupTags(db *sql.DB, recordID string) (string, []TagInfo, error) {
	tags, err := queryTags(db, "nodes_tags", recordID)
	if err != nil {
		return "", nil, err
	}
	if len(tags) > 0 {
		return "node", tags, nil
	}

	tags, err = queryTags(db, "ways_tags", recordID)
	if err != nil {
		return "", nil, err
	}
	if len(tags) > 0 {
		return "way", tags, nil
	}

	return "", nil, fmt.Errorf("no tags found for record %s", recordID)
}

func queryTags(db *sql.DB, table, recordID string) ([]TagInfo, error) {
	rows, err := db.Query(
		"SELECT key, value, type FROM "+table+" WHERE id = $1", recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var tags []TagInfo
	for rows.Next() {
		var t TagInfo
		if err := rows.Scan(&t.Key, &t.Value, &t.Type); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
