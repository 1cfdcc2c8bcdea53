package etl

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"github.com/osmwrangle/internal/debug"
	"github.com/osmwrangle/internal/normalize"
	"github.com/osmwrangle/internal/shape"
)

// Load truncates the output tables and bulk-loads the shaped rows plus the
// manual-resolution report. Member and tag tables cascade from their parent
// tables, so the truncate order matters only for the two parents.
func Load(db *sql.DB, out *shape.Output, problems []normalize.ProblemEntry, localDebug bool) error {
	defer debug.Timing(localDebug, "database load")()

	for _, table := range []string{"ways", "nodes", "problems"} {
		if _, err := db.Exec("TRUNCATE TABLE " + table + " CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	if err := copyRows(db, localDebug, pq.CopyIn("nodes",
		"id", "lat", "lon", "user", "uid", "version", "changeset", "timestamp"),
		len(out.Nodes), func(i int) []interface{} {
			n := out.Nodes[i]
			return []interface{}{
				parseNullableInt(n.ID), parseNullableFloat(n.Lat), parseNullableFloat(n.Lon),
				nullIfEmpty(n.User), parseNullableInt(n.UID), parseNullableInt(n.Version),
				parseNullableInt(n.Changeset), nullIfEmpty(n.Timestamp),
			}
		}); err != nil {
		return fmt.Errorf("failed to load nodes: %w", err)
	}

	if err := copyRows(db, localDebug, pq.CopyIn("nodes_tags",
		"id", "key", "value", "type"),
		len(out.NodeTags), func(i int) []interface{} {
			t := out.NodeTags[i]
			return []interface{}{parseNullableInt(t.ID), t.Key, t.Value, t.Type}
		}); err != nil {
		return fmt.Errorf("failed to load nodes_tags: %w", err)
	}

	if err := copyRows(db, localDebug, pq.CopyIn("ways",
		"id", "user", "uid", "version", "changeset", "timestamp"),
		len(out.Ways), func(i int) []interface{} {
			w := out.Ways[i]
			return []interface{}{
				parseNullableInt(w.ID), nullIfEmpty(w.User), parseNullableInt(w.UID),
				nullIfEmpty(w.Version), parseNullableInt(w.Changeset), nullIfEmpty(w.Timestamp),
			}
		}); err != nil {
		return fmt.Errorf("failed to load ways: %w", err)
	}

	if err := copyRows(db, localDebug, pq.CopyIn("ways_nodes",
		"id", "node_id", "position"),
		len(out.WayNodes), func(i int) []interface{} {
			wn := out.WayNodes[i]
			return []interface{}{parseNullableInt(wn.ID), parseNullableInt(wn.NodeID), wn.Position}
		}); err != nil {
		return fmt.Errorf("failed to load ways_nodes: %w", err)
	}

	if err := copyRows(db, localDebug, pq.CopyIn("ways_tags",
		"id", "key", "value", "type"),
		len(out.WayTags), func(i int) []interface{} {
			t := out.WayTags[i]
			return []interface{}{parseNullableInt(t.ID), t.Key, t.Value, t.Type}
		}); err != nil {
		return fmt.Errorf("failed to load ways_tags: %w", err)
	}

	if err := loadProblems(db, problems); err != nil {
		return err
	}

	debug.Output(localDebug, "loaded %d nodes, %d ways, %d problems",
		len(out.Nodes), len(out.Ways), len(problems))

	return nil
}

func copyRows(db *sql.DB, localDebug bool, copyStmt string, n int, row func(int) []interface{}) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(copyStmt)
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(row(i)...); err != nil {
			stmt.Close()
			return fmt.Errorf("failed to copy row %d: %w", i, err)
		}
		if (i+1)%1000 == 0 {
			debug.Output(localDebug, "copied %d rows", i+1)
		}
	}

	// Final empty Exec flushes the COPY buffer.
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy: %w", err)
	}
	return tx.Commit()
}

func loadProblems(db *sql.DB, problems []normalize.ProblemEntry) error {
	stmt, err := db.Prepare(`
		INSERT INTO problems (record_id, category, value)
		VALUES ($1, $2, $3)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare problems insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range problems {
		if _, err := stmt.Exec(p.RecordID, p.Category, p.Value); err != nil {
			return fmt.Errorf("failed to insert problem for record %s: %w", p.RecordID, err)
		}
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func parseNullableInt(s string) interface{} {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return nil
}

func parseNullableFloat(s string) interface{} {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return nil
}
