package etl

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/osmwrangle/internal/normalize"
	"github.com/osmwrangle/internal/shape"
)

// File names of the five exported streams.
const (
	NodesCSV    = "nodes.csv"
	NodeTagsCSV = "nodes_tags.csv"
	WaysCSV     = "ways.csv"
	WayNodesCSV = "ways_nodes.csv"
	WayTagsCSV  = "ways_tags.csv"
)

// ExportCSV writes the five streams as headed CSV files under dir, ready for
// COPY into the store.
func ExportCSV(dir string, out *shape.Output) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := writeCSV(filepath.Join(dir, NodesCSV),
		[]string{"id", "lat", "lon", "user", "uid", "version", "changeset", "timestamp"},
		len(out.Nodes), func(i int) []string {
			n := out.Nodes[i]
			return []string{n.ID, n.Lat, n.Lon, n.User, n.UID, n.Version, n.Changeset, n.Timestamp}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, NodeTagsCSV),
		[]string{"id", "key", "value", "type"},
		len(out.NodeTags), func(i int) []string {
			t := out.NodeTags[i]
			return []string{t.ID, t.Key, t.Value, t.Type}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, WaysCSV),
		[]string{"id", "user", "uid", "version", "changeset", "timestamp"},
		len(out.Ways), func(i int) []string {
			w := out.Ways[i]
			return []string{w.ID, w.User, w.UID, w.Version, w.Changeset, w.Timestamp}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, WayNodesCSV),
		[]string{"id", "node_id", "position"},
		len(out.WayNodes), func(i int) []string {
			wn := out.WayNodes[i]
			return []string{wn.ID, wn.NodeID, strconv.Itoa(wn.Position)}
		}); err != nil {
		return err
	}

	return writeCSV(filepath.Join(dir, WayTagsCSV),
		[]string{"id", "key", "value", "type"},
		len(out.WayTags), func(i int) []string {
			t := out.WayTags[i]
			return []string{t.ID, t.Key, t.Value, t.Type}
		})
}

// ExportProblemsCSV writes the manual-resolution report alongside the
// streams.
func ExportProblemsCSV(dir string, problems []normalize.ProblemEntry) error {
	return writeCSV(filepath.Join(dir, "problems.csv"),
		[]string{"record_id", "category", "value"},
		len(problems), func(i int) []string {
			p := problems[i]
			return []string{p.RecordID, p.Category, p.Value}
		})
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
