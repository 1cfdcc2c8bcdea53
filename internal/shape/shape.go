// Package shape flattens corrected records into the tabular rows the
// relational store accepts.
package shape

import (
	"github.com/osmwrangle/internal/normalize"
	"github.com/osmwrangle/internal/osm"
)

// NodeRow is one row of the nodes stream.
type NodeRow struct {
	ID        string
	Lat       string
	Lon       string
	User      string
	UID       string
	Version   string
	Changeset string
	Timestamp string
}

// WayRow is one row of the ways stream.
type WayRow struct {
	ID        string
	User      string
	UID       string
	Version   string
	Changeset string
	Timestamp string
}

// TagRow is one row of the nodes_tags or ways_tags streams.
type TagRow struct {
	ID    string
	Key   string
	Value string
	Type  string
}

// WayNodeRow is one ordered member reference of a way.
//
// Position is the running index over all children of the way in document
// order, tags included, as it stood when the reference was encountered. The
// sequence therefore has gaps wherever tags interleave with references;
// downstream consumers expect exactly this ordinal.
type WayNodeRow struct {
	ID       string
	NodeID   string
	Position int
}

// Output holds the five flat row streams.
type Output struct {
	Nodes    []NodeRow
	NodeTags []TagRow
	Ways     []WayRow
	WayNodes []WayNodeRow
	WayTags  []TagRow
}

// Node flattens one node into its attribute row and tag rows. Tags whose key
// fails classification are dropped outright; no partial row is emitted.
func Node(n *osm.Node) (NodeRow, []TagRow) {
	row := NodeRow{
		ID:        n.ID,
		Lat:       n.Lat,
		Lon:       n.Lon,
		User:      n.Info.User,
		UID:       n.Info.UID,
		Version:   n.Info.Version,
		Changeset: n.Info.Changeset,
		Timestamp: n.Info.Timestamp,
	}

	var tags []TagRow
	for _, t := range n.Tags {
		if tr, ok := tagRow(n.ID, t); ok {
			tags = append(tags, tr)
		}
	}
	return row, tags
}

// Way flattens one way into its attribute row, tag rows, and ordered member
// rows.
func Way(w *osm.Way) (WayRow, []TagRow, []WayNodeRow) {
	row := WayRow{
		ID:        w.ID,
		User:      w.Info.User,
		UID:       w.Info.UID,
		Version:   w.Info.Version,
		Changeset: w.Info.Changeset,
		Timestamp: w.Info.Timestamp,
	}

	var tags []TagRow
	var members []WayNodeRow
	for position, child := range w.Children {
		switch {
		case child.Tag != nil:
			if tr, ok := tagRow(w.ID, *child.Tag); ok {
				tags = append(tags, tr)
			}
		case child.NodeRef != "":
			members = append(members, WayNodeRow{
				ID:       w.ID,
				NodeID:   child.NodeRef,
				Position: position,
			})
		}
	}
	return row, tags, members
}

// All flattens an entire set into the five streams.
func All(set *osm.Set) *Output {
	out := &Output{}
	for i := range set.Nodes {
		row, tags := Node(&set.Nodes[i])
		out.Nodes = append(out.Nodes, row)
		out.NodeTags = append(out.NodeTags, tags...)
	}
	for i := range set.Ways {
		row, tags, members := Way(&set.Ways[i])
		out.Ways = append(out.Ways, row)
		out.WayTags = append(out.WayTags, tags...)
		out.WayNodes = append(out.WayNodes, members...)
	}
	return out
}

func tagRow(recordID string, t osm.Tag) (TagRow, bool) {
	typ, key, ok := normalize.ClassifyKey(t.Key)
	if !ok {
		return TagRow{}, false
	}
	return TagRow{
		ID:    recordID,
		Key:   key,
		Value: t.Value,
		Type:  typ,
	}, true
}
