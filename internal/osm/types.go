package osm

// Info holds the authorship metadata common to nodes and ways. Values are
// kept exactly as the source document gives them; typing happens at load.
type Info struct {
	User      string
	UID       string
	Version   string
	Changeset string
	Timestamp string
}

// Tag is a key/value annotation attached to a node or way. Key is the raw
// key as written in the source, namespace prefix included.
type Tag struct {
	Key   string
	Value string
}

// Node is a single point with coordinates.
type Node struct {
	ID   string
	Lat  string
	Lon  string
	Info Info
	Tags []Tag
}

// Child is one element child of a way in document order: either a tag or a
// node reference. Exactly one of Tag and NodeRef is set. The order of
// children is significant downstream, so ways keep them interleaved rather
// than in separate slices.
type Child struct {
	Tag     *Tag
	NodeRef string
}

// Way is an ordered sequence of node references plus its own tags.
type Way struct {
	ID       string
	Info     Info
	Children []Child
}

// Tags returns pointers to the way's tags in document order.
func (w *Way) Tags() []*Tag {
	var tags []*Tag
	for i := range w.Children {
		if w.Children[i].Tag != nil {
			tags = append(tags, w.Children[i].Tag)
		}
	}
	return tags
}

// Set is the full in-memory dataset.
type Set struct {
	Nodes []Node
	Ways  []Way
}

// Clone returns a deep copy of the set. Correction passes operate on a copy
// so the decoded input stays untouched.
func (s *Set) Clone() *Set {
	out := &Set{
		Nodes: make([]Node, len(s.Nodes)),
		Ways:  make([]Way, len(s.Ways)),
	}
	for i, n := range s.Nodes {
		cn := n
		cn.Tags = make([]Tag, len(n.Tags))
		copy(cn.Tags, n.Tags)
		out.Nodes[i] = cn
	}
	for i, w := range s.Ways {
		cw := w
		cw.Children = make([]Child, len(w.Children))
		for j, c := range w.Children {
			if c.Tag != nil {
				t := *c.Tag
				cw.Children[j] = Child{Tag: &t}
			} else {
				cw.Children[j] = c
			}
		}
		out.Ways[i] = cw
	}
	return out
}
