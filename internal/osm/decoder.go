package osm

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Decode reads an OSM XML export and returns the typed dataset. Only node
// and way elements are decoded; relations and everything else are skipped.
//
// Token-level decoding is deliberate: the position assigned to way members
// later depends on the document order of interleaved <tag> and <nd>
// children, which struct unmarshalling would collapse into separate slices.
func Decode(r io.Reader) (*Set, error) {
	dec := xml.NewDecoder(r)
	set := &Set{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read XML token: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "node":
			node, err := decodeNode(dec, se)
			if err != nil {
				return nil, err
			}
			set.Nodes = append(set.Nodes, node)
		case "way":
			way, err := decodeWay(dec, se)
			if err != nil {
				return nil, err
			}
			set.Ways = append(set.Ways, way)
		case "osm", "bounds":
			// Container and metadata elements; descend/skip as appropriate.
			if se.Name.Local == "bounds" {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("failed to skip bounds: %w", err)
				}
			}
		default:
			// relation and anything unknown
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("failed to skip %s: %w", se.Name.Local, err)
			}
		}
	}

	return set, nil
}

func decodeNode(dec *xml.Decoder, se xml.StartElement) (Node, error) {
	node := Node{
		ID:   attrValue(se, "id"),
		Lat:  attrValue(se, "lat"),
		Lon:  attrValue(se, "lon"),
		Info: decodeInfo(se),
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return node, fmt.Errorf("failed to decode node %s: %w", node.ID, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tag" {
				node.Tags = append(node.Tags, Tag{
					Key:   attrValue(t, "k"),
					Value: attrValue(t, "v"),
				})
			}
			if err := dec.Skip(); err != nil {
				return node, fmt.Errorf("failed to decode node %s: %w", node.ID, err)
			}
		case xml.EndElement:
			if t.Name.Local == "node" {
				return node, nil
			}
		}
	}
}

func decodeWay(dec *xml.Decoder, se xml.StartElement) (Way, error) {
	way := Way{
		ID:   attrValue(se, "id"),
		Info: decodeInfo(se),
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return way, fmt.Errorf("failed to decode way %s: %w", way.ID, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tag":
				tag := &Tag{
					Key:   attrValue(t, "k"),
					Value: attrValue(t, "v"),
				}
				way.Children = append(way.Children, Child{Tag: tag})
			case "nd":
				way.Children = append(way.Children, Child{NodeRef: attrValue(t, "ref")})
			}
			if err := dec.Skip(); err != nil {
				return way, fmt.Errorf("failed to decode way %s: %w", way.ID, err)
			}
		case xml.EndElement:
			if t.Name.Local == "way" {
				return way, nil
			}
		}
	}
}

func decodeInfo(se xml.StartElement) Info {
	return Info{
		User:      attrValue(se, "user"),
		UID:       attrValue(se, "uid"),
		Version:   attrValue(se, "version"),
		Changeset: attrValue(se, "changeset"),
		Timestamp: attrValue(se, "timestamp"),
	}
}

func attrValue(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
