package osm

import (
	"strings"
	"testing"
)

const sampleOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <bounds minlat="1.2369" minlon="103.7651" maxlat="1.3539" maxlon="103.9310"/>
  <node id="337171253" lat="1.3028023" lon="103.8599300" version="3" timestamp="2015-08-01T01:38:25Z" changeset="33022579" uid="741163" user="JaLooNz">
    <tag k="addr:street" v="Sultan Gate"/>
    <tag k="name" v="Malay Heritage Centre"/>
  </node>
  <node id="26778964" lat="1.3" lon="103.8" version="1" timestamp="2012-01-01T00:00:00Z" changeset="1" uid="2" user="someone"/>
  <way id="4386520" version="23" timestamp="2016-11-07T12:03:39Z" changeset="43462870" uid="2818856" user="CitymapperHQ">
    <tag k="highway" v="primary"/>
    <nd ref="26778964"/>
    <tag k="name" v="Orchard Road"/>
    <nd ref="247749632"/>
  </way>
  <relation id="1" version="1">
    <member type="way" ref="4386520" role="outer"/>
    <tag k="type" v="multipolygon"/>
  </relation>
</osm>`

func TestDecode(t *testing.T) {
	set, err := Decode(strings.NewReader(sampleOSM))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if len(set.Nodes) != 2 {
		t.Fatalf("decoded %d nodes, want 2", len(set.Nodes))
	}
	if len(set.Ways) != 1 {
		t.Fatalf("decoded %d ways, want 1 (relations must be skipped)", len(set.Ways))
	}

	node := set.Nodes[0]
	if node.ID != "337171253" || node.Lat != "1.3028023" || node.Lon != "103.8599300" {
		t.Errorf("node attributes = %+v", node)
	}
	want := Info{
		User:      "JaLooNz",
		UID:       "741163",
		Version:   "3",
		Changeset: "33022579",
		Timestamp: "2015-08-01T01:38:25Z",
	}
	if node.Info != want {
		t.Errorf("node info = %+v, want %+v", node.Info, want)
	}
	if len(node.Tags) != 2 || node.Tags[0].Key != "addr:street" || node.Tags[0].Value != "Sultan Gate" {
		t.Errorf("node tags = %+v", node.Tags)
	}
}

func TestDecodePreservesChildOrder(t *testing.T) {
	set, err := Decode(strings.NewReader(sampleOSM))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	way := set.Ways[0]
	if len(way.Children) != 4 {
		t.Fatalf("way has %d children, want 4", len(way.Children))
	}

	// tag, nd, tag, nd — exactly as written in the document.
	if way.Children[0].Tag == nil || way.Children[0].Tag.Key != "highway" {
		t.Errorf("child 0 = %+v, want highway tag", way.Children[0])
	}
	if way.Children[1].NodeRef != "26778964" {
		t.Errorf("child 1 = %+v, want nd 26778964", way.Children[1])
	}
	if way.Children[2].Tag == nil || way.Children[2].Tag.Key != "name" {
		t.Errorf("child 2 = %+v, want name tag", way.Children[2])
	}
	if way.Children[3].NodeRef != "247749632" {
		t.Errorf("child 3 = %+v, want nd 247749632", way.Children[3])
	}
}

func TestCloneIsolation(t *testing.T) {
	set, err := Decode(strings.NewReader(sampleOSM))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	clone := set.Clone()
	clone.Nodes[0].Tags[0].Value = "changed"
	clone.Ways[0].Tags()[0].Value = "changed"

	if set.Nodes[0].Tags[0].Value != "Sultan Gate" {
		t.Error("mutating the clone changed the original node tag")
	}
	if set.Ways[0].Tags()[0].Value != "primary" {
		t.Error("mutating the clone changed the original way tag")
	}
}
