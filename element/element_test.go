package element

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestTagsOrderPreserved(t *testing.T) {
	tags := FromOSMTags(osm.Tags{
		{Key: "highway", Value: "primary"},
		{Key: "name", Value: "Main St"},
		{Key: "oneway", Value: "yes"},
	})
	if len(tags) != 3 {
		t.Fatal(tags)
	}
	if tags[0].Key != "highway" || tags[1].Key != "name" || tags[2].Key != "oneway" {
		t.Fatal(tags)
	}
}

func TestTagsClear(t *testing.T) {
	tags := Tags{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	tags.Clear(1)
	if tags[1].Key != "" || tags[1].Value != "" {
		t.Fatal(tags)
	}
	// following tags keep their position
	if tags[2].Key != "c" || tags[2].Value != "3" {
		t.Fatal(tags)
	}
	if tags.Has("b") {
		t.Fatal("cleared tag still found")
	}
	if tags.Find("c") != "3" {
		t.Fatal(tags)
	}
}

func TestFromWayClosed(t *testing.T) {
	w := &osm.Way{
		ID: 1,
		Nodes: osm.WayNodes{
			{ID: 10}, {ID: 11}, {ID: 12}, {ID: 10},
		},
		Tags: osm.Tags{{Key: "building", Value: "yes"}},
	}
	if elem := FromWay(w); elem.Type != Polygon {
		t.Fatal(elem.Type)
	}

	w.Nodes[3].ID = 13
	if elem := FromWay(w); elem.Type != LineString {
		t.Fatal(elem.Type)
	}
}
