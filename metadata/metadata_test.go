package metadata

import (
	"testing"

	"github.com/osmgen/osm2feature/element"
	"github.com/osmgen/osm2feature/ftype"
)

func TestCollect(t *testing.T) {
	elem := &element.OSMElem{Tags: element.Tags{
		{Key: "opening_hours", Value: "Mo-Fr 10:00-20:00"},
		{Key: "cuisine", Value: "Fish And Chips"},
		{Key: "stars", Value: "4"},
		{Key: "ele", Value: "12.5"},
		{Key: "highway", Value: "primary"},
	}}
	params := &ftype.FeatureParams{}
	Collect(elem, params)

	want := map[string]string{
		"opening_hours": "Mo-Fr 10:00-20:00",
		"cuisine":       "fish_and_chips",
		"stars":         "4",
		"elevation":     "12.5",
	}
	if len(params.Metadata) != len(want) {
		t.Fatal(params.Metadata)
	}
	for name, value := range want {
		if params.Metadata[name] != value {
			t.Fatalf("%s: got %q want %q", name, params.Metadata[name], value)
		}
	}

	// consumed tags are cleared, unrelated tags stay
	for i := 0; i < 4; i++ {
		if elem.Tags[i].Key != "" {
			t.Fatal(elem.Tags)
		}
	}
	if elem.Tags[4].Key != "highway" {
		t.Fatal(elem.Tags)
	}
}

func TestCollectInvalidValues(t *testing.T) {
	elem := &element.OSMElem{Tags: element.Tags{
		{Key: "stars", Value: "9"},
		{Key: "ele", Value: "high"},
	}}
	params := &ftype.FeatureParams{}
	Collect(elem, params)
	if len(params.Metadata) != 0 {
		t.Fatal(params.Metadata)
	}
	// rejected values are not consumed
	if elem.Tags[0].Key != "stars" || elem.Tags[1].Key != "ele" {
		t.Fatal(elem.Tags)
	}
}

func TestCollectFirstWins(t *testing.T) {
	elem := &element.OSMElem{Tags: element.Tags{
		{Key: "phone", Value: "+49 30 1"},
		{Key: "contact:phone", Value: "+49 30 2"},
	}}
	params := &ftype.FeatureParams{}
	Collect(elem, params)
	if params.Metadata["phone"] != "+49 30 1" {
		t.Fatal(params.Metadata)
	}
	if elem.Tags[1].Key != "contact:phone" {
		t.Fatal("second phone tag must not be consumed")
	}
}
