package ftype

import (
	"testing"

	"github.com/osmgen/osm2feature/element"
)

func TestIgnoreTag(t *testing.T) {
	tests := []struct {
		key, value string
		ignore     bool
	}{
		{"", "primary", true},
		{"description", "a nice road", true},
		{"cycleway", "lane", true},
		{"proposed", "primary", true},
		{"construction", "primary", true},

		// processed in any case, even with negative values
		{"layer", "no", false},
		{"oneway", "-1", false},

		{"access", "no", true},
		{"access", "false", true},
		{"access", "-1", true},
		{"access", "private", false},
		{"highway", "primary", false},
	}
	for _, test := range tests {
		if got := ignoreTag(test.key, test.value); got != test.ignore {
			t.Errorf("ignoreTag(%q, %q) = %v, want %v", test.key, test.value, got, test.ignore)
		}
	}
}

func TestNeedMatchValue(t *testing.T) {
	tests := []struct {
		key, value string
		match      bool
	}{
		{"highway", "primary", true},
		{"admin_level", "4", true},
		{"capital", "2", true},
		// bare numbers under any other key never match a value node
		{"name", "4", false},
		{"building", "-1", false},
		{"ref", "66", false},
	}
	for _, test := range tests {
		if got := needMatchValue(test.key, test.value); got != test.match {
			t.Errorf("needMatchValue(%q, %q) = %v, want %v", test.key, test.value, got, test.match)
		}
	}
}

func TestForEachTagSkipsIgnored(t *testing.T) {
	elem := &element.OSMElem{Tags: element.Tags{
		{Key: "access", Value: "no"},
		{Key: "highway", Value: "primary"},
		{Key: "", Value: ""},
		{Key: "oneway", Value: "yes"},
	}}
	var seen []string
	forEachTag(elem, func(i int, k, v string) bool {
		seen = append(seen, k)
		return false
	})
	if len(seen) != 2 || seen[0] != "highway" || seen[1] != "oneway" {
		t.Fatal(seen)
	}
}

func TestForEachTagExConsumesNameKeys(t *testing.T) {
	elem := &element.OSMElem{Tags: element.Tags{
		{Key: "name", Value: "Main St"},
		{Key: "int_name", Value: "Main Street"},
		{Key: "highway", Value: "primary"},
	}}
	skip := make(map[int]bool)
	matched := forEachTagEx(elem, skip, func(k, v string) bool {
		return k == "highway"
	})
	if !matched {
		t.Fatal("expected match")
	}
	// name tags and the matched tag are consumed
	for _, i := range []int{0, 1, 2} {
		if !skip[i] {
			t.Fatalf("position %d not consumed: %v", i, skip)
		}
	}
	if forEachTagEx(elem, skip, func(k, v string) bool { return true }) {
		t.Fatal("consumed tags must not match again")
	}
}
