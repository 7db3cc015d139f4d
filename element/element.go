package element

import (
	"fmt"

	"github.com/paulmach/osm"
)

// Tag is a single key/value property of an OSM element. Tags are kept in
// the order they appear in the source data; classification rules and the
// type matcher depend on this order for tie-breaking.
type Tag struct {
	Key   string
	Value string
}

type Tags []Tag

func (t Tags) String() string {
	return fmt.Sprintf("%v", []Tag(t))
}

// Find returns the value of the first tag with key, or "".
func (t Tags) Find(key string) string {
	for i := range t {
		if t[i].Key == key {
			return t[i].Value
		}
	}
	return ""
}

func (t Tags) Has(key string) bool {
	for i := range t {
		if t[i].Key == key {
			return true
		}
	}
	return false
}

// Clear empties key and value of the i-th tag in place. The tag stays in
// the sequence so indices of the following tags do not shift.
func (t Tags) Clear(i int) {
	t[i].Key = ""
	t[i].Value = ""
}

type ElemType int

const (
	Point      ElemType = 0
	LineString ElemType = 1
	Polygon    ElemType = 2
)

var elemTypeNames = map[ElemType]string{
	Point:      "point",
	LineString: "linestring",
	Polygon:    "polygon",
}

func (et ElemType) String() string {
	if name, ok := elemTypeNames[et]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(et))
}

type OSMElem struct {
	ID   int64
	Type ElemType
	Tags Tags
}

func (e *OSMElem) AddTag(key, value string) {
	e.Tags = append(e.Tags, Tag{Key: key, Value: value})
}

// FromOSMTags converts parser tags into our mutable tag sequence,
// preserving their order.
func FromOSMTags(tags osm.Tags) Tags {
	result := make(Tags, 0, len(tags))
	for _, t := range tags {
		result = append(result, Tag{Key: t.Key, Value: t.Value})
	}
	return result
}

func FromNode(n *osm.Node) OSMElem {
	return OSMElem{
		ID:   int64(n.ID),
		Type: Point,
		Tags: FromOSMTags(n.Tags),
	}
}

func FromWay(w *osm.Way) OSMElem {
	elem := OSMElem{
		ID:   int64(w.ID),
		Type: LineString,
		Tags: FromOSMTags(w.Tags),
	}
	if isClosed(w) {
		elem.Type = Polygon
	}
	return elem
}

func isClosed(w *osm.Way) bool {
	return len(w.Nodes) >= 4 && w.Nodes[0].ID == w.Nodes[len(w.Nodes)-1].ID
}
