// Package metadata collects auxiliary feature fields (opening hours,
// cuisine, stars, ...) from the tags left over after classification. It
// follows the same consumption convention as the classifier: a tag used
// for a field is cleared in place.
package metadata

import (
	"strconv"
	"strings"

	"github.com/osmgen/osm2feature/element"
	"github.com/osmgen/osm2feature/ftype"
)

// validator normalizes a raw tag value; ok is false if the value is
// unusable and the field stays unset.
type validator func(string) (string, bool)

var fields = []struct {
	key      string
	name     string
	validate validator
}{
	{"opening_hours", "opening_hours", asIs},
	{"phone", "phone", asIs},
	{"contact:phone", "phone", asIs},
	{"fax", "fax", asIs},
	{"website", "website", asIs},
	{"contact:website", "website", asIs},
	{"url", "website", asIs},
	{"email", "email", asIs},
	{"cuisine", "cuisine", cuisine},
	{"stars", "stars", stars},
	{"ele", "elevation", elevation},
	{"wikipedia", "wikipedia", asIs},
	{"internet_access", "internet_access", asIs},
}

// Collect reads metadata tags into params. It matches the
// ftype.MetadataCollector signature.
func Collect(elem *element.OSMElem, params *ftype.FeatureParams) {
	for i := range elem.Tags {
		k, v := elem.Tags[i].Key, elem.Tags[i].Value
		if k == "" || v == "" {
			continue
		}
		for _, f := range fields {
			if f.key != k {
				continue
			}
			if _, done := params.Metadata[f.name]; done {
				continue
			}
			if value, ok := f.validate(v); ok {
				params.AddMetadata(f.name, value)
				elem.Tags.Clear(i)
			}
			break
		}
	}
}

func asIs(v string) (string, bool) {
	return v, true
}

func cuisine(v string) (string, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.Replace(v, " ", "_", -1)
	if v == "" {
		return "", false
	}
	return v, true
}

// stars accepts the hotel star range only.
func stars(v string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 || n > 7 {
		return "", false
	}
	return strconv.Itoa(n), true
}

func elevation(v string) (string, bool) {
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return "", false
	}
	return v, true
}
