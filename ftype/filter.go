package ftype

import (
	"strconv"
	"strings"

	"github.com/osmgen/osm2feature/element"
)

// Tags with these values assert the absence of a property and must not
// drive positive classification.
var negativeFilterValues = []string{"no", "false", "-1"}

// processedKeys marks keys with special filtering: true means the key is
// never classified (its value would shadow a more specific tag), false
// means the key is processed regardless of its value.
var processedKeys = map[string]bool{
	"description":  true,
	"cycleway":     true, // [highway=primary][cycleway=lane] parsed as [highway=cycleway]
	"proposed":     true, // [highway=proposed][proposed=primary] parsed as [highway=primary]
	"construction": true, // [highway=primary][construction=primary] parsed as [highway=construction]
	"layer":        false,
	"oneway":       false,
}

func ignoreTag(k, v string) bool {
	if k == "" {
		return true
	}
	if ignore, ok := processedKeys[k]; ok {
		return ignore
	}
	for _, neg := range negativeFilterValues {
		if v == neg {
			return true
		}
	}
	return false
}

// needMatchValue reports whether a tag value may descend the tree. Bare
// numbers are only matched for "admin_level" and "capital"; any new
// numeric type in the classificator needs an entry here, otherwise its
// features are silently dropped.
func needMatchValue(k, v string) bool {
	if !isNumber(v) {
		return true
	}
	return k == "admin_level" || k == "capital"
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// forEachTag calls fn for each eligible tag in stored order until fn
// returns true.
func forEachTag(elem *element.OSMElem, fn func(i int, k, v string) bool) bool {
	for i := range elem.Tags {
		k, v := elem.Tags[i].Key, elem.Tags[i].Value
		if ignoreTag(k, v) {
			continue
		}
		if fn(i, k, v) {
			return true
		}
	}
	return false
}

// forEachTagEx scans like forEachTag but skips positions already consumed
// by earlier matches and any tag whose key contains "name" (names were
// extracted before matching and must never produce a type). A position
// whose tag matches is added to skip, so it is consumed exactly once
// across all match attempts of one element.
func forEachTagEx(elem *element.OSMElem, skip map[int]bool, fn func(k, v string) bool) bool {
	return forEachTag(elem, func(i int, k, v string) bool {
		if skip[i] {
			return false
		}
		if strings.Contains(k, "name") {
			skip[i] = true
			return false
		}
		if fn(k, v) {
			skip[i] = true
			return true
		}
		return false
	})
}
