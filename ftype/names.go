package ftype

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/osmgen/osm2feature/element"
)

// nameExtractor collects name/name:<lang>/int_name tags into the
// per-language name mapping and clears each consumed tag so the type
// matcher never sees it.
type nameExtractor struct {
	saved  map[string]bool
	params *FeatureParams
}

func isNameSeparator(r rune) bool {
	return r == '\t' || r == ' ' || r == ':'
}

// langByKey maps a tag key to a language code. The first occurrence per
// language wins; later ones are rejected.
func (n *nameExtractor) langByKey(k string) (string, bool) {
	tokens := strings.FieldsFunc(k, isNameSeparator)
	if len(tokens) == 0 {
		return "", false
	}

	// international (latin) name
	if tokens[0] == "int_name" {
		return n.save("int_name")
	}

	if tokens[0] != "name" {
		return "", false
	}

	lang := "default"
	if len(tokens) > 1 {
		lang = tokens[1]
	}
	// replace dummy arabian tag with correct tag
	if lang == "ar1" {
		lang = "ar"
	}
	return n.save(lang)
}

func (n *nameExtractor) save(lang string) (string, bool) {
	if n.saved[lang] {
		return "", false
	}
	n.saved[lang] = true
	return lang, true
}

func (n *nameExtractor) process(k, v *string) {
	if *v == "" {
		return
	}
	lang, ok := n.langByKey(*k)
	if !ok {
		return
	}
	// NFKC, so that visually identical names with different code point
	// sequences compare equal in search.
	n.params.AddName(lang, norm.NFKC.String(*v))
	*k = ""
	*v = ""
}

func extractNames(elem *element.OSMElem, params *FeatureParams) {
	extractor := nameExtractor{saved: make(map[string]bool), params: params}
	forEachTag(elem, func(i int, k, v string) bool {
		extractor.process(&elem.Tags[i].Key, &elem.Tags[i].Value)
		return false
	})
}
