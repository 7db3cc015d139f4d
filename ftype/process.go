package ftype

import (
	"github.com/osmgen/osm2feature/classif"
	"github.com/osmgen/osm2feature/element"
)

// MetadataCollector is invoked once per element after classification. It
// may consume remaining tags (clearing them in place) to fill auxiliary
// fields like opening hours or cuisine.
type MetadataCollector func(elem *element.OSMElem, params *FeatureParams)

type Option func(*Classifier)

// WithDrawable replaces the drawability predicate; by default the
// drawable flags of the tree decide which matched types are kept.
func WithDrawable(fn func(classif.Type) bool) Option {
	return func(c *Classifier) { c.drawable = fn }
}

func WithMetadata(fn MetadataCollector) Option {
	return func(c *Classifier) { c.metadata = fn }
}

// Classifier turns raw element tags into FeatureParams. It holds only
// read-only state (tree reference, cached types) and is safe for
// concurrent use from multiple workers.
type Classifier struct {
	tree     *classif.Tree
	cached   cachedTypes
	drawable func(classif.Type) bool
	metadata MetadataCollector
}

func New(tree *classif.Tree, opts ...Option) *Classifier {
	c := &Classifier{
		tree:     tree,
		cached:   newCachedTypes(tree),
		drawable: tree.IsDrawable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify runs the full pipeline on one element and returns its feature
// parameters. The element's tags are consumed in the process; classifying
// the same element value twice requires a fresh copy of its tags.
func (c *Classifier) Classify(elem *element.OSMElem) *FeatureParams {
	params := &FeatureParams{}

	// preprocess: derive a layer from bridge/tunnel unless one is tagged
	hasLayer := false
	layer := ""
	applyRules(elem, []rule{
		{"bridge", "yes", func(k, v *string) { layer = "1" }},
		{"tunnel", "yes", func(k, v *string) { layer = "-1" }},
		{"layer", "*", func(k, v *string) { hasLayer = true }},
	})
	if !hasLayer && layer != "" {
		elem.AddTag("layer", layer)
	}

	// feature name on all languages
	extractNames(elem, params)

	// base rules
	applyRules(elem, []rule{
		{"atm", "yes", func(k, v *string) { *v = *k; *k = "amenity" }},
		{"restaurant", "yes", func(k, v *string) { *v = *k; *k = "amenity" }},
		{"hotel", "yes", func(k, v *string) { *v = *k; *k = "tourism" }},
		{"addr:housename", "*", func(k, v *string) {
			params.AddHouseName(*v)
			*k = ""
			*v = ""
		}},
		{"addr:street", "*", func(k, v *string) {
			params.Street = *v
			*k = ""
			*v = ""
		}},
		{"addr:flats", "*", func(k, v *string) {
			params.Flats = *v
			*k = ""
			*v = ""
		}},
		{"addr:housenumber", "*", func(k, v *string) {
			// treat "numbers" like names if it's not an actual number
			if !params.SetHouseNumber(*v) {
				params.AddHouseName(*v)
			}
			*k = ""
			*v = ""
		}},
		{"population", "*", func(k, v *string) {
			params.SetRankFromPopulation(*v)
			*k = ""
			*v = ""
		}},
		{"ref", "*", func(k, v *string) {
			// road numbers only
			params.Ref = *v
			*k = ""
			*v = ""
		}},
		{"layer", "*", func(k, v *string) { params.SetLayer(*v) }},
	})

	c.matchTypes(elem, params)
	c.refine(elem, params)

	params.Finish()

	if c.metadata != nil {
		c.metadata(elem, params)
	}
	return params
}
