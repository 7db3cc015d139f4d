package ftype

import (
	"github.com/osmgen/osm2feature/classif"
	"github.com/osmgen/osm2feature/element"
)

// cachedTypes resolves the handful of types the refinement stage keys on
// once per classifier. Types missing from the tree stay zero and disable
// the corresponding refinement.
type cachedTypes struct {
	entrance  classif.Type
	highway   classif.Type
	address   classif.Type
	oneway    classif.Type
	private   classif.Type
	lit       classif.Type
	nofoot    classif.Type
	yesfoot   classif.Type
	rwStation classif.Type
	rwSubway  classif.Type
}

func newCachedTypes(tree *classif.Tree) cachedTypes {
	lookup := func(path ...string) classif.Type {
		t, ok := tree.TypeByPath(path...)
		if !ok {
			return 0
		}
		return t
	}
	return cachedTypes{
		entrance:  lookup("entrance"),
		highway:   lookup("highway"),
		address:   lookup("building", "address"),
		oneway:    lookup("hwtag", "oneway"),
		private:   lookup("hwtag", "private"),
		lit:       lookup("hwtag", "lit"),
		nofoot:    lookup("hwtag", "nofoot"),
		yesfoot:   lookup("hwtag", "yesfoot"),
		rwStation: lookup("railway", "station"),
		rwSubway:  lookup("railway", "station", "subway"),
	}
}

// Categories are matched at a coarser depth than full paths.

func (ct *cachedTypes) isHighway(t classif.Type) bool {
	return ct.highway != 0 && t.Trunc(1) == ct.highway
}

func (ct *cachedTypes) isRwStation(t classif.Type) bool {
	return ct.rwStation != 0 && t == ct.rwStation
}

func (ct *cachedTypes) isRwSubway(t classif.Type) bool {
	return ct.rwSubway != 0 && t.Trunc(3) == ct.rwSubway
}

// setSubwayCity specializes an element's subway or station type to the
// city-specific subway subtype, if the tree knows the city.
func (c *Classifier) setSubwayCity(params *FeatureParams, city string) {
	cityType, ok := c.tree.TypeByPath("railway", "station", "subway", city)
	if !ok {
		return
	}
	for i, t := range params.Types {
		if c.cached.isRwSubway(t) || c.cached.isRwStation(t) {
			params.Types[i] = cityType
			return
		}
	}
}

// subwayNetworks maps network/operator tag values of known transit
// systems to the subway subtype city.
var subwayNetworks = []struct {
	key   string
	value string
	city  string
}{
	{"network", "London Underground", "london"},
	{"network", "New York City Subway", "newyork"},
	{"network", "Московский метрополитен", "moscow"},
	{"network", "Петербургский метрополитен", "spb"},
	{"network", "Verkehrsverbund Berlin-Brandenburg", "berlin"},
	{"network", "Минский метрополитен", "minsk"},

	{"network", "Київський метрополітен", "kiev"},
	{"operator", "КП «Київський метрополітен»", "kiev"},

	{"network", "RATP", "paris"},
	{"network", "Metro de Barcelona", "barcelona"},

	{"network", "Metro de Madrid", "madrid"},
	{"operator", "Metro de Madrid", "madrid"},

	{"network", "Metropolitana di Roma", "roma"},
	{"network", "ATAC", "roma"},
}

func (c *Classifier) subwayRules(params *FeatureParams) []rule {
	rules := make([]rule, 0, len(subwayNetworks))
	for _, n := range subwayNetworks {
		city := n.city
		rules = append(rules, rule{n.key, n.value, func(k, v *string) {
			c.setSubwayCity(params, city)
		}})
	}
	return rules
}

// refine applies the post-classification rules: entrance suppression for
// addressed features and per-category auxiliary types, each category at
// most once per element.
func (c *Classifier) refine(elem *element.OSMElem, params *FeatureParams) {
	if params.hasHouse() {
		// Delete "entrance" type for house number (use it only with refs).
		// Add "address" type if we have house number but no valid types.
		if c.cached.entrance != 0 && params.PopExactType(c.cached.entrance) {
			params.Names = nil
			if c.cached.address != 0 {
				params.AddType(c.cached.address)
			}
		}
	}

	highwayDone := false
	subwayDone := false
	railwayDone := false

	// refinement below appends to params.Types, so iterate over a copy
	types := make([]classif.Type, len(params.Types))
	copy(types, params.Types)

	// trees without the hwtag branch get no auxiliary types
	addType := func(t classif.Type) {
		if t != 0 {
			params.AddType(t)
		}
	}

	for _, t := range types {
		if !highwayDone && c.cached.isHighway(t) {
			applyRules(elem, []rule{
				{"oneway", "yes", func(k, v *string) { addType(c.cached.oneway) }},
				{"oneway", "1", func(k, v *string) { addType(c.cached.oneway) }},
				{"oneway", "-1", func(k, v *string) {
					addType(c.cached.oneway)
					params.ReverseGeometry = true
				}},

				{"access", "private", func(k, v *string) { addType(c.cached.private) }},

				{"lit", "~", func(k, v *string) { addType(c.cached.lit) }},

				{"foot", "!", func(k, v *string) { addType(c.cached.nofoot) }},

				{"foot", "~", func(k, v *string) { addType(c.cached.yesfoot) }},
				{"sidewalk", "~", func(k, v *string) { addType(c.cached.yesfoot) }},
			})
			highwayDone = true
		}

		if !subwayDone && c.cached.isRwSubway(t) {
			applyRules(elem, c.subwayRules(params))
			subwayDone = true
		}

		if !subwayDone && !railwayDone && c.cached.isRwStation(t) {
			applyRules(elem, []rule{
				{"network", "London Underground", func(k, v *string) {
					c.setSubwayCity(params, "london")
				}},
			})
			railwayDone = true
		}
	}
}
