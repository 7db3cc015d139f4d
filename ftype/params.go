package ftype

import (
	"math"
	"sort"
	"strconv"

	"github.com/osmgen/osm2feature/classif"
)

// layerBound clamps the layer tag to a symmetric range.
const layerBound = 10

// FeatureParams accumulates the typed representation of one element. It
// is created empty per element, filled by the classification pipeline and
// never shared between elements.
type FeatureParams struct {
	// Types in insertion order; duplicates are collapsed by Finish.
	Types []classif.Type

	// Names maps language code to the NFKC-normalized name.
	Names map[string]string

	HouseName   string
	HouseNumber string
	Street      string
	Flats       string

	Rank            uint8
	Ref             string
	Layer           int8
	ReverseGeometry bool

	// Metadata holds auxiliary fields (hours, cuisine, stars, ...) added
	// by an external collector after classification.
	Metadata map[string]string

	finished bool
}

func (p *FeatureParams) AddType(t classif.Type) {
	p.Types = append(p.Types, t)
	p.finished = false
}

// PopExactType removes a type by exact match and reports whether it was
// present. Truncated or partial matches are never removed.
func (p *FeatureParams) PopExactType(t classif.Type) bool {
	found := false
	types := p.Types[:0]
	for _, existing := range p.Types {
		if existing == t {
			found = true
			continue
		}
		types = append(types, existing)
	}
	p.Types = types
	return found
}

func (p *FeatureParams) AddName(lang, name string) {
	if p.Names == nil {
		p.Names = make(map[string]string)
	}
	p.Names[lang] = name
}

func (p *FeatureParams) AddHouseName(name string) {
	p.HouseName = name
}

// SetHouseNumber stores v as house number if it is an actual number and
// reports success. Non-numbers are the caller's problem; the base rules
// redirect them to the house name.
func (p *FeatureParams) SetHouseNumber(v string) bool {
	if _, err := strconv.ParseUint(v, 10, 64); err != nil {
		return false
	}
	p.HouseNumber = v
	return true
}

func (p *FeatureParams) hasHouse() bool {
	return p.HouseName != "" || p.HouseNumber != ""
}

// SetRankFromPopulation derives the numeric rank. Unparsable populations
// leave the rank unset.
func (p *FeatureParams) SetRankFromPopulation(v string) {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		return
	}
	rank := math.Log(float64(n)) / math.Log(1.1)
	if rank > math.MaxUint8 {
		rank = math.MaxUint8
	}
	p.Rank = uint8(rank)
}

// SetLayer parses and clamps the layer tag. The first layer wins;
// parsing failures leave the layer unset.
func (p *FeatureParams) SetLayer(v string) {
	if p.Layer != 0 {
		return
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return
	}
	if n > layerBound {
		n = layerBound
	} else if n < -layerBound {
		n = -layerBound
	}
	p.Layer = int8(n)
}

func (p *FeatureParams) AddMetadata(key, value string) {
	if p.Metadata == nil {
		p.Metadata = make(map[string]string)
	}
	p.Metadata[key] = value
}

// Finish collapses the accumulated types into their canonical sorted,
// duplicate-free form. It is idempotent.
func (p *FeatureParams) Finish() {
	if p.finished {
		return
	}
	sort.Slice(p.Types, func(i, j int) bool { return p.Types[i] < p.Types[j] })
	types := p.Types[:0]
	var last classif.Type
	for _, t := range p.Types {
		if len(types) > 0 && t == last {
			continue
		}
		types = append(types, t)
		last = t
	}
	p.Types = types
	p.finished = true
}

// HasType reports whether t is in the type set (exact match).
func (p *FeatureParams) HasType(t classif.Type) bool {
	for _, existing := range p.Types {
		if existing == t {
			return true
		}
	}
	return false
}
