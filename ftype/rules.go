package ftype

import (
	"github.com/osmgen/osm2feature/element"
)

// rule binds a tag key and a value pattern to an action. Patterns:
//	"*"  any value
//	"!"  only negative values (no, none, false)
//	"~"  only non-negative values
// anything else requires an exact value match.
// Actions receive pointers to the tag's key and value and may rewrite or
// clear them in place to consume the tag.
type rule struct {
	key   string
	value string
	fn    func(k, v *string)
}

func isNegativeValue(value string) bool {
	switch value {
	case "no", "none", "false":
		return true
	}
	return false
}

// applyRules invokes the action of every rule matching a tag. Tags are
// scanned in stored order, rules in table order, so the invocation order
// is reproducible. One tag may trigger several rules.
func applyRules(elem *element.OSMElem, rules []rule) {
	for i := range elem.Tags {
		tag := &elem.Tags[i]
		for _, r := range rules {
			if tag.Key != r.key {
				continue
			}
			take := false
			switch r.value {
			case "*":
				take = true
			case "!":
				take = isNegativeValue(tag.Value)
			case "~":
				take = !isNegativeValue(tag.Value)
			}
			if take || tag.Value == r.value {
				r.fn(&tag.Key, &tag.Value)
			}
		}
	}
}
