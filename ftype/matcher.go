package ftype

import (
	"github.com/osmgen/osm2feature/classif"
	"github.com/osmgen/osm2feature/element"
)

// matchTypes repeatedly walks the classification tree along the element's
// unconsumed tags and assigns one packed type per completed path. Every
// tag feeds at most one path, tracked by a skip set over tag positions;
// tags of discarded (non-drawable) paths stay consumed.
func (c *Classifier) matchTypes(elem *element.OSMElem, params *FeatureParams) {
	skip := make(map[int]bool)
	root := c.tree.Root()

	var path []*classif.Node
	var current *classif.Node

	// descend by key, then one level further if the value matches too
	matchTag := func(k, v string) bool {
		child := current.Child(k)
		if child == nil {
			return false
		}
		path = append(path, child)
		if needMatchValue(k, v) {
			if vchild := child.Child(v); vchild != nil {
				path = append(path, vchild)
			}
		}
		return true
	}

	for {
		current = root
		path = path[:0]

		// find the first tag that starts a path at the root
		if !forEachTagEx(elem, skip, matchTag) {
			break
		}
		if len(path) == 0 {
			panic("ftype: root match produced an empty path")
		}

		for {
			// continue from the last node, trying values first
			current = path[len(path)-1]

			var byValue *classif.Node
			forEachTagEx(elem, skip, func(k, v string) bool {
				if !needMatchValue(k, v) {
					return false
				}
				byValue = current.Child(v)
				return byValue != nil
			})
			if byValue != nil {
				path = append(path, byValue)
				continue
			}

			// no value matched: a key may still open the next level
			// (e.g. area=yes below highway/footway)
			if !forEachTagEx(elem, skip, matchTag) {
				break
			}
		}

		t := classif.EmptyType
		for _, node := range path {
			t = t.Push(node.Index())
		}
		// keep only types with drawing rules
		if c.drawable(t) {
			params.AddType(t)
		}
	}
}
