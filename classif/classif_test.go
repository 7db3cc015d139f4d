package classif

import (
	"testing"
)

const testTree = `
types:
  - name: highway
    types:
      - name: motorway
      - name: primary
      - name: footway
        types:
          - name: area
  - name: railway
    types:
      - name: station
        types:
          - name: subway
            types:
              - name: london
              - name: moscow
  - name: building
    types:
      - name: address
        drawable: false
`

func TestTypePacking(t *testing.T) {
	typ := EmptyType
	typ = typ.Push(0)
	typ = typ.Push(2)
	typ = typ.Push(0)

	if d := typ.Depth(); d != 3 {
		t.Fatal(d)
	}
	for level, want := range []int{0, 2, 0} {
		if got := typ.Index(level); got != want {
			t.Fatalf("level %d: got %d want %d", level, got, want)
		}
	}
	if typ.Index(3) != -1 {
		t.Fatal("expected no fourth level")
	}
}

func TestTypeTruncIsAncestor(t *testing.T) {
	tree := MustParse(testTree)

	subway, ok := tree.TypeByPath("railway", "station", "subway", "london")
	if !ok {
		t.Fatal("missing type")
	}
	station, _ := tree.TypeByPath("railway", "station")

	if subway.Trunc(2) != station {
		t.Fatalf("trunc %v != %v", subway.Trunc(2), station)
	}
	// different depth, shared prefix: still different codes
	if subway == station {
		t.Fatal("distinct depths must encode differently")
	}
	if subway.Trunc(MaxDepth) != subway {
		t.Fatal("trunc beyond depth must be identity")
	}
}

func TestTypePushOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on depth overflow")
		}
	}()
	typ := EmptyType
	for i := 0; i <= MaxDepth; i++ {
		typ = typ.Push(0)
	}
}

func TestTreeLookup(t *testing.T) {
	tree := MustParse(testTree)

	root := tree.Root()
	if root.Child("highway") == nil || root.Child("bogus") != nil {
		t.Fatal("root child lookup")
	}
	if idx := root.Child("railway").Index(); idx != 1 {
		t.Fatal(idx)
	}

	typ, ok := tree.TypeByPath("highway", "footway", "area")
	if !ok {
		t.Fatal("missing type")
	}
	if path := tree.PathByType(typ); path != "highway/footway/area" {
		t.Fatal(path)
	}
	if node := tree.NodeByType(typ); node == nil || node.Name() != "area" {
		t.Fatal(node)
	}

	if _, ok := tree.TypeByPath("highway", "tertiary"); ok {
		t.Fatal("unexpected type")
	}
}

func TestTreeIsDrawable(t *testing.T) {
	tree := MustParse(testTree)

	primary, _ := tree.TypeByPath("highway", "primary")
	if !tree.IsDrawable(primary) {
		t.Fatal("primary should be drawable")
	}
	address, _ := tree.TypeByPath("building", "address")
	if tree.IsDrawable(address) {
		t.Fatal("address is marked not drawable")
	}
	if tree.IsDrawable(EmptyType) {
		t.Fatal("root is never drawable")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("types:\n  - name: a\n  - name: a\n")); err == nil {
		t.Fatal("expected duplicate name error")
	}
	if _, err := Parse([]byte("types:\n  - name: \n")); err == nil {
		t.Fatal("expected unnamed type error")
	}
}
