package classif

import "fmt"

// Type encodes one root-to-node path through the classification tree as a
// fixed-width integer. Bit 0 is always set and marks a valid type. Each
// tree level occupies the next 7 bits and stores the node's sibling index
// plus one; a zero level means the path ends above it. Up to MaxDepth
// levels fit into the 64 bit value.
//
// Truncating a type to the depth of an ancestor yields exactly the
// ancestor's own type, so prefix comparison is an "is-a" check.
type Type uint64

const (
	levelBits = 7
	levelMask = 1<<levelBits - 1

	// MaxIndex is the largest sibling index that can be encoded per level.
	MaxIndex = levelMask - 1

	// MaxDepth is the deepest encodable path, root excluded.
	MaxDepth = 8
)

// EmptyType is a path of depth zero (the tree root itself).
const EmptyType = Type(1)

func (t Type) String() string {
	return fmt.Sprintf("0x%x", uint64(t))
}

// Push appends one level with the given sibling index. Index or depth
// overflow means the tree itself is broken and aborts processing.
func (t Type) Push(index int) Type {
	if index < 0 || index > MaxIndex {
		panic(fmt.Sprintf("classif: sibling index %d out of range", index))
	}
	depth := t.Depth()
	if depth >= MaxDepth {
		panic(fmt.Sprintf("classif: type depth exceeds %d", MaxDepth))
	}
	return t | Type(index+1)<<shift(depth)
}

// Trunc drops all levels below depth.
func (t Type) Trunc(depth int) Type {
	if depth >= MaxDepth {
		return t
	}
	mask := Type(1)<<shift(depth) - 1
	return t & mask
}

// Depth returns the number of encoded levels.
func (t Type) Depth() int {
	d := 0
	for d < MaxDepth && (t>>shift(d))&levelMask != 0 {
		d++
	}
	return d
}

// Index returns the sibling index stored at the given zero-based level,
// or -1 if the path ends above it.
func (t Type) Index(level int) int {
	if level < 0 || level >= MaxDepth {
		return -1
	}
	v := int(t>>shift(level)) & levelMask
	return v - 1
}

func shift(level int) uint {
	return uint(1 + level*levelBits)
}
