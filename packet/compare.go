package packet

import (
	"cmp"
	"fmt"
	"slices"
)

// Compare returns -1 if a orders before b, +1 if after, and 0 if the two
// packets are indistinguishable under the ordering rules. Both arguments
// must be non-nil.
func Compare(a, b Packet) int {
	switch x := a.(type) {
	case Literal:
		switch y := b.(type) {
		case Literal:
			return cmp.Compare(x, y)
		case List:
			return compareLists(List{x}, y)
		}
	case List:
		switch y := b.(type) {
		case Literal:
			return compareLists(x, List{y})
		case List:
			return compareLists(x, y)
		}
	}
	panic(fmt.Sprintf("packet: cannot compare %T with %T", a, b))
}

// compareLists walks both lists in step; the first non-equal pair of
// elements decides, otherwise the shorter list orders first.
func compareLists(a, b List) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Less reports whether a is in the right order before b.
func Less(a, b Packet) bool {
	return Compare(a, b) < 0
}

// Equal reports whether a and b compare as equal. Note that [1] and 1 are
// equal under the wrapping rule although they differ structurally.
func Equal(a, b Packet) bool {
	return Compare(a, b) == 0
}

// Sort orders packets in place. Packets that compare equal keep their
// relative order.
func Sort(packets []Packet) {
	slices.SortStableFunc(packets, Compare)
}
