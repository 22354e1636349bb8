package packet

import "slices"

// SumOrderedIndices returns the sum of the 1-based indices of the pairs
// whose left packet orders strictly before the right one.
func SumOrderedIndices(pairs []Pair) int {
	sum := 0
	for i, p := range pairs {
		if Less(p.Left, p.Right) {
			sum += i + 1
		}
	}
	return sum
}

// entry tags a packet with the divider it came from (0 for input packets),
// so dividers are found by identity after sorting.
type entry struct {
	p       Packet
	divider int
}

// DecoderKey sorts every packet of pairs together with the two dividers and
// returns the product of the dividers' 1-based positions.
func DecoderKey(pairs []Pair) int {
	dividers := Dividers()
	entries := make([]entry, 0, 2*len(pairs)+len(dividers))
	for i, d := range dividers {
		entries = append(entries, entry{p: d, divider: i + 1})
	}
	for _, pr := range pairs {
		entries = append(entries, entry{p: pr.Left}, entry{p: pr.Right})
	}

	slices.SortStableFunc(entries, func(a, b entry) int { return Compare(a.p, b.p) })

	key := 1
	for i, e := range entries {
		if e.divider != 0 {
			key *= i + 1
		}
	}
	return key
}

// CountOrdered parses text and returns SumOrderedIndices of its pairs.
func CountOrdered(text string) (int, error) {
	pairs, err := ParsePairs(text)
	if err != nil {
		return 0, err
	}
	return SumOrderedIndices(pairs), nil
}

// Decode parses text and returns DecoderKey of its pairs.
func Decode(text string) (int, error) {
	pairs, err := ParsePairs(text)
	if err != nil {
		return 0, err
	}
	return DecoderKey(pairs), nil
}
