// Package packet parses and orders nested list packets such as
// [1,[2,[3,4]],5].
//
// What
//
//   - Packet is a recursive tagged union with two variants: Literal (an
//     unsigned integer) and List (an ordered sequence of packets).
//   - Tokenize flattens one line into ListStart, ListEnd and Number tokens;
//     commas are separators only and multi-digit numbers are read greedily.
//   - Parse builds the packet tree by recursive descent over the tokens.
//   - Compare is a three-way ordering:
//   - two literals compare by value;
//   - two lists compare element-wise, the first difference decides, and a
//     list that runs out first is smaller;
//   - a literal compared with a list is wrapped in a singleton list first.
//   - SumOrderedIndices and DecoderKey answer the two pair/sort questions
//     asked of a packet stream.
//
// Why three-way
//
//	A boolean "less" collapses "equal" and "greater" into one outcome, which
//	is not a strict weak ordering once equal packets exist. Compare keeps the
//	three outcomes distinct so slices.SortStableFunc is well defined, and the
//	divider packets are located by identity rather than by equality.
//
// Complexity (n = tokens in a line, N = packets)
//
//   - Tokenize, Parse: O(n) time, O(depth) stack.
//   - Compare:         O(min(|a|, |b|)) over the flattened trees.
//   - DecoderKey:      O(N log N) comparisons.
//
// Errors
//
//   - ErrEmpty:           blank packet line.
//   - ErrUnexpectedRune:  character other than digits, '[', ']' or ','.
//   - ErrNumberRange:     literal does not fit in 32 bits.
//   - ErrUnbalanced:      missing or stray bracket.
//   - ErrTrailingInput:   tokens after the outermost packet.
//   - ErrMalformedPair:   a blank-line separated group without two packets.
package packet
