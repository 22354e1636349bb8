package packet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/packet"
)

func TestLess_Rules(t *testing.T) {
	p := packet.MustParse
	cases := []struct {
		name string
		a, b packet.Packet
		want bool
	}{
		{"literals", packet.Literal(1), packet.Literal(2), true},
		{"literals reversed", packet.Literal(2), packet.Literal(1), false},
		{"literals equal", packet.Literal(7), packet.Literal(7), false},
		{"first difference decides", p("[1,1,3,1,1]"), p("[1,1,5,1,1]"), true},
		{"wrapping rule", p("[[1],[2,3,4]]"), p("[[1],4]"), true},
		{"wrapped literal larger", p("[9]"), p("[[8,7,6]]"), false},
		{"left runs out first", p("[[4,4],4,4]"), p("[[4,4],4,4,4]"), true},
		{"right runs out first", p("[7,7,7,7]"), p("[7,7,7]"), false},
		{"empty before non-empty", p("[]"), p("[3]"), true},
		{"deeper empty", p("[[[]]]"), p("[[]]"), false},
		{"deep difference", p("[1,[2,[3,[4,[5,6,7]]]],8,9]"), p("[1,[2,[3,[4,[5,6,0]]]],8,9]"), false},
		{"literal vs list", packet.Literal(1), p("[2]"), true},
		{"list vs literal", p("[[1]]"), packet.Literal(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, packet.Less(tc.a, tc.b), "Less(%s, %s)", tc.a, tc.b)
		})
	}
}

// TestCompare_ThreeWay separates the "equal" outcome that a boolean less
// would merge with "greater".
func TestCompare_ThreeWay(t *testing.T) {
	p := packet.MustParse
	assert.Equal(t, 0, packet.Compare(p("[[1],2]"), p("[1,[2]]")), "equal under wrapping")
	assert.Equal(t, 0, packet.Compare(packet.Literal(5), p("[5]")))
	assert.True(t, packet.Equal(p("[[[3]]]"), packet.Literal(3)))
	assert.Equal(t, -1, packet.Compare(p("[]"), p("[[]]")))
	assert.Equal(t, 1, packet.Compare(p("[[]]"), p("[]")))
}

// TestCompare_Antisymmetric checks Compare(a,b) == -Compare(b,a) and
// reflexivity over every sample packet.
func TestCompare_Antisymmetric(t *testing.T) {
	pairs, err := packet.ParsePairs(samplePairs)
	require.NoError(t, err)

	var all []packet.Packet
	for _, pr := range pairs {
		all = append(all, pr.Left, pr.Right)
	}
	d := packet.Dividers()
	all = append(all, d[0], d[1])

	for _, a := range all {
		assert.Equal(t, 0, packet.Compare(a, a), "reflexive %s", a)
		for _, b := range all {
			assert.Equal(t, packet.Compare(a, b), -packet.Compare(b, a), "%s vs %s", a, b)
		}
	}
}

func TestCompare_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { packet.Compare(nil, packet.Literal(1)) })
}

func TestSort(t *testing.T) {
	p := packet.MustParse
	packets := []packet.Packet{p("[3]"), p("[[1]]"), p("[]"), p("[1]"), p("[[]]")}
	packet.Sort(packets)

	var got []string
	for _, pk := range packets {
		got = append(got, pk.String())
	}
	// [[1]] and [1] compare equal, so their input order is kept
	assert.Equal(t, []string{"[]", "[[]]", "[[1]]", "[1]", "[3]"}, got)
}

func TestSample_Tasks(t *testing.T) {
	ordered, err := packet.CountOrdered(samplePairs)
	require.NoError(t, err)
	assert.Equal(t, 13, ordered)

	key, err := packet.Decode(samplePairs)
	require.NoError(t, err)
	assert.Equal(t, 140, key)
}

// TestDecoderKey_InputEqualToDivider ensures an input packet equal to a
// divider is not mistaken for it.
func TestDecoderKey_InputEqualToDivider(t *testing.T) {
	pairs := []packet.Pair{{Left: packet.MustParse("[[2]]"), Right: packet.MustParse("[1]")}}
	// sorted: [1], divider [[2]], input [[2]], divider [[6]]
	assert.Equal(t, 2*4, packet.DecoderKey(pairs))
}

func TestDecoderKey_NoPairs(t *testing.T) {
	assert.Equal(t, 2, packet.DecoderKey(nil))
}

func TestDividers_Fresh(t *testing.T) {
	d := packet.Dividers()
	d[0].(packet.List)[0] = packet.Literal(99)
	assert.Equal(t, "[[2]]", packet.Dividers()[0].String())
}
