package packet

import (
	"fmt"
	"math"
	"strings"
)

// Tokenize converts one packet line into a flat token sequence.
// Commas are skipped and digits accumulate greedily; any other character,
// blanks included, is ErrUnexpectedRune.
func Tokenize(line string) ([]Token, error) {
	tokens := make([]Token, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '[':
			tokens = append(tokens, Token{Kind: ListStart})
		case c == ']':
			tokens = append(tokens, Token{Kind: ListEnd})
		case c == ',':
		case c >= '0' && c <= '9':
			start := i
			var n uint64
			for ; i < len(line) && line[i] >= '0' && line[i] <= '9'; i++ {
				n = n*10 + uint64(line[i]-'0')
				if n > math.MaxUint32 {
					return nil, fmt.Errorf("%w: %q at column %d", ErrNumberRange, line[start:i+1], start+1)
				}
			}
			i-- // the outer loop advances past the last digit
			tokens = append(tokens, Token{Kind: Number, Value: uint32(n)})
		default:
			return nil, fmt.Errorf("%w: %q at column %d", ErrUnexpectedRune, c, i+1)
		}
	}

	return tokens, nil
}

// parser consumes a token slice by recursive descent.
type parser struct {
	tokens []Token
	pos    int
}

// Parse reads one packet line. A well-formed line yields a List; a line
// holding a single bare number yields a Literal.
func Parse(line string) (Packet, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	p := &parser{tokens: tokens}
	pkt, err := p.packet()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: %d tokens after packet", ErrTrailingInput, len(p.tokens)-p.pos)
	}

	return pkt, nil
}

// MustParse is like Parse but panics on error. Intended for fixed literals.
func MustParse(line string) Packet {
	p, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return p
}

// packet consumes one packet starting at the current token.
func (p *parser) packet() (Packet, error) {
	t := p.tokens[p.pos]
	p.pos++
	switch t.Kind {
	case Number:
		return Literal(t.Value), nil
	case ListStart:
		return p.list()
	default:
		return nil, fmt.Errorf("%w: stray ']' at token %d", ErrUnbalanced, p.pos)
	}
}

// list consumes children up to and including the matching ListEnd.
func (p *parser) list() (Packet, error) {
	items := List{}
	for p.pos < len(p.tokens) {
		if p.tokens[p.pos].Kind == ListEnd {
			p.pos++
			return items, nil
		}
		child, err := p.packet()
		if err != nil {
			return nil, err
		}
		items = append(items, child)
	}

	return nil, fmt.Errorf("%w: missing ']'", ErrUnbalanced)
}

// ParsePairs reads blank-line separated groups of exactly two packets.
// Surrounding blanks on each line are trimmed. Groups are numbered from 1
// in error messages, counting only non-empty groups.
func ParsePairs(text string) ([]Pair, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var pairs []Pair
	for _, group := range strings.Split(strings.TrimSpace(text), "\n\n") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		n := len(pairs) + 1
		lines := strings.Split(group, "\n")
		if len(lines) != 2 {
			return nil, fmt.Errorf("%w: group %d has %d lines", ErrMalformedPair, n, len(lines))
		}
		left, err := Parse(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, fmt.Errorf("pair %d left: %w", n, err)
		}
		right, err := Parse(strings.TrimSpace(lines[1]))
		if err != nil {
			return nil, fmt.Errorf("pair %d right: %w", n, err)
		}
		pairs = append(pairs, Pair{Left: left, Right: right})
	}

	return pairs, nil
}
