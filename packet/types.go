package packet

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for packet parsing.
var (
	// ErrEmpty is returned for a blank packet line.
	ErrEmpty = errors.New("packet: empty packet")

	// ErrUnexpectedRune is returned for characters outside the packet alphabet.
	ErrUnexpectedRune = errors.New("packet: unexpected character")

	// ErrNumberRange is returned when a literal overflows uint32.
	ErrNumberRange = errors.New("packet: number out of range")

	// ErrUnbalanced is returned for a missing or stray bracket.
	ErrUnbalanced = errors.New("packet: unbalanced brackets")

	// ErrTrailingInput is returned when tokens follow the outermost packet.
	ErrTrailingInput = errors.New("packet: trailing input after packet")

	// ErrMalformedPair is returned when a pair group does not hold two packets.
	ErrMalformedPair = errors.New("packet: malformed pair")
)

// TokenKind enumerates the lexical classes of a packet line.
type TokenKind uint8

const (
	// ListStart is '['.
	ListStart TokenKind = iota
	// ListEnd is ']'.
	ListEnd
	// Number is a decimal literal; its value is in Token.Value.
	Number
)

// String returns the token kind name.
func (k TokenKind) String() string {
	switch k {
	case ListStart:
		return "ListStart"
	case ListEnd:
		return "ListEnd"
	case Number:
		return "Number"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one lexical element. Value is meaningful only for Number.
type Token struct {
	Kind  TokenKind
	Value uint32
}

// Packet is either a Literal or a List. The set of variants is closed.
type Packet interface {
	// String serializes the packet back to its bracketed text form.
	String() string
	isPacket()
}

// Literal is a scalar packet.
type Literal uint32

// List is a nested packet; an empty List is "[]".
type List []Packet

func (Literal) isPacket() {}
func (List) isPacket()    {}

// String returns the decimal form of the literal.
func (l Literal) String() string {
	return strconv.FormatUint(uint64(l), 10)
}

// String returns the bracketed, comma-separated form of the list.
func (l List) String() string {
	var sb strings.Builder
	l.write(&sb)
	return sb.String()
}

func (l List) write(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, p := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		switch v := p.(type) {
		case List:
			v.write(sb)
		case Literal:
			sb.WriteString(v.String())
		}
	}
	sb.WriteByte(']')
}

// Pair is one blank-line separated group of two packets.
type Pair struct {
	Left, Right Packet
}

// Dividers returns fresh copies of the two marker packets [[2]] and [[6]].
func Dividers() [2]Packet {
	return [2]Packet{
		List{List{Literal(2)}},
		List{List{Literal(6)}},
	}
}
