package huffman

import (
	"fmt"
	"strings"
)

// MaxCodeSize is the maximum number of bits in a Code.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit, i.e. the bit closest to the
	// root of the tree.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is too long: %d bits, max %d", str, len(str), MaxCodeSize)
	}
	var hc Code
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q: invalid bit %q at index %d", str, str[index], index)
		}
	}
	return hc, nil
}

// Append returns this Code extended by one more bit.  Only the lowest bit of
// the argument is used.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Parent returns this Code with its last bit removed.
func (hc Code) Parent() Code {
	if hc.Size == 0 {
		return hc
	}
	return Code{Size: hc.Size - 1, Bits: hc.Bits >> 1}
}

// Sibling returns this Code with its last bit flipped.
func (hc Code) Sibling() Code {
	return Code{Size: hc.Size, Bits: hc.Bits ^ 1}
}

// HasPrefix returns true iff prefix is a (possibly improper) prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code, one '0' or '1'
// character per bit.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	hc.appendTo(&sb)
	return sb.String()
}

// GoString returns the quoted string representation of this Code.
func (hc Code) GoString() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return "\"" + hc.String() + "\""
}

func (hc Code) appendTo(sb *strings.Builder) {
	for index := hc.Size; index > 0; index-- {
		if (hc.Bits>>(index-1))&1 == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
}

var (
	_ fmt.Stringer   = Code{}
	_ fmt.GoStringer = Code{}
)
