package huffman

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Separator joins the tree description and the bit string of a serialized
// Payload.
const Separator = ';'

// ErrInvalidUTF8 is returned by Encode when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("huffman: input is not valid UTF-8")

// Payload is the result of encoding a string: the tree used for encoding plus
// the concatenated codes of every input character.
type Payload struct {
	Tree Node
	Bits string
}

// String serializes the Payload as "<tree-json>;<bits>".
func (p Payload) String() string {
	str, err := p.Marshal()
	if err != nil {
		return fmt.Sprintf("%%!(huffman.Payload error: %v)", err)
	}
	return str
}

// Marshal serializes the Payload as "<tree-json>;<bits>".
func (p Payload) Marshal() (string, error) {
	raw, err := MarshalTree(p.Tree)
	if err != nil {
		return "", fmt.Errorf("failed to serialize Huffman tree: %w", err)
	}
	var sb strings.Builder
	sb.Grow(len(raw) + 1 + len(p.Bits))
	sb.Write(raw)
	sb.WriteByte(Separator)
	sb.WriteString(p.Bits)
	return sb.String(), nil
}

// ParsePayload is the inverse of Payload.Marshal.  The tree description may
// itself contain the separator inside a leaf, so the split is made at the
// last separator.
func ParsePayload(str string) (Payload, error) {
	i := strings.LastIndexByte(str, Separator)
	if i < 0 {
		return Payload{}, malformedTree(fmt.Sprintf("missing %q separator", Separator), nil)
	}
	root, err := ParseTree([]byte(str[:i]))
	if err != nil {
		return Payload{}, err
	}
	return Payload{Tree: root, Bits: str[i+1:]}, nil
}

// Encode encodes a string and returns the serialized Payload.
func Encode(input string) (string, error) {
	p, err := EncodePayload(input)
	if err != nil {
		return "", err
	}
	return p.Marshal()
}

// EncodePayload encodes a string: it counts the characters, builds a tree,
// inverts it into a CodeTable, and concatenates the code of every character
// in input order.
//
// The empty string yields ErrEmptyInput.
//
func EncodePayload(input string) (Payload, error) {
	return encodeWith(input, Build)
}

func encodeWith(input string, build func(*FrequencyTable) (Node, error)) (Payload, error) {
	if len(input) == 0 {
		return Payload{}, ErrEmptyInput
	}
	if !utf8.ValidString(input) {
		return Payload{}, ErrInvalidUTF8
	}

	root, err := build(CountString(input))
	if err != nil {
		return Payload{}, err
	}
	codes := Invert(root)

	var sb strings.Builder
	sb.Grow(len(input) * int(codes.MaxSize()))
	for _, ch := range input {
		hc := codes[Symbol(ch)]
		hc.appendTo(&sb)
	}
	return Payload{Tree: root, Bits: sb.String()}, nil
}

// Decode parses a serialized Payload and decodes it back into the original
// string.  All errors are of type *MalformedPayloadError.
func Decode(payload string) (string, error) {
	p, err := ParsePayload(payload)
	if err != nil {
		return "", err
	}
	return DecodePayload(p)
}

// DecodePayload decodes a Payload back into the original string.
func DecodePayload(p Payload) (string, error) {
	if isNilNode(p.Tree) {
		return "", malformedTree("missing tree", nil)
	}
	if len(p.Bits) == 0 {
		return "", malformedBits(0, "empty bit string")
	}
	return NewDecoder(p.Tree).DecodeString(p.Bits)
}
