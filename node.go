package huffman

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Node is a node in a Huffman tree.  It is either a *Leaf or an *Internal.
type Node interface {
	// Weight returns the sum of the frequencies of all leaves at or below
	// this node.  Trees produced by ParseTree have weight 0 throughout.
	Weight() uint64

	json.Marshaler

	isNode()
}

// Leaf is a Node holding exactly one Symbol.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// NewLeaf constructs a Leaf.
func NewLeaf(symbol Symbol, weight uint64) *Leaf {
	return &Leaf{symbol: symbol, weight: weight}
}

// Symbol returns the Symbol held by this Leaf.
func (n *Leaf) Symbol() Symbol { return n.symbol }

// Weight fulfills Node.
func (n *Leaf) Weight() uint64 { return n.weight }

// MarshalJSON renders this Leaf as a one-character JSON string.
func (n *Leaf) MarshalJSON() ([]byte, error) {
	if !utf8.ValidRune(rune(n.symbol)) {
		return nil, fmt.Errorf("huffman: cannot serialize invalid symbol %d", n.symbol)
	}
	return json.Marshal(string(rune(n.symbol)))
}

func (*Leaf) isNode() {}

// Internal is a Node with children labeled 0 and 1.
//
// Build always populates both children.  Trees assembled by hand or decoded by
// ParseTree may leave one child nil.
type Internal struct {
	children [2]Node
	weight   uint64
}

// NewInternal constructs an Internal node from its 0 and 1 children.  Its
// weight is the saturating sum of the children's weights.
func NewInternal(zero, one Node) *Internal {
	var weight uint64
	if !isNilNode(zero) {
		weight = saturatingAdd(weight, zero.Weight())
	} else {
		zero = nil
	}
	if !isNilNode(one) {
		weight = saturatingAdd(weight, one.Weight())
	} else {
		one = nil
	}
	return &Internal{children: [2]Node{zero, one}, weight: weight}
}

// Child returns the child labeled with the given bit, or nil.
func (n *Internal) Child(bit uint) Node {
	return n.children[bit&1]
}

// IsFull returns true iff both children are present.
func (n *Internal) IsFull() bool {
	return n.children[0] != nil && n.children[1] != nil
}

// Weight fulfills Node.
func (n *Internal) Weight() uint64 { return n.weight }

// MarshalJSON renders this Internal node as a JSON object keyed by "0" and
// "1".  Absent children are omitted.
func (n *Internal) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for bit, child := range n.children {
		if child == nil {
			continue
		}
		raw, err := child.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "\"%d\":", bit)
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// MarshalTree serializes a tree to its JSON description.
func MarshalTree(root Node) ([]byte, error) {
	if isNilNode(root) {
		return nil, ErrEmptyInput
	}
	return root.MarshalJSON()
}

// ParseTree reconstructs a tree from the JSON description produced by
// MarshalTree.  All errors are of type *MalformedPayloadError.
func ParseTree(data []byte) (Node, error) {
	seen := make(map[Symbol]struct{})
	return parseNode(data, 0, seen)
}

func parseNode(data []byte, depth int, seen map[Symbol]struct{}) (Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, malformedTree("empty tree description", nil)
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil, malformedTree("invalid leaf", err)
		}
		if utf8.RuneCountInString(str) != 1 {
			return nil, malformedTree(fmt.Sprintf("leaf %q must hold exactly one character", str), nil)
		}
		ch, _ := utf8.DecodeRuneInString(str)
		symbol := Symbol(ch)
		if _, found := seen[symbol]; found {
			return nil, malformedTree(fmt.Sprintf("duplicate leaf %q", str), nil)
		}
		seen[symbol] = struct{}{}
		return NewLeaf(symbol, 0), nil

	case '{':
		if depth >= MaxCodeSize {
			return nil, malformedTree(fmt.Sprintf("tree is deeper than %d levels", MaxCodeSize), nil)
		}
		children, err := parseChildren(data, depth, seen)
		if err != nil {
			return nil, err
		}
		return NewInternal(children[0], children[1]), nil

	default:
		return nil, malformedTree(fmt.Sprintf("unexpected JSON value starting with %q", data[0]), nil)
	}
}

// parseChildren walks the object token by token, so that a repeated label is
// reported instead of silently replacing the earlier child.
func parseChildren(data []byte, depth int, seen map[Symbol]struct{}) ([2]Node, error) {
	var children [2]Node
	var present [2]bool

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return children, malformedTree("invalid internal node", err)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return children, malformedTree("invalid internal node", err)
		}
		key, _ := tok.(string)
		var bit int
		switch key {
		case "0":
			bit = 0
		case "1":
			bit = 1
		default:
			return children, malformedTree(fmt.Sprintf("unexpected child label %q", key), nil)
		}
		if present[bit] {
			return children, malformedTree(fmt.Sprintf("duplicate child label %q", key), nil)
		}
		present[bit] = true

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return children, malformedTree("invalid internal node", err)
		}
		child, err := parseNode(raw, depth+1, seen)
		if err != nil {
			return children, err
		}
		children[bit] = child
	}
	if _, err := dec.Token(); err != nil {
		return children, malformedTree("invalid internal node", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return children, malformedTree("trailing data after internal node", err)
	}
	if !present[0] && !present[1] {
		return children, malformedTree("internal node has no children", nil)
	}
	return children, nil
}

func isNilNode(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Leaf:
		return x == nil
	case *Internal:
		return x == nil
	default:
		return false
	}
}
