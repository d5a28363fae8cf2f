package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol in a tree to its Code.
type CodeTable map[Symbol]Code

// Invert walks the tree depth-first and returns the Code for every leaf: the
// sequence of child labels on the path from root to leaf.
//
// A tree consisting of a lone Leaf has no path at all, so its Symbol is
// assigned the 1-bit code "0" instead of an empty code.
//
func Invert(root Node) CodeTable {
	codes := make(CodeTable)
	if isNilNode(root) {
		return codes
	}
	if leaf, ok := root.(*Leaf); ok {
		codes[leaf.symbol] = MakeCode(1, 0)
		return codes
	}

	var walk func(n Node, hc Code)
	walk = func(n Node, hc Code) {
		switch x := n.(type) {
		case *Leaf:
			_, dupe := codes[x.symbol]
			assert.Assertf(!dupe, "symbol %q appears in more than one leaf", rune(x.symbol))
			codes[x.symbol] = hc
		case *Internal:
			assert.Assertf(hc.Size < MaxCodeSize, "tree is deeper than %d levels", MaxCodeSize)
			for bit := uint(0); bit < 2; bit++ {
				if child := x.children[bit]; child != nil {
					walk(child, hc.Append(bit))
				}
			}
		}
	}
	walk(root, Code{})
	return codes
}

// Encode returns the Code for the given Symbol.
func (ct CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc, found := ct[symbol]
	return hc, found
}

// Symbols returns the Symbols in the table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ct))
	for symbol := range ct {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// Strings returns the table with every Code rendered as a '0'/'1' string.
func (ct CodeTable) Strings() map[Symbol]string {
	out := make(map[Symbol]string, len(ct))
	for symbol, hc := range ct {
		out[symbol] = hc.String()
	}
	return out
}

// MinSize is the bit length of the shortest code, or 0 if the table is
// empty.
func (ct CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range ct {
		if minSize == 0 || hc.Size < minSize {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range ct {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// IsPrefixFree returns true iff every Code is non-empty and no Code is a
// prefix of another.
func (ct CodeTable) IsPrefixFree() bool {
	codes := make(byCode, 0, len(ct))
	for _, hc := range ct {
		if hc.Size == 0 {
			return false
		}
		codes = append(codes, hc)
	}
	// Sorting by (Bits aligned to the left, Size) places any prefix
	// directly before the codes it prefixes.
	sort.Slice(codes, func(i, j int) bool {
		a, b := codes[i], codes[j]
		ab, bb := a.Bits<<(64-uint(a.Size)), b.Bits<<(64-uint(b.Size))
		if ab != bb {
			return ab < bb
		}
		return a.Size < b.Size
	})
	for i := 1; i < len(codes); i++ {
		if codes[i].HasPrefix(codes[i-1]) {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %#v\n", rune(symbol), ct[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol + type byCode {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
