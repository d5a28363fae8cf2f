package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder implements a table-driven decoder for the codes of one tree.
//
// The table holds an entry for every complete code and also for every proper
// prefix of one.  This lets a caller feed bits in one at a time and learn,
// after each bit, whether it has a Symbol, needs more bits, or has strayed
// off the tree.
type Decoder struct {
	table   map[Code]decoderData
	minSize byte
	maxSize byte
	count   int
}

// NewDecoder constructs a Decoder for the given tree.  A lone Leaf is given
// the code "0", matching Invert.
func NewDecoder(root Node) Decoder {
	codes := Invert(root)
	if len(codes) == 0 {
		return Decoder{}
	}

	// len(table) is approximately n×log2(n) when filled.
	numSymbols := uint(len(codes))
	numTableSlots := numSymbols * log2uint(numSymbols)

	d := Decoder{
		table:   make(map[Code]decoderData, numTableSlots),
		minSize: codes.MinSize(),
		maxSize: codes.MaxSize(),
		count:   len(codes),
	}
	for _, symbol := range codes.Symbols() {
		fillTable(d.table, symbol, codes[symbol])
	}
	return d
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize
// == hc.Size.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and the
// complete code will be between minSize and maxSize bits long.
//
// If the Decode fails because no code starts with hc, symbol == InvalidSymbol
// and minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// NumSymbols is the number of Symbols this Decoder can produce.
func (d Decoder) NumSymbols() int {
	return d.count
}

// DecodeString decodes a string of '0'/'1' characters, resetting to the root
// of the tree after each completed Symbol.
func (d Decoder) DecodeString(bits string) (string, error) {
	if d.count == 0 {
		if len(bits) != 0 {
			return "", malformedBits(0, "bits present but tree is empty")
		}
		return "", nil
	}

	out := make([]rune, 0, len(bits)/int(d.maxSize)+1)
	var hc Code
	var start int
	for index := 0; index < len(bits); index++ {
		var bit uint
		switch bits[index] {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return "", malformedBits(index, fmt.Sprintf("invalid bit %q", bits[index]))
		}
		if hc.Size == 0 {
			start = index
		}
		hc = hc.Append(bit)

		symbol, minSize, maxSize := d.Decode(hc)
		if symbol != InvalidSymbol {
			out = append(out, rune(symbol))
			hc = Code{}
			continue
		}
		if minSize == 0 && maxSize == 0 {
			return "", malformedBits(start, fmt.Sprintf("bit sequence %s matches no code", hc))
		}
	}
	if hc.Size != 0 {
		return "", malformedBits(start, fmt.Sprintf("incomplete final code %s", hc))
	}
	return string(out), nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%#v) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	minSize byte
	maxSize byte
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	_, dupe := table[hc]
	assert.Assertf(!dupe, "code %s is assigned twice", hc)

	dd := decoderData{symbol, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling),
		// where A = NOT a, into ddNew (the new parent for both).

		ddNew := decoderData{InvalidSymbol, dd.minSize, dd.maxSize}
		if ddSibling, found := table[hc.Sibling()]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		hc = hc.Parent()

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		table[hc] = ddNew
		dd = ddNew
	}
}
