package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// SymbolCount pairs a Symbol with its number of occurrences.
type SymbolCount struct {
	Symbol Symbol
	Count  uint64
}

// FrequencyTable maps each Symbol to the number of times it occurs.  Its
// iteration order is the order in which each Symbol first occurred, so trees
// built from equal inputs are always identical.
//
// A FrequencyTable must not be modified after it has been handed to Build.
type FrequencyTable struct {
	entries []SymbolCount
	index   map[Symbol]int
}

// NewFrequencyTable returns an empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[Symbol]int)}
}

// Count computes the frequency of each Symbol in the given sequence.  An
// empty sequence yields an empty table.
func Count(symbols []Symbol) *FrequencyTable {
	t := NewFrequencyTable()
	for _, symbol := range symbols {
		t.Add(symbol, 1)
	}
	return t
}

// CountString computes the frequency of each character in the given string.
func CountString(str string) *FrequencyTable {
	t := NewFrequencyTable()
	for _, ch := range str {
		t.Add(Symbol(ch), 1)
	}
	return t
}

// Add adds n occurrences of the given Symbol.  Adding zero occurrences of a
// Symbol not yet in the table is a no-op.
func (t *FrequencyTable) Add(symbol Symbol, n uint64) {
	if i, found := t.index[symbol]; found {
		t.entries[i].Count = saturatingAdd(t.entries[i].Count, n)
		return
	}
	if n == 0 {
		return
	}
	if t.index == nil {
		t.index = make(map[Symbol]int)
	}
	t.index[symbol] = len(t.entries)
	t.entries = append(t.entries, SymbolCount{symbol, n})
}

// Len returns the number of distinct Symbols in the table.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Count returns the number of occurrences of the given Symbol.
func (t *FrequencyTable) Count(symbol Symbol) uint64 {
	if t == nil {
		return 0
	}
	if i, found := t.index[symbol]; found {
		return t.entries[i].Count
	}
	return 0
}

// Symbols returns the distinct Symbols in first-occurrence order.
func (t *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, t.Len())
	for i := range out {
		out[i] = t.entries[i].Symbol
	}
	return out
}

// Entries returns a copy of the (Symbol, Count) pairs in first-occurrence
// order.
func (t *FrequencyTable) Entries() []SymbolCount {
	out := make([]SymbolCount, t.Len())
	if t != nil {
		copy(out, t.entries)
	}
	return out
}

// Equal returns true iff both tables hold the same entries in the same order.
func (t *FrequencyTable) Equal(other *FrequencyTable) bool {
	if t.Len() != other.Len() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		if t.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// Fingerprint returns a 64-bit hash of the ordered entries.  Tables that are
// Equal have the same Fingerprint.
func (t *FrequencyTable) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [12]byte
	for i := 0; i < t.Len(); i++ {
		e := t.entries[i]
		binary.BigEndian.PutUint32(buf[0:4], uint32(e.Symbol))
		binary.BigEndian.PutUint64(buf[4:12], e.Count)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (t *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for i := 0; i < t.Len(); i++ {
		e := t.entries[i]
		fmt.Fprintf(&buf, "\tCount(%q) = %d\n", rune(e.Symbol), e.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
