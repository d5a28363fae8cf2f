package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// PackBits packs a string of '0'/'1' characters into bytes, first bit in the
// most significant position of the first byte.  The final byte is padded with
// zero bits, so the caller must remember len(bits) to unpack it.
func PackBits(bits string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for index := 0; index < len(bits); index++ {
		var err error
		switch bits[index] {
		case '0':
			err = w.WriteBool(false)
		case '1':
			err = w.WriteBool(true)
		default:
			return nil, fmt.Errorf("invalid bit %q at index %d", bits[index], index)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits is the inverse of PackBits: it reads the first n bits of data
// and returns them as a string of '0'/'1' characters.
func UnpackBits(data []byte, n int) (string, error) {
	if n < 0 || n > 8*len(data) {
		return "", fmt.Errorf("cannot unpack %d bits from %d bytes", n, len(data))
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]byte, n)
	for index := 0; index < n; index++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			out[index] = '1'
		} else {
			out[index] = '0'
		}
	}
	return string(out), nil
}

// WriteSymbols writes the code for each Symbol to w.  It fails without
// writing anything if some Symbol has no code.
func (ct CodeTable) WriteSymbols(w *bitio.Writer, symbols []Symbol) error {
	for _, symbol := range symbols {
		if _, found := ct[symbol]; !found {
			return fmt.Errorf("no code for symbol %q", rune(symbol))
		}
	}
	for _, symbol := range symbols {
		hc := ct[symbol]
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return err
		}
	}
	return nil
}
