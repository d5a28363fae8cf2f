package huffman

import (
	"unicode"
)

// Symbol represents a symbol in the input alphabet, i.e. a single character.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

