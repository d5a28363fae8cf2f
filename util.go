package huffman

import (
	"math"
	mathbits "math/bits"
)

func log2uint(x uint) uint {
	if x == 0 {
		x = 1
	}
	return uint(mathbits.UintSize - mathbits.LeadingZeros(x))
}

// saturatingAdd returns a+b, clamped to math.MaxUint64 on overflow.
func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
