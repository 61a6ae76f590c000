package mainproof

import "github.com/holiman/uint256"

// DefaultPrime is P = 2^251 + 17*2^192 + 1, the STARK field prime that
// every memory-page accumulator product is reduced modulo.
func DefaultPrime() *uint256.Int {
	return uint256.MustFromHex("0x800000000000011000000000000000000000000000000000000000000000001")
}
