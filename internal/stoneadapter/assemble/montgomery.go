package assemble

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// fieldPrime is P = 2^251 + 17*2^192 + 1, the STARK field prime.
var fieldPrime = uint256.MustFromHex("0x800000000000011000000000000000000000000000000000000000000000001")

// rModP is 2^256 mod P, precomputed since 2^256 itself overflows a 256-bit
// word. Montgomery encoding multiplies by this instead of by R directly.
var rModP = uint256.MustFromHex("0x7fffffffffffdf0ffffffffffffffffffffffffffffffffffffffffffffffe1")

// MontgomeryEncode computes (parse_hex(elementHex) * 2^256) mod P via
// MulMod against the precomputed 2^256 mod P constant, avoiding the need
// for a wider-than-256-bit intermediate type.
func MontgomeryEncode(elementHex string) (*uint256.Int, error) {
	trimmed := strings.TrimPrefix(elementHex, "0x")
	// uint256.FromHex rejects leading zero digits, which padded field
	// elements have, so they are stripped first.
	digits := strings.TrimLeft(trimmed, "0")
	if digits == "" && trimmed != "" {
		digits = "0"
	}
	num, err := uint256.FromHex("0x" + digits)
	if err != nil {
		return nil, stoneerr.Hex(elementHex, err)
	}
	return new(uint256.Int).MulMod(num, rModP, fieldPrime), nil
}
