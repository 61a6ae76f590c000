package assemble

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/annotation"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// SingleColumnMerklePatch rebuilds, in place, the extras Merkle queue for
// every statement name in merklePatches by rescanning the original
// annotation lines for that name's "Column 0" field elements.
//
// The patched height formula (leading_zeros(node) - 1, then + 1) is
// preserved exactly as the reference implementation computes it rather
// than "corrected" to the non-patched bits(node)-1 formula — the on-chain
// verifier expects the patched value.
func SingleColumnMerklePatch(merklePatches map[string]struct{}, merkleExtrasDict map[string][]annotation.MerkleLine, annotLines []string) error {
	for name := range merklePatches {
		extras, ok := merkleExtrasDict[name]
		if !ok {
			return stoneerr.InvariantViolation(name, "merkle patch references an unknown statement name")
		}
		if len(extras) == 0 {
			return stoneerr.InvariantViolation(name, "merkle patch statement has no extras to derive a height from")
		}

		bits := extras[0].Node.BitLen()
		for _, ml := range extras {
			if ml.Node.BitLen() != bits {
				return stoneerr.InvariantViolation(name, "merkle patch extras have non-uniform node heights")
			}
		}
		// Patched height is leading_zeros(node) - 1, then + 1 — i.e.
		// 256 - bits(node), not the non-patched bits(node) - 1. Preserved
		// exactly as the reference implementation computes it.
		height := 256 - bits

		patched := make([]annotation.MerkleLine, 0)
		for _, line := range annotLines {
			if !strings.Contains(line, name) || !strings.Contains(line, "Column 0") || !strings.Contains(line, "Field Element") {
				continue
			}

			fl, err := annotation.ParseFriLine(line)
			if err != nil {
				return err
			}

			node := new(uint256.Int).Add(
				uint256.NewInt(uint64(fl.Row)),
				new(uint256.Int).Lsh(uint256.NewInt(1), uint(height)),
			)
			element, err := MontgomeryEncode(fl.Element)
			if err != nil {
				return err
			}

			digest := element.Bytes32()
			patched = append(patched, annotation.MerkleLine{
				Name:       name,
				Node:       node,
				Digest:     fmt.Sprintf("%x", digest[:]),
				Annotation: line,
			})
		}

		merkleExtrasDict[name] = patched
	}

	return nil
}
