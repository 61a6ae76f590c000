package assemble

import (
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// encodePackedU256Array ABI encode_packs an array of uint256 as the
// concatenation of each element's 32-byte big-endian representation, with
// no length prefix.
func encodePackedU256Array(values []*uint256.Int) []byte {
	out := make([]byte, 0, 32*len(values))
	for _, v := range values {
		b := v.Bytes32()
		out = append(out, b[:]...)
	}
	return out
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// BindChainLinks appends, for every FRI-Merkle statement except the last in
// list order, keccak256(encode_packed(output_interleaved)) to mainProof —
// tying each layer's output commitment into the main proof at the byte
// offset the on-chain verifier re-derives.
func BindChainLinks(mainProof []byte, statements []FriMerkleStatement) []byte {
	if len(statements) == 0 {
		return mainProof
	}

	out := append([]byte(nil), mainProof...)
	for _, stmt := range statements[:len(statements)-1] {
		digest := keccak256(encodePackedU256Array(stmt.OutputInterleaved))
		out = append(out, digest...)
	}
	return out
}
