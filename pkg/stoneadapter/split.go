package stoneadapter

import "github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/assemble"

// SplitProof runs the split-proof construction pipeline (spec.md §2):
// parsing the annotation transcript, redistributing proof bytes into
// per-statement arguments, computing Montgomery-encoded field elements and
// Keccak chain-links, and producing the Merkle statements, FRI-Merkle
// statements, and residual main proof that together replace one monolithic
// verification.
//
// SplitProof is a pure function of its inputs: identical AnnotatedProof
// values always yield byte-identical SplitProofs (spec.md §8, property 10).
func SplitProof(proof AnnotatedProof) (*SplitProofs, error) {
	internal, err := assemble.SplitFriMerkleStatements(proof.ProofHex, proof.Annotations, proof.ExtraAnnotations)
	if err != nil {
		return nil, err
	}
	return newSplitProofsJSON(internal), nil
}
