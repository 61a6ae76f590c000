package stoneadapter

import (
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/assemble"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/calldata"
)

// SplitProofCalls runs the same split-proof pipeline as SplitProof but
// additionally shapes every statement into its on-chain call arguments
// (spec.md §4.6), for callers that want calldata directly instead of the
// JSON-serializable SplitProofs document.
func SplitProofCalls(proof AnnotatedProof) (mainProof []byte, merkleCalls map[string]calldata.VerifyMerkleCall, friCalls []calldata.VerifyFRICall, err error) {
	split, err := assemble.SplitFriMerkleStatements(proof.ProofHex, proof.Annotations, proof.ExtraAnnotations)
	if err != nil {
		return nil, nil, nil, err
	}

	merkleCalls = make(map[string]calldata.VerifyMerkleCall, len(split.MerkleStatements))
	for name, stmt := range split.MerkleStatements {
		merkleCalls[name] = calldata.NewVerifyMerkleCall(stmt)
	}

	friCalls = make([]calldata.VerifyFRICall, len(split.FriMerkleStatements))
	for i, stmt := range split.FriMerkleStatements {
		friCalls[i] = calldata.NewVerifyFRICall(stmt)
	}

	return split.MainProof, merkleCalls, friCalls, nil
}
