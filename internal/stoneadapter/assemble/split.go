package assemble

import (
	"encoding/hex"
	"strings"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/annotation"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// SplitFriMerkleStatements is the main entry point of the split-proof
// construction pipeline: given the monolithic proof hex and the original
// and extras annotation transcripts, it produces the independently
// verifiable Merkle statements, FRI-Merkle statements, and residual main
// proof.
func SplitFriMerkleStatements(proofHex string, annotLines, extraAnnotLines []string) (*SplitProofs, error) {
	origProof, err := hex.DecodeString(strings.TrimPrefix(proofHex, "0x"))
	if err != nil {
		return nil, stoneerr.Hex(proofHex, err)
	}

	merkleExtrasDict, friExtrasList, err := ParseFriMerklesExtra(extraAnnotLines)
	if err != nil {
		return nil, err
	}

	original, err := ParseFriMerklesOriginal(origProof, annotLines)
	if err != nil {
		return nil, err
	}

	if err := checkKeySetsEqual(merkleExtrasDict, original.MerkleOriginals); err != nil {
		return nil, err
	}

	if len(original.MerklePatches) > 0 {
		if err := SingleColumnMerklePatch(original.MerklePatches, merkleExtrasDict, annotLines); err != nil {
			return nil, err
		}
	}

	merkleStatements := make(map[string]MerkleStatement)
	for name := range merkleExtrasDict {
		if _, isFri := original.FriOriginals[name]; isFri {
			continue
		}
		commit, ok := original.MerkleCommitments[name]
		if !ok {
			return nil, stoneerr.InvariantViolation(name, "no commitment line found for merkle statement")
		}
		stmt, err := GenMerkleStatementCall(merkleExtrasDict[name], original.MerkleOriginals[name], commit)
		if err != nil {
			return nil, err
		}
		merkleStatements[name] = stmt
	}

	friMerkleStatements := make([]FriMerkleStatement, 0, len(original.FriNames))
	for i, name := range original.FriNames {
		if i+1 >= len(friExtrasList) {
			return nil, stoneerr.InvariantViolation(name, "extras transcript has no matching FRI layer (or its successor)")
		}
		commit, ok := original.MerkleCommitments[name]
		if !ok {
			return nil, stoneerr.InvariantViolation(name, "no commitment line found for FRI statement")
		}
		if i >= len(original.EvalPoints) {
			return nil, stoneerr.InvariantViolation(name, "no evaluation point recorded for FRI layer")
		}

		stmt, err := GenFriMerkleStatementCall(
			friExtrasList[i],
			friExtrasList[i+1],
			original.FriOriginals[name],
			original.MerkleOriginals[name],
			merkleExtrasDict[name],
			commit,
			original.EvalPoints[i],
		)
		if err != nil {
			return nil, err
		}
		friMerkleStatements = append(friMerkleStatements, stmt)
	}

	mainProof := BindChainLinks(original.OriginalProof, friMerkleStatements)

	return &SplitProofs{
		MainProof:           mainProof,
		MerkleStatements:    merkleStatements,
		FriMerkleStatements: friMerkleStatements,
	}, nil
}

func checkKeySetsEqual(extras, original map[string][]annotation.MerkleLine) error {
	if len(extras) != len(original) {
		return stoneerr.InvariantViolation("", "extras and original transcripts disagree on the set of statement names")
	}
	for name := range extras {
		if _, ok := original[name]; !ok {
			return stoneerr.InvariantViolation(name, "statement present in extras transcript but not in original transcript")
		}
	}
	return nil
}
