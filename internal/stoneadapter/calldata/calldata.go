// Package calldata shapes statement records into the exact positional
// argument tuples expected by the four on-chain verifier entry points. The
// shapes are closed and positional by design (spec.md §9): there is no
// reflection-based marshaling here, only four small constructor functions.
package calldata

import (
	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/assemble"
)

// cairoVerifierID is the fixed identifier verifyProofAndRegister expects
// for the Cairo verifier, per spec.md §4.6.
var cairoVerifierID = uint256.NewInt(6)

// VerifyMerkleCall is the positional argument tuple for verifyMerkle(uint256[],uint256[],uint256,uint256).
type VerifyMerkleCall struct {
	Proof        []*uint256.Int
	MerkleQueue  []*uint256.Int
	MerkleHeight *uint256.Int
	ExpectedRoot *uint256.Int
}

// NewVerifyMerkleCall builds the verifyMerkle call arguments from a Merkle statement.
func NewVerifyMerkleCall(stmt assemble.MerkleStatement) VerifyMerkleCall {
	return VerifyMerkleCall{
		Proof:        stmt.Proof,
		MerkleQueue:  stmt.MerkleQueue(),
		MerkleHeight: uint256.NewInt(uint64(stmt.MerkleHeight)),
		ExpectedRoot: stmt.ExpectedRoot,
	}
}

// VerifyFRICall is the positional argument tuple for verifyFRI(uint256[],uint256[],uint256,uint256,uint256).
type VerifyFRICall struct {
	Proof           []*uint256.Int
	FriQueue        []*uint256.Int
	EvaluationPoint *uint256.Int
	FriStepSize     *uint256.Int
	ExpectedRoot    *uint256.Int
}

// NewVerifyFRICall builds the verifyFRI call arguments from a FRI-Merkle
// statement. fri_queue is input_interleaved with a trailing zero appended.
func NewVerifyFRICall(stmt assemble.FriMerkleStatement) VerifyFRICall {
	friQueue := make([]*uint256.Int, len(stmt.InputInterleaved)+1)
	copy(friQueue, stmt.InputInterleaved)
	friQueue[len(friQueue)-1] = uint256.NewInt(0)

	return VerifyFRICall{
		Proof:           stmt.Proof,
		FriQueue:        friQueue,
		EvaluationPoint: stmt.EvaluationPoint,
		FriStepSize:     uint256.NewInt(uint64(stmt.FriStepSize)),
		ExpectedRoot:    stmt.ExpectedRoot,
	}
}

// RegisterContinuousMemoryPageCall is the positional argument tuple for
// registerContinuousMemoryPage(uint256,uint256[],uint256,uint256,uint256).
type RegisterContinuousMemoryPageCall struct {
	StartAddr *uint256.Int
	Values    []*uint256.Int
	Z         *uint256.Int
	Alpha     *uint256.Int
	Prime     *uint256.Int
}

// NewRegisterContinuousMemoryPageCall builds the registerContinuousMemoryPage
// call arguments for one page (index >= 1) of public memory.
func NewRegisterContinuousMemoryPageCall(startAddr *uint256.Int, values []*uint256.Int, z, alpha, prime *uint256.Int) RegisterContinuousMemoryPageCall {
	return RegisterContinuousMemoryPageCall{
		StartAddr: startAddr,
		Values:    values,
		Z:         z,
		Alpha:     alpha,
		Prime:     prime,
	}
}

// VerifyProofAndRegisterCall is the positional argument tuple for
// verifyProofAndRegister(uint256[],uint256[],uint256[],uint256[],uint256).
type VerifyProofAndRegisterCall struct {
	ProofParams     []*uint256.Int
	Proof           []*uint256.Int
	TaskMetadata    []*uint256.Int
	CairoAuxInput   []*uint256.Int
	CairoVerifierID *uint256.Int
}

// NewVerifyProofAndRegisterCall builds the verifyProofAndRegister call
// arguments. cairoVerifierID defaults to 6 unless overridden by the caller
// (see pkg/stoneadapter.Config.CairoVerifierID).
func NewVerifyProofAndRegisterCall(proofParams, proof, taskMetadata, cairoAuxInput []*uint256.Int, verifierID *uint256.Int) VerifyProofAndRegisterCall {
	id := cairoVerifierID
	if verifierID != nil {
		id = verifierID
	}
	return VerifyProofAndRegisterCall{
		ProofParams:     proofParams,
		Proof:           proof,
		TaskMetadata:    taskMetadata,
		CairoAuxInput:   cairoAuxInput,
		CairoVerifierID: id,
	}
}
