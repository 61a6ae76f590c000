// Package mainproof builds the auxiliary input vectors consumed by the
// on-chain verifyProofAndRegister call: proof parameters, Cairo public
// input, memory-page accumulator products and hashes, and fact-topology
// task metadata.
package mainproof

import "github.com/holiman/uint256"

// MemorySegment is one Cairo memory segment's address range.
type MemorySegment struct {
	BeginAddr uint64 `json:"begin_addr"`
	StopPtr   uint64 `json:"stop_ptr"`
}

// PublicMemory is one public-memory cell.
type PublicMemory struct {
	Page    uint32 `json:"page"`
	Address uint64 `json:"address"`
	Value   string `json:"value"` // hex, no 0x prefix required
}

// PublicInput is the Cairo public input consumed by the augmenter.
type PublicInput struct {
	NSteps         uint64                   `json:"n_steps"`
	RcMin          uint64                   `json:"rc_min"`
	RcMax          uint64                   `json:"rc_max"`
	Layout         string                   `json:"layout"`
	MemorySegments map[string]MemorySegment `json:"memory_segments"`
	PublicMemory   []PublicMemory           `json:"public_memory"`
}

// FriParameters is the FRI-specific subset of ProofParameters.
type FriParameters struct {
	ProofOfWorkBits      int   `json:"proof_of_work_bits"`
	NQueries             int   `json:"n_queries"`
	LastLayerDegreeBound int   `json:"last_layer_degree_bound"`
	FriStepList          []int `json:"fri_step_list"`
}

// StarkParameters is the stark-level subset of ProofParameters.
type StarkParameters struct {
	LogNCosets int           `json:"log_n_cosets"`
	Fri        FriParameters `json:"fri"`
}

// ProofParameters mirrors the stone-prover proof_parameters document.
type ProofParameters struct {
	Stark StarkParameters `json:"stark"`
}

// MainProof is the augmenter's input: a main-proof call's argument plus
// the public input and interaction challenges needed to derive the rest.
type MainProof struct {
	Proof             []*uint256.Int
	ProofParameters   ProofParameters
	PublicInput       PublicInput
	InteractionZ      *uint256.Int
	InteractionAlpha  *uint256.Int
}

// FactTopology describes how one task's program output is grouped into
// pages and internal nodes for on-chain fact registration.
type FactTopology struct {
	TreeStructure []uint8 `json:"tree_structure"`
	PageSizes     []int   `json:"page_sizes"`
}

// FactNode is one node of the fact-topology tree built while walking a
// task's program output.
type FactNode struct {
	NodeHash  *uint256.Int
	EndOffset int
	Size      int
	Children  []FactNode
}

// RegularMemoryPage is page 0 of the public memory, registered implicitly
// as part of the main proof rather than independently.
type RegularMemoryPage struct {
	Page []*uint256.Int
}

// ContinuousMemoryPage is a page (index >= 1) independently registerable
// via registerContinuousMemoryPage.
type ContinuousMemoryPage struct {
	StartAddress *uint256.Int
	Values       []*uint256.Int
}
