package stoneadapter

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/assemble"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/mainproof"
)

// AnnotatedProof is the external input document (spec.md §6): the
// monolithic Stone proof's hex bytes, its original annotation transcript,
// and the extras transcript.
type AnnotatedProof struct {
	ProofHex         string   `json:"proof_hex"`
	Annotations      []string `json:"annotations"`
	ExtraAnnotations []string `json:"extra_annotations"`
}

// FactTopology mirrors mainproof.FactTopology for the external
// fact-topologies document.
type FactTopology = mainproof.FactTopology

// FactTopologiesDocument is the external fact-topologies input document
// (spec.md §6): `{ "fact_topologies": [...] }`.
type FactTopologiesDocument struct {
	FactTopologies []FactTopology `json:"fact_topologies"`
}

// PublicInput mirrors mainproof.PublicInput, the public input and proof
// parameters document (spec.md §6).
type PublicInput = mainproof.PublicInput

// MemorySegment mirrors mainproof.MemorySegment.
type MemorySegment = mainproof.MemorySegment

// PublicMemory mirrors mainproof.PublicMemory, one public-memory cell.
type PublicMemory = mainproof.PublicMemory

// ProofParameters mirrors mainproof.ProofParameters.
type ProofParameters = mainproof.ProofParameters

// StarkParameters mirrors mainproof.StarkParameters.
type StarkParameters = mainproof.StarkParameters

// FriParameters mirrors mainproof.FriParameters.
type FriParameters = mainproof.FriParameters

// bigJSON marshals a *uint256.Int as an unquoted decimal JSON number, per
// spec.md §6 ("U256 values serialized as JSON numbers").
type bigJSON struct{ v *uint256.Int }

func (b bigJSON) MarshalJSON() ([]byte, error) {
	if b.v == nil {
		return []byte("0"), nil
	}
	return []byte(b.v.Dec()), nil
}

func (b *bigJSON) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if strings.HasPrefix(s, "0x") {
		n, err := uint256.FromHex(s)
		if err != nil {
			return fmt.Errorf("stoneadapter: malformed U256 hex %q: %w", s, err)
		}
		b.v = n
		return nil
	}
	n, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("stoneadapter: malformed U256 decimal %q: %w", s, err)
	}
	b.v = n
	return nil
}

func u256Slice(vs []*uint256.Int) []bigJSON {
	out := make([]bigJSON, len(vs))
	for i, v := range vs {
		out[i] = bigJSON{v}
	}
	return out
}

// MerkleStatement is the JSON-serializable form of a decommitment argument
// for one Merkle queue, matching the field names the original crate's
// `MerkleStatement` struct serializes (spec.md §3).
type MerkleStatement struct {
	ExpectedRoot       bigJSON   `json:"expected_root"`
	NUniqueQueries     int       `json:"n_unique_queries"`
	MerkleHeight       int       `json:"merkle_height"`
	MerkleQueueIndices []bigJSON `json:"merkle_queue_indices"`
	MerkleQueueValues  []bigJSON `json:"merkle_queue_values"`
	Proof              []bigJSON `json:"proof"`
}

func newMerkleStatementJSON(s assemble.MerkleStatement) MerkleStatement {
	return MerkleStatement{
		ExpectedRoot:       bigJSON{s.ExpectedRoot},
		NUniqueQueries:     s.NUniqueQueries,
		MerkleHeight:       s.MerkleHeight,
		MerkleQueueIndices: u256Slice(s.MerkleQueueIndices),
		MerkleQueueValues:  u256Slice(s.MerkleQueueValues),
		Proof:              u256Slice(s.Proof),
	}
}

// FriMerkleStatement is the JSON-serializable form of a decommitment
// argument for one FRI layer's fold (spec.md §3).
type FriMerkleStatement struct {
	ExpectedRoot        bigJSON   `json:"expected_root"`
	EvaluationPoint     bigJSON   `json:"evaluation_point"`
	FriStepSize         int       `json:"fri_step_size"`
	InputLayerQueries   []bigJSON `json:"input_layer_queries"`
	OutputLayerQueries  []bigJSON `json:"output_layer_queries"`
	InputLayerValues    []bigJSON `json:"input_layer_values"`
	OutputLayerValues   []bigJSON `json:"output_layer_values"`
	InputLayerInverses  []bigJSON `json:"input_layer_inverses"`
	OutputLayerInverses []bigJSON `json:"output_layer_inverses"`
	InputInterleaved    []bigJSON `json:"input_interleaved"`
	OutputInterleaved   []bigJSON `json:"output_interleaved"`
	Proof               []bigJSON `json:"proof"`
}

func newFriMerkleStatementJSON(s assemble.FriMerkleStatement) FriMerkleStatement {
	return FriMerkleStatement{
		ExpectedRoot:        bigJSON{s.ExpectedRoot},
		EvaluationPoint:     bigJSON{s.EvaluationPoint},
		FriStepSize:         s.FriStepSize,
		InputLayerQueries:   u256Slice(s.InputLayerQueries),
		OutputLayerQueries:  u256Slice(s.OutputLayerQueries),
		InputLayerValues:    u256Slice(s.InputLayerValues),
		OutputLayerValues:   u256Slice(s.OutputLayerValues),
		InputLayerInverses:  u256Slice(s.InputLayerInverses),
		OutputLayerInverses: u256Slice(s.OutputLayerInverses),
		InputInterleaved:    u256Slice(s.InputInterleaved),
		OutputInterleaved:   u256Slice(s.OutputInterleaved),
		Proof:               u256Slice(s.Proof),
	}
}

// SplitProofs is the final output of the split-proof construction
// pipeline (spec.md §3, §6): the residual main proof plus every Merkle
// and FRI-Merkle statement needed to verify it incrementally on-chain.
type SplitProofs struct {
	MainProof           string                     `json:"main_proof"`
	MerkleStatements    map[string]MerkleStatement `json:"merkle_statements"`
	FriMerkleStatements []FriMerkleStatement       `json:"fri_merkle_statements"`
}

func newSplitProofsJSON(sp *assemble.SplitProofs) *SplitProofs {
	merkle := make(map[string]MerkleStatement, len(sp.MerkleStatements))
	for name, stmt := range sp.MerkleStatements {
		merkle[name] = newMerkleStatementJSON(stmt)
	}

	fri := make([]FriMerkleStatement, len(sp.FriMerkleStatements))
	for i, stmt := range sp.FriMerkleStatements {
		fri[i] = newFriMerkleStatementJSON(stmt)
	}

	return &SplitProofs{
		MainProof:           hex.EncodeToString(sp.MainProof),
		MerkleStatements:    merkle,
		FriMerkleStatements: fri,
	}
}
