package assemble

import (
	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/annotation"
)

// MerkleStatement is the decommitment argument for a single Merkle queue.
type MerkleStatement struct {
	ExpectedRoot      *uint256.Int
	NUniqueQueries     int
	MerkleHeight       int
	MerkleQueueIndices []*uint256.Int
	MerkleQueueValues  []*uint256.Int
	Proof              []*uint256.Int
}

// MerkleQueue interleaves indices and values as [idx0, val0, idx1, val1, ...].
func (m MerkleStatement) MerkleQueue() []*uint256.Int {
	queue := make([]*uint256.Int, 0, 2*len(m.MerkleQueueIndices))
	for i := range m.MerkleQueueIndices {
		queue = append(queue, m.MerkleQueueIndices[i], m.MerkleQueueValues[i])
	}
	return queue
}

// FriMerkleStatement is the decommitment argument for one FRI layer's fold.
type FriMerkleStatement struct {
	ExpectedRoot        *uint256.Int
	EvaluationPoint     *uint256.Int
	FriStepSize         int
	InputLayerQueries   []*uint256.Int
	OutputLayerQueries  []*uint256.Int
	InputLayerValues    []*uint256.Int
	OutputLayerValues   []*uint256.Int
	InputLayerInverses  []*uint256.Int
	OutputLayerInverses []*uint256.Int
	InputInterleaved    []*uint256.Int
	OutputInterleaved   []*uint256.Int
	Proof               []*uint256.Int
}

// FriMerklesOriginal is the per-statement bookkeeping produced by a pass
// over the original annotation transcript.
type FriMerklesOriginal struct {
	MerkleOriginals    map[string][]annotation.MerkleLine
	MerkleCommitments  map[string]annotation.CommitmentLine
	FriOriginals       map[string][]annotation.FriLine
	EvalPoints         []annotation.EvalPointLine
	FriNames           []string
	OriginalProof      []byte
	MainAnnotation     string
	MerklePatches      map[string]struct{}
}

// SplitProofs is the final output of the split-proof construction pipeline.
type SplitProofs struct {
	MainProof            []byte
	MerkleStatements     map[string]MerkleStatement
	FriMerkleStatements  []FriMerkleStatement
}
