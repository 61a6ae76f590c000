package mainproof

import (
	"sort"

	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// TrivialFactTopologies builds one single-page FactTopology per memory
// page other than page 0 (page 0 is folded into the main proof, not
// independently registered), each with the trivial tree_structure [1, 0]:
// one leaf, no internal merge.
func TrivialFactTopologies(publicMemory []PublicMemory) []FactTopology {
	sizes := map[uint32]int{}
	for _, cell := range publicMemory {
		if cell.Page == 0 {
			continue
		}
		sizes[cell.Page]++
	}

	pages := make([]int, 0, len(sizes))
	for page := range sizes {
		pages = append(pages, int(page))
	}
	sort.Ints(pages)

	topologies := make([]FactTopology, 0, len(pages))
	for _, page := range pages {
		topologies = append(topologies, FactTopology{
			TreeStructure: []uint8{1, 0},
			PageSizes:     []int{sizes[uint32(page)]},
		})
	}
	return topologies
}

// GenerateOutputRoot walks a task's fact topology over its program output,
// building leaves by hashing each page's output slice and merging them
// into internal nodes per tree_structure's (n_pages, n_nodes) pairs. An
// internal node's hash is 1 + keccak(children hash/end-offset pairs); the
// leading 1 distinguishes an internal node's hash from a raw leaf hash.
func GenerateOutputRoot(programOutput []*uint256.Int, topology FactTopology) (FactNode, error) {
	if len(topology.TreeStructure)%2 != 0 {
		return FactNode{}, stoneerr.InvariantViolation("", "tree_structure must have an even number of entries")
	}

	pageSizes := append([]int{}, topology.PageSizes...)
	var stack []FactNode
	offset := 0

	for i := 0; i < len(topology.TreeStructure); i += 2 {
		nPages := int(topology.TreeStructure[i])
		nNodes := int(topology.TreeStructure[i+1])

		for p := 0; p < nPages; p++ {
			if len(pageSizes) == 0 {
				return FactNode{}, stoneerr.InvariantViolation("", "tree_structure references more pages than page_sizes provides")
			}
			size := pageSizes[0]
			pageSizes = pageSizes[1:]
			if offset+size > len(programOutput) {
				return FactNode{}, stoneerr.InvariantViolation("", "page extends past the end of program output")
			}

			hash := keccakInts(programOutput[offset : offset+size])
			offset += size
			stack = append(stack, FactNode{
				NodeHash:  new(uint256.Int).SetBytes(hash),
				EndOffset: offset,
				Size:      size,
			})
		}

		if nNodes > 0 {
			if nNodes > len(stack) {
				return FactNode{}, stoneerr.InvariantViolation("", "tree_structure references more nodes than are on the stack")
			}
			children := append([]FactNode{}, stack[len(stack)-nNodes:]...)
			stack = stack[:len(stack)-nNodes]

			flat := make([]*uint256.Int, 0, 2*nNodes)
			childSize := 0
			for _, c := range children {
				flat = append(flat, c.NodeHash, uint256.NewInt(uint64(c.EndOffset)))
				childSize += c.Size
			}
			parsed := new(uint256.Int).SetBytes(keccakInts(flat))
			nodeHash := new(uint256.Int).Add(uint256.NewInt(1), parsed)

			last := children[len(children)-1]
			stack = append(stack, FactNode{
				NodeHash:  nodeHash,
				EndOffset: last.EndOffset,
				Size:      childSize,
				Children:  children,
			})
		}
	}

	if len(pageSizes) != 0 {
		return FactNode{}, stoneerr.InvariantViolation("", "fact topology left page sizes unconsumed")
	}
	if len(stack) != 1 {
		return FactNode{}, stoneerr.InvariantViolation("", "fact topology did not reduce to a single root node")
	}

	root := stack[0]
	if offset != root.EndOffset || offset != len(programOutput) {
		return FactNode{}, stoneerr.InvariantViolation("", "fact topology did not consume the entire program output")
	}
	return root, nil
}

// GenerateProgramFact is keccak(program_hash, output_root.node_hash), the
// value registered as proof of this task's execution.
func GenerateProgramFact(programHash *uint256.Int, programOutput []*uint256.Int, topology FactTopology) ([]byte, error) {
	root, err := GenerateOutputRoot(programOutput, topology)
	if err != nil {
		return nil, err
	}
	return keccakInts([]*uint256.Int{programHash, root.NodeHash}), nil
}
