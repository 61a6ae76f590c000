package mainproof

import (
	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/bitmath"
)

// ProofParams serializes proof_params: n_queries, log_n_cosets,
// proof_of_work_bits, ceil(log2(last_layer_degree_bound)), the length of
// fri_step_list, then fri_step_list itself.
func (m *MainProof) ProofParams() []*uint256.Int {
	fri := m.ProofParameters.Stark.Fri

	params := []*uint256.Int{
		uint256.NewInt(uint64(fri.NQueries)),
		uint256.NewInt(uint64(m.ProofParameters.Stark.LogNCosets)),
		uint256.NewInt(uint64(fri.ProofOfWorkBits)),
		uint256.NewInt(uint64(bitmath.Log2Ceil(fri.LastLayerDegreeBound))),
		uint256.NewInt(uint64(len(fri.FriStepList))),
	}
	for _, step := range fri.FriStepList {
		params = append(params, uint256.NewInt(uint64(step)))
	}
	return params
}
