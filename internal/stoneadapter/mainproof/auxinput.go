package mainproof

import (
	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/bitmath"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// segmentOrder is the fixed order segments are serialized in; only
// segments actually present in the public input are emitted, but the
// relative order among those present always follows this list.
var segmentOrder = []string{
	"program", "execution", "output", "pedersen",
	"range_check", "ecdsa", "bitwise", "ec_op", "keccak", "poseidon",
}

// SerializeSegments emits [begin_addr, stop_ptr] for each present segment
// in the fixed segmentOrder. Every segment in the public input must be one
// of the ten known names.
func (m *MainProof) SerializeSegments() ([]*uint256.Int, error) {
	segments := m.PublicInput.MemorySegments

	present := 0
	result := make([]*uint256.Int, 0, 2*len(segments))
	for _, name := range segmentOrder {
		seg, ok := segments[name]
		if !ok {
			continue
		}
		present++
		result = append(result, uint256.NewInt(seg.BeginAddr), uint256.NewInt(seg.StopPtr))
	}

	if present != len(segments) {
		return nil, stoneerr.InvariantViolation("", "public input contains a memory segment outside the known fixed order")
	}
	return result, nil
}

// CairoAuxInput serializes cairo_aux_input: floor(log2(n_steps)), rc_min,
// rc_max, the layout name as a big-endian ASCII integer, the ordered
// segment pairs, the memory-page public input vector, then z and alpha.
func (m *MainProof) CairoAuxInput() ([]*uint256.Int, error) {
	logNSteps := bitmath.Log2Floor(int(m.PublicInput.NSteps))

	aux := []*uint256.Int{
		uint256.NewInt(uint64(logNSteps)),
		uint256.NewInt(m.PublicInput.RcMin),
		uint256.NewInt(m.PublicInput.RcMax),
		new(uint256.Int).SetBytes([]byte(m.PublicInput.Layout)),
	}

	segments, err := m.SerializeSegments()
	if err != nil {
		return nil, err
	}
	aux = append(aux, segments...)

	memoryPagesInput, err := m.MemoryPagePublicInput(m.PublicInput.PublicMemory, m.InteractionZ, m.InteractionAlpha)
	if err != nil {
		return nil, err
	}
	aux = append(aux, memoryPagesInput...)

	aux = append(aux, m.InteractionZ, m.InteractionAlpha)
	return aux, nil
}
