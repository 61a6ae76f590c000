package mainproof

import (
	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// ExtractPublicMemory builds an address -> value lookup from the public
// input's memory cells, rejecting any address that appears more than once.
func ExtractPublicMemory(publicInput PublicInput) (map[uint64]*uint256.Int, error) {
	memory := make(map[uint64]*uint256.Int, len(publicInput.PublicMemory))
	for _, cell := range publicInput.PublicMemory {
		if _, seen := memory[cell.Address]; seen {
			return nil, stoneerr.InvariantViolation("", "duplicate address in public memory")
		}
		val, err := u256FromHex(cell.Value)
		if err != nil {
			return nil, err
		}
		memory[cell.Address] = val
	}
	return memory, nil
}

// ExtractProgramOutput reads the output segment [begin_addr, stop_ptr) out
// of the public-memory lookup, in address order.
func ExtractProgramOutput(segment MemorySegment, memory map[uint64]*uint256.Int) ([]*uint256.Int, error) {
	output := make([]*uint256.Int, 0, segment.StopPtr-segment.BeginAddr)
	for addr := segment.BeginAddr; addr < segment.StopPtr; addr++ {
		val, ok := memory[addr]
		if !ok {
			return nil, stoneerr.InvariantViolation("", "program output segment references an address missing from public memory")
		}
		output = append(output, val)
	}
	return output, nil
}
