package mainproof

import (
	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

const (
	bootloaderConfigSize = 2
	programOutputHeader  = 2
)

// GenerateTasksMetadata walks the output segment's program output and,
// for each task in order, emits [task_output_size, program_hash,
// len(tree_structure)/2, tree_structure...] after verifying the task's
// program fact can be generated and that its declared size matches its
// fact topology's page sizes. The leading entry is n_tasks itself.
func (m *MainProof) GenerateTasksMetadata(includeBootloaderConfig bool, factTopologies []FactTopology) ([]*uint256.Int, error) {
	memory, err := ExtractPublicMemory(m.PublicInput)
	if err != nil {
		return nil, err
	}

	outputSegment, ok := m.PublicInput.MemorySegments["output"]
	if !ok {
		return nil, stoneerr.InvariantViolation("", "public input has no output segment")
	}
	output, err := ExtractProgramOutput(outputSegment, memory)
	if err != nil {
		return nil, err
	}

	if includeBootloaderConfig {
		if len(output) < bootloaderConfigSize {
			return nil, stoneerr.InvariantViolation("", "program output too short for bootloader config")
		}
		output = output[bootloaderConfigSize:]
	}
	if len(output) == 0 {
		return nil, stoneerr.InvariantViolation("", "program output is empty after trimming bootloader config")
	}

	nTasks := int(output[0].Uint64())
	if nTasks != len(factTopologies) {
		return nil, stoneerr.InvariantViolation("", "n_tasks does not match the number of fact topologies supplied")
	}

	taskMetadata := []*uint256.Int{uint256.NewInt(uint64(nTasks))}
	ptr := 1

	for i := 0; i < nTasks; i++ {
		topology := factTopologies[i]
		if ptr+1 >= len(output) {
			return nil, stoneerr.InvariantViolation("", "program output ends before task header")
		}

		taskOutputSize := int(output[ptr].Uint64())
		programHash := output[ptr+1]

		taskMetadata = append(taskMetadata,
			uint256.NewInt(uint64(taskOutputSize)),
			programHash,
			uint256.NewInt(uint64(len(topology.TreeStructure)/2)),
		)
		for _, step := range topology.TreeStructure {
			taskMetadata = append(taskMetadata, uint256.NewInt(uint64(step)))
		}

		if ptr+taskOutputSize > len(output) {
			return nil, stoneerr.InvariantViolation("", "task output size exceeds remaining program output")
		}
		taskOutput := output[ptr+programOutputHeader : ptr+taskOutputSize]

		if _, err := GenerateProgramFact(programHash, taskOutput, topology); err != nil {
			return nil, err
		}

		pageSizeSum := 0
		for _, size := range topology.PageSizes {
			pageSizeSum += size
		}
		if taskOutputSize != programOutputHeader+pageSizeSum {
			return nil, stoneerr.InvariantViolation("", "task_output_size disagrees with fact topology's page sizes")
		}

		ptr += taskOutputSize
	}

	if ptr != len(output) {
		return nil, stoneerr.InvariantViolation("", "program output has unconsumed trailing data")
	}
	return taskMetadata, nil
}
