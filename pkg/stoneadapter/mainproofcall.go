package stoneadapter

import (
	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/calldata"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/mainproof"
)

// bytesToU256Words splits proof bytes into 32-byte big-endian words, the
// ABI convention spec.md §6 describes for every on-chain integer argument.
// A final partial word is zero-padded on the right.
func bytesToU256Words(proof []byte) []*uint256.Int {
	words := make([]*uint256.Int, 0, (len(proof)+31)/32)
	for i := 0; i < len(proof); i += 32 {
		end := i + 32
		var chunk [32]byte
		if end > len(proof) {
			copy(chunk[:], proof[i:])
		} else {
			copy(chunk[:], proof[i:end])
		}
		words = append(words, new(uint256.Int).SetBytes(chunk[:]))
	}
	return words
}

// BuildVerifyProofAndRegisterCall assembles the verifyProofAndRegister
// call arguments (spec.md §4.5, §4.6): proof parameters, the residual main
// proof (as 32-byte words), fact-topology task metadata, and the Cairo
// auxiliary input vector, driven from a public-input document supplied
// separately from the split annotation transcript (spec.md §2).
func BuildVerifyProofAndRegisterCall(
	mainProofBytes []byte,
	params ProofParameters,
	publicInput PublicInput,
	interactionZ, interactionAlpha *uint256.Int,
	factTopologies []FactTopology,
	cfg *Config,
) (calldata.VerifyProofAndRegisterCall, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	mp := &mainproof.MainProof{
		ProofParameters:  params,
		PublicInput:      publicInput,
		InteractionZ:     interactionZ,
		InteractionAlpha: interactionAlpha,
	}

	auxInput, err := mp.CairoAuxInput()
	if err != nil {
		return calldata.VerifyProofAndRegisterCall{}, err
	}

	taskMetadata, err := mp.GenerateTasksMetadata(cfg.IncludeBootloaderConfig, factTopologies)
	if err != nil {
		return calldata.VerifyProofAndRegisterCall{}, err
	}

	return calldata.NewVerifyProofAndRegisterCall(
		mp.ProofParams(),
		bytesToU256Words(mainProofBytes),
		taskMetadata,
		auxInput,
		cfg.CairoVerifierID,
	), nil
}

// MemoryPageCalls splits public memory into the implicitly-registered page
// 0 and the independently registerable registerContinuousMemoryPage calls
// for every page >= 1 (spec.md §7, "Memory-page registration splitting").
func MemoryPageCalls(publicMemory []mainproof.PublicMemory, z, alpha *uint256.Int) ([]calldata.RegisterContinuousMemoryPageCall, error) {
	mp := &mainproof.MainProof{InteractionZ: z, InteractionAlpha: alpha}

	_, continuous, err := mp.MemoryPageRegistrationArgs(publicMemory)
	if err != nil {
		return nil, err
	}

	prime := mainproof.DefaultPrime()
	calls := make([]calldata.RegisterContinuousMemoryPageCall, len(continuous))
	for i, page := range continuous {
		calls[i] = calldata.NewRegisterContinuousMemoryPageCall(page.StartAddress, page.Values, z, alpha, prime)
	}
	return calls, nil
}
