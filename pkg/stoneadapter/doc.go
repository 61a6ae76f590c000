// Package stoneadapter adapts a monolithic STARK proof produced by the
// Stone prover — together with its human-readable annotation transcript —
// into a sequence of independently-verifiable on-chain call arguments.
//
// A Stone proof is too large to verify in a single on-chain transaction.
// This package reconstructs, from the annotation transcript, the
// cryptographic witness structure implicit in the proof's byte stream,
// redistributes proof bytes into per-statement arguments, and assembles
// the main-proof auxiliary inputs (public memory accumulator, memory-page
// hashes, fact-topology tree) so that Merkle decommitments, FRI folding
// steps, and a residual main proof can each be verified on-chain within
// block gas limits.
//
// # Quick Start
//
//	proof := stoneadapter.AnnotatedProof{
//		ProofHex:         hexProof,
//		Annotations:      annotationLines,
//		ExtraAnnotations: extraAnnotationLines,
//	}
//
//	split, err := stoneadapter.SplitProof(proof)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// split.MerkleStatements, split.FriMerkleStatements, and
//	// split.MainProof are now ready to shape into calldata.
//
// # Architecture
//
//   - pkg/stoneadapter/: Public API (this package)
//   - internal/stoneadapter/: Private implementation (not importable)
//
// Implementation details in internal/ can be refactored without breaking
// the public API:
//
//   - internal/stoneadapter/annotation: line classification, parsing, and
//     proof byte routing.
//   - internal/stoneadapter/assemble: statement assembly, the
//     single-column Merkle patch, and the chain-link binder.
//   - internal/stoneadapter/mainproof: the main-proof augmenter (proof
//     params, Cairo aux input, memory pages, fact topology).
//   - internal/stoneadapter/calldata: contract-argument shaping for the
//     four on-chain entry points.
//
// # Non-goals
//
// This package never verifies a proof locally, never submits a
// transaction, and never interprets Cairo program semantics beyond what
// the on-chain verifier requires. It is a pure, deterministic transform
// from (proof bytes, annotation transcript) to (statement arguments).
package stoneadapter
