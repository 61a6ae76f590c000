package stoneadapter

import "github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"

// ErrorCode identifies which category of split-proof pipeline error
// occurred, per spec.md §7's taxonomy.
type ErrorCode = stoneerr.Code

const (
	// ErrInvalidLineFormat means a line's structural signature matched a
	// known kind but a subfield could not be extracted or parsed.
	ErrInvalidLineFormat = stoneerr.CodeInvalidLineFormat
	// ErrParseNumber means a decimal, hex, or arbitrary-precision integer
	// failed to parse.
	ErrParseNumber = stoneerr.CodeParseNumber
	// ErrHex means proof_hex (or a digest/element hex substring) was malformed.
	ErrHex = stoneerr.CodeHex
	// ErrEncoding means ABI encode_packed construction failed.
	ErrEncoding = stoneerr.CodeEncoding
	// ErrInvariantViolation means a cross-checked structural invariant did
	// not hold (key-set equality, uniform heights, page continuity,
	// fact-topology closure, ...).
	ErrInvariantViolation = stoneerr.CodeInvariantViolation
)

// Error is the error type returned by every stage of the split-proof
// pipeline. Context carries the offending line or statement name, per
// spec.md §7's "surfaced to the caller with the offending line or context".
//
// Callers can test the category with errors.Is:
//
//	if errors.Is(err, &stoneadapter.Error{Code: stoneadapter.ErrInvariantViolation}) { ... }
type Error = stoneerr.Error
