// Package stoneerr defines the single error taxonomy shared by every
// split-proof pipeline stage, so that a caller can `errors.Is` against a
// stable set of codes regardless of which stage produced the failure.
package stoneerr

import "fmt"

// Code identifies which of the pipeline's error categories occurred.
type Code int

const (
	// CodeInvalidLineFormat means a line's structural signature matched a
	// known kind but a subfield could not be extracted or parsed.
	CodeInvalidLineFormat Code = iota
	// CodeParseNumber means a decimal, hex, or arbitrary-precision integer
	// failed to parse.
	CodeParseNumber
	// CodeHex means proof_hex (or a digest/element hex substring) was malformed.
	CodeHex
	// CodeEncoding means ABI encode_packed construction failed.
	CodeEncoding
	// CodeInvariantViolation means a cross-checked structural invariant
	// (key-set equality, uniform heights, page continuity, fact-topology
	// closure, ...) did not hold.
	CodeInvariantViolation
)

func (c Code) String() string {
	switch c {
	case CodeInvalidLineFormat:
		return "invalid line format"
	case CodeParseNumber:
		return "parse number"
	case CodeHex:
		return "hex"
	case CodeEncoding:
		return "encoding"
	case CodeInvariantViolation:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every stage of the split-proof
// pipeline. Context carries the offending line or statement name so the
// caller can locate the failure without re-scanning the input.
type Error struct {
	Code    Code
	Message string
	Context string
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Context != "" && e.Cause != nil:
		return fmt.Sprintf("stoneadapter: %s: %s (context: %q): %v", e.Code, e.Message, e.Context, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("stoneadapter: %s: %s (context: %q)", e.Code, e.Message, e.Context)
	case e.Cause != nil:
		return fmt.Sprintf("stoneadapter: %s: %s: %v", e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("stoneadapter: %s: %s", e.Code, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// InvalidLineFormat reports a line whose signature matched but whose
// fields could not be extracted.
func InvalidLineFormat(context string) *Error {
	return &Error{Code: CodeInvalidLineFormat, Message: "could not extract fields from line", Context: context}
}

// ParseNumber reports an integer parse failure.
func ParseNumber(context string, cause error) *Error {
	return &Error{Code: CodeParseNumber, Message: "failed to parse number", Context: context, Cause: cause}
}

// Hex reports malformed hex input.
func Hex(context string, cause error) *Error {
	return &Error{Code: CodeHex, Message: "malformed hex", Context: context, Cause: cause}
}

// Encoding reports an ABI encode_packed failure.
func Encoding(context string, cause error) *Error {
	return &Error{Code: CodeEncoding, Message: "ABI encode_packed failed", Context: context, Cause: cause}
}

// InvariantViolation reports a structural invariant that did not hold.
func InvariantViolation(context, message string) *Error {
	return &Error{Code: CodeInvariantViolation, Message: message, Context: context}
}
