// Package annotation classifies and parses Stone-prover annotation lines,
// and routes the un-typed lines' byte ranges into the residual main proof.
package annotation

import "github.com/holiman/uint256"

// MerkleLine is a parsed Merkle-decommitment or Merkle-data annotation line.
type MerkleLine struct {
	Name       string
	Node       *uint256.Int
	Digest     string
	Annotation string
}

// FriLine is a parsed FRI element-decommitment line.
type FriLine struct {
	Name       string
	Row        int
	Col        int
	Element    string
	Annotation string
}

// FriXInvLine is a parsed FRI xInv-decommitment line.
type FriXInvLine struct {
	Name       string
	Index      int
	Inv        string
	Annotation string
}

// CommitmentLine is a parsed commitment line.
type CommitmentLine struct {
	Name       string
	Digest     string
	Annotation string
}

// EvalPointLine is a parsed FRI evaluation-point line.
type EvalPointLine struct {
	Name       string
	Point      string
	Annotation string
}

// FriExtras holds one FRI layer's extras-transcript lines, in encounter order.
type FriExtras struct {
	Values    []FriLine
	Inverses  []FriXInvLine
}
