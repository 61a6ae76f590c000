package assemble

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestBindChainLinksNoStatementsReturnsInputUnchanged(t *testing.T) {
	mainProof := []byte{0x01, 0x02, 0x03}
	out := BindChainLinks(mainProof, nil)
	if !bytes.Equal(out, mainProof) {
		t.Errorf("BindChainLinks(no statements) = %x, want %x unchanged", out, mainProof)
	}
}

func TestBindChainLinksSingleStatementAppendsNothing(t *testing.T) {
	mainProof := []byte{0xaa}
	stmt := FriMerkleStatement{OutputInterleaved: []*uint256.Int{uint256.NewInt(1)}}

	out := BindChainLinks(mainProof, []FriMerkleStatement{stmt})
	if !bytes.Equal(out, mainProof) {
		t.Errorf("BindChainLinks(single terminal statement) = %x, want %x unchanged", out, mainProof)
	}
}

func TestBindChainLinksAppendsOneDigestPerNonTerminalStatement(t *testing.T) {
	mainProof := []byte{0xaa, 0xbb}
	stmt0 := FriMerkleStatement{OutputInterleaved: []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2)}}
	stmt1 := FriMerkleStatement{OutputInterleaved: []*uint256.Int{uint256.NewInt(3)}}
	stmt2 := FriMerkleStatement{OutputInterleaved: []*uint256.Int{uint256.NewInt(4)}}

	out := BindChainLinks(mainProof, []FriMerkleStatement{stmt0, stmt1, stmt2})

	wantLen := len(mainProof) + 2*32
	if len(out) != wantLen {
		t.Fatalf("len(out) = %d, expected %d (one 32-byte link per non-terminal statement)", len(out), wantLen)
	}
	if !bytes.Equal(out[:len(mainProof)], mainProof) {
		t.Errorf("BindChainLinks must leave the pre-existing main proof bytes untouched")
	}

	wantLink0 := keccak256(encodePackedU256Array(stmt0.OutputInterleaved))
	if got := out[len(mainProof) : len(mainProof)+32]; !bytes.Equal(got, wantLink0) {
		t.Errorf("chain link 0 = %x, want %x", got, wantLink0)
	}

	wantLink1 := keccak256(encodePackedU256Array(stmt1.OutputInterleaved))
	if got := out[len(mainProof)+32 : len(mainProof)+64]; !bytes.Equal(got, wantLink1) {
		t.Errorf("chain link 1 = %x, want %x", got, wantLink1)
	}
}

func TestBindChainLinksDigestChangesWithAlteredOutputInterleaved(t *testing.T) {
	mainProof := []byte{0xaa}
	last := FriMerkleStatement{OutputInterleaved: []*uint256.Int{uint256.NewInt(0)}}

	base := FriMerkleStatement{OutputInterleaved: []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2), uint256.NewInt(3)}}
	altered := FriMerkleStatement{OutputInterleaved: []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2), uint256.NewInt(99)}}

	baseOut := BindChainLinks(mainProof, []FriMerkleStatement{base, last})
	alteredOut := BindChainLinks(mainProof, []FriMerkleStatement{altered, last})

	if len(baseOut) != len(alteredOut) {
		t.Fatalf("chain-linked main proof length changed: %d vs %d", len(baseOut), len(alteredOut))
	}
	if !bytes.Equal(baseOut[:len(mainProof)], alteredOut[:len(mainProof)]) {
		t.Errorf("routed proof bytes changed after altering a non-terminal statement's output_interleaved")
	}
	if bytes.Equal(baseOut[len(mainProof):], alteredOut[len(mainProof):]) {
		t.Errorf("expected the appended chain-link digest to change after altering output_interleaved")
	}
}
