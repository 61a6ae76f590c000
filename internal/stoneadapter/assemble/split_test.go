package assemble

import (
	"bytes"
	"testing"
)

// twoFriLayerFixture builds an annotation transcript with one Merkle
// statement ("Trace 0") and two FRI-Merkle statements ("Layer 1", "Layer
// 2"), backed by a third, terminal FRI layer ("Layer 3") that supplies
// "Layer 2"'s output values/inverses. layer2XInv0 parameterizes one of
// "Layer 2"'s xInv field elements so callers can probe how altering an
// input that feeds "Layer 1"'s (non-terminal) output_interleaved changes
// the resulting chain-linked main proof.
func twoFriLayerFixture(layer2XInv0 string) (proofHex string, annotLines, extraLines []string) {
	proofHex = "00112233"

	annotLines = []string{
		"STARK: Commitment: /Commit on Trace: Hash(0x99)",
		"Trace 0: Decommitment: node 4: Hash(0x03)",
		"STARK: Commitment: /Commitment/Layer 1: Hash(0xaa)",
		"Layer 1: Evaluation point: Layer 1: Field Element(0x10)",
		"Layer 1: Decommitment: Row 0, Column 0: Field Element(0x11)",
		"Layer 1: Decommitment: Row 0, Column 1: Field Element(0x12)",
		"Layer 1: Decommitment: node 9: Hash(0x13)",
		"STARK: Commitment: /Commitment/Layer 2: Hash(0xbb)",
		"Layer 2: Evaluation point: Layer 2: Field Element(0x20)",
		"Layer 2: Decommitment: Row 0, Column 0: Field Element(0x21)",
		"Layer 2: Decommitment: Row 0, Column 1: Field Element(0x22)",
		"Layer 2: Decommitment: node 7: Hash(0x23)",
		"P->V[0:4]",
	}

	extraLines = []string{
		"Trace 0: Decommitment: node 4: Hash(0x01)",
		"Trace 0: Decommitment: node 5: Hash(0x02)",

		"Layer 1: Decommitment: Row 0, Column 0: Field Element(0x31)",
		"Layer 1: Decommitment: Row 0, Column 1: Field Element(0x32)",
		"Layer 1: Decommitment: Row 1, Column 0: Field Element(0x33)",
		"Layer 1: Decommitment: Row 1, Column 1: Field Element(0x34)",
		"Layer 1: Decommitment: xInv: index 0: Field Element(0x35)",
		"Layer 1: Decommitment: xInv: index 1: Field Element(0x36)",
		"Layer 1: Decommitment: node 2: Hash(0x37)",
		"Layer 1: Decommitment: node 3: Hash(0x38)",

		"Layer 2: Decommitment: Row 0, Column 0: Field Element(0x41)",
		"Layer 2: Decommitment: Row 0, Column 1: Field Element(0x42)",
		"Layer 2: Decommitment: Row 1, Column 0: Field Element(0x43)",
		"Layer 2: Decommitment: Row 1, Column 1: Field Element(0x44)",
		"Layer 2: Decommitment: xInv: index 0: Field Element(" + layer2XInv0 + ")",
		"Layer 2: Decommitment: xInv: index 1: Field Element(0x46)",
		"Layer 2: Decommitment: node 2: Hash(0x47)",
		"Layer 2: Decommitment: node 3: Hash(0x48)",

		"Layer 3: Decommitment: Row 0, Column 0: Field Element(0x51)",
		"Layer 3: Decommitment: Row 0, Column 1: Field Element(0x52)",
		"Layer 3: Decommitment: xInv: index 0: Field Element(0x53)",
		"Layer 3: Decommitment: xInv: index 1: Field Element(0x54)",
	}
	return proofHex, annotLines, extraLines
}

func TestSplitFriMerkleStatementsSingleMerkleStatement(t *testing.T) {
	// proof_hex decodes to 4 bytes: 00 11 22 33
	proofHex := "00112233"

	annotLines := []string{
		"STARK: Commitment: /Commit on Trace: Hash(0x99)",
		"Trace 0: Decommitment: node 4: Hash(0x03)",
		"P->V[0:4]",
	}
	extraLines := []string{
		"Trace 0: Decommitment: node 4: Hash(0x01)",
		"Trace 0: Decommitment: node 5: Hash(0x02)",
	}

	result, err := SplitFriMerkleStatements(proofHex, annotLines, extraLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stmt, ok := result.MerkleStatements["Trace 0"]
	if !ok {
		t.Fatalf("expected a merkle statement named %q", "Trace 0")
	}
	if stmt.NUniqueQueries != 2 {
		t.Errorf("NUniqueQueries = %d, expected 2", stmt.NUniqueQueries)
	}
	if len(result.FriMerkleStatements) != 0 {
		t.Errorf("expected no FRI-Merkle statements, got %d", len(result.FriMerkleStatements))
	}
	if len(result.MainProof) != 4 {
		t.Errorf("len(MainProof) = %d, expected 4", len(result.MainProof))
	}
}

func TestSplitFriMerkleStatementsKeySetMismatchFails(t *testing.T) {
	proofHex := "00"
	annotLines := []string{
		"STARK: Commitment: /Commit on Trace: Hash(0x99)",
		// no Merkle decommitment line for "Trace 0" in the original transcript
	}
	extraLines := []string{
		"Trace 0: Decommitment: node 4: Hash(0x01)",
	}

	if _, err := SplitFriMerkleStatements(proofHex, annotLines, extraLines); err == nil {
		t.Errorf("expected error when extras/original statement name sets disagree")
	}
}

func TestSplitFriMerkleStatementsDeterministic(t *testing.T) {
	proofHex := "00112233"
	annotLines := []string{
		"STARK: Commitment: /Commit on Trace: Hash(0x99)",
		"Trace 0: Decommitment: node 4: Hash(0x03)",
		"P->V[0:4]",
	}
	extraLines := []string{
		"Trace 0: Decommitment: node 4: Hash(0x01)",
		"Trace 0: Decommitment: node 5: Hash(0x02)",
	}

	first, err := SplitFriMerkleStatements(proofHex, annotLines, extraLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := SplitFriMerkleStatements(proofHex, annotLines, extraLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(first.MainProof) != string(second.MainProof) {
		t.Errorf("MainProof is not deterministic across invocations")
	}
}

// TestSplitFriMerkleStatementsChainLinksTwoFriStatements exercises
// BindChainLinks's hash loop end to end (spec.md §4.4, §8 property 6):
// with two FRI-Merkle statements, exactly one keccak256(encode_packed(...))
// chain link is appended for the non-terminal statement, and none for the
// last.
func TestSplitFriMerkleStatementsChainLinksTwoFriStatements(t *testing.T) {
	proofHex, annotLines, extraLines := twoFriLayerFixture("0x45")

	result, err := SplitFriMerkleStatements(proofHex, annotLines, extraLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.FriMerkleStatements) != 2 {
		t.Fatalf("expected 2 FRI-Merkle statements, got %d", len(result.FriMerkleStatements))
	}

	const routedBytes = 4
	const chainLinkBytes = 32
	if len(result.MainProof) != routedBytes+chainLinkBytes {
		t.Fatalf("len(MainProof) = %d, expected %d (routed bytes + one chain link)", len(result.MainProof), routedBytes+chainLinkBytes)
	}

	wantLink := keccak256(encodePackedU256Array(result.FriMerkleStatements[0].OutputInterleaved))
	gotLink := result.MainProof[routedBytes:]
	if !bytes.Equal(gotLink, wantLink) {
		t.Errorf("chain-link digest = %x, want %x", gotLink, wantLink)
	}
}

// TestSplitFriMerkleStatementsChainLinkMovesWithAlteredOutputInterleaved
// covers spec.md §8 seed scenario 5: altering one byte of a non-terminal
// FRI statement's output_interleaved input changes exactly the 32-byte
// chain-link window of main_proof, at a fixed offset, and nothing else.
func TestSplitFriMerkleStatementsChainLinkMovesWithAlteredOutputInterleaved(t *testing.T) {
	baseProofHex, baseAnnot, baseExtra := twoFriLayerFixture("0x45")
	base, err := SplitFriMerkleStatements(baseProofHex, baseAnnot, baseExtra)
	if err != nil {
		t.Fatalf("unexpected error (base): %v", err)
	}

	// "Layer 2"'s first xInv value feeds "Layer 1"'s (non-terminal)
	// output_layer_inverses, and therefore its output_interleaved.
	alteredProofHex, alteredAnnot, alteredExtra := twoFriLayerFixture("0x99")
	altered, err := SplitFriMerkleStatements(alteredProofHex, alteredAnnot, alteredExtra)
	if err != nil {
		t.Fatalf("unexpected error (altered): %v", err)
	}

	if len(base.MainProof) != len(altered.MainProof) {
		t.Fatalf("MainProof length changed: %d vs %d", len(base.MainProof), len(altered.MainProof))
	}

	const routedBytes = 4
	if !bytes.Equal(base.MainProof[:routedBytes], altered.MainProof[:routedBytes]) {
		t.Errorf("routed proof bytes changed after altering output_interleaved input")
	}
	if bytes.Equal(base.MainProof[routedBytes:], altered.MainProof[routedBytes:]) {
		t.Errorf("expected the chain-link window to change after altering output_interleaved input")
	}
}
