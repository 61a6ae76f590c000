package stoneadapter

import "testing"

func TestSplitProofCallsShapesMerkleAndFRI(t *testing.T) {
	proof := AnnotatedProof{
		ProofHex: "00112233",
		Annotations: []string{
			"STARK: Commitment: /Commit on Trace: Hash(0x99)",
			"Trace 0: Decommitment: node 4: Hash(0x03)",
			"P->V[0:4]",
		},
		ExtraAnnotations: []string{
			"Trace 0: Decommitment: node 4: Hash(0x01)",
			"Trace 0: Decommitment: node 5: Hash(0x02)",
		},
	}

	mainProof, merkleCalls, friCalls, err := SplitProofCalls(proof)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mainProof) != 4 {
		t.Errorf("len(mainProof) = %d, expected 4", len(mainProof))
	}
	call, ok := merkleCalls["Trace 0"]
	if !ok {
		t.Fatalf("expected a verifyMerkle call for %q", "Trace 0")
	}
	if len(call.MerkleQueue) != 4 {
		t.Errorf("len(MerkleQueue) = %d, expected 4", len(call.MerkleQueue))
	}
	if len(friCalls) != 0 {
		t.Errorf("len(friCalls) = %d, expected 0", len(friCalls))
	}
}
