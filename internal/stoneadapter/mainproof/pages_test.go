package mainproof

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestCalculateProduct(t *testing.T) {
	prime := uint256.NewInt(101)
	prod := uint256.NewInt(1)
	z := uint256.NewInt(5)
	alpha := uint256.NewInt(2)
	addr := uint256.NewInt(1)
	val := uint256.NewInt(3)

	got := CalculateProduct(prod, z, alpha, addr, val, prime)
	if got.Uint64() != 99 {
		t.Errorf("CalculateProduct = %d, expected 99", got.Uint64())
	}
}

func TestGetPagesAndProductsDensePages(t *testing.T) {
	memory := []PublicMemory{
		{Page: 0, Address: 1, Value: "01"},
		{Page: 1, Address: 10, Value: "02"},
	}
	pages, prods, err := GetPagesAndProducts(memory, uint256.NewInt(5), uint256.NewInt(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 || len(prods) != 2 {
		t.Fatalf("expected 2 pages and 2 products, got %d/%d", len(pages), len(prods))
	}
}

func TestGetPagesAndProductsRejectsSparsePages(t *testing.T) {
	memory := []PublicMemory{
		{Page: 0, Address: 1, Value: "01"},
		{Page: 2, Address: 10, Value: "02"}, // page 1 is missing
	}
	if _, _, err := GetPagesAndProducts(memory, uint256.NewInt(5), uint256.NewInt(7)); err == nil {
		t.Errorf("expected error for non-dense page indices")
	}
}

func TestMemoryPagePublicInputStructure(t *testing.T) {
	memory := []PublicMemory{
		{Page: 0, Address: 1, Value: "01"},
		{Page: 0, Address: 2, Value: "02"},
		{Page: 1, Address: 100, Value: "03"},
		{Page: 1, Address: 101, Value: "04"},
	}
	mp := &MainProof{}
	out, err := mp.MemoryPagePublicInput(memory, uint256.NewInt(5), uint256.NewInt(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// padding, n_pages, [page0: size, hash], [page1: addr, size, hash], prod0, prod1
	wantLen := 1 + 1 + 2 + 3 + 2
	if len(out) != wantLen {
		t.Fatalf("len(out) = %d, expected %d", len(out), wantLen)
	}
	if out[0].Uint64() != 1 {
		t.Errorf("padding cell = %d, expected public_memory[0].value = 1", out[0].Uint64())
	}
	if out[1].Uint64() != 2 {
		t.Errorf("n_pages = %d, expected 2", out[1].Uint64())
	}
	if out[2].Uint64() != 2 {
		t.Errorf("page 0 size = %d, expected 2 (address/value pair count)", out[2].Uint64())
	}
	if out[4].Uint64() != 100 {
		t.Errorf("page 1 leading address = %d, expected 100", out[4].Uint64())
	}
	if out[5].Uint64() != 2 {
		t.Errorf("page 1 size = %d, expected 2", out[5].Uint64())
	}
}

func TestMemoryPagePublicInputRejectsNonContiguousPage(t *testing.T) {
	memory := []PublicMemory{
		{Page: 0, Address: 1, Value: "01"},
		{Page: 1, Address: 100, Value: "02"},
		{Page: 1, Address: 150, Value: "03"}, // not contiguous with 100
	}
	mp := &MainProof{}
	if _, err := mp.MemoryPagePublicInput(memory, uint256.NewInt(5), uint256.NewInt(7)); err == nil {
		t.Errorf("expected error for non-contiguous continuous memory page")
	}
}

func TestMemoryPageRegistrationArgsSplitsPageZero(t *testing.T) {
	memory := []PublicMemory{
		{Page: 0, Address: 1, Value: "01"},
		{Page: 1, Address: 100, Value: "02"},
		{Page: 1, Address: 101, Value: "03"},
	}
	mp := &MainProof{InteractionZ: uint256.NewInt(5), InteractionAlpha: uint256.NewInt(7)}
	regular, continuous, err := mp.MemoryPageRegistrationArgs(memory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regular.Page) != 2 {
		t.Errorf("len(regular.Page) = %d, expected 2 (one interleaved addr/val pair)", len(regular.Page))
	}
	if len(continuous) != 1 {
		t.Fatalf("len(continuous) = %d, expected 1", len(continuous))
	}
	if continuous[0].StartAddress.Uint64() != 100 {
		t.Errorf("continuous[0].StartAddress = %d, expected 100", continuous[0].StartAddress.Uint64())
	}
	if len(continuous[0].Values) != 2 {
		t.Errorf("len(continuous[0].Values) = %d, expected 2", len(continuous[0].Values))
	}
}
