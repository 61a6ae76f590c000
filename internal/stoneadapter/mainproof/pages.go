package mainproof

import (
	"sort"
	"strings"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// u256FromHex parses a public-memory cell value, accepting an optional
// "0x" prefix.
func u256FromHex(hexValue string) (*uint256.Int, error) {
	trimmed := strings.TrimPrefix(hexValue, "0x")
	// uint256.FromHex rejects leading zero digits (e.g. "0a"), so they are
	// stripped first.
	digits := strings.TrimLeft(trimmed, "0")
	if digits == "" && trimmed != "" {
		digits = "0"
	}
	n, err := uint256.FromHex("0x" + digits)
	if err != nil {
		return nil, stoneerr.Hex(hexValue, err)
	}
	return n, nil
}

// CalculateProduct folds one memory cell (addr, val) into the running
// accumulator: prod * (z - (addr + alpha*val)) mod prime.
func CalculateProduct(prod, z, alpha, addr, val, prime *uint256.Int) *uint256.Int {
	term := new(uint256.Int).MulMod(alpha, val, prime)
	term.AddMod(term, addr, prime)

	diff := new(uint256.Int).Sub(prime, term)
	diff.AddMod(diff, z, prime)

	return new(uint256.Int).MulMod(prod, diff, prime)
}

// GetPagesAndProducts groups public-memory cells by page and computes each
// page's accumulator product, in dense page order 0..n_pages-1.
func GetPagesAndProducts(publicMemory []PublicMemory, z, alpha *uint256.Int) (map[uint32][]*uint256.Int, map[uint32]*uint256.Int, error) {
	prime := DefaultPrime()
	pages := map[uint32][]*uint256.Int{}
	prods := map[uint32]*uint256.Int{}

	for _, cell := range publicMemory {
		addr := uint256.NewInt(cell.Address)
		val, err := u256FromHex(cell.Value)
		if err != nil {
			return nil, nil, err
		}

		pages[cell.Page] = append(pages[cell.Page], addr, val)

		prod, ok := prods[cell.Page]
		if !ok {
			prod = uint256.NewInt(1)
		}
		prods[cell.Page] = CalculateProduct(prod, z, alpha, addr, val, prime)
	}

	for page := range pages {
		if _, ok := prods[page]; !ok {
			return nil, nil, stoneerr.InvariantViolation("", "page present with no accumulator product")
		}
	}
	if err := checkDensePageIndices(pages); err != nil {
		return nil, nil, err
	}
	return pages, prods, nil
}

// checkDensePageIndices enforces that public-memory page indices form the
// contiguous range 0..n_pages-1, with no gaps.
func checkDensePageIndices(pages map[uint32][]*uint256.Int) error {
	n := len(pages)
	for i := 0; i < n; i++ {
		if _, ok := pages[uint32(i)]; !ok {
			return stoneerr.InvariantViolation("", "memory page indices are not dense over 0..n_pages-1")
		}
	}
	return nil
}

// keccakInts hashes the 32-byte big-endian concatenation of values.
func keccakInts(values []*uint256.Int) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, v := range values {
		b := v.Bytes32()
		h.Write(b[:])
	}
	return h.Sum(nil)
}

// MemoryPagePublicInput builds the flattened memory-page public-input
// vector: a padding cell, the page count, then per-page
// [address?, size, hash] tuples (page 0 carries no leading address), then
// every page's accumulator product in dense page order.
func (m *MainProof) MemoryPagePublicInput(publicMemory []PublicMemory, z, alpha *uint256.Int) ([]*uint256.Int, error) {
	if len(publicMemory) == 0 {
		return nil, stoneerr.InvariantViolation("", "public memory is empty")
	}

	pages, prods, err := GetPagesAndProducts(publicMemory, z, alpha)
	if err != nil {
		return nil, err
	}
	nPages := len(pages)

	padding, err := u256FromHex(publicMemory[0].Value)
	if err != nil {
		return nil, err
	}

	out := []*uint256.Int{padding, uint256.NewInt(uint64(nPages))}

	for i := 0; i < nPages; i++ {
		page := pages[uint32(i)]
		if i == 0 {
			out = append(out, uint256.NewInt(uint64(len(page)/2)), new(uint256.Int).SetBytes(keccakInts(page)))
			continue
		}
		if err := checkAddressContinuity(page); err != nil {
			return nil, err
		}
		values := make([]*uint256.Int, 0, len(page)/2)
		for j := 1; j < len(page); j += 2 {
			values = append(values, page[j])
		}
		out = append(out, page[0], uint256.NewInt(uint64(len(values))), new(uint256.Int).SetBytes(keccakInts(values)))
	}

	for i := 0; i < nPages; i++ {
		out = append(out, prods[uint32(i)])
	}
	return out, nil
}

// checkAddressContinuity verifies that a continuous page's addresses (the
// even-indexed entries of the interleaved [addr, val, addr, val, ...]
// slice) form a contiguous run starting at page[0].
func checkAddressContinuity(page []*uint256.Int) error {
	if len(page) == 0 || len(page)%2 != 0 {
		return stoneerr.InvariantViolation("", "memory page is not an interleaved [addr, val] sequence")
	}
	first := page[0].Uint64()
	for i := 0; i < len(page); i += 2 {
		want := first + uint64(i/2)
		if page[i].Uint64() != want {
			return stoneerr.InvariantViolation("", "continuous memory page addresses are not contiguous")
		}
	}
	return nil
}

// MemoryPageRegistrationArgs splits public memory into page 0 (registered
// implicitly as part of the main proof) and the remaining pages (each
// independently registerable via registerContinuousMemoryPage).
func (m *MainProof) MemoryPageRegistrationArgs(publicMemory []PublicMemory) (RegularMemoryPage, []ContinuousMemoryPage, error) {
	pages, _, err := GetPagesAndProducts(publicMemory, m.InteractionZ, m.InteractionAlpha)
	if err != nil {
		return RegularMemoryPage{}, nil, err
	}

	regular := RegularMemoryPage{Page: pages[0]}

	indices := make([]int, 0, len(pages))
	for idx := range pages {
		if idx == 0 {
			continue
		}
		indices = append(indices, int(idx))
	}
	sort.Ints(indices)

	continuous := make([]ContinuousMemoryPage, 0, len(indices))
	for _, idx := range indices {
		page := pages[uint32(idx)]
		if err := checkAddressContinuity(page); err != nil {
			return RegularMemoryPage{}, nil, err
		}
		values := make([]*uint256.Int, 0, len(page)/2)
		for j := 1; j < len(page); j += 2 {
			values = append(values, page[j])
		}
		continuous = append(continuous, ContinuousMemoryPage{StartAddress: page[0], Values: values})
	}
	return regular, continuous, nil
}
