package annotation

import (
	"strconv"
	"strings"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// LineToIndices parses a `P->V[start:end]` byte-range directive. Lines that
// don't start with that prefix yield (0, 0) — no bytes.
func LineToIndices(line string) (start, end int, err error) {
	if !strings.HasPrefix(line, "P->V[") {
		return 0, 0, nil
	}

	closeIdx := strings.Index(line, "]")
	if closeIdx < 0 {
		return 0, 0, stoneerr.InvalidLineFormat(line)
	}
	indicesPart := line[len("P->V["):closeIdx]
	parts := strings.Split(indicesPart, ":")
	if len(parts) != 2 {
		return 0, 0, stoneerr.InvalidLineFormat(line)
	}

	start, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, stoneerr.ParseNumber(line, err)
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, stoneerr.ParseNumber(line, err)
	}
	return start, end, nil
}

// isTypedKind reports whether line is one of the six typed kinds that are
// excluded from main-proof byte routing (Merkle, Merkle-data, FRI, FRI-xInv,
// Commitment, EvalPoint).
func isTypedKind(line string) bool {
	return IsMerkleLine(line) ||
		IsMerkleDataLine(line) ||
		IsFriLine(line) ||
		IsFriXInvLine(line) ||
		IsCommitmentLine(line) ||
		IsEvalPointLine(line)
}

// Route walks the ordered original annotation and, for every line that is
// not one of the six typed kinds, copies original[start:end] (per that
// line's byte-range directive) into the returned main-proof buffer.
func Route(original []byte, lines []string) (mainProof []byte, mainAnnotation string, err error) {
	var annot strings.Builder
	var proof []byte

	for _, line := range lines {
		if isTypedKind(line) {
			continue
		}
		annot.WriteString(line)
		annot.WriteByte('\n')

		start, end, err := LineToIndices(line)
		if err != nil {
			return nil, "", err
		}
		if end > len(original) || start > end {
			return nil, "", stoneerr.InvariantViolation(line, "byte-range directive out of bounds")
		}
		proof = append(proof, original[start:end]...)
	}

	return proof, annot.String(), nil
}
