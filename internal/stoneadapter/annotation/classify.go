package annotation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

var hexPattern = regexp.MustCompile(`\(0x([0-9a-f]+)\)`)

// extractHex pulls the hex payload out of a `(0x...)` group and left-pads it
// with zeros to 64 characters.
func extractHex(line string) string {
	m := hexPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return padHex(m[1])
}

func padHex(s string) string {
	if len(s) >= 64 {
		return s
	}
	return strings.Repeat("0", 64-len(s)) + s
}

func lastSegmentBeforeColon(line string) (string, error) {
	parts := strings.Split(line, "/")
	if len(parts) == 0 {
		return "", stoneerr.InvalidLineFormat(line)
	}
	last := parts[len(parts)-1]
	name := strings.SplitN(last, ":", 2)[0]
	return name, nil
}

// IsMerkleLine reports whether line is a Merkle-decommitment node line.
func IsMerkleLine(line string) bool {
	return strings.Contains(line, "Decommitment") && strings.Contains(line, "node") && strings.Contains(line, "Hash")
}

// ParseMerkleLine parses a Merkle-decommitment node line.
func ParseMerkleLine(line string) (MerkleLine, error) {
	name, err := lastSegmentBeforeColon(line)
	if err != nil {
		return MerkleLine{}, err
	}

	idx := strings.Index(line, "node ")
	if idx < 0 {
		return MerkleLine{}, stoneerr.InvalidLineFormat(line)
	}
	rest := line[idx+len("node "):]
	nodeStr := strings.SplitN(rest, ":", 2)[0]

	node, err := parseDecimalU256(nodeStr)
	if err != nil {
		return MerkleLine{}, stoneerr.ParseNumber(line, err)
	}

	return MerkleLine{
		Name:       name,
		Node:       node,
		Digest:     extractHex(line),
		Annotation: line,
	}, nil
}

// IsMerkleDataLine reports whether line is a Merkle-data decommitment line.
func IsMerkleDataLine(line string) bool {
	return strings.Contains(line, "Decommitment") && strings.Contains(line, "element #") && strings.Contains(line, "Data")
}

// ParseMerkleDataLine parses a Merkle-data decommitment line.
func ParseMerkleDataLine(line string) (MerkleLine, error) {
	name, err := lastSegmentBeforeColon(line)
	if err != nil {
		return MerkleLine{}, err
	}

	idx := strings.Index(line, "element #")
	if idx < 0 {
		return MerkleLine{}, stoneerr.InvalidLineFormat(line)
	}
	rest := line[idx+len("element #"):]
	nodeStr := strings.SplitN(rest, ":", 2)[0]

	node, err := parseDecimalU256(nodeStr)
	if err != nil {
		return MerkleLine{}, stoneerr.ParseNumber(line, err)
	}

	return MerkleLine{
		Name:       name,
		Node:       node,
		Digest:     extractHex(line),
		Annotation: line,
	}, nil
}

// IsFriLine reports whether line is a FRI element-decommitment line.
func IsFriLine(line string) bool {
	return strings.Contains(line, "Decommitment") &&
		strings.Contains(line, "Row") &&
		strings.Contains(line, "Field Element") &&
		!strings.Contains(line, "Virtual Oracle")
}

// ParseFriLine parses a FRI element-decommitment line.
func ParseFriLine(line string) (FriLine, error) {
	parts := strings.Split(line, "/")
	if len(parts) == 0 {
		return FriLine{}, stoneerr.InvalidLineFormat(line)
	}
	name := strings.SplitN(parts[len(parts)-1], ":", 2)[0]

	colonParts := strings.Split(line, ":")
	if len(colonParts) < 2 {
		return FriLine{}, stoneerr.InvalidLineFormat(line)
	}
	rowColPart := colonParts[len(colonParts)-2]
	rowCol := strings.Split(rowColPart, ",")
	if len(rowCol) != 2 {
		return FriLine{}, stoneerr.InvalidLineFormat(line)
	}

	rowFields := strings.Fields(rowCol[0])
	if len(rowFields) < 2 {
		return FriLine{}, stoneerr.InvalidLineFormat(line)
	}
	row, err := strconv.Atoi(rowFields[1])
	if err != nil {
		return FriLine{}, stoneerr.ParseNumber(line, err)
	}

	colFields := strings.Fields(rowCol[1])
	if len(colFields) < 2 {
		return FriLine{}, stoneerr.InvalidLineFormat(line)
	}
	col, err := strconv.Atoi(colFields[1])
	if err != nil {
		return FriLine{}, stoneerr.ParseNumber(line, err)
	}

	return FriLine{
		Name:       name,
		Row:        row,
		Col:        col,
		Element:    extractHex(line),
		Annotation: line,
	}, nil
}

// IsFriXInvLine reports whether line is a FRI xInv-decommitment line.
func IsFriXInvLine(line string) bool {
	return strings.Contains(line, "Decommitment") && strings.Contains(line, "xInv") && strings.Contains(line, "Field Element")
}

// ParseFriXInvLine parses a FRI xInv-decommitment line.
func ParseFriXInvLine(line string) (FriXInvLine, error) {
	parts := strings.Split(line, "/")
	if len(parts) == 0 {
		return FriXInvLine{}, stoneerr.InvalidLineFormat(line)
	}
	name := strings.SplitN(parts[len(parts)-1], ":", 2)[0]

	idx := strings.Index(line, "index ")
	if idx < 0 {
		return FriXInvLine{}, stoneerr.InvalidLineFormat(line)
	}
	rest := line[idx+len("index "):]
	indexStr := strings.SplitN(rest, ":", 2)[0]
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return FriXInvLine{}, stoneerr.InvalidLineFormat(line)
	}

	return FriXInvLine{
		Name:       name,
		Index:      index,
		Inv:        extractHex(line),
		Annotation: line,
	}, nil
}

// IsCommitmentLine reports whether line is a commitment line.
func IsCommitmentLine(line string) bool {
	return strings.Contains(line, "Commitment") && strings.Contains(line, "Hash")
}

// ParseCommitmentLine parses a commitment line. traceCounter is read and, for
// "Commit on Trace" lines, incremented in place.
func ParseCommitmentLine(line string, traceCounter *int) (CommitmentLine, error) {
	parts := strings.Split(line, ":")
	if len(parts) < 3 {
		return CommitmentLine{}, stoneerr.InvalidLineFormat(line)
	}
	pathParts := strings.Split(strings.TrimSpace(parts[2]), "/")

	var name string
	switch {
	case len(pathParts) > 0 && pathParts[len(pathParts)-1] == "Commit on Trace":
		name = "Trace " + strconv.Itoa(*traceCounter)
		*traceCounter++
	case len(pathParts) >= 2 && pathParts[len(pathParts)-2] == "Commitment":
		name = pathParts[len(pathParts)-1]
	default:
		return CommitmentLine{}, stoneerr.InvalidLineFormat(line)
	}

	return CommitmentLine{
		Name:       name,
		Digest:     extractHex(line),
		Annotation: line,
	}, nil
}

// IsEvalPointLine reports whether line is a FRI evaluation-point line.
func IsEvalPointLine(line string) bool {
	return strings.Contains(line, "Evaluation point") && strings.Contains(line, "Layer")
}

// ParseEvalPointLine parses a FRI evaluation-point line.
func ParseEvalPointLine(line string) (EvalPointLine, error) {
	parts := strings.Split(line, "/")
	if len(parts) == 0 {
		return EvalPointLine{}, stoneerr.InvalidLineFormat(line)
	}
	name := strings.SplitN(parts[len(parts)-1], ":", 2)[0]

	return EvalPointLine{
		Name:       name,
		Point:      extractHex(line),
		Annotation: line,
	}, nil
}

func parseDecimalU256(s string) (*uint256.Int, error) {
	return uint256.FromDecimal(strings.TrimSpace(s))
}
