package assemble

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/annotation"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/bitmath"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

func u256FromHex(hexDigest string) (*uint256.Int, error) {
	// uint256.FromHex rejects leading zero digits, which every padded
	// 64-character digest has, so they are stripped first.
	digits := strings.TrimLeft(hexDigest, "0")
	if digits == "" && hexDigest != "" {
		digits = "0"
	}
	n, err := uint256.FromHex("0x" + digits)
	if err != nil {
		return nil, stoneerr.Hex(hexDigest, err)
	}
	return n, nil
}

// GenMerkleStatementCall builds a MerkleStatement from one statement name's
// extras queue, original proof elements, and root commitment.
func GenMerkleStatementCall(merkleExtras, merkleOriginal []annotation.MerkleLine, merkleCommit annotation.CommitmentLine) (MerkleStatement, error) {
	if len(merkleExtras) == 0 {
		return MerkleStatement{}, stoneerr.InvariantViolation(merkleCommit.Name, "merkle statement has no extras queue entries")
	}

	height := merkleExtras[0].Node.BitLen() - 1
	for _, ml := range merkleExtras {
		if ml.Node.BitLen()-1 != height {
			return MerkleStatement{}, stoneerr.InvariantViolation(merkleCommit.Name, "merkle queue has non-uniform node heights")
		}
	}

	root, err := u256FromHex(merkleCommit.Digest)
	if err != nil {
		return MerkleStatement{}, err
	}

	queueValues := make([]*uint256.Int, len(merkleExtras))
	queueIndices := make([]*uint256.Int, len(merkleExtras))
	for i, ml := range merkleExtras {
		v, err := u256FromHex(ml.Digest)
		if err != nil {
			return MerkleStatement{}, err
		}
		queueValues[i] = v
		queueIndices[i] = ml.Node
	}

	proof := make([]*uint256.Int, len(merkleOriginal))
	for i, ml := range merkleOriginal {
		v, err := u256FromHex(ml.Digest)
		if err != nil {
			return MerkleStatement{}, err
		}
		proof[i] = v
	}

	return MerkleStatement{
		ExpectedRoot:       root,
		NUniqueQueries:     len(merkleExtras),
		MerkleHeight:       height,
		MerkleQueueIndices: queueIndices,
		MerkleQueueValues:  queueValues,
		Proof:              proof,
	}, nil
}

func interleave(a, b, c []*uint256.Int) []*uint256.Int {
	out := make([]*uint256.Int, 0, 3*len(a))
	for i := range a {
		out = append(out, a[i], b[i], c[i])
	}
	return out
}

// GenFriMerkleStatementCall builds a FriMerkleStatement for one FRI layer
// from its extras (current and next layer), original rows, merkle
// bookkeeping, and evaluation point.
func GenFriMerkleStatementCall(
	friExtras, friExtrasNext annotation.FriExtras,
	friOriginal []annotation.FriLine,
	merkleOriginal, merkleExtras []annotation.MerkleLine,
	merkleCommitment annotation.CommitmentLine,
	evaluationPoint annotation.EvalPointLine,
) (FriMerkleStatement, error) {
	root, err := u256FromHex(merkleCommitment.Digest)
	if err != nil {
		return FriMerkleStatement{}, err
	}
	evalPoint, err := u256FromHex(evaluationPoint.Point)
	if err != nil {
		return FriMerkleStatement{}, err
	}

	if len(merkleExtras) == 0 {
		return FriMerkleStatement{}, stoneerr.InvariantViolation(merkleCommitment.Name, "FRI layer has no merkle extras")
	}
	outputHeight := merkleExtras[0].Node.BitLen() - 1
	for _, ml := range merkleExtras {
		if ml.Node.BitLen()-1 != outputHeight {
			return FriMerkleStatement{}, stoneerr.InvariantViolation(merkleCommitment.Name, "FRI layer has non-uniform merkle node heights")
		}
	}

	rowsToCols := make(map[int]map[int]struct{})
	addRow := func(row, col int) {
		cols, ok := rowsToCols[row]
		if !ok {
			cols = make(map[int]struct{})
			rowsToCols[row] = cols
		}
		cols[col] = struct{}{}
	}
	for _, fl := range friExtras.Values {
		addRow(fl.Row, fl.Col)
	}
	for _, fl := range friOriginal {
		addRow(fl.Row, fl.Col)
	}

	rowLen := -1
	for _, cols := range rowsToCols {
		if rowLen == -1 {
			rowLen = len(cols)
		} else if len(cols) != rowLen {
			return FriMerkleStatement{}, stoneerr.InvariantViolation(merkleCommitment.Name, "FRI rows have non-uniform column counts")
		}
	}
	if rowLen <= 0 {
		return FriMerkleStatement{}, stoneerr.InvariantViolation(merkleCommitment.Name, "FRI layer has no rows")
	}

	stepSize := bitmath.Log2Floor(rowLen)
	inputHeight := outputHeight + stepSize

	inputLayerQueries := make([]*uint256.Int, len(friExtras.Inverses))
	for i, fx := range friExtras.Inverses {
		inputLayerQueries[i] = new(uint256.Int).Add(
			uint256.NewInt(uint64(fx.Index)),
			new(uint256.Int).Lsh(uint256.NewInt(1), uint(inputHeight)),
		)
	}

	outputLayerQueries := make([]*uint256.Int, len(merkleExtras))
	for i, ml := range merkleExtras {
		outputLayerQueries[i] = ml.Node
	}

	inputLayerValues := make([]*uint256.Int, len(friExtras.Values))
	for i, fl := range friExtras.Values {
		v, err := MontgomeryEncode(fl.Element)
		if err != nil {
			return FriMerkleStatement{}, err
		}
		inputLayerValues[i] = v
	}

	outputLayerValues := make([]*uint256.Int, len(friExtrasNext.Values))
	for i, fl := range friExtrasNext.Values {
		v, err := MontgomeryEncode(fl.Element)
		if err != nil {
			return FriMerkleStatement{}, err
		}
		outputLayerValues[i] = v
	}

	inputLayerInverses := make([]*uint256.Int, len(friExtras.Inverses))
	for i, fx := range friExtras.Inverses {
		v, err := u256FromHex(fx.Inv)
		if err != nil {
			return FriMerkleStatement{}, err
		}
		inputLayerInverses[i] = v
	}

	outputLayerInverses := make([]*uint256.Int, len(friExtrasNext.Inverses))
	for i, fx := range friExtrasNext.Inverses {
		v, err := u256FromHex(fx.Inv)
		if err != nil {
			return FriMerkleStatement{}, err
		}
		outputLayerInverses[i] = v
	}

	proof := make([]*uint256.Int, 0, len(friOriginal)+len(merkleOriginal))
	for _, fl := range friOriginal {
		v, err := MontgomeryEncode(fl.Element)
		if err != nil {
			return FriMerkleStatement{}, err
		}
		proof = append(proof, v)
	}
	for _, ml := range merkleOriginal {
		v, err := u256FromHex(ml.Digest)
		if err != nil {
			return FriMerkleStatement{}, err
		}
		proof = append(proof, v)
	}

	inputInterleaved := interleave(inputLayerQueries, inputLayerValues, inputLayerInverses)
	outputInterleaved := interleave(outputLayerQueries, outputLayerValues, outputLayerInverses)

	return FriMerkleStatement{
		ExpectedRoot:        root,
		EvaluationPoint:     evalPoint,
		FriStepSize:         stepSize,
		InputLayerQueries:   inputLayerQueries,
		OutputLayerQueries:  outputLayerQueries,
		InputLayerValues:    inputLayerValues,
		OutputLayerValues:   outputLayerValues,
		InputLayerInverses:  inputLayerInverses,
		OutputLayerInverses: outputLayerInverses,
		InputInterleaved:    inputInterleaved,
		OutputInterleaved:   outputInterleaved,
		Proof:               proof,
	}, nil
}
