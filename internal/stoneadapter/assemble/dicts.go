package assemble

import (
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/annotation"
	"github.com/stoneadapt/stone-evm-adapter/internal/stoneadapter/stoneerr"
)

// ParseFriMerklesExtra groups the extras transcript into a Merkle-extras
// dictionary and an ordered list of FriExtras, one per distinct FRI layer
// name in encounter order.
func ParseFriMerklesExtra(extraLines []string) (map[string][]annotation.MerkleLine, []annotation.FriExtras, error) {
	merkleExtras := make(map[string][]annotation.MerkleLine)
	friExtras := make(map[string]*annotation.FriExtras)
	var friNames []string

	for _, line := range extraLines {
		switch {
		case annotation.IsMerkleLine(line):
			ml, err := annotation.ParseMerkleLine(line)
			if err != nil {
				return nil, nil, err
			}
			merkleExtras[ml.Name] = append(merkleExtras[ml.Name], ml)

		case annotation.IsFriLine(line):
			fl, err := annotation.ParseFriLine(line)
			if err != nil {
				return nil, nil, err
			}
			if _, ok := friExtras[fl.Name]; !ok {
				friExtras[fl.Name] = &annotation.FriExtras{}
				friNames = append(friNames, fl.Name)
			}
			friExtras[fl.Name].Values = append(friExtras[fl.Name].Values, fl)

		case annotation.IsFriXInvLine(line):
			fx, err := annotation.ParseFriXInvLine(line)
			if err != nil {
				return nil, nil, err
			}
			layer, ok := friExtras[fx.Name]
			if !ok {
				return nil, nil, stoneerr.InvariantViolation(fx.Name, "FRI xInv line references an unseen layer")
			}
			layer.Inverses = append(layer.Inverses, fx)
		}
	}

	friExtrasList := make([]annotation.FriExtras, 0, len(friNames))
	for _, name := range friNames {
		friExtrasList = append(friExtrasList, *friExtras[name])
	}

	return merkleExtras, friExtrasList, nil
}

// ParseFriMerklesOriginal groups the original transcript into Merkle,
// commitment, FRI, and evaluation-point dictionaries, and routes every
// non-typed line's byte range into the residual main proof.
func ParseFriMerklesOriginal(origProof []byte, annotLines []string) (*FriMerklesOriginal, error) {
	merkleOriginals := make(map[string][]annotation.MerkleLine)
	merkleCommitments := make(map[string]annotation.CommitmentLine)
	friOriginals := make(map[string][]annotation.FriLine)
	var friNames []string
	var evalPoints []annotation.EvalPointLine
	merklePatches := make(map[string]struct{})

	traceCommitmentCounter := 0

	for _, line := range annotLines {
		if annotation.IsCommitmentLine(line) {
			cl, err := annotation.ParseCommitmentLine(line, &traceCommitmentCounter)
			if err != nil {
				return nil, err
			}
			merkleCommitments[cl.Name] = cl
		} else if annotation.IsEvalPointLine(line) {
			ep, err := annotation.ParseEvalPointLine(line)
			if err != nil {
				return nil, err
			}
			evalPoints = append(evalPoints, ep)
		}

		switch {
		case annotation.IsMerkleLine(line):
			ml, err := annotation.ParseMerkleLine(line)
			if err != nil {
				return nil, err
			}
			merkleOriginals[ml.Name] = append(merkleOriginals[ml.Name], ml)

		case annotation.IsMerkleDataLine(line):
			ml, err := annotation.ParseMerkleDataLine(line)
			if err != nil {
				return nil, err
			}
			merkleOriginals[ml.Name] = append(merkleOriginals[ml.Name], ml)
			merklePatches[ml.Name] = struct{}{}

		case annotation.IsFriLine(line):
			fl, err := annotation.ParseFriLine(line)
			if err != nil {
				return nil, err
			}
			if _, ok := friOriginals[fl.Name]; !ok {
				friNames = append(friNames, fl.Name)
			}
			friOriginals[fl.Name] = append(friOriginals[fl.Name], fl)
		}
	}

	mainProof, mainAnnotation, err := annotation.Route(origProof, annotLines)
	if err != nil {
		return nil, err
	}

	return &FriMerklesOriginal{
		MerkleOriginals:   merkleOriginals,
		MerkleCommitments: merkleCommitments,
		FriOriginals:      friOriginals,
		EvalPoints:        evalPoints,
		FriNames:          friNames,
		OriginalProof:     mainProof,
		MainAnnotation:    mainAnnotation,
		MerklePatches:     merklePatches,
	}, nil
}
