package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/stoneadapt/stone-evm-adapter/pkg/stoneadapter"
)

func main() {
	app := &cli.App{
		Name:  "stone-evm-adapter",
		Usage: "EVM adapter for the STARK stone-prover",
		Commands: []*cli.Command{
			splitProofCommand(),
			genAnnotatedProofCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err.Error())
	}
}

func splitProofCommand() *cli.Command {
	return &cli.Command{
		Name:  "split-proof",
		Usage: "Split an annotated proof into multiple FRI proofs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "annotated-proof-file", Usage: "file path for annotated proof json file", Required: true},
			&cli.StringFlag{Name: "output", Usage: "file path for generated split proofs json file", Required: true},
		},
		Action: runSplitProof,
	}
}

func runSplitProof(c *cli.Context) error {
	inputPath := c.String("annotated-proof-file")
	outputPath := c.String("output")

	logStderr(fmt.Sprintf("reading annotated proof from %s", inputPath))
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	var annotated stoneadapter.AnnotatedProof
	if err := json.Unmarshal(raw, &annotated); err != nil {
		return fmt.Errorf("failed to parse annotated proof: %w", err)
	}

	logStderr("splitting proof...")
	split, err := stoneadapter.SplitProof(annotated)
	if err != nil {
		return fmt.Errorf("split-proof failed: %w", err)
	}

	out, err := json.MarshalIndent(split, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize split proofs: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("split proof wrote to %s\n", outputPath)
	return nil
}

func genAnnotatedProofCommand() *cli.Command {
	return &cli.Command{
		Name:  "gen-annotated-proof",
		Usage: "Merge stone proof and annotations into a single annotated proof json file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "stone-proof-file", Usage: "file path for proof file generated by the STARK stone-prover", Required: true},
			&cli.StringFlag{Name: "stone-annotation-file", Usage: "file path for annotation file generated by the STARK stone-prover", Required: true},
			&cli.StringFlag{Name: "stone-extra-annotation-file", Usage: "file path for extra-annotation file generated by the STARK stone-prover", Required: true},
			&cli.StringFlag{Name: "output", Usage: "file path for generated annotated proof json file", Required: true},
		},
		Action: runGenAnnotatedProof,
	}
}

func runGenAnnotatedProof(c *cli.Context) error {
	proofPath := c.String("stone-proof-file")
	annotationPath := c.String("stone-annotation-file")
	extraAnnotationPath := c.String("stone-extra-annotation-file")
	outputPath := c.String("output")

	logStderr(fmt.Sprintf("reading stone proof from %s", proofPath))
	proofRaw, err := os.ReadFile(proofPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", proofPath, err)
	}
	var proofDoc map[string]interface{}
	if err := json.Unmarshal(proofRaw, &proofDoc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", proofPath, err)
	}

	annotations, err := readLines(annotationPath)
	if err != nil {
		return err
	}
	extraAnnotations, err := readLines(extraAnnotationPath)
	if err != nil {
		return err
	}

	proofDoc["annotations"] = annotations
	proofDoc["extra_annotations"] = extraAnnotations

	out, err := json.MarshalIndent(proofDoc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize annotated proof: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("annotated proof wrote to %s\n", outputPath)
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "stone-evm-adapter:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
