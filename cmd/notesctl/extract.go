package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/pkg/extract"
)

var (
	// extract command flags
	extractOut string
)

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractOut, "out", "-", "output directory for JSON records, or - for stdout")
}

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract structured records from note files",
	Long: `Extract structured meeting records from free-form note files.

Runs entirely locally: no server, no database. Each input produces one JSON
record. Reads stdin when no files are given or a file is -.

Examples:
  # Extract one file to stdout
  notesctl extract notes/sprint_planning_2024_01_15.txt

  # Extract from stdin
  cat notes.txt | notesctl extract -

  # Extract a batch into a directory
  notesctl extract notes/*.txt --out records/`,
	RunE: runExtract,
}

// runExtract handles the extract command
func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	if extractOut != "-" {
		if err := os.MkdirAll(extractOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	failed := 0
	for _, arg := range args {
		if err := extractOne(arg); err != nil {
			fmt.Fprintf(os.Stderr, "notesctl: %s: %v\n", arg, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}
	return nil
}

// extractOne extracts a single input and writes its record
func extractOne(path string) error {
	var (
		rec *extract.Record
		err error
	)
	if path == "-" {
		rec, err = extract.ExtractReader("stdin", os.Stdin)
	} else {
		rec, err = extract.ExtractFile(path)
	}
	if err != nil {
		return err
	}

	if extractOut == "-" {
		return outputJSON(rec)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	target := filepath.Join(extractOut, recordFileName(path))
	if err := os.WriteFile(target, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	fmt.Printf("%s -> %s\n", path, target)
	return nil
}

// recordFileName maps an input path to its JSON record name
func recordFileName(path string) string {
	if path == "-" {
		return "stdin.json"
	}
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".json"
}
