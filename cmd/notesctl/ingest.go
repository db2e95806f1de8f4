package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
)

func init() {
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Ingest note files into the server archive",
	Long: `POST note files to the meeting-notes server for extraction and storage.

Re-ingesting a file the server already knows updates its meeting in place.

Examples:
  # Ingest one file
  notesctl ingest notes/sprint_planning_2024_01_15.txt

  # Ingest a batch
  notesctl ingest notes/*.txt

  # Against a different server
  notesctl ingest --server http://notes.internal:8080 notes/*.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

// ingestEnvelope matches the success envelope in internal/adapter/handler/helper.go
type ingestEnvelope struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Data    notes.IngestResponse `json:"data"`
}

// runIngest handles the ingest command
func runIngest(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := ingestFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "notesctl: %s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// ingestFile posts one file to the server and prints the outcome.
// Shared with the watch command.
func ingestFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	req := notes.IngestTextRequest{
		Content:    string(content),
		SourcePath: path,
	}
	var resp ingestEnvelope
	if err := apiPost("/v1/documents", req, &resp); err != nil {
		return err
	}

	outcome := "unchanged"
	switch {
	case resp.Data.Created:
		outcome = "created"
	case resp.Data.Updated:
		outcome = "updated"
	}
	title := ""
	if resp.Data.Meeting != nil {
		title = resp.Data.Meeting.Title
	}
	fmt.Printf("%s: %s %q\n", path, outcome, title)
	for _, w := range resp.Data.Warnings {
		fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
	}
	return nil
}
