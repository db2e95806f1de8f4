package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
)

var (
	// export command flags
	exportRepo    string
	exportMeeting string
	exportJSON    bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportRepo, "repo", "", "owner/name the server must be exporting to")
	exportCmd.Flags().StringVar(&exportMeeting, "meeting", "", "limit the export to one meeting ID")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "output the job as JSON")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export pending action items to GitHub",
	Long: `Enqueue a job that files one GitHub issue per pending action item.

The server exports to its configured repository. Pass --repo to assert which
one that is; the request is rejected on a mismatch.

Examples:
  # Export everything pending
  notesctl export

  # Assert the target repository first
  notesctl export --repo acme/sprint-board

  # Only one meeting's items
  notesctl export --meeting 8e40f7a0-3c9f-4f2b-9a71-2f6f6f0c2d11`,
	RunE: runExport,
}

// runExport handles the export command
func runExport(cmd *cobra.Command, args []string) error {
	var req notes.ExportRequest
	if exportRepo != "" {
		req.Repo = &exportRepo
	}
	if exportMeeting != "" {
		req.MeetingID = &exportMeeting
	}

	var job notes.JobResponse
	if err := apiPost("/v1/export/github", req, &job); err != nil {
		return err
	}

	if exportJSON {
		return outputJSON(job)
	}

	fmt.Printf("Export job accepted\n")
	fmt.Printf("ID: %s\n", job.ID)
	fmt.Printf("Status: %s\n", job.Status)

	return nil
}
