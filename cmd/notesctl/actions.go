package main

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
)

var (
	// actions command flags
	actionsPerson string
	actionsJSON   bool
)

func init() {
	rootCmd.AddCommand(actionsCmd)
	actionsCmd.Flags().StringVar(&actionsPerson, "person", "", "only this person's action items")
	actionsCmd.Flags().BoolVar(&actionsJSON, "json", false, "output results as JSON")
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List pending action items",
	Long: `List pending action items from the server archive.

Examples:
  # Everything still open
  notesctl actions

  # One person's plate
  notesctl actions --person "Sarah Chen"

  # Machine output
  notesctl actions --json`,
	RunE: runActions,
}

// runActions handles the actions command
func runActions(cmd *cobra.Command, args []string) error {
	path := "/v1/actions/pending"
	if actionsPerson != "" {
		path = "/v1/actions/person/" + url.PathEscape(actionsPerson)
	}

	var resp notes.ActionListResponse
	if err := apiGet(path, &resp); err != nil {
		return err
	}

	if actionsJSON {
		return outputJSON(resp)
	}

	if len(resp.Actions) == 0 {
		fmt.Println("No pending action items")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OWNER\tPRIORITY\tDUE\tDESCRIPTION\tMEETING")
	for _, a := range resp.Actions {
		owner := "-"
		if a.Owner != nil && *a.Owner != "" {
			owner = *a.Owner
		}
		due := "-"
		if a.DueDate != nil {
			due = a.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(owner, 20),
			a.Priority,
			due,
			truncate(a.Description, 50),
			truncate(a.MeetingTitle, 30),
		)
	}
	w.Flush()

	fmt.Printf("\n%d pending\n", resp.Total)
	return nil
}
