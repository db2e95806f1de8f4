package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
)

var (
	// search command flags
	searchLimit int
	searchJSON  bool
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of meetings to return")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search the meeting archive",
	Long: `Search meeting titles, topics, decisions and action items.

Examples:
  # Everything about the payment service
  notesctl search payment service

  # Machine output
  notesctl search deploy --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// searchResult matches the search handler in internal/adapter/handler/meeting.go
type searchResult struct {
	Query    string                          `json:"query"`
	Meetings []*notes.MeetingSummaryResponse `json:"meetings"`
	Total    int                             `json:"total"`
}

// runSearch handles the search command
func runSearch(cmd *cobra.Command, args []string) error {
	q := strings.Join(args, " ")

	path := fmt.Sprintf("/v1/search?q=%s&limit=%d", url.QueryEscape(q), searchLimit)
	var resp searchResult
	if err := apiGet(path, &resp); err != nil {
		return err
	}

	if searchJSON {
		return outputJSON(resp)
	}

	if len(resp.Meetings) == 0 {
		fmt.Printf("No meetings match %q\n", q)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tTITLE\tACTIONS\tDECISIONS")
	for _, m := range resp.Meetings {
		date := "-"
		if m.MeetingDate != nil {
			date = m.MeetingDate.Format("2006-01-02")
		}
		meetingType := "-"
		if m.MeetingType != nil && *m.MeetingType != "" {
			meetingType = *m.MeetingType
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			date,
			meetingType,
			truncate(m.Title, 40),
			m.ActionItems,
			m.Decisions,
		)
	}
	w.Flush()

	fmt.Printf("\n%d matched\n", resp.Total)
	return nil
}
