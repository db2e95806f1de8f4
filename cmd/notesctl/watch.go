package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Watch a directory and ingest new note files",
	Long: `Watch a directory and ingest .txt files into the server as they appear.

Runs until interrupted.

Examples:
  # Watch the notes drop folder
  notesctl watch ./notes

  # Against a different server
  notesctl watch ./notes --server http://notes.internal:8080`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

// runWatch handles the watch command
func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s for new .txt files (Ctrl-C to stop)\n", dir)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".txt") {
				continue
			}
			// The create event can arrive before the writer is done;
			// give it a moment before reading.
			time.Sleep(200 * time.Millisecond)
			if err := ingestFile(event.Name); err != nil {
				fmt.Fprintf(os.Stderr, "notesctl: %s: %v\n", event.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "notesctl: watch error: %v\n", err)
		}
	}
}
