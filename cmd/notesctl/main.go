// Package main implements the notesctl CLI for local note extraction and
// manual operations against the meeting-notes HTTP server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// serverURL is the base URL for the meeting-notes HTTP server
	serverURL string
	// serverToken authenticates mutating requests when the server runs with auth enabled
	serverToken string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "CLI for meeting-note extraction and server operations",
	Long: `notesctl turns free-form meeting notes into structured records.

The extract command runs entirely locally and needs no server. Every other
command talks to a running meeting-notes API server.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "meeting-notes server URL")
	rootCmd.PersistentFlags().StringVar(&serverToken, "token", os.Getenv("NOTESCTL_TOKEN"), "bearer token for protected routes (defaults to $NOTESCTL_TOKEN)")
	rootCmd.AddCommand(healthCmd)
}

// healthCmd checks server health
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check meeting-notes server health",
	Long: `Check the health status of the meeting-notes HTTP server.

Examples:
  # Check health
  notesctl health

  # Check health on a different server
  notesctl health --server http://notes.internal:8080`,
	RunE: runHealth,
}

// HealthResponse matches the health handler in internal/adapter/handler/router.go
type HealthResponse struct {
	Status      string `json:"status"`
	Time        string `json:"time"`
	Environment string `json:"environment"`
}

// runHealth handles the health command
func runHealth(cmd *cobra.Command, args []string) error {
	var health HealthResponse
	if err := apiGet("/health", &health); err != nil {
		return err
	}

	fmt.Printf("Server Status: %s\n", health.Status)
	fmt.Printf("Server URL: %s\n", serverURL)
	fmt.Printf("Environment: %s\n", health.Environment)

	return nil
}

// Shared helpers

func apiClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
}

// apiGet performs a GET against the server and decodes the JSON response
func apiGet(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, serverURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	authorize(req)

	resp, err := apiClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", serverURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiPost performs a JSON POST against the server and decodes the response.
// A nil out discards the body.
func apiPost(path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, serverURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	authorize(req)

	resp, err := apiClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", serverURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func authorize(req *http.Request) {
	if serverToken != "" {
		req.Header.Set("Authorization", "Bearer "+serverToken)
	}
}

// apiError reads an error body in either of the server's two error shapes
func apiError(resp *http.Response) error {
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("server returned status %d (failed to read response body: %w)", resp.StatusCode, readErr)
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Info    string `json:"info"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	if payload.Info != "" {
		return fmt.Errorf("server returned status %d: %s (%s)", resp.StatusCode, payload.Message, payload.Info)
	}
	return fmt.Errorf("server returned status %d: %s", resp.StatusCode, payload.Message)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
