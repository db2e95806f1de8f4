package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(&config.GitHubConfig{Token: "test-token", Owner: "acme", Repo: "tracker"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.SetBaseURL(ts.URL); err != nil {
		t.Fatalf("failed to set base URL: %v", err)
	}
	return client, ts
}

func TestCreateIssue_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/repos/acme/tracker/issues" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload struct {
			Title  string   `json:"title"`
			Body   string   `json:"body"`
			Labels []string `json:"labels"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Title != "Action Item: ship the fix" {
			t.Fatalf("unexpected title %q", payload.Title)
		}
		if len(payload.Labels) != 2 {
			t.Fatalf("expected 2 labels, got %v", payload.Labels)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"number":   7,
			"html_url": "https://github.com/acme/tracker/issues/7",
		})
	}))

	number, url, err := client.CreateIssue(context.Background(), IssueInput{
		Title:  "Action Item: ship the fix",
		Body:   "**Description:** ship the fix",
		Labels: []string{"action-item", "priority:high"},
	})
	if err != nil {
		t.Fatalf("create issue failed: %v", err)
	}
	if number != 7 {
		t.Fatalf("unexpected issue number %d", number)
	}
	if url != "https://github.com/acme/tracker/issues/7" {
		t.Fatalf("unexpected issue url %s", url)
	}
}

func TestCreateIssue_ValidationErrorNotRetried(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "Validation Failed"})
	}))

	_, _, err := client.CreateIssue(context.Background(), IssueInput{Title: "bad"})
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestNewClient_RequiresToken(t *testing.T) {
	if _, err := NewClient(&config.GitHubConfig{}); err == nil {
		t.Fatal("expected error when token is missing")
	}
}
