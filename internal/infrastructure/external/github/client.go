package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Client wraps the GitHub API for exporting action items as issues into
// one configured repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a GitHub client with proper authentication
func NewClient(cfg *config.GitHubConfig) (*Client, error) {
	if cfg == nil || cfg.Token == "" {
		return nil, fmt.Errorf("github token not set")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		gh:    github.NewClient(tc),
		owner: cfg.Owner,
		repo:  cfg.Repo,
	}, nil
}

// SetBaseURL points the client at a different API root. Used in tests.
func (c *Client) SetBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	if raw[len(raw)-1] != '/' {
		raw += "/"
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	c.gh.BaseURL = parsed
	return nil
}

// Repository returns the configured owner/repo target
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// IssueInput is the shape for creating an issue
type IssueInput struct {
	Title    string
	Body     string
	Labels   []string
	Assignee string
}

// CreateIssue creates an issue and returns its number and HTML URL.
// Transient failures and rate limits are retried with backoff.
func (c *Client) CreateIssue(ctx context.Context, in IssueInput) (int, string, error) {
	req := &github.IssueRequest{
		Title: github.String(in.Title),
		Body:  github.String(in.Body),
	}
	if len(in.Labels) > 0 {
		req.Labels = &in.Labels
	}
	if in.Assignee != "" {
		req.Assignee = github.String(in.Assignee)
	}

	var issue *github.Issue
	operation := func() error {
		created, resp, err := c.gh.Issues.Create(ctx, c.owner, c.repo, req)
		if err != nil {
			if !isRetryable(resp) {
				return backoff.Permanent(err)
			}
			return err
		}
		issue = created
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return 0, "", fmt.Errorf("failed to create issue: %w", err)
	}

	return issue.GetNumber(), issue.GetHTMLURL(), nil
}

// Ping verifies the token and API reachability
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.gh.Zen(ctx)
	if err != nil {
		return fmt.Errorf("github unreachable: %w", err)
	}
	return nil
}

// isRetryable checks whether a failed call is worth retrying. A 403
// carrying rate headers is GitHub's secondary rate limit.
func isRetryable(resp *github.Response) bool {
	if resp == nil || resp.Response == nil {
		// Network error without a response
		return true
	}

	code := resp.Response.StatusCode
	switch {
	case code == http.StatusTooManyRequests:
		return true
	case code == http.StatusForbidden && resp.Rate.Limit > 0:
		return true
	case code >= 500 && code < 600:
		return true
	}
	return false
}
