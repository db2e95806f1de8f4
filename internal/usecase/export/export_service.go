package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/external/github"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// issueTitleLimit is how much of the description makes it into the title
const issueTitleLimit = 50

const issueFooter = "Created automatically from meeting notes."

// ExportService turns open action items into GitHub issues
type ExportService struct {
	actionRepo  repositories.ActionItemRepository
	meetingRepo repositories.MeetingRepository
	gh          *github.Client
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewExportService creates a new export service. A nil GitHub client
// means export is not configured and operations fail cleanly.
func NewExportService(
	actionRepo repositories.ActionItemRepository,
	meetingRepo repositories.MeetingRepository,
	gh *github.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		actionRepo:  actionRepo,
		meetingRepo: meetingRepo,
		gh:          gh,
		metrics:     m,
		logger:      logger,
	}
}

// IsConfigured reports whether a GitHub client is wired
func (s *ExportService) IsConfigured() bool {
	return s.gh != nil
}

// Target returns the owner/repo issues are created in
func (s *ExportService) Target() string {
	if s.gh == nil {
		return ""
	}
	return s.gh.Repository()
}

// ExportMeeting exports a meeting's open, not yet exported action items
func (s *ExportService) ExportMeeting(ctx context.Context, meetingID uuid.UUID) (*Result, error) {
	if s.gh == nil {
		return nil, usecaseErrors.ErrExportNotConfigured
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}

	items := make([]*entities.ActionItem, 0, len(meeting.ActionItems))
	for i := range meeting.ActionItems {
		items = append(items, &meeting.ActionItems[i])
	}
	return s.export(ctx, items, meeting.Title)
}

// ExportPending exports every open, not yet exported action item
func (s *ExportService) ExportPending(ctx context.Context) (*Result, error) {
	if s.gh == nil {
		return nil, usecaseErrors.ErrExportNotConfigured
	}

	items, err := s.actionRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending actions: %w", err)
	}
	return s.export(ctx, items, "")
}

// ExportAction exports a single action item
func (s *ExportService) ExportAction(ctx context.Context, id uuid.UUID) (*ExportedIssue, error) {
	if s.gh == nil {
		return nil, usecaseErrors.ErrExportNotConfigured
	}

	item, err := s.actionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return nil, usecaseErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load action item: %w", err)
	}
	if item.IsExported() {
		return nil, usecaseErrors.ErrAlreadyExported
	}

	// Meeting context enriches the issue body but is not required.
	var meetingTitle string
	if meeting, err := s.meetingRepo.FindByID(ctx, item.MeetingID); err == nil {
		meetingTitle = meeting.Title
	}

	issue, err := s.createIssue(ctx, item, meetingTitle)
	if err != nil {
		return nil, err
	}
	return issue, nil
}

// export runs one batch. Already exported and closed items are skipped so
// a retried run never duplicates issues.
func (s *ExportService) export(ctx context.Context, items []*entities.ActionItem, meetingTitle string) (*Result, error) {
	result := &Result{}

	var eligible []*entities.ActionItem
	for _, item := range items {
		if item.IsExported() || !item.IsPending() {
			result.Skipped++
			continue
		}
		eligible = append(eligible, item)
	}
	if len(eligible) == 0 {
		return nil, usecaseErrors.ErrNothingToExport
	}

	if s.logger != nil {
		s.logger.Info("📤 Exporting action items",
			zap.Int("eligible", len(eligible)),
			zap.Int("skipped", result.Skipped),
			zap.String("repository", s.gh.Repository()),
		)
	}

	for _, item := range eligible {
		issue, err := s.createIssue(ctx, item, meetingTitle)
		if err != nil {
			result.Failed++
			if s.logger != nil {
				s.logger.Error("❌ Failed to export action item",
					zap.String("action_id", item.ID.String()),
					zap.Error(err),
				)
			}
			continue
		}
		result.Exported = append(result.Exported, *issue)
	}

	if result.Failed > 0 {
		return result, fmt.Errorf("exported %d of %d action items, %d failed",
			len(result.Exported), len(eligible), result.Failed)
	}
	return result, nil
}

// createIssue creates the issue and records it on the action item
func (s *ExportService) createIssue(ctx context.Context, item *entities.ActionItem, meetingTitle string) (*ExportedIssue, error) {
	in := buildIssue(item, meetingTitle)

	start := time.Now()
	number, url, err := s.gh.CreateIssue(ctx, in)
	if s.metrics != nil {
		s.metrics.ObserveGithubRequest(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	if err := s.actionRepo.MarkExported(ctx, item.ID, number, url); err != nil {
		// The issue exists; losing the mark would duplicate it on retry.
		return nil, fmt.Errorf("issue #%d created but not recorded: %w", number, err)
	}

	if s.metrics != nil {
		s.metrics.RecordIssueExported()
	}
	if s.logger != nil {
		s.logger.Info("✅ Action item exported",
			zap.String("action_id", item.ID.String()),
			zap.Int("issue", number),
			zap.String("url", url),
		)
	}

	return &ExportedIssue{
		ActionID:    item.ID,
		Description: item.Description,
		IssueNumber: number,
		IssueURL:    url,
	}, nil
}

// buildIssue renders one action item as an issue request
func buildIssue(item *entities.ActionItem, meetingTitle string) github.IssueInput {
	title := "Action Item: " + item.Description
	if utf8.RuneCountInString(item.Description) > issueTitleLimit {
		runes := []rune(item.Description)
		title = "Action Item: " + string(runes[:issueTitleLimit]) + "..."
	}

	owner := "Unassigned"
	if item.Owner != nil && *item.Owner != "" {
		owner = *item.Owner
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Description:** %s\n\n", item.Description)
	fmt.Fprintf(&b, "**Assignee:** %s\n\n", owner)
	fmt.Fprintf(&b, "**Priority:** %s\n", item.Priority)
	if item.DueDate != nil {
		fmt.Fprintf(&b, "\n**Due:** %s\n", item.DueDate.Format("2006-01-02"))
	}
	if meetingTitle != "" {
		fmt.Fprintf(&b, "\n**Meeting:** %s\n", meetingTitle)
	}
	b.WriteString("\n---\n" + issueFooter + "\n")

	input := github.IssueInput{
		Title:  title,
		Body:   b.String(),
		Labels: []string{"action-item", "priority:" + item.Priority},
	}
	if item.Owner != nil && looksLikeLogin(*item.Owner) {
		input.Assignee = *item.Owner
	}
	return input
}

// looksLikeLogin reports whether an owner name could be a GitHub login.
// Names with spaces never are; those stay in the body only.
func looksLikeLogin(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t")
}
