package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// overviewCacheTTL bounds staleness of the dashboard payload. Ingest
// invalidates the analytics prefix anyway.
const overviewCacheTTL = 5 * time.Minute

const reportSystemPrompt = `You summarize a team progress report. Write two or three sentences
calling out wins, risks and anything stuck. Use only the report content.
Never invent numbers or names.`

// AnalyticsService computes aggregate views and progress reports
type AnalyticsService struct {
	analytics repositories.AnalyticsRepository
	actions   repositories.ActionItemRepository
	groq      *ai.GroqClient
	store     *storage.MinIOClient
	cache     cache.Store
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewAnalyticsService creates a new analytics service. The model client,
// object store and cache are all optional.
func NewAnalyticsService(
	analytics repositories.AnalyticsRepository,
	actions repositories.ActionItemRepository,
	groq *ai.GroqClient,
	store *storage.MinIOClient,
	cacheStore cache.Store,
	m *metrics.Metrics,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		analytics: analytics,
		actions:   actions,
		groq:      groq,
		store:     store,
		cache:     cacheStore,
		metrics:   m,
		logger:    logger,
	}
}

// sinceFor converts a day window into a cutoff, nil meaning all time
func sinceFor(days int) *time.Time {
	if days <= 0 {
		return nil
	}
	t := time.Now().AddDate(0, 0, -days)
	return &t
}

func validWindow(days int) error {
	if days < 0 || days > 3650 {
		return fmt.Errorf("%w: %d days", usecaseErrors.ErrInvalidWindow, days)
	}
	return nil
}

// Overview returns the combined dashboard numbers for a window
func (s *AnalyticsService) Overview(ctx context.Context, days int) (*Overview, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}

	var overview Overview
	key := fmt.Sprintf("analytics:overview:%d", days)
	err := s.cached(ctx, key, &overview, func() (interface{}, error) {
		return s.buildOverview(ctx, days)
	})
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *AnalyticsService) buildOverview(ctx context.Context, days int) (*Overview, error) {
	since := sinceFor(days)

	stats, err := s.analytics.ActionStats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load action stats: %w", err)
	}
	people, err := s.analytics.ActionCountsByPerson(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load people load: %w", err)
	}
	topics, err := s.analytics.TopicFrequency(ctx, since, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic trends: %w", err)
	}
	cadence, err := s.analytics.MeetingCadence(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting cadence: %w", err)
	}
	decisions, err := s.analytics.DecisionVolume(ctx, since, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load decision volume: %w", err)
	}

	var meetings int64
	for _, tc := range cadence {
		meetings += tc.Count
	}
	if len(people) > 5 {
		people = people[:5]
	}

	return &Overview{
		WindowDays: days,
		Meetings:   meetings,
		Actions:    stats,
		TopPeople:  people,
		TopTopics:  topics,
		Cadence:    cadence,
		Decisions:  decisions,
	}, nil
}

// ActionStats returns action item lifecycle and priority counts
func (s *AnalyticsService) ActionStats(ctx context.Context, days int) (*repositories.ActionStats, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	stats, err := s.analytics.ActionStats(ctx, sinceFor(days))
	if err != nil {
		return nil, fmt.Errorf("failed to load action stats: %w", err)
	}
	return stats, nil
}

// PeopleLoad returns per-person action item counts, most loaded first
func (s *AnalyticsService) PeopleLoad(ctx context.Context, days int) ([]repositories.PersonActionCount, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	people, err := s.analytics.ActionCountsByPerson(ctx, sinceFor(days))
	if err != nil {
		return nil, fmt.Errorf("failed to load people load: %w", err)
	}
	return people, nil
}

// TopicTrends returns the most discussed topic headings
func (s *AnalyticsService) TopicTrends(ctx context.Context, days, limit int) ([]repositories.TopicCount, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	topics, err := s.analytics.TopicFrequency(ctx, sinceFor(days), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic trends: %w", err)
	}
	return topics, nil
}

// Attendance returns meetings attended per person
func (s *AnalyticsService) Attendance(ctx context.Context, days int) ([]repositories.PersonMeetingCount, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	counts, err := s.analytics.AttendanceCounts(ctx, sinceFor(days))
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	return counts, nil
}

// CoAttendance returns pairs of people who often meet together
func (s *AnalyticsService) CoAttendance(ctx context.Context, days, minMeetings int) ([]repositories.PersonPair, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	if minMeetings <= 0 {
		minMeetings = 2
	}
	pairs, err := s.analytics.CoAttendance(ctx, sinceFor(days), minMeetings)
	if err != nil {
		return nil, fmt.Errorf("failed to load co-attendance: %w", err)
	}
	return pairs, nil
}

// MeetingCadence returns meeting counts grouped by type
func (s *AnalyticsService) MeetingCadence(ctx context.Context, days int) ([]repositories.TypeCount, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	cadence, err := s.analytics.MeetingCadence(ctx, sinceFor(days))
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting cadence: %w", err)
	}
	return cadence, nil
}

// TopicCooccurrence returns pairs of topics that keep turning up in the
// same meetings
func (s *AnalyticsService) TopicCooccurrence(ctx context.Context, days, minMeetings int) ([]repositories.TopicPair, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	if minMeetings <= 0 {
		minMeetings = 2
	}
	pairs, err := s.analytics.TopicCooccurrence(ctx, sinceFor(days), minMeetings)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic co-occurrence: %w", err)
	}
	return pairs, nil
}

// Bottlenecks returns people holding at least minPending open items.
// Open counts pending plus in-progress work.
func (s *AnalyticsService) Bottlenecks(ctx context.Context, days, minPending int) ([]repositories.PersonActionCount, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	if minPending <= 0 {
		minPending = 3
	}
	people, err := s.analytics.ActionCountsByPerson(ctx, sinceFor(days))
	if err != nil {
		return nil, fmt.Errorf("failed to load people load: %w", err)
	}

	var out []repositories.PersonActionCount
	for _, p := range people {
		if p.Pending+p.InProgress >= int64(minPending) {
			out = append(out, p)
		}
	}
	return out, nil
}

// DecisionStatus returns decisions with implementation progress derived
// from their meeting's action items
func (s *AnalyticsService) DecisionStatus(ctx context.Context, days, limit int) ([]repositories.DecisionImplementation, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	decisions, err := s.analytics.DecisionImplementation(ctx, sinceFor(days), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load decision status: %w", err)
	}
	return decisions, nil
}

// Efficiency returns aggregate meeting productivity numbers
func (s *AnalyticsService) Efficiency(ctx context.Context, days int) (*repositories.EfficiencyStats, error) {
	if err := validWindow(days); err != nil {
		return nil, err
	}
	stats, err := s.analytics.Efficiency(ctx, sinceFor(days))
	if err != nil {
		return nil, fmt.Errorf("failed to load efficiency stats: %w", err)
	}
	return stats, nil
}

// ProgressReport builds a markdown progress report over a window,
// optionally focused on one person, and archives it to object storage
func (s *AnalyticsService) ProgressReport(ctx context.Context, input ReportInput) (*Report, error) {
	days := input.Days
	if days <= 0 {
		days = 7
	}
	if err := validWindow(days); err != nil {
		return nil, err
	}

	since := sinceFor(days)
	now := time.Now()

	stats, err := s.analytics.ActionStats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load action stats: %w", err)
	}
	people, err := s.analytics.ActionCountsByPerson(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load people load: %w", err)
	}
	topics, err := s.analytics.TopicFrequency(ctx, since, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic trends: %w", err)
	}
	decisions, err := s.analytics.DecisionVolume(ctx, since, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load decision volume: %w", err)
	}
	blockers, err := s.actions.ListOpenBlockers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load open blockers: %w", err)
	}

	person := strings.TrimSpace(input.Person)
	var focus []*entities.ActionItem
	if person != "" {
		focus, err = s.actions.ListByPerson(ctx, person, true)
		if err != nil {
			return nil, fmt.Errorf("failed to load items for %s: %w", person, err)
		}
	}

	md := renderReport(now, days, person, stats, people, topics, decisions, blockers, focus)

	if highlights := s.narrate(ctx, md); highlights != "" {
		md = "## Highlights\n\n" + highlights + "\n\n" + md
	}

	report := &Report{
		GeneratedAt: now,
		WindowDays:  days,
		Markdown:    md,
		Stats:       stats,
	}

	if s.store != nil {
		key := fmt.Sprintf("reports/progress_%s.md", now.Format("20060102_150405"))
		if err := s.store.UploadText(ctx, key, md); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to archive report", zap.String("key", key), zap.Error(err))
			}
		} else {
			report.ArchiveKey = key
		}
	}

	if s.logger != nil {
		s.logger.Info("✅ Progress report generated",
			zap.Int("window_days", days),
			zap.Int64("actions_total", stats.Total),
			zap.String("archive_key", report.ArchiveKey),
		)
	}
	return report, nil
}

// renderReport builds the deterministic markdown body
func renderReport(
	now time.Time,
	days int,
	person string,
	stats *repositories.ActionStats,
	people []repositories.PersonActionCount,
	topics []repositories.TopicCount,
	decisions []repositories.MeetingDecisionCount,
	blockers []*entities.Blocker,
	focus []*entities.ActionItem,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Progress report\n\n")
	fmt.Fprintf(&b, "Window: last %d days, generated %s.\n\n", days, now.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "## Action items\n\n")
	fmt.Fprintf(&b, "- Total: %d (pending %d, in progress %d, completed %d, cancelled %d)\n",
		stats.Total, stats.Pending, stats.InProgress, stats.Completed, stats.Cancelled)
	fmt.Fprintf(&b, "- Completion rate: %.0f%%\n", stats.CompletionRate()*100)
	for _, pc := range stats.ByPriority {
		fmt.Fprintf(&b, "- %s priority: %d\n", pc.Priority, pc.Count)
	}

	if len(people) > 0 {
		fmt.Fprintf(&b, "\n## Who is carrying what\n\n")
		for i, p := range people {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %d open, %d done\n", p.Person, p.Pending+p.InProgress, p.Completed)
		}
	}

	if len(topics) > 0 {
		fmt.Fprintf(&b, "\n## Most discussed\n\n")
		for _, tc := range topics {
			fmt.Fprintf(&b, "- %s (%d meetings)\n", tc.Heading, tc.Count)
		}
	}

	if len(decisions) > 0 {
		fmt.Fprintf(&b, "\n## Decisions\n\n")
		for _, dc := range decisions {
			fmt.Fprintf(&b, "- %s: %d decisions\n", dc.Title, dc.Decisions)
		}
	}

	if len(blockers) > 0 {
		fmt.Fprintf(&b, "\n## Open blockers\n\n")
		for _, bl := range blockers {
			fmt.Fprintf(&b, "- %s\n", bl.Text)
		}
	}

	if person != "" {
		fmt.Fprintf(&b, "\n## Focus: %s\n\n", person)
		if len(focus) == 0 {
			fmt.Fprintf(&b, "No action items on record.\n")
		}
		for _, item := range focus {
			fmt.Fprintf(&b, "- [%s] %s\n", item.Status, item.Description)
		}
	}

	return b.String()
}

// narrate asks the model for a highlights paragraph, empty on any failure
func (s *AnalyticsService) narrate(ctx context.Context, md string) string {
	if s.groq == nil || !s.groq.IsConfigured() {
		return ""
	}

	start := time.Now()
	text, err := s.groq.Complete(ctx, reportSystemPrompt, md, 0.4, 400)
	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		s.metrics.RecordLLMRequest("report", status, time.Since(start).Seconds())
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Report narrative failed, continuing without", zap.Error(err))
		}
		return ""
	}
	return strings.TrimSpace(text)
}

// cached fills out from the cache when possible, otherwise runs fill and
// stores the result. Cache failures fall through to the repositories.
func (s *AnalyticsService) cached(ctx context.Context, key string, out interface{}, fill func() (interface{}, error)) error {
	if s.cache != nil {
		if raw, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			if err := json.Unmarshal([]byte(raw), out); err == nil {
				if s.metrics != nil {
					s.metrics.RecordCacheHit()
				}
				return nil
			}
		}
		if s.metrics != nil {
			s.metrics.RecordCacheMiss()
		}
	}

	value, err := fill()
	if err != nil {
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, string(b), overviewCacheTTL); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to cache result", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}
