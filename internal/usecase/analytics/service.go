package analytics

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// Service defines aggregate views over the meeting archive and the
// periodic progress report
type Service interface {
	// Overview returns the combined dashboard numbers for a window
	Overview(ctx context.Context, days int) (*Overview, error)

	// ActionStats returns action item lifecycle and priority counts
	ActionStats(ctx context.Context, days int) (*repositories.ActionStats, error)

	// PeopleLoad returns per-person action item counts, most loaded first
	PeopleLoad(ctx context.Context, days int) ([]repositories.PersonActionCount, error)

	// TopicTrends returns the most discussed topic headings
	TopicTrends(ctx context.Context, days, limit int) ([]repositories.TopicCount, error)

	// Attendance returns meetings attended per person
	Attendance(ctx context.Context, days int) ([]repositories.PersonMeetingCount, error)

	// CoAttendance returns pairs of people who often meet together
	CoAttendance(ctx context.Context, days, minMeetings int) ([]repositories.PersonPair, error)

	// MeetingCadence returns meeting counts grouped by type
	MeetingCadence(ctx context.Context, days int) ([]repositories.TypeCount, error)

	// TopicCooccurrence returns pairs of topics that keep turning up in
	// the same meetings
	TopicCooccurrence(ctx context.Context, days, minMeetings int) ([]repositories.TopicPair, error)

	// Bottlenecks returns people holding at least minPending open items
	Bottlenecks(ctx context.Context, days, minPending int) ([]repositories.PersonActionCount, error)

	// DecisionStatus returns decisions with implementation progress
	// derived from their meeting's action items
	DecisionStatus(ctx context.Context, days, limit int) ([]repositories.DecisionImplementation, error)

	// Efficiency returns aggregate meeting productivity numbers
	Efficiency(ctx context.Context, days int) (*repositories.EfficiencyStats, error)

	// ProgressReport builds a markdown progress report over a window,
	// optionally focused on one person, and archives it
	ProgressReport(ctx context.Context, input ReportInput) (*Report, error)
}

// Overview is the combined dashboard payload
type Overview struct {
	WindowDays int                                 `json:"window_days"`
	Meetings   int64                               `json:"meetings"`
	Actions    *repositories.ActionStats           `json:"actions"`
	TopPeople  []repositories.PersonActionCount    `json:"top_people"`
	TopTopics  []repositories.TopicCount           `json:"top_topics"`
	Cadence    []repositories.TypeCount            `json:"cadence"`
	Decisions  []repositories.MeetingDecisionCount `json:"decisions"`
}

// ReportInput controls one progress report run
type ReportInput struct {
	// Days is the lookback window, 7 when zero
	Days int `json:"days"`

	// Person narrows the report to one person's items when set
	Person string `json:"person,omitempty"`
}

// Report is a generated progress report
type Report struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	WindowDays  int                       `json:"window_days"`
	Markdown    string                    `json:"markdown"`
	ArchiveKey  string                    `json:"archive_key,omitempty"`
	Stats       *repositories.ActionStats `json:"stats"`
}

// Ensure AnalyticsService implements Service interface
var _ Service = (*AnalyticsService)(nil)
