package repositories

import (
	"context"
	"time"
)

// AnalyticsRepository defines aggregate queries over the meeting archive.
// These back both the analytics endpoints and the natural-language query
// engine's fixed operation catalog.
type AnalyticsRepository interface {
	// ActionStats returns lifecycle and priority counts for action items
	ActionStats(ctx context.Context, since *time.Time) (*ActionStats, error)

	// ActionCountsByPerson returns per-person action item counts,
	// most loaded first
	ActionCountsByPerson(ctx context.Context, since *time.Time) ([]PersonActionCount, error)

	// TopicFrequency returns how often each topic heading was discussed
	TopicFrequency(ctx context.Context, since *time.Time, limit int) ([]TopicCount, error)

	// AttendanceCounts returns how many meetings each person attended
	AttendanceCounts(ctx context.Context, since *time.Time) ([]PersonMeetingCount, error)

	// CoAttendance returns pairs of people who attended meetings
	// together at least minMeetings times
	CoAttendance(ctx context.Context, since *time.Time, minMeetings int) ([]PersonPair, error)

	// MeetingCadence returns meeting counts grouped by meeting type
	MeetingCadence(ctx context.Context, since *time.Time) ([]TypeCount, error)

	// DecisionVolume returns decision counts grouped by meeting
	DecisionVolume(ctx context.Context, since *time.Time, limit int) ([]MeetingDecisionCount, error)

	// TopicCooccurrence returns pairs of topic headings discussed in the
	// same meeting at least minMeetings times
	TopicCooccurrence(ctx context.Context, since *time.Time, minMeetings int) ([]TopicPair, error)

	// DecisionImplementation returns each decision with a status derived
	// from its meeting's action items
	DecisionImplementation(ctx context.Context, since *time.Time, limit int) ([]DecisionImplementation, error)

	// Efficiency returns aggregate meeting productivity numbers
	Efficiency(ctx context.Context, since *time.Time) (*EfficiencyStats, error)
}

// ActionStats summarizes action item lifecycle state
type ActionStats struct {
	Total      int64           `json:"total"`
	Pending    int64           `json:"pending"`
	InProgress int64           `json:"in_progress"`
	Completed  int64           `json:"completed"`
	Cancelled  int64           `json:"cancelled"`
	ByPriority []PriorityCount `json:"by_priority"`
}

// CompletionRate returns the share of finished items, 0 when empty
func (s *ActionStats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// PriorityCount is one priority bucket
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

// PersonActionCount is one person's action item load
type PersonActionCount struct {
	Person     string `json:"person"`
	Pending    int64  `json:"pending"`
	InProgress int64  `json:"in_progress"`
	Completed  int64  `json:"completed"`
	Total      int64  `json:"total"`
}

// TopicCount is one topic heading's discussion frequency
type TopicCount struct {
	Heading  string    `json:"heading"`
	Count    int64     `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// PersonMeetingCount is one person's attendance tally
type PersonMeetingCount struct {
	Person   string `json:"person"`
	Meetings int64  `json:"meetings"`
}

// PersonPair is two people who attend meetings together
type PersonPair struct {
	PersonA  string `json:"person_a"`
	PersonB  string `json:"person_b"`
	Together int64  `json:"together"`
}

// TypeCount is one meeting type's frequency
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// TopicPair is two topic headings that come up in the same meetings
type TopicPair struct {
	TopicA   string `json:"topic_a"`
	TopicB   string `json:"topic_b"`
	Together int64  `json:"together"`
}

// Decision implementation states, derived from the meeting's action items
const (
	DecisionStatusNoAction    = "no_action"   // meeting produced no action items
	DecisionStatusImplemented = "implemented" // every action item completed
	DecisionStatusInProgress  = "in_progress" // some item completed or started
	DecisionStatusPending     = "pending"     // nothing started yet
)

// DecisionImplementation is one decision and how far its meeting's
// action items have progressed
type DecisionImplementation struct {
	Decision     string     `json:"decision"`
	MeetingTitle string     `json:"meeting_title"`
	MeetingDate  *time.Time `json:"meeting_date,omitempty"`
	Status       string     `json:"status"`
	ActionsTotal int64      `json:"actions_total"`
	ActionsDone  int64      `json:"actions_done"`
}

// EfficiencyStats summarizes how productive meetings are
type EfficiencyStats struct {
	Meetings            int64   `json:"meetings"`
	AvgDurationMinutes  float64 `json:"avg_duration_minutes"`
	ActionsPerMeeting   float64 `json:"actions_per_meeting"`
	DecisionsPerMeeting float64 `json:"decisions_per_meeting"`
	TopicsPerMeeting    float64 `json:"topics_per_meeting"`

	// ProductivityRate is actions plus decisions per hour of recorded
	// meeting time, 0 when no durations are known
	ProductivityRate float64 `json:"productivity_rate"`
}

// MeetingDecisionCount is one meeting's decision tally
type MeetingDecisionCount struct {
	MeetingID    string     `json:"meeting_id"`
	Title        string     `json:"title"`
	MeetingDate  *time.Time `json:"meeting_date,omitempty"`
	Decisions    int64      `json:"decisions"`
	ActionsTotal int64      `json:"actions_total"`
}
