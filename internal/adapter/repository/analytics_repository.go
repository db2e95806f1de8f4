package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// analyticsRepository implements the AnalyticsRepository interface with
// aggregate SQL over the meeting archive. Meeting-scoped windows use the
// stated meeting date and fall back to ingest time when the notes carried
// no date. Action item windows use ingest time.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) repositories.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// meetingSinceExpr is the effective meeting timestamp used for windowing
const meetingSinceExpr = "COALESCE(m.meeting_date::timestamp, m.created_at)"

// ActionStats returns lifecycle and priority counts for action items
func (r *analyticsRepository) ActionStats(ctx context.Context, since *time.Time) (*repositories.ActionStats, error) {
	stats := &repositories.ActionStats{}

	type statusRow struct {
		Status string
		Count  int64
	}
	var statusRows []statusRow

	query := r.db.WithContext(ctx).Model(&entities.ActionItem{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&statusRows).Error; err != nil {
		return nil, err
	}

	for _, row := range statusRows {
		stats.Total += row.Count
		switch row.Status {
		case entities.ActionItemStatusPending:
			stats.Pending = row.Count
		case entities.ActionItemStatusInProgress:
			stats.InProgress = row.Count
		case entities.ActionItemStatusCompleted:
			stats.Completed = row.Count
		case entities.ActionItemStatusCancelled:
			stats.Cancelled = row.Count
		}
	}

	priorityQuery := r.db.WithContext(ctx).Model(&entities.ActionItem{})
	if since != nil {
		priorityQuery = priorityQuery.Where("created_at >= ?", *since)
	}
	if err := priorityQuery.
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Order("count DESC").
		Scan(&stats.ByPriority).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// ActionCountsByPerson returns per-person action item counts
func (r *analyticsRepository) ActionCountsByPerson(ctx context.Context, since *time.Time) ([]repositories.PersonActionCount, error) {
	query := `
		SELECT COALESCE(p.name, a.owner, 'Unassigned') AS person,
			COUNT(*) FILTER (WHERE a.status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE a.status = 'in_progress') AS in_progress,
			COUNT(*) FILTER (WHERE a.status = 'completed') AS completed,
			COUNT(*) AS total
		FROM action_items a
		LEFT JOIN people p ON p.id = a.person_id
		WHERE (?::timestamptz IS NULL OR a.created_at >= ?)
		GROUP BY 1
		ORDER BY total DESC, person ASC`

	var rows []repositories.PersonActionCount
	err := r.db.WithContext(ctx).Raw(query, since, since).Scan(&rows).Error
	return rows, err
}

// TopicFrequency returns how often each topic heading was discussed.
// Headings are grouped case-insensitively, the first spelling wins.
func (r *analyticsRepository) TopicFrequency(ctx context.Context, since *time.Time, limit int) ([]repositories.TopicCount, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT MIN(t.heading) AS heading,
			COUNT(*) AS count,
			MAX(` + meetingSinceExpr + `) AS last_seen
		FROM topics t
		JOIN meetings m ON m.id = t.meeting_id
		WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		GROUP BY LOWER(t.heading)
		ORDER BY count DESC, last_seen DESC
		LIMIT ?`

	var rows []repositories.TopicCount
	err := r.db.WithContext(ctx).Raw(query, since, since, limit).Scan(&rows).Error
	return rows, err
}

// AttendanceCounts returns how many meetings each person attended
func (r *analyticsRepository) AttendanceCounts(ctx context.Context, since *time.Time) ([]repositories.PersonMeetingCount, error) {
	query := `
		SELECT p.name AS person, COUNT(DISTINCT ma.meeting_id) AS meetings
		FROM meeting_attendees ma
		JOIN people p ON p.id = ma.person_id
		JOIN meetings m ON m.id = ma.meeting_id
		WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		GROUP BY p.name
		ORDER BY meetings DESC, person ASC`

	var rows []repositories.PersonMeetingCount
	err := r.db.WithContext(ctx).Raw(query, since, since).Scan(&rows).Error
	return rows, err
}

// CoAttendance returns pairs of people who attend meetings together
func (r *analyticsRepository) CoAttendance(ctx context.Context, since *time.Time, minMeetings int) ([]repositories.PersonPair, error) {
	if minMeetings <= 0 {
		minMeetings = 2
	}

	query := `
		SELECT pa.name AS person_a, pb.name AS person_b, COUNT(*) AS together
		FROM meeting_attendees ma
		JOIN meeting_attendees mb
			ON ma.meeting_id = mb.meeting_id AND ma.person_id < mb.person_id
		JOIN people pa ON pa.id = ma.person_id
		JOIN people pb ON pb.id = mb.person_id
		JOIN meetings m ON m.id = ma.meeting_id
		WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		GROUP BY pa.name, pb.name
		HAVING COUNT(*) >= ?
		ORDER BY together DESC, person_a ASC`

	var rows []repositories.PersonPair
	err := r.db.WithContext(ctx).Raw(query, since, since, minMeetings).Scan(&rows).Error
	return rows, err
}

// MeetingCadence returns meeting counts grouped by meeting type
func (r *analyticsRepository) MeetingCadence(ctx context.Context, since *time.Time) ([]repositories.TypeCount, error) {
	query := `
		SELECT COALESCE(m.meeting_type, 'unknown') AS type, COUNT(*) AS count
		FROM meetings m
		WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		GROUP BY 1
		ORDER BY count DESC, type ASC`

	var rows []repositories.TypeCount
	err := r.db.WithContext(ctx).Raw(query, since, since).Scan(&rows).Error
	return rows, err
}

// DecisionVolume returns decision counts grouped by meeting
func (r *analyticsRepository) DecisionVolume(ctx context.Context, since *time.Time, limit int) ([]repositories.MeetingDecisionCount, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT m.id::text AS meeting_id,
			m.title,
			m.meeting_date,
			COUNT(DISTINCT d.id) AS decisions,
			COUNT(DISTINCT a.id) AS actions_total
		FROM meetings m
		LEFT JOIN decisions d ON d.meeting_id = m.id
		LEFT JOIN action_items a ON a.meeting_id = m.id
		WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		GROUP BY m.id, m.title, m.meeting_date
		HAVING COUNT(DISTINCT d.id) > 0
		ORDER BY decisions DESC, m.meeting_date DESC NULLS LAST
		LIMIT ?`

	var rows []repositories.MeetingDecisionCount
	err := r.db.WithContext(ctx).Raw(query, since, since, limit).Scan(&rows).Error
	return rows, err
}

// TopicCooccurrence returns pairs of topic headings discussed together.
// Headings pair case-insensitively, the first spelling wins.
func (r *analyticsRepository) TopicCooccurrence(ctx context.Context, since *time.Time, minMeetings int) ([]repositories.TopicPair, error) {
	if minMeetings <= 0 {
		minMeetings = 2
	}

	query := `
		SELECT MIN(ta.heading) AS topic_a,
			MIN(tb.heading) AS topic_b,
			COUNT(DISTINCT ta.meeting_id) AS together
		FROM topics ta
		JOIN topics tb
			ON ta.meeting_id = tb.meeting_id AND LOWER(ta.heading) < LOWER(tb.heading)
		JOIN meetings m ON m.id = ta.meeting_id
		WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		GROUP BY LOWER(ta.heading), LOWER(tb.heading)
		HAVING COUNT(DISTINCT ta.meeting_id) >= ?
		ORDER BY together DESC, topic_a ASC`

	var rows []repositories.TopicPair
	err := r.db.WithContext(ctx).Raw(query, since, since, minMeetings).Scan(&rows).Error
	return rows, err
}

// DecisionImplementation returns each decision with a status derived from
// its meeting's action items: every item completed means implemented, any
// item completed or started means in_progress, items untouched means
// pending, and a meeting with no items at all means no_action.
func (r *analyticsRepository) DecisionImplementation(ctx context.Context, since *time.Time, limit int) ([]repositories.DecisionImplementation, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT d.text AS decision,
			m.title AS meeting_title,
			m.meeting_date,
			COUNT(a.id) AS actions_total,
			COUNT(a.id) FILTER (WHERE a.status = 'completed') AS actions_done,
			CASE
				WHEN COUNT(a.id) = 0 THEN 'no_action'
				WHEN COUNT(a.id) = COUNT(a.id) FILTER (WHERE a.status = 'completed') THEN 'implemented'
				WHEN COUNT(a.id) FILTER (WHERE a.status IN ('completed', 'in_progress')) > 0 THEN 'in_progress'
				ELSE 'pending'
			END AS status
		FROM decisions d
		JOIN meetings m ON m.id = d.meeting_id
		LEFT JOIN action_items a ON a.meeting_id = m.id
		WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		GROUP BY d.id, d.text, d.position, m.title, m.meeting_date
		ORDER BY m.meeting_date DESC NULLS LAST, d.position ASC
		LIMIT ?`

	var rows []repositories.DecisionImplementation
	err := r.db.WithContext(ctx).Raw(query, since, since, limit).Scan(&rows).Error
	return rows, err
}

// Efficiency returns aggregate meeting productivity numbers. Durations
// come from the parsed start/end times, so meetings whose notes carried
// no time range count toward volume but not toward the hourly rate.
func (r *analyticsRepository) Efficiency(ctx context.Context, since *time.Time) (*repositories.EfficiencyStats, error) {
	query := `
		WITH windowed AS (
			SELECT m.id,
				m.duration_minutes,
				(SELECT COUNT(*) FROM action_items a WHERE a.meeting_id = m.id) AS actions,
				(SELECT COUNT(*) FROM decisions d WHERE d.meeting_id = m.id) AS decisions,
				(SELECT COUNT(*) FROM topics t WHERE t.meeting_id = m.id) AS topics
			FROM meetings m
			WHERE (?::timestamptz IS NULL OR ` + meetingSinceExpr + ` >= ?)
		)
		SELECT COUNT(*) AS meetings,
			COALESCE(AVG(duration_minutes), 0) AS avg_duration_minutes,
			COALESCE(SUM(duration_minutes), 0) AS total_minutes,
			COALESCE(SUM(actions), 0) AS actions,
			COALESCE(SUM(decisions), 0) AS decisions,
			COALESCE(SUM(topics), 0) AS topics
		FROM windowed`

	var row struct {
		Meetings           int64
		AvgDurationMinutes float64
		TotalMinutes       float64
		Actions            int64
		Decisions          int64
		Topics             int64
	}
	if err := r.db.WithContext(ctx).Raw(query, since, since).Scan(&row).Error; err != nil {
		return nil, err
	}

	stats := &repositories.EfficiencyStats{
		Meetings:           row.Meetings,
		AvgDurationMinutes: row.AvgDurationMinutes,
	}
	if row.Meetings > 0 {
		stats.ActionsPerMeeting = float64(row.Actions) / float64(row.Meetings)
		stats.DecisionsPerMeeting = float64(row.Decisions) / float64(row.Meetings)
		stats.TopicsPerMeeting = float64(row.Topics) / float64(row.Meetings)
	}
	if row.TotalMinutes > 0 {
		stats.ProductivityRate = float64(row.Actions+row.Decisions) / (row.TotalMinutes / 60)
	}
	return stats, nil
}
