package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// maxAnswerContext bounds how much result data goes into the answer prompt
const maxAnswerContext = 8000

// Engine answers natural-language questions about the meeting archive.
// The model never sees the database: it picks one operation from a fixed
// catalog, the engine executes it, and a second call phrases the result.
type Engine struct {
	groq      *ai.GroqClient
	queries   *QueryService
	analytics repositories.AnalyticsRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewEngine constructs the natural-language query engine
func NewEngine(
	groq *ai.GroqClient,
	queries *QueryService,
	analytics repositories.AnalyticsRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		groq:      groq,
		queries:   queries,
		analytics: analytics,
		metrics:   m,
		logger:    logger,
	}
}

// Answer is the engine's reply to one question
type Answer struct {
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Query    string      `json:"query,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Fallback bool        `json:"fallback,omitempty"`
}

// queryPlan is the JSON shape the model must produce
type queryPlan struct {
	Query         string `json:"query"`
	Person        string `json:"person,omitempty"`
	Topic         string `json:"topic,omitempty"`
	Search        string `json:"search,omitempty"`
	TimeRangeDays int    `json:"time_range_days,omitempty"`
	Limit         int    `json:"limit,omitempty"`
}

func (p *queryPlan) since() *time.Time {
	if p.TimeRangeDays <= 0 {
		return nil
	}
	t := time.Now().AddDate(0, 0, -p.TimeRangeDays)
	return &t
}

func (p *queryPlan) limitOr(def int) int {
	if p.Limit <= 0 {
		return def
	}
	return p.Limit
}

type planArgs struct {
	needsPerson bool
	needsTopic  bool
	needsSearch bool
}

// planCatalog whitelists every operation the model may request
var planCatalog = map[string]planArgs{
	"pending_actions":    {},
	"actions_for_person": {needsPerson: true},
	"meetings_about":     {needsTopic: true},
	"search_meetings":    {needsSearch: true},
	"recent_meetings":    {},
	"recent_decisions":   {},
	"open_blockers":      {},
	"action_stats":       {},
	"busiest_people":     {},
	"topic_trends":       {},
	"attendance":         {},
	"co_attendance":      {},
	"meeting_cadence":    {},
	"topic_cooccurrence": {},
	"bottlenecks":        {},
	"decision_status":    {},
	"efficiency":         {},
}

const planSystemPrompt = `You translate one question about a team's meeting archive into a JSON query plan.

Pick exactly one query from this catalog:
- "pending_actions": open action items across all meetings
- "actions_for_person": action items owned by one person (requires "person")
- "meetings_about": meetings that discussed a topic (requires "topic")
- "search_meetings": free-text search over titles, topics, decisions and actions (requires "search")
- "recent_meetings": the most recent meetings
- "recent_decisions": decisions grouped by meeting
- "open_blockers": unresolved blockers
- "action_stats": action item totals by status and priority
- "busiest_people": action item counts per person
- "topic_trends": the most discussed topics
- "attendance": meetings attended per person
- "co_attendance": pairs of people who often meet together
- "meeting_cadence": meeting counts by meeting type
- "topic_cooccurrence": pairs of topics discussed in the same meetings
- "bottlenecks": people overloaded with open action items
- "decision_status": decisions and how far their action items progressed
- "efficiency": meeting duration and productivity averages

Respond with only a JSON object, no prose:
{"query": "...", "person": "...", "topic": "...", "search": "...", "time_range_days": 0, "limit": 0}

Omit fields that do not apply. Set "time_range_days" only when the
question names a window such as "this week" or "last month".`

const answerSystemPrompt = `You answer questions about a team's meeting archive.
Use only the data provided. Be concise and factual. When the data is
empty, say so plainly. Never invent meetings, people, or dates.`

// Ask answers one natural-language question. Planning or model failures
// degrade to a deterministic summary instead of an error.
func (e *Engine) Ask(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", usecaseErrors.ErrInvalidInput)
	}

	plan, err := e.buildPlan(ctx, question)
	if err != nil {
		if e.logger != nil {
			if errors.Is(err, usecaseErrors.ErrLLMUnavailable) {
				e.logger.Warn("⚠️ LLM not configured, using fallback answer")
			} else {
				e.logger.Warn("⚠️ Query planning failed, using fallback", zap.Error(err))
			}
		}
		return e.fallback(ctx, question)
	}

	if e.logger != nil {
		e.logger.Info("🔍 Executing query plan",
			zap.String("query", plan.Query),
			zap.Int("time_range_days", plan.TimeRangeDays),
		)
	}

	data, err := e.executePlan(ctx, plan)
	if err != nil {
		switch {
		case errors.Is(err, usecaseErrors.ErrUnknownTopic):
			return &Answer{
				Question: question,
				Query:    plan.Query,
				Answer:   fmt.Sprintf("%q has not come up in any recorded meeting.", plan.Topic),
			}, nil
		case errors.Is(err, usecaseErrors.ErrPersonNotFound):
			return &Answer{
				Question: question,
				Query:    plan.Query,
				Answer:   fmt.Sprintf("No meeting notes mention %s.", plan.Person),
			}, nil
		default:
			return nil, fmt.Errorf("failed to execute query plan: %w", err)
		}
	}

	return e.compose(ctx, question, plan, data), nil
}

// buildPlan asks the model for a plan and validates it against the catalog
func (e *Engine) buildPlan(ctx context.Context, question string) (*queryPlan, error) {
	if e.groq == nil || !e.groq.IsConfigured() {
		return nil, usecaseErrors.ErrLLMUnavailable
	}

	start := time.Now()
	raw, err := e.groq.Complete(ctx, planSystemPrompt, question, 0, 300)
	if e.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		e.metrics.RecordLLMRequest("query_plan", status, time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("plan request failed: %w", err)
	}

	var plan queryPlan
	if err := json.Unmarshal([]byte(extractJSON(raw)), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrPlanUnparsable, err)
	}
	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// validatePlan enforces the catalog whitelist and argument requirements
func validatePlan(plan *queryPlan) error {
	spec, ok := planCatalog[plan.Query]
	if !ok {
		return fmt.Errorf("%w: %q", usecaseErrors.ErrPlanRejected, plan.Query)
	}
	if spec.needsPerson && strings.TrimSpace(plan.Person) == "" {
		return fmt.Errorf("%w: %q requires a person", usecaseErrors.ErrPlanRejected, plan.Query)
	}
	if spec.needsTopic && strings.TrimSpace(plan.Topic) == "" {
		return fmt.Errorf("%w: %q requires a topic", usecaseErrors.ErrPlanRejected, plan.Query)
	}
	if spec.needsSearch && strings.TrimSpace(plan.Search) == "" {
		return fmt.Errorf("%w: %q requires search terms", usecaseErrors.ErrPlanRejected, plan.Query)
	}
	if plan.TimeRangeDays < 0 || plan.TimeRangeDays > 3650 {
		return fmt.Errorf("%w: %d days", usecaseErrors.ErrInvalidWindow, plan.TimeRangeDays)
	}
	if plan.Limit < 0 || plan.Limit > 100 {
		plan.Limit = 0
	}
	return nil
}

// executePlan runs one catalog operation against the repositories
func (e *Engine) executePlan(ctx context.Context, plan *queryPlan) (interface{}, error) {
	since := plan.since()
	limit := plan.limitOr(10)

	switch plan.Query {
	case "pending_actions":
		return e.queries.PendingActions(ctx)
	case "actions_for_person":
		return e.queries.ActionsForPerson(ctx, plan.Person, true)
	case "meetings_about":
		return e.queries.MeetingsAbout(ctx, plan.Topic, limit)
	case "search_meetings":
		return e.queries.SearchMeetings(ctx, plan.Search, limit)
	case "recent_meetings":
		meetings, _, err := e.queries.ListMeetings(ctx, repositories.MeetingFilters{
			DateFrom:  since,
			Limit:     limit,
			SortBy:    "meeting_date",
			SortOrder: "desc",
		})
		return meetings, err
	case "recent_decisions":
		return e.analytics.DecisionVolume(ctx, since, limit)
	case "open_blockers":
		return e.queries.OpenBlockers(ctx)
	case "action_stats":
		return e.analytics.ActionStats(ctx, since)
	case "busiest_people":
		return e.analytics.ActionCountsByPerson(ctx, since)
	case "topic_trends":
		return e.analytics.TopicFrequency(ctx, since, limit)
	case "attendance":
		return e.analytics.AttendanceCounts(ctx, since)
	case "co_attendance":
		return e.analytics.CoAttendance(ctx, since, 2)
	case "meeting_cadence":
		return e.analytics.MeetingCadence(ctx, since)
	case "topic_cooccurrence":
		return e.analytics.TopicCooccurrence(ctx, since, 2)
	case "bottlenecks":
		people, err := e.analytics.ActionCountsByPerson(ctx, since)
		if err != nil {
			return nil, err
		}
		var overloaded []repositories.PersonActionCount
		for _, p := range people {
			if p.Pending+p.InProgress >= 3 {
				overloaded = append(overloaded, p)
			}
		}
		return overloaded, nil
	case "decision_status":
		return e.analytics.DecisionImplementation(ctx, since, limit)
	case "efficiency":
		return e.analytics.Efficiency(ctx, since)
	default:
		return nil, fmt.Errorf("%w: %q", usecaseErrors.ErrPlanRejected, plan.Query)
	}
}

// compose phrases the result. A failed phrasing call degrades to a
// deterministic summary with the raw data attached.
func (e *Engine) compose(ctx context.Context, question string, plan *queryPlan, data interface{}) *Answer {
	ans := &Answer{Question: question, Query: plan.Query, Data: data}

	rendered, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		rendered = []byte("[]")
	}
	if len(rendered) > maxAnswerContext {
		rendered = rendered[:maxAnswerContext]
	}

	user := fmt.Sprintf("Question: %s\n\nQuery used: %s\nData:\n%s", question, plan.Query, rendered)

	start := time.Now()
	text, err := e.groq.Complete(ctx, answerSystemPrompt, user, 0.3, 500)
	if e.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		e.metrics.RecordLLMRequest("answer", status, time.Since(start).Seconds())
	}
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("⚠️ Answer generation failed, returning raw data", zap.Error(err))
		}
		ans.Answer = summarize(plan, data)
		ans.Fallback = true
		return ans
	}

	ans.Answer = strings.TrimSpace(text)
	return ans
}

// fallback answers deterministically when planning is unavailable
func (e *Engine) fallback(ctx context.Context, question string) (*Answer, error) {
	meetings, _, err := e.queries.ListMeetings(ctx, repositories.MeetingFilters{
		Limit:     5,
		SortBy:    "meeting_date",
		SortOrder: "desc",
	})
	if err != nil {
		return nil, fmt.Errorf("fallback listing failed: %w", err)
	}

	if len(meetings) == 0 {
		return &Answer{
			Question: question,
			Answer:   "I could not interpret that question, and the archive has no meetings yet.",
			Fallback: true,
		}, nil
	}

	var sb strings.Builder
	sb.WriteString("I could not interpret that question. Here are the most recent meetings:")
	for _, m := range meetings {
		sb.WriteString("\n- ")
		sb.WriteString(m.Title)
		if m.MeetingDate != nil {
			sb.WriteString(m.MeetingDate.Format(" (2006-01-02)"))
		}
	}

	return &Answer{
		Question: question,
		Answer:   sb.String(),
		Data:     meetings,
		Fallback: true,
	}, nil
}

// summarize renders a count-based answer without the model
func summarize(plan *queryPlan, data interface{}) string {
	if n := resultCount(data); n >= 0 {
		return fmt.Sprintf("The %s query matched %d records; see the attached data.", plan.Query, n)
	}
	return "See the attached data."
}

func resultCount(data interface{}) int {
	switch v := data.(type) {
	case []*entities.ActionItem:
		return len(v)
	case []*entities.Meeting:
		return len(v)
	case []*entities.Blocker:
		return len(v)
	case []repositories.PersonActionCount:
		return len(v)
	case []repositories.TopicCount:
		return len(v)
	case []repositories.PersonMeetingCount:
		return len(v)
	case []repositories.PersonPair:
		return len(v)
	case []repositories.TypeCount:
		return len(v)
	case []repositories.MeetingDecisionCount:
		return len(v)
	case []repositories.TopicPair:
		return len(v)
	case []repositories.DecisionImplementation:
		return len(v)
	case *repositories.ActionStats:
		return int(v.Total)
	case *repositories.EfficiencyStats:
		return int(v.Meetings)
	default:
		return -1
	}
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	content = strings.TrimSpace(content)

	// Models sometimes preface the object with a sentence.
	if !strings.HasPrefix(content, "{") {
		if start := strings.Index(content, "{"); start != -1 {
			if end := strings.LastIndex(content, "}"); end > start {
				content = content[start : end+1]
			}
		}
	}

	return strings.TrimSpace(content)
}
