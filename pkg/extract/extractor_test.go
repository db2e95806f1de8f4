package extract

import (
	"errors"
	"reflect"
	"testing"
)

const sprintPlanningDoc = `Sprint Planning Meeting
Date: January 15, 2024
Time: 10:00 AM - 11:30 AM
Location: Conference Room A

Attendees:
- Sarah Chen (sarah.chen@example.com) - Engineering Lead
- Mike Johnson (mike.j@example.com) - Backend Developer
- Priya Patel - Product Manager

Agenda:
1. Review sprint goals
2. Capacity planning
3. Risk assessment

Discussion:
1. Database Performance
   - Slow queries on the orders table
   - Decision: add a covering index
2. API Redesign
   - Pagination contract agreed

Action Items:
1. Mike to complete database optimization by end of week (HIGH PRIORITY)
2. Sarah will draft the API proposal, due: 2024-01-19
3. Follow through on customer interviews

Decisions:
- Decision: adopt feature flags for risky rollouts
- Keep the release cadence at two weeks

Parking Lot:
- Revisit the on-call rotation

Next Meeting: January 22, 2024 at 10:00 AM
`

func TestExtract_FullDocument(t *testing.T) {
	rec, err := ExtractText("sprint_planning_2024_01_15.txt", sprintPlanningDoc)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if rec.Title != "Sprint Planning Meeting" {
		t.Fatalf("unexpected title %q", rec.Title)
	}
	if rec.Date == nil || rec.Date.Format("2006-01-02") != "2024-01-15" {
		t.Fatalf("unexpected date %v", rec.Date)
	}
	if rec.StartTime != "10:00 AM" || rec.EndTime != "11:30 AM" {
		t.Fatalf("unexpected time range %q - %q", rec.StartTime, rec.EndTime)
	}
	if rec.Location != "Conference Room A" {
		t.Fatalf("unexpected location %q", rec.Location)
	}
	if rec.MeetingType != "sprint_planning" {
		t.Fatalf("unexpected meeting type %q", rec.MeetingType)
	}
	if rec.DurationMinutes() != 90 {
		t.Fatalf("expected 90 minute duration, got %d", rec.DurationMinutes())
	}

	if len(rec.Attendees) != 3 {
		t.Fatalf("expected 3 attendees, got %d", len(rec.Attendees))
	}
	sarah := rec.Attendees[0]
	if sarah.Name != "Sarah Chen" || sarah.Email != "sarah.chen@example.com" || sarah.Role != "Engineering Lead" {
		t.Fatalf("unexpected first attendee %+v", sarah)
	}
	priya := rec.Attendees[2]
	if priya.Name != "Priya Patel" || priya.Email != "" || priya.Role != "Product Manager" {
		t.Fatalf("attendee without email parsed wrong: %+v", priya)
	}

	wantAgenda := []string{"Review sprint goals", "Capacity planning", "Risk assessment"}
	if !reflect.DeepEqual(rec.Agenda, wantAgenda) {
		t.Fatalf("unexpected agenda %v", rec.Agenda)
	}

	if len(rec.Discussion) != 2 {
		t.Fatalf("expected 2 discussion topics, got %d", len(rec.Discussion))
	}
	if rec.Discussion[0].Heading != "Database Performance" || len(rec.Discussion[0].Bullets) != 2 {
		t.Fatalf("unexpected first topic %+v", rec.Discussion[0])
	}

	if len(rec.Actions) != 3 {
		t.Fatalf("expected 3 action items, got %d", len(rec.Actions))
	}
	mike := rec.Actions[0]
	if mike.Owner != "Mike" {
		t.Fatalf("unexpected owner %q", mike.Owner)
	}
	if mike.Description != "complete database optimization by end of week" {
		t.Fatalf("unexpected description %q", mike.Description)
	}
	if mike.Priority != "HIGH PRIORITY" {
		t.Fatalf("unexpected priority %q", mike.Priority)
	}
	sarahItem := rec.Actions[1]
	if sarahItem.Owner != "Sarah" || sarahItem.DueDate == nil {
		t.Fatalf("due-dated item parsed wrong: %+v", sarahItem)
	}
	fallback := rec.Actions[2]
	if fallback.Owner != "" || fallback.Description != "Follow through on customer interviews" {
		t.Fatalf("verbatim fallback parsed wrong: %+v", fallback)
	}

	wantDecisions := []string{
		"adopt feature flags for risky rollouts",
		"Keep the release cadence at two weeks",
	}
	if !reflect.DeepEqual(rec.Decisions, wantDecisions) {
		t.Fatalf("unexpected decisions %v", rec.Decisions)
	}

	if len(rec.Blockers) != 0 {
		t.Fatalf("document without Blockers heading should yield empty blockers, got %v", rec.Blockers)
	}
	if rec.Blockers == nil {
		t.Fatal("blockers should be an empty slice, not nil")
	}

	if rec.NextMeetingDate == nil || rec.NextMeetingDate.Format("2006-01-02") != "2024-01-22" {
		t.Fatalf("unexpected next meeting date %v", rec.NextMeetingDate)
	}
	if rec.NextMeetingTime != "10:00 AM" {
		t.Fatalf("unexpected next meeting time %q", rec.NextMeetingTime)
	}

	// Parking Lot is not in the vocabulary: preserved as warning, not error.
	foundUnknown := false
	for _, w := range rec.Warnings {
		if w.Reason == "unknown section heading" && w.Text == "Parking Lot:" {
			foundUnknown = true
		}
	}
	if !foundUnknown {
		t.Fatalf("expected unknown-heading warning, got %v", rec.Warnings)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	doc, err := Load("sprint_planning_2024_01_15.txt", sprintPlanningDoc)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	first := Extract(doc)
	second := Extract(doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("extraction is not idempotent")
	}
}

func TestExtract_ActionOrderPreserved(t *testing.T) {
	content := "Standup\n\nAction Items:\n" +
		"1. Alice to review PR 42\n" +
		"2. Bob to update the changelog\n" +
		"3. Carol to rotate the pager\n"
	rec, err := ExtractText("standup.txt", content)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	owners := []string{"Alice", "Bob", "Carol"}
	if len(rec.Actions) != len(owners) {
		t.Fatalf("expected %d actions, got %d", len(owners), len(rec.Actions))
	}
	for i, want := range owners {
		if rec.Actions[i].Owner != want {
			t.Fatalf("action %d: expected owner %q got %q", i, want, rec.Actions[i].Owner)
		}
	}
}

func TestExtract_TitleAlwaysPresent(t *testing.T) {
	// First non-empty line is a section heading, so the source name fills in.
	rec, err := ExtractText("retro_2024_03_01.txt", "Agenda:\n- What went well\n")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if rec.Title == "" {
		t.Fatal("title must never be empty for a valid document")
	}
	if rec.Title != "retro_2024_03_01" {
		t.Fatalf("unexpected fallback title %q", rec.Title)
	}
	if rec.Date == nil || rec.Date.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("filename date fallback missing: %v", rec.Date)
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	if _, err := Load("empty.txt", "   \n\t\n"); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}
