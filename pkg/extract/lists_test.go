package extract

import (
	"reflect"
	"testing"
)

func TestParseActionLine_OwnerForms(t *testing.T) {
	tests := []struct {
		in    string
		owner string
		desc  string
	}{
		{"Mike to complete database optimization by end of week", "Mike", "complete database optimization by end of week"},
		{"Sarah Chen will prepare the Q3 report", "Sarah Chen", "prepare the Q3 report"},
		{"Bob shall review the security audit", "Bob", "review the security audit"},
		{"Assigned to: Carol - update the runbook", "Carol", "update the runbook"},
	}
	for _, tt := range tests {
		item, ok := parseActionLine(tt.in)
		if !ok {
			t.Fatalf("line %q should parse as structured", tt.in)
		}
		if item.Owner != tt.owner || item.Description != tt.desc {
			t.Fatalf("line %q parsed to %+v", tt.in, item)
		}
	}
}

func TestParseActionLine_PriorityAndDue(t *testing.T) {
	item, _ := parseActionLine("Mike to fix the login flow (URGENT)")
	if item.Priority != "URGENT" {
		t.Fatalf("unexpected priority %q", item.Priority)
	}
	if item.Description != "fix the login flow" {
		t.Fatalf("priority tag leaked into description: %q", item.Description)
	}

	item, _ = parseActionLine("Ann will ship the patch, due: 2024-02-01")
	if item.DueDate == nil || item.DueDate.Format("2006-01-02") != "2024-02-01" {
		t.Fatalf("due date not parsed: %+v", item)
	}
	if item.Description != "ship the patch" {
		t.Fatalf("due suffix leaked into description: %q", item.Description)
	}

	// A non-priority parenthesized group stays in the description.
	item, _ = parseActionLine("Mike to sync the schedule (with Marketing)")
	if item.Priority != "" {
		t.Fatalf("ordinary parens misread as priority: %q", item.Priority)
	}
	if item.Description != "sync the schedule (with Marketing)" {
		t.Fatalf("unexpected description %q", item.Description)
	}
}

func TestParseActionLine_SentenceOpenersAreNotOwners(t *testing.T) {
	for _, in := range []string{
		"We will revisit the roadmap next quarter",
		"The team to discuss hiring in January",
		"Everyone to fill out the survey",
	} {
		item, ok := parseActionLine(in)
		if ok {
			t.Fatalf("line %q should fall back to verbatim, got %+v", in, item)
		}
		if item.Owner != "" || item.Description != in {
			t.Fatalf("fallback for %q parsed to %+v", in, item)
		}
	}
}

func TestParseActions_WarnsOnVerbatimFallback(t *testing.T) {
	items, warnings := ParseActions([]string{
		"1. Mike to tune the index",
		"2. Circle back on vendor pricing",
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if len(warnings) != 1 || warnings[0].Reason != "unstructured action item" {
		t.Fatalf("expected one fallback warning, got %v", warnings)
	}
	if items[1].Description != "Circle back on vendor pricing" {
		t.Fatalf("verbatim line altered: %q", items[1].Description)
	}
}

func TestParseDecisions_StripsMarkersAndPrefixes(t *testing.T) {
	got := ParseDecisions([]string{
		"1. Decision: adopt Postgres",
		"- Agreed: two-week sprints",
		"* Keep the office Wednesdays",
		"",
	})
	want := []string{"adopt Postgres", "two-week sprints", "Keep the office Wednesdays"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseDecisions = %v, want %v", got, want)
	}
}

func TestParseAgenda_KeepsOrder(t *testing.T) {
	got := ParseAgenda([]string{"1. first", "2. second", "- third"})
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseAgenda = %v, want %v", got, want)
	}
}
