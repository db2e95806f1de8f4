package extract

import (
	"reflect"
	"testing"
)

func TestSplitSections_KnownHeadings(t *testing.T) {
	content := "Team Retro\n\nAgenda:\n- item one\n\nTODO:\n- fix the build\n\nDecided:\n- ship on Friday\n"
	s := SplitSections(content)

	if got := s.Lines(SectionHeader); len(got) == 0 || got[0] != "Team Retro" {
		t.Fatalf("header lines wrong: %v", got)
	}
	agenda := nonEmpty(s.Lines(SectionAgenda))
	if !reflect.DeepEqual(agenda, []string{"- item one"}) {
		t.Fatalf("agenda lines wrong: %v", agenda)
	}
	actions := nonEmpty(s.Lines(SectionActionItems))
	if !reflect.DeepEqual(actions, []string{"- fix the build"}) {
		t.Fatalf("TODO did not map to action items: %v", actions)
	}
	decisions := nonEmpty(s.Lines(SectionDecisions))
	if !reflect.DeepEqual(decisions, []string{"- ship on Friday"}) {
		t.Fatalf("Decided did not map to decisions: %v", decisions)
	}
}

func TestSplitSections_InlineMarkerDoesNotSwitch(t *testing.T) {
	content := "Weekly Sync\n\nDiscussion:\n- budget review\nDecision: freeze hiring\n- headcount numbers\n"
	s := SplitSections(content)

	discussion := nonEmpty(s.Lines(SectionDiscussion))
	want := []string{"- budget review", "- headcount numbers"}
	if !reflect.DeepEqual(discussion, want) {
		t.Fatalf("inline decision derailed the discussion section: %v", discussion)
	}
	decisions := nonEmpty(s.Lines(SectionDecisions))
	if len(decisions) != 1 || decisions[0] != "Decision: freeze hiring" {
		t.Fatalf("inline decision not filed: %v", decisions)
	}
}

func TestSplitSections_UnknownHeadingToOther(t *testing.T) {
	content := "Sync\n\nParking Lot:\n- revisit later\n\nAgenda:\n- real item\n"
	s := SplitSections(content)

	if got := s.OtherHeadings(); len(got) != 1 || got[0] != "Parking Lot" {
		t.Fatalf("unknown heading not preserved: %v", got)
	}
	lines := nonEmpty(s.OtherLines("Parking Lot"))
	if !reflect.DeepEqual(lines, []string{"- revisit later"}) {
		t.Fatalf("other bucket lines wrong: %v", lines)
	}
	if len(s.warnings) != 1 || s.warnings[0].Reason != "unknown section heading" {
		t.Fatalf("expected one unknown-heading warning, got %v", s.warnings)
	}
	// The document continues normally after the unknown block.
	agenda := nonEmpty(s.Lines(SectionAgenda))
	if !reflect.DeepEqual(agenda, []string{"- real item"}) {
		t.Fatalf("agenda after other bucket wrong: %v", agenda)
	}
}

func TestSplitSections_ProseColonIsNotAHeading(t *testing.T) {
	content := "Sync\n\nDiscussion:\nWe agreed on the following items, in order:\n- first\n"
	s := SplitSections(content)

	if len(s.OtherHeadings()) != 0 {
		t.Fatalf("prose line misread as heading: %v", s.OtherHeadings())
	}
	discussion := nonEmpty(s.Lines(SectionDiscussion))
	if len(discussion) != 2 {
		t.Fatalf("discussion lines wrong: %v", discussion)
	}
}

func nonEmpty(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
