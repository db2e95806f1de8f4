package extract

import "strings"

// Section names a labeled region of a source document.
type Section string

const (
	SectionHeader      Section = "header"
	SectionAgenda      Section = "agenda"
	SectionDiscussion  Section = "discussion"
	SectionActionItems Section = "action_items"
	SectionDecisions   Section = "decisions"
	SectionBlockers    Section = "blockers"
	SectionNextMeeting Section = "next_meeting"
)

// headingSynonyms maps normalized heading text to its section. The attendee
// headings map to Header because attendee lines are header metadata.
// Anything else heading-shaped lands in the Other bucket.
var headingSynonyms = map[string]Section{
	"agenda": SectionAgenda,
	"topics": SectionAgenda,

	"discussion":       SectionDiscussion,
	"discussion notes": SectionDiscussion,
	"notes":            SectionDiscussion,
	"minutes":          SectionDiscussion,

	"action items": SectionActionItems,
	"action item":  SectionActionItems,
	"actions":      SectionActionItems,
	"todo":         SectionActionItems,
	"todos":        SectionActionItems,
	"assigned":     SectionActionItems,
	"assigned to":  SectionActionItems,
	"responsible":  SectionActionItems,

	"decisions":   SectionDecisions,
	"decision":    SectionDecisions,
	"decided":     SectionDecisions,
	"agreed":      SectionDecisions,
	"agreements":  SectionDecisions,
	"conclusion":  SectionDecisions,
	"conclusions": SectionDecisions,
	"resolved":    SectionDecisions,
	"resolutions": SectionDecisions,

	"blockers":    SectionBlockers,
	"blocker":     SectionBlockers,
	"impediments": SectionBlockers,
	"risks":       SectionBlockers,

	"next meeting":     SectionNextMeeting,
	"next session":     SectionNextMeeting,
	"upcoming meeting": SectionNextMeeting,
	"next steps":       SectionNextMeeting,
	"follow up":        SectionNextMeeting,
	"follow-up":        SectionNextMeeting,

	"attendees":    SectionHeader,
	"participants": SectionHeader,
	"present":      SectionHeader,
}

type line struct {
	no   int
	text string
}

// Sections is a document partitioned by heading lines. Lines keep their
// source order; unknown headings are preserved under Other instead of
// failing.
type Sections struct {
	known      map[Section][]line
	other      map[string][]line
	otherOrder []string
	warnings   []Warning
}

// Lines returns the raw lines assigned to sec, in source order.
func (s *Sections) Lines(sec Section) []string {
	return texts(s.known[sec])
}

// OtherHeadings lists unrecognized headings in the order they appeared.
func (s *Sections) OtherHeadings() []string {
	return s.otherOrder
}

// OtherLines returns the lines under an unrecognized heading.
func (s *Sections) OtherLines(heading string) []string {
	return texts(s.other[heading])
}

func texts(lines []line) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

// SplitSections partitions content into labeled sections. Lines before the
// first heading belong to Header.
//
// Three line shapes matter:
//   - a bare known heading ("Action Items:") switches the current section;
//   - a known heading with trailing content ("Decision: adopt Postgres")
//     files that one line into its section without switching, so inline
//     markers inside Discussion do not derail the rest of the document;
//   - a short unknown line ending with ":" opens an Other bucket.
func SplitSections(content string) *Sections {
	s := &Sections{
		known: make(map[Section][]line),
		other: make(map[string][]line),
	}

	cur := SectionHeader
	curOther := ""

	for i, raw := range strings.Split(content, "\n") {
		l := line{no: i + 1, text: raw}

		if sec, remainder, ok := matchHeading(raw); ok {
			if remainder == "" {
				cur, curOther = sec, ""
			} else {
				s.known[sec] = append(s.known[sec], l)
			}
			continue
		}
		if heading, ok := unknownHeading(raw); ok {
			if _, seen := s.other[heading]; !seen {
				s.otherOrder = append(s.otherOrder, heading)
			}
			curOther = heading
			s.warnings = append(s.warnings, Warning{
				Line:   l.no,
				Text:   strings.TrimSpace(raw),
				Reason: "unknown section heading",
			})
			continue
		}

		if curOther != "" {
			s.other[curOther] = append(s.other[curOther], l)
		} else {
			s.known[cur] = append(s.known[cur], l)
		}
	}
	return s
}

// matchHeading matches both bare headings and "heading: content" lines.
// remainder is the text after the colon, empty for bare headings.
func matchHeading(raw string) (Section, string, bool) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimSpace(strings.TrimLeft(trimmed, "#="))
	if trimmed == "" {
		return "", "", false
	}

	if idx := strings.Index(trimmed, ":"); idx >= 0 {
		key := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
		if sec, ok := headingSynonyms[key]; ok {
			return sec, strings.TrimSpace(trimmed[idx+1:]), true
		}
		return "", "", false
	}

	key := strings.ToLower(trimmed)
	if sec, ok := headingSynonyms[key]; ok {
		return sec, "", true
	}
	return "", "", false
}

// unknownHeading matches heading-shaped lines outside the vocabulary: short,
// ending with ":", with no other punctuation that would suggest prose.
func unknownHeading(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasSuffix(trimmed, ":") {
		return "", false
	}
	heading := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
	if heading == "" || len(strings.Fields(heading)) > 4 {
		return "", false
	}
	if strings.ContainsAny(heading, ".,;:!?") || hasListMarker(raw) {
		return "", false
	}
	return heading, true
}
