// Package extract turns free-form meeting-note text into structured records.
// Parsing is best-effort: lines that match no known pattern are kept as
// warnings or verbatim fallbacks, never errors. A Record is built in a single
// pass and is read-only afterwards.
package extract

import "time"

// Attendee is one participant parsed from a header attendee line.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// ActionItem is one parsed action line. When the line does not match the
// "Owner to description (PRIORITY)" shape, Owner stays empty and Description
// holds the full line verbatim.
type ActionItem struct {
	Owner       string     `json:"owner,omitempty"`
	Description string     `json:"description"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// DiscussionTopic is a heading plus its bullet lines, in source order.
type DiscussionTopic struct {
	Heading string   `json:"heading"`
	Bullets []string `json:"bullets,omitempty"`
}

// Warning records a line that matched no known pattern. Warnings are data on
// the record, not errors; extraction always continues.
type Warning struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Record is the structured result of extracting one meeting document.
// All sequences preserve source order.
type Record struct {
	Source      string     `json:"source"`
	MeetingType string     `json:"meeting_type,omitempty"`
	Title       string     `json:"title"`
	Date        *time.Time `json:"date,omitempty"`
	StartTime   string     `json:"start_time,omitempty"`
	EndTime     string     `json:"end_time,omitempty"`
	Location    string     `json:"location,omitempty"`

	Attendees  []Attendee        `json:"attendees"`
	Agenda     []string          `json:"agenda"`
	Discussion []DiscussionTopic `json:"discussion"`
	Actions    []ActionItem      `json:"action_items"`
	Decisions  []string          `json:"decisions"`
	Blockers   []string          `json:"blockers"`

	// Other keeps content found under headings outside the known
	// vocabulary, e.g. a "Parking Lot:" section.
	Other []DiscussionTopic `json:"other_sections,omitempty"`

	NextMeetingDate *time.Time `json:"next_meeting_date,omitempty"`
	NextMeetingTime string     `json:"next_meeting_time,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// DurationMinutes derives the meeting length from the parsed time range.
// Returns 0 when either endpoint is missing or unparseable.
func (r *Record) DurationMinutes() int {
	start, ok := parseClock(r.StartTime)
	if !ok {
		return 0
	}
	end, ok := parseClock(r.EndTime)
	if !ok {
		return 0
	}
	d := end.Sub(start)
	if d < 0 {
		// Crossed midnight, or a 12-hour clock without meridiem markers.
		d += 24 * time.Hour
	}
	return int(d.Minutes())
}

var clockLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
