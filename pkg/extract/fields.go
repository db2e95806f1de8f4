package extract

import (
	"regexp"
	"strings"
	"time"
)

// HeaderFields is the structured result of parsing the Header section.
// Fields a document does not provide stay zero valued.
type HeaderFields struct {
	Title     string
	Date      *time.Time
	StartTime string
	EndTime   string
	Location  string
	Attendees []Attendee
	Warnings  []Warning
}

// dateLayouts are tried in order. US slash order wins for ambiguous dates;
// the day-first layouts catch forms like 15/01/2024 that US order rejects.
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"02/01/2006",
	"2/1/2006",
	"Monday, January 2, 2006",
}

// parseDate tries the known textual date forms. Returns nil when none match.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

var (
	timeRangeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)\s*(?:-|–|—|to)\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)`)
	clockRe     = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:AM|PM)?`)
	emailRe     = regexp.MustCompile(`\(([^()]*@[^()]*)\)`)

	attendeeInlineRe = regexp.MustCompile(`(?i)^(?:attendees?|participants?|present):\s*(.+)$`)
	nameSeparatorRe  = regexp.MustCompile(`[,;]|\s+and\s+`)

	dateLineRe     = regexp.MustCompile(`(?i)^date\s*:\s*(.*)$`)
	locationLineRe = regexp.MustCompile(`(?i)^location\s*:\s*(.*)$`)
)

var nextMeetingPrefixes = []string{"next meeting", "next session", "upcoming meeting", "next steps", "follow up", "follow-up"}

// ParseHeader extracts title, date, time range, location, and attendees from
// the Header lines. Missing fields are a valid state, never an error.
func ParseHeader(lines []string) HeaderFields {
	return parseHeader(toLines(lines))
}

func parseHeader(lines []line) HeaderFields {
	var h HeaderFields

	for _, l := range lines {
		text := strings.TrimSpace(l.text)
		if text == "" {
			continue
		}

		if h.Title == "" {
			h.Title = strings.TrimSpace(strings.TrimLeft(text, "#= "))
			continue
		}

		switch {
		case dateLineRe.MatchString(text):
			rest := dateLineRe.FindStringSubmatch(text)[1]
			if d := parseDate(rest); d != nil {
				h.Date = d
			} else if h.Date == nil {
				h.Warnings = append(h.Warnings, Warning{
					Line:   l.no,
					Text:   text,
					Reason: "unrecognized date format",
				})
			}

		case locationLineRe.MatchString(text):
			h.Location = strings.TrimSpace(locationLineRe.FindStringSubmatch(text)[1])

		case hasListMarker(l.text):
			h.Attendees = append(h.Attendees, parseAttendee(stripListMarker(text)))

		default:
			if m := attendeeInlineRe.FindStringSubmatch(text); m != nil {
				for _, chunk := range nameSeparatorRe.Split(m[1], -1) {
					chunk = strings.TrimSpace(chunk)
					if chunk != "" {
						h.Attendees = append(h.Attendees, parseAttendee(chunk))
					}
				}
				continue
			}
			if m := timeRangeRe.FindStringSubmatch(text); m != nil {
				h.StartTime = normalizeClock(m[1])
				h.EndTime = normalizeClock(m[2])
				continue
			}
			if h.Date == nil {
				if d := parseDate(text); d != nil {
					h.Date = d
				}
			}
		}
	}
	return h
}

// parseAttendee splits "Name (email) - Role". The parenthesized group is an
// email only when it contains "@"; otherwise it stays part of the name.
func parseAttendee(text string) Attendee {
	var a Attendee

	if m := emailRe.FindStringSubmatch(text); m != nil {
		a.Email = strings.TrimSpace(m[1])
		text = strings.TrimSpace(emailRe.ReplaceAllString(text, ""))
	}

	if idx := strings.Index(text, " - "); idx >= 0 {
		a.Role = strings.TrimSpace(text[idx+3:])
		text = text[:idx]
	}

	a.Name = strings.Join(strings.Fields(text), " ")
	return a
}

// ParseNextMeeting pulls a date and a time out of the NextMeeting lines,
// tolerating forms like "Next Meeting: January 22, 2024 at 10:00 AM".
func ParseNextMeeting(lines []string) (*time.Time, string) {
	var (
		date *time.Time
		at   string
	)
	for _, raw := range lines {
		text := stripListMarker(strings.TrimSpace(raw))
		if text == "" {
			continue
		}
		text = stripInlinePrefix(text, nextMeetingPrefixes)

		if at == "" {
			if m := clockRe.FindString(text); m != "" {
				at = normalizeClock(m)
				text = strings.Replace(text, m, "", 1)
			}
		}
		if date == nil {
			date = parseDate(cleanDateText(text))
		}
		if date != nil && at != "" {
			break
		}
	}
	return date, at
}

// cleanDateText drops connector words left behind once the clock portion is
// removed, so "January 22, 2024 at" still parses.
func cleanDateText(s string) string {
	s = strings.TrimSpace(s)
	for _, suffix := range []string{" at", " on", ","} {
		s = strings.TrimSuffix(s, suffix)
		s = strings.TrimSpace(s)
	}
	return s
}

func normalizeClock(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		return s[:len(s)-2] + " " + s[len(s)-2:]
	}
	return s
}
