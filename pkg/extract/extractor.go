package extract

import (
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var bulletRe = regexp.MustCompile(`^\s*[-*•]\s+`)

// ParseDiscussion groups the Discussion lines into topics. A numbered or
// plain line opens a topic; dash bullets attach to the topic above them.
// Bullets appearing before any topic line form a topic with no heading.
func ParseDiscussion(lines []string) []DiscussionTopic {
	var topics []DiscussionTopic
	for _, raw := range lines {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		if bulletRe.MatchString(raw) {
			if len(topics) == 0 {
				topics = append(topics, DiscussionTopic{})
			}
			last := &topics[len(topics)-1]
			last.Bullets = append(last.Bullets, stripListMarker(text))
			continue
		}
		topics = append(topics, DiscussionTopic{Heading: stripListMarker(text)})
	}
	return topics
}

// Extract runs the full pipeline over a loaded document: split into
// sections, parse header fields, parse the list sections, assemble the
// record. The same blob always yields the same record.
func Extract(doc *Document) *Record {
	s := SplitSections(doc.Content)

	header := parseHeader(s.known[SectionHeader])
	actions, actionWarnings := parseActions(s.known[SectionActionItems])

	rec := &Record{
		Source:      doc.Source,
		MeetingType: doc.MeetingType,
		Title:       header.Title,
		Date:        header.Date,
		StartTime:   header.StartTime,
		EndTime:     header.EndTime,
		Location:    header.Location,
		Attendees:   header.Attendees,
		Agenda:      ParseAgenda(s.Lines(SectionAgenda)),
		Discussion:  ParseDiscussion(s.Lines(SectionDiscussion)),
		Actions:     actions,
		Decisions:   ParseDecisions(s.Lines(SectionDecisions)),
		Blockers:    ParseBlockers(s.Lines(SectionBlockers)),
	}
	rec.NextMeetingDate, rec.NextMeetingTime = ParseNextMeeting(s.Lines(SectionNextMeeting))

	// Unrecognized sections ride along as topics so their content survives.
	for _, heading := range s.OtherHeadings() {
		topic := DiscussionTopic{Heading: heading}
		for _, raw := range s.OtherLines(heading) {
			if text := stripListMarker(raw); text != "" {
				topic.Bullets = append(topic.Bullets, text)
			}
		}
		rec.Other = append(rec.Other, topic)
	}

	// The header date wins; the filename date is the fallback.
	if rec.Date == nil {
		rec.Date = doc.NameDate
	}
	// A record always carries a title, even for documents whose first line
	// turned out to be a section heading.
	if rec.Title == "" {
		base := filepath.Base(doc.Source)
		rec.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	rec.Warnings = append(rec.Warnings, s.warnings...)
	rec.Warnings = append(rec.Warnings, header.Warnings...)
	rec.Warnings = append(rec.Warnings, actionWarnings...)
	sort.SliceStable(rec.Warnings, func(i, j int) bool {
		return rec.Warnings[i].Line < rec.Warnings[j].Line
	})

	ensureSlices(rec)
	return rec
}

// ExtractText loads and extracts in one call.
func ExtractText(source, content string) (*Record, error) {
	doc, err := Load(source, content)
	if err != nil {
		return nil, err
	}
	return Extract(doc), nil
}

// ExtractReader loads and extracts from a stream.
func ExtractReader(source string, r io.Reader) (*Record, error) {
	doc, err := LoadReader(source, r)
	if err != nil {
		return nil, err
	}
	return Extract(doc), nil
}

// ExtractFile loads and extracts a file from disk.
func ExtractFile(path string) (*Record, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Extract(doc), nil
}

// ensureSlices keeps the sequence fields non-nil so JSON renders [] rather
// than null for empty sections.
func ensureSlices(rec *Record) {
	if rec.Attendees == nil {
		rec.Attendees = []Attendee{}
	}
	if rec.Agenda == nil {
		rec.Agenda = []string{}
	}
	if rec.Discussion == nil {
		rec.Discussion = []DiscussionTopic{}
	}
	if rec.Actions == nil {
		rec.Actions = []ActionItem{}
	}
	if rec.Decisions == nil {
		rec.Decisions = []string{}
	}
	if rec.Blockers == nil {
		rec.Blockers = []string{}
	}
}
