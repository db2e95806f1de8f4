package extract

import (
	"regexp"
	"strings"
	"time"
)

// listMarkerRe matches leading enumeration markers: "1.", "2)", "-", "*", "•".
var listMarkerRe = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s+`)

func hasListMarker(raw string) bool {
	return listMarkerRe.MatchString(raw)
}

func stripListMarker(raw string) string {
	return strings.TrimSpace(listMarkerRe.ReplaceAllString(raw, ""))
}

// Inline prefixes stripped from list items, mirroring the marker vocabulary
// that files such lines into their sections in the first place.
var (
	actionPrefixes   = []string{"action items", "action item", "actions", "action", "todos", "todo", "assigned to", "assigned", "responsible"}
	decisionPrefixes = []string{"decisions", "decision", "decided", "agreed", "conclusions", "conclusion", "resolved"}
	blockerPrefixes  = []string{"blockers", "blocker", "impediment", "risk"}
)

// stripInlinePrefix removes a leading "Decision:" style marker. The colon is
// required: "Action required on X" keeps its first word.
func stripInlinePrefix(text string, prefixes []string) string {
	lower := strings.ToLower(text)
	for _, p := range prefixes {
		if !strings.HasPrefix(lower, p) {
			continue
		}
		rest := strings.TrimLeft(text[len(p):], " \t")
		if strings.HasPrefix(rest, ":") {
			return strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		}
	}
	return text
}

// ParseAgenda strips enumeration markers and returns the ordered agenda
// items. Blank lines are dropped.
func ParseAgenda(lines []string) []string {
	var items []string
	for _, raw := range lines {
		item := stripListMarker(raw)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// ParseDecisions returns the ordered decision strings with markers and
// inline "Decision:" style prefixes removed.
func ParseDecisions(lines []string) []string {
	return parsePrefixedList(lines, decisionPrefixes)
}

// ParseBlockers returns the ordered blocker strings.
func ParseBlockers(lines []string) []string {
	return parsePrefixedList(lines, blockerPrefixes)
}

func parsePrefixedList(lines []string, prefixes []string) []string {
	var items []string
	for _, raw := range lines {
		item := stripListMarker(raw)
		if item == "" {
			continue
		}
		item = stripInlinePrefix(item, prefixes)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// ownerRe splits "Owner to description", also accepting "will" and "shall"
// as separators. The owner is one to three capitalized words.
var ownerRe = regexp.MustCompile(`^([A-Z][\w'.-]*(?:\s+[A-Z][\w'.-]*){0,2})\s+(?:to|will|shall)\s+(.+)$`)

// ownerStopwords rejects sentence openers that look like names to ownerRe.
var ownerStopwords = map[string]bool{
	"the": true, "we": true, "they": true, "it": true, "this": true,
	"that": true, "a": true, "an": true, "all": true, "everyone": true,
	"someone": true, "anyone": true, "team": true, "i": true, "you": true,
}

// trailingParenRe captures a final parenthesized group, e.g. "(HIGH PRIORITY)".
var trailingParenRe = regexp.MustCompile(`\s*\(([^()]*)\)\s*$`)

// dueRe captures an explicit due marker: "Due: March 3", "due 2024-03-01".
var dueRe = regexp.MustCompile(`(?i)[,;]?\s*\bdue:?\s+(.+)$`)

// assignedRe captures "Assigned to: Name rest" lines.
var assignedRe = regexp.MustCompile(`(?i)^assigned\s+to:?\s*([A-Za-z][\w'.-]*)[\s:,-]*(.*)$`)

// ParseActions parses the action-items section. Each line becomes one
// ActionItem; lines that do not match the structured shape are kept verbatim
// in Description and reported as warnings.
func ParseActions(lines []string) ([]ActionItem, []Warning) {
	return parseActions(toLines(lines))
}

func parseActions(lines []line) ([]ActionItem, []Warning) {
	var (
		items    []ActionItem
		warnings []Warning
	)
	for _, l := range lines {
		text := stripListMarker(l.text)
		if text == "" {
			continue
		}
		item, structured := parseActionLine(text)
		if !structured {
			warnings = append(warnings, Warning{
				Line:   l.no,
				Text:   text,
				Reason: "unstructured action item",
			})
		}
		items = append(items, item)
	}
	return items, warnings
}

// parseActionLine splits one action line into owner, description, priority
// tag, and due date. Reports structured=false when only the verbatim
// fallback applied.
func parseActionLine(text string) (ActionItem, bool) {
	item := ActionItem{}

	// "Assigned to: Carol - update runbook" names the owner outright.
	if m := assignedRe.FindStringSubmatch(text); m != nil {
		item.Owner = m[1]
		rest := extractActionTags(&item, strings.TrimSpace(m[2]))
		if rest == "" {
			rest = text
		}
		item.Description = rest
		return item, true
	}

	rest := stripInlinePrefix(text, actionPrefixes)
	rest = extractActionTags(&item, rest)

	if m := ownerRe.FindStringSubmatch(rest); m != nil && !ownerStopwords[strings.ToLower(m[1])] {
		item.Owner = m[1]
		item.Description = strings.TrimSpace(m[2])
		return item, true
	}

	// Verbatim fallback: the whole line is the description.
	item.Description = rest
	return item, item.Priority != "" || item.DueDate != nil
}

// extractActionTags peels a trailing "(HIGH PRIORITY)" or "(due March 3)"
// group and an explicit "Due: <date>" suffix off the line. An unrecognized
// parenthesized group stays in the description.
func extractActionTags(item *ActionItem, rest string) string {
	if m := trailingParenRe.FindStringSubmatch(rest); m != nil {
		group := strings.TrimSpace(m[1])
		switch {
		case isPriorityTag(group):
			item.Priority = group
			rest = strings.TrimSpace(trailingParenRe.ReplaceAllString(rest, ""))
		case parseDueGroup(group) != nil:
			item.DueDate = parseDueGroup(group)
			rest = strings.TrimSpace(trailingParenRe.ReplaceAllString(rest, ""))
		}
	}

	if m := dueRe.FindStringSubmatch(rest); m != nil {
		if due := parseDate(strings.TrimSpace(m[1])); due != nil {
			item.DueDate = due
			rest = strings.TrimSpace(dueRe.ReplaceAllString(rest, ""))
		}
	}
	return strings.TrimRight(strings.TrimSpace(rest), ",;")
}

// parseDueGroup handles parenthesized due hints: "due March 3", "due: 3/4".
func parseDueGroup(group string) *time.Time {
	m := dueRe.FindStringSubmatch(group)
	if m == nil {
		return nil
	}
	return parseDate(strings.TrimSpace(m[1]))
}

func toLines(texts []string) []line {
	lines := make([]line, len(texts))
	for i, t := range texts {
		lines[i] = line{no: i + 1, text: t}
	}
	return lines
}
