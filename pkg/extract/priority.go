package extract

import (
	"strings"
	"unicode"
)

// Priority is the normalized urgency bucket used for storage and reporting.
// The verbatim tag from the source line is kept separately on the record.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityKeywords = map[Priority][]string{
	PriorityHigh:   {"urgent", "critical", "important", "asap", "high priority", "high"},
	PriorityMedium: {"medium", "moderate", "normal"},
	PriorityLow:    {"low", "minor", "when possible", "if time permits"},
}

// priorityOrder keeps normalization deterministic: high wins over medium
// wins over low when a tag mixes keywords.
var priorityOrder = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// NormalizePriority maps a verbatim tag ("HIGH PRIORITY", "asap", "minor")
// to a bucket. Unrecognized or empty tags default to medium, matching how
// untagged action items are treated.
func NormalizePriority(tag string) Priority {
	lower := strings.ToLower(tag)
	for _, p := range priorityOrder {
		for _, kw := range priorityKeywords[p] {
			if containsKeyword(lower, kw) {
				return p
			}
		}
	}
	return PriorityMedium
}

// isPriorityTag reports whether a parenthesized group is an urgency marker
// rather than ordinary description text.
func isPriorityTag(s string) bool {
	lower := strings.ToLower(s)
	if containsKeyword(lower, "priority") {
		return true
	}
	for _, kws := range priorityKeywords {
		for _, kw := range kws {
			if containsKeyword(lower, kw) {
				return true
			}
		}
	}
	return false
}

// containsKeyword matches single-word keywords on word boundaries so that
// "low" does not fire inside "Flow". Phrases match as substrings.
func containsKeyword(lower, kw string) bool {
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(lower, kw)
	}
	for _, w := range strings.FieldsFunc(lower, notLetter) {
		if w == kw {
			return true
		}
	}
	return false
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r)
}
