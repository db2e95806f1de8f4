package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrEmptyDocument indicates the input held no content.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrUnreadable indicates the input could not be read.
	ErrUnreadable = errors.New("document is unreadable")
)

// Document is a loaded meeting-note blob plus what its source name implies.
type Document struct {
	// Source identifies the document (path, upload name, transcript id).
	Source string
	// Content is the raw UTF-8 text.
	Content string
	// MeetingType comes from the filename convention, e.g.
	// sprint_planning_2024_01_15.txt -> "sprint_planning". Empty when the
	// name does not follow the convention.
	MeetingType string
	// NameDate is the date encoded in the filename, used as a fallback when
	// the header carries none.
	NameDate *time.Time
}

// Load wraps raw content as a Document. Fails only when the content is
// empty or whitespace.
func Load(source, content string) (*Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}
	doc := &Document{Source: source, Content: content}
	doc.MeetingType, doc.NameDate = parseSourceName(source)
	return doc, nil
}

// LoadReader reads everything from r and wraps it as a Document.
func LoadReader(source string, r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, source, err)
	}
	return Load(source, string(b))
}

// LoadFile reads path from disk. The path becomes the document source.
func LoadFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return Load(path, string(b))
}

// sourceNameRe matches the type_YYYY_MM_DD naming convention.
var sourceNameRe = regexp.MustCompile(`^(.*?)_?(\d{4})_(\d{2})_(\d{2})$`)

func parseSourceName(source string) (string, *time.Time) {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	m := sourceNameRe.FindStringSubmatch(base)
	if m == nil {
		return "", nil
	}

	meetingType := m[1]
	parsed, err := time.Parse("2006_01_02", m[2]+"_"+m[3]+"_"+m[4])
	if err != nil {
		return meetingType, nil
	}
	return meetingType, &parsed
}
