package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents one ingested meeting-notes document
type Meeting struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"type:varchar(500);not null" json:"title"`
	MeetingType *string    `gorm:"type:varchar(100);index" json:"meeting_type,omitempty"`
	MeetingDate *time.Time `gorm:"type:date;index" json:"meeting_date,omitempty"`
	StartTime   *string    `gorm:"type:varchar(20)" json:"start_time,omitempty"`
	EndTime     *string    `gorm:"type:varchar(20)" json:"end_time,omitempty"`
	DurationMin *int       `gorm:"column:duration_minutes" json:"duration_minutes,omitempty"`
	Location    *string    `gorm:"type:varchar(255)" json:"location,omitempty"`

	// Source tracking. SourcePath is the stable identity for re-ingest:
	// loading the same path again updates the existing meeting.
	SourcePath  string `gorm:"type:varchar(1024);uniqueIndex;not null" json:"source_path"`
	ContentHash string `gorm:"type:varchar(64);not null" json:"content_hash"`

	// Next meeting, when the notes announce one
	NextMeetingDate *time.Time `gorm:"type:date" json:"next_meeting_date,omitempty"`
	NextMeetingTime *string    `gorm:"type:varchar(20)" json:"next_meeting_time,omitempty"`

	// Agenda bullets and extraction warnings, kept verbatim
	Agenda   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"agenda,omitempty"`
	Warnings datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"warnings,omitempty"`

	// Associations
	Attendees   []MeetingAttendee `gorm:"foreignKey:MeetingID" json:"attendees,omitempty"`
	Topics      []Topic           `gorm:"foreignKey:MeetingID" json:"topics,omitempty"`
	ActionItems []ActionItem      `gorm:"foreignKey:MeetingID" json:"action_items,omitempty"`
	Decisions   []Decision        `gorm:"foreignKey:MeetingID" json:"decisions,omitempty"`
	Blockers    []Blocker         `gorm:"foreignKey:MeetingID" json:"blockers,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting shell for the given source document
func NewMeeting(title, sourcePath, contentHash string) *Meeting {
	now := time.Now()
	return &Meeting{
		ID:          uuid.New(),
		Title:       title,
		SourcePath:  sourcePath,
		ContentHash: contentHash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasWarnings reports whether extraction produced non-fatal warnings
func (m *Meeting) HasWarnings() bool {
	return len(m.Warnings) > 2 // more than "[]"
}

// PendingActions returns the action items still open
func (m *Meeting) PendingActions() []ActionItem {
	var out []ActionItem
	for _, a := range m.ActionItems {
		if a.IsPending() {
			out = append(out, a)
		}
	}
	return out
}

// IsSameContent reports whether a re-ingest carries identical content
func (m *Meeting) IsSameContent(hash string) bool {
	return m.ContentHash == hash
}
