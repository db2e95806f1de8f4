package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingAttendee records a person's presence in one meeting. RawName keeps
// the name exactly as written in the notes; Person points at the
// deduplicated identity.
type MeetingAttendee struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_meeting_person" json:"meeting_id"`
	PersonID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_meeting_person" json:"person_id"`
	Person    *Person   `gorm:"foreignKey:PersonID" json:"person,omitempty"`

	RawName  string  `gorm:"type:varchar(255);not null" json:"raw_name"`
	Email    *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Role     *string `gorm:"type:varchar(100)" json:"role,omitempty"`
	Position int     `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingAttendee
func (MeetingAttendee) TableName() string {
	return "meeting_attendees"
}

// NewMeetingAttendee links a person to a meeting at the given roster position
func NewMeetingAttendee(meetingID, personID uuid.UUID, rawName string, position int) *MeetingAttendee {
	return &MeetingAttendee{
		ID:        uuid.New(),
		MeetingID: meetingID,
		PersonID:  personID,
		RawName:   rawName,
		Position:  position,
		CreatedAt: time.Now(),
	}
}
