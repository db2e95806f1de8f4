package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TopicKind distinguishes regular discussion topics from content found
// under headings the splitter did not recognize.
type TopicKind string

const (
	TopicKindDiscussion TopicKind = "discussion"
	TopicKindOther      TopicKind = "other"
)

// Topic represents one discussion topic within a meeting, with its
// indented bullet lines kept in order.
type Topic struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID      `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Kind      TopicKind      `gorm:"type:varchar(20);not null;default:'discussion';index" json:"kind"`
	Heading   string         `gorm:"type:varchar(500);not null;index" json:"heading"`
	Bullets   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"bullets,omitempty"`
	Position  int            `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topics"
}
