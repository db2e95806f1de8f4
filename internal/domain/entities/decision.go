package entities

import (
	"time"

	"github.com/google/uuid"
)

// Decision represents one decision recorded in a meeting, stored with its
// marker prefix ("Decision:", "Agreed:") stripped.
type Decision struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}
