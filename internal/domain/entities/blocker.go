package entities

import (
	"time"

	"github.com/google/uuid"
)

// Blocker represents an impediment recorded in a meeting. Blockers stay
// open until a later meeting or an operator resolves them.
type Blocker struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`

	Resolved   bool       `json:"resolved" gorm:"default:false;index"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Blocker
func (Blocker) TableName() string {
	return "blockers"
}

// Resolve marks the blocker as cleared
func (b *Blocker) Resolve() {
	now := time.Now()
	b.Resolved = true
	b.ResolvedAt = &now
}
