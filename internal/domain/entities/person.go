package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person represents someone who appears in meeting notes, either as an
// attendee or as the owner of an action item. People are deduplicated
// across meetings by normalized name.
type Person struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	NormalizedName string    `json:"-" gorm:"type:varchar(255);uniqueIndex;not null"`
	Email          *string   `json:"email,omitempty" gorm:"type:varchar(255);index"`
	Role           *string   `json:"role,omitempty" gorm:"type:varchar(100)"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Person
func (Person) TableName() string {
	return "people"
}

// NormalizePersonName lowercases and collapses whitespace so "Sarah  Chen"
// and "sarah chen" resolve to the same person.
func NormalizePersonName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// NewPerson creates a person with a normalized lookup key
func NewPerson(name string) *Person {
	now := time.Now()
	return &Person{
		ID:             uuid.New(),
		Name:           name,
		NormalizedName: NormalizePersonName(name),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate validates person data
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	return nil
}

// EnrichFrom fills email and role from a later sighting when absent.
// Existing values win so the earliest stated detail is stable.
func (p *Person) EnrichFrom(email, role *string) bool {
	changed := false
	if p.Email == nil && email != nil && *email != "" {
		p.Email = email
		changed = true
	}
	if p.Role == nil && role != nil && *role != "" {
		p.Role = role
		changed = true
	}
	if changed {
		p.UpdatedAt = time.Now()
	}
	return changed
}
