package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItemStatus constants
const (
	ActionItemStatusPending    = "pending"
	ActionItemStatusInProgress = "in_progress"
	ActionItemStatusCompleted  = "completed"
	ActionItemStatusCancelled  = "cancelled"
)

// ActionItemPriority constants
const (
	ActionItemPriorityLow    = "low"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityHigh   = "high"
)

// ActionItem represents a task extracted from a meeting's action items
// section. Owner keeps the name exactly as written; PersonID points at the
// deduplicated person when the owner could be resolved.
type ActionItem struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Meeting   *Meeting   `json:"-" gorm:"foreignKey:MeetingID"`
	PersonID  *uuid.UUID `json:"person_id,omitempty" gorm:"type:uuid;index"`
	Person    *Person    `json:"person,omitempty" gorm:"foreignKey:PersonID"`

	Owner       *string    `json:"owner,omitempty" gorm:"type:varchar(255)"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Priority    string     `json:"priority" gorm:"type:varchar(20);default:'medium';index"`
	PriorityTag *string    `json:"priority_tag,omitempty" gorm:"type:varchar(100)"` // tag as written, e.g. "HIGH PRIORITY"
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	Position    int        `json:"position" gorm:"not null;default:0"`

	// GitHub export tracking
	GithubIssueNumber *int       `json:"github_issue_number,omitempty"`
	GithubIssueURL    *string    `json:"github_issue_url,omitempty" gorm:"type:text"`
	ExportedAt        *time.Time `json:"exported_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a pending action item for a meeting
func NewActionItem(meetingID uuid.UUID, description string, position int) *ActionItem {
	return &ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		Priority:    ActionItemPriorityMedium,
		Status:      ActionItemStatusPending,
		Position:    position,
	}
}

// IsPending checks if the action item is still open
func (a *ActionItem) IsPending() bool {
	return a.Status == ActionItemStatusPending || a.Status == ActionItemStatusInProgress
}

// IsExported checks if a GitHub issue exists for this action item
func (a *ActionItem) IsExported() bool {
	return a.GithubIssueURL != nil
}

// MarkExported records the created GitHub issue
func (a *ActionItem) MarkExported(issueNumber int, issueURL string) {
	now := time.Now()
	a.GithubIssueNumber = &issueNumber
	a.GithubIssueURL = &issueURL
	a.ExportedAt = &now
	a.UpdatedAt = now
}

// ValidStatus checks a requested status transition target
func ValidStatus(status string) bool {
	switch status {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusCompleted, ActionItemStatusCancelled:
		return true
	}
	return false
}
