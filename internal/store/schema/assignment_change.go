package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AssignmentChange represents the assignment_changes table - one row per webhook applied to an assignment
type AssignmentChange struct {
	// ID is an auto-incrementing sequence number used for ordering
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssignmentID references the assignment that was written
	AssignmentID uint64 `gorm:"column:assignment_id;not null;index"`
	// CustomerPhone is denormalized so the journal can be queried by phone directly
	CustomerPhone string `gorm:"column:customer_phone;not null;index;size:20"`
	// Action is either "created" or "updated"
	Action string `gorm:"column:action;not null;size:16"`
	// Assignee is the label stored by this write
	Assignee *string `gorm:"column:assignee;size:100"`
	// EventType is the event_type reported by the webhook sender, if any. Unbounded text.
	EventType *string `gorm:"column:event_type"`
	// Payload is the webhook body, re-encoded so it is valid jsonb
	Payload datatypes.JSON `gorm:"column:payload"`
	// CreatedAt is the time the change was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the AssignmentChange model
func (AssignmentChange) TableName() string {
	return "assignment_changes"
}
