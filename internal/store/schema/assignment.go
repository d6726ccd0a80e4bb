package schema

import "time"

// Assignment represents the assignment table - the staff member currently assigned to a customer phone number
type Assignment struct {
	// ID is an auto-incrementing surrogate key, fixed at creation
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CustomerPhone is the natural key; exactly one row exists per phone number
	CustomerPhone string `gorm:"column:customer_phone;not null;uniqueIndex;size:20"`
	// Assignee is either the resolved staff identifier rendered as text or the raw "first last" name.
	// NULL when the last webhook carried no assignee.
	Assignee *string `gorm:"column:assignee;size:100"`
	// CreatedAt is set once when the row is inserted
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is refreshed by every webhook for this phone number
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Assignment model
func (Assignment) TableName() string {
	return "assignment"
}
