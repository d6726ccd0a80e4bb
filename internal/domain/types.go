package domain

import (
	"strings"
	"time"
)

// AssignmentAction describes what an upsert did to the stored assignment
type AssignmentAction string

const (
	AssignmentActionCreated AssignmentAction = "created"
	AssignmentActionUpdated AssignmentAction = "updated"
)

// ActionFor returns the action matching the created flag of an upsert
func ActionFor(created bool) AssignmentAction {
	if created {
		return AssignmentActionCreated
	}
	return AssignmentActionUpdated
}

// NormalizePhone prepends the international prefix when the caller omitted it.
// Only lookups are normalized; stored phone numbers are kept exactly as delivered.
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, PHONE_PREFIX) {
		return phone
	}
	return PHONE_PREFIX + phone
}

// AssignmentEvent is published after an assignment has been written
type AssignmentEvent struct {
	// EventID is a ULID so consumers can sort events by time
	EventID   string              `json:"event_id"`
	EventType AssignmentAction    `json:"event_type"`
	Timestamp time.Time           `json:"timestamp"`
	Data      AssignmentEventData `json:"data"`
}

// AssignmentEventData carries the assignment state after the write
type AssignmentEventData struct {
	ID            uint64  `json:"id"`
	CustomerPhone string  `json:"customer_phone"`
	Assignee      *string `json:"assignee"`
	// SourceEventType is the event_type of the inbound webhook, if any
	SourceEventType *string `json:"source_event_type,omitempty"`
}
