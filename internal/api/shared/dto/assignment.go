package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-assignment/internal/store/schema"
)

// AssignmentResponse represents the serialized form of an assignment
type AssignmentResponse struct {
	ID            uint64     `json:"id"`
	CustomerPhone string     `json:"customer_phone"`
	Assignee      *string    `json:"assignee"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// AssignmentChangeResponse represents one entry of an assignment change journal
type AssignmentChangeResponse struct {
	ID            uint64          `json:"id"`
	AssignmentID  uint64          `json:"assignment_id"`
	CustomerPhone string          `json:"customer_phone"`
	Action        string          `json:"action"`
	Assignee      *string         `json:"assignee"`
	EventType     *string         `json:"event_type"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	CreatedAt     *time.Time      `json:"created_at"`
}

// MapAssignmentToDTO maps a schema.Assignment to AssignmentResponse
func MapAssignmentToDTO(assignment *schema.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:            assignment.ID,
		CustomerPhone: assignment.CustomerPhone,
		Assignee:      assignment.Assignee,
		CreatedAt:     utcTime(assignment.CreatedAt),
		UpdatedAt:     utcTime(assignment.UpdatedAt),
	}
}

// MapAssignmentChangeToDTO maps a schema.AssignmentChange to AssignmentChangeResponse
func MapAssignmentChangeToDTO(change *schema.AssignmentChange) *AssignmentChangeResponse {
	dto := &AssignmentChangeResponse{
		ID:            change.ID,
		AssignmentID:  change.AssignmentID,
		CustomerPhone: change.CustomerPhone,
		Action:        change.Action,
		Assignee:      change.Assignee,
		EventType:     change.EventType,
		CreatedAt:     utcTime(change.CreatedAt),
	}
	if len(change.Payload) > 0 {
		dto.Payload = json.RawMessage(change.Payload)
	}
	return dto
}

// utcTime returns nil for the zero time so it serializes as null
func utcTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}
