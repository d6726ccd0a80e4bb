package store

import (
	"context"

	"github.com/feral-file/ff-assignment/internal/store/schema"
)

// UpsertAssignmentInput represents the data written for one inbound contact webhook
type UpsertAssignmentInput struct {
	// CustomerPhone is the natural key, stored exactly as delivered
	CustomerPhone string
	// Assignee is the label to store; nil clears the current assignee
	Assignee *string
	// EventType is the sender's event type, recorded in the change journal
	EventType *string
	// Payload is the raw webhook body, recorded in the change journal
	Payload []byte
}

// UpsertAssignmentResult represents the outcome of an upsert
type UpsertAssignmentResult struct {
	Assignment *schema.Assignment
	// Created is true when this call inserted the row
	Created bool
}

// SeedAssignment is a sample row inserted by the init-db command
type SeedAssignment struct {
	CustomerPhone string
	Assignee      string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertAssignment creates the assignment for a phone number or replaces its assignee.
	// Concurrent calls for the same phone number never create more than one row.
	UpsertAssignment(ctx context.Context, input UpsertAssignmentInput) (*UpsertAssignmentResult, error)
	// GetAssignments retrieves all assignments ordered by ID
	GetAssignments(ctx context.Context) ([]*schema.Assignment, error)
	// GetAssignmentByPhone retrieves an assignment by its exact phone number, nil if none exists
	GetAssignmentByPhone(ctx context.Context, phone string) (*schema.Assignment, error)
	// GetAssignmentChanges retrieves the change journal of a phone number, newest first, with the total count
	GetAssignmentChanges(ctx context.Context, phone string, limit int, offset uint64) ([]*schema.AssignmentChange, uint64, error)
	// SeedAssignments inserts sample assignments that do not exist yet and returns how many were inserted
	SeedAssignments(ctx context.Context, assignments []SeedAssignment) (int, error)
	// Ping checks that the database is reachable
	Ping(ctx context.Context) error
}
