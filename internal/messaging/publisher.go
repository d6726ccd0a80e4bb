package messaging

import (
	"context"

	"github.com/feral-file/ff-assignment/internal/domain"
)

// Publisher defines the interface for publishing assignment events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishAssignmentEvent publishes an assignment event
	PublishAssignmentEvent(ctx context.Context, event *domain.AssignmentEvent) error
	// Close closes the connection
	Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishAssignmentEvent(context.Context, *domain.AssignmentEvent) error {
	return nil
}

func (nopPublisher) Close() {}
