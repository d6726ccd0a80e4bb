package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-assignment/internal/adapter"
	"github.com/feral-file/ff-assignment/internal/api/shared/constants"
	"github.com/feral-file/ff-assignment/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-assignment/internal/api/shared/errors"
	"github.com/feral-file/ff-assignment/internal/domain"
	"github.com/feral-file/ff-assignment/internal/logger"
	"github.com/feral-file/ff-assignment/internal/messaging"
	"github.com/feral-file/ff-assignment/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ProcessContactWebhook applies a contact webhook to the stored assignment of its phone number
	ProcessContactWebhook(ctx context.Context, req *dto.ContactWebhookRequest, rawPayload []byte) (*dto.ContactWebhookResponse, error)

	// GetAssignments retrieves all assignments
	GetAssignments(ctx context.Context) (*dto.AssignmentListResponse, error)

	// GetAssignment retrieves the assignment of a phone number, nil when there is none
	GetAssignment(ctx context.Context, phone string) (*dto.AssignmentResponse, error)

	// GetAssignmentChanges retrieves the change journal of a phone number
	GetAssignmentChanges(ctx context.Context, phone string, limit *int, offset *uint64) (*dto.AssignmentChangeListResponse, error)

	// CheckReadiness reports whether the storage backend is reachable
	CheckReadiness(ctx context.Context) error
}

type executor struct {
	store          store.Store
	publisher      messaging.Publisher
	clock          adapter.Clock
	requestTimeout time.Duration
}

// NewExecutor creates an executor.
// Each storage call is bounded by requestTimeout; zero leaves the caller's deadline in charge.
func NewExecutor(store store.Store, publisher messaging.Publisher, clock adapter.Clock, requestTimeout time.Duration) Executor {
	return &executor{
		store:          store,
		publisher:      publisher,
		clock:          clock,
		requestTimeout: requestTimeout,
	}
}

func (e *executor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.requestTimeout)
}

func (e *executor) ProcessContactWebhook(ctx context.Context, req *dto.ContactWebhookRequest, rawPayload []byte) (*dto.ContactWebhookResponse, error) {
	if req == nil {
		return nil, apierrors.NewBadRequestError(constants.MSG_NO_JSON_DATA)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	phone := req.Phone()
	firstName, lastName := req.AssigneeName()
	assignee := domain.AssigneeLabel(firstName, lastName)

	storeCtx, cancel := e.withTimeout(ctx)
	defer cancel()

	result, err := e.store.UpsertAssignment(storeCtx, store.UpsertAssignmentInput{
		CustomerPhone: phone,
		Assignee:      assignee,
		EventType:     req.EventType,
		Payload:       rawPayload,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(constants.MSG_INTERNAL_ERROR, err.Error())
	}

	fullName, _ := domain.AssigneeFullName(firstName, lastName)
	action := domain.ActionFor(result.Created)
	if result.Created {
		logger.InfoCtx(ctx, "Created new assignment",
			zap.String("phone", phone),
			zap.String("assignee", fullName))
	} else {
		logger.InfoCtx(ctx, "Updated assignment",
			zap.String("phone", phone),
			zap.String("assignee", fullName))
	}

	e.publishAssignmentEvent(ctx, action, result, req.EventType)

	return &dto.ContactWebhookResponse{
		Status:     constants.STATUS_SUCCESS,
		Action:     action,
		Assignment: dto.MapAssignmentToDTO(result.Assignment),
	}, nil
}

// publishAssignmentEvent hands the event to the publisher; failures never reach the webhook caller
func (e *executor) publishAssignmentEvent(ctx context.Context, action domain.AssignmentAction, result *store.UpsertAssignmentResult, sourceEventType *string) {
	if e.publisher == nil {
		return
	}

	now := e.clock.Now()
	event := &domain.AssignmentEvent{
		EventID:   ulid.MustNewDefault(now).String(),
		EventType: action,
		Timestamp: now.UTC(),
		Data: domain.AssignmentEventData{
			ID:              result.Assignment.ID,
			CustomerPhone:   result.Assignment.CustomerPhone,
			Assignee:        result.Assignment.Assignee,
			SourceEventType: sourceEventType,
		},
	}

	if err := e.publisher.PublishAssignmentEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to queue assignment event",
			zap.String("event_id", event.EventID),
			zap.String("phone", event.Data.CustomerPhone),
			zap.Error(err))
	}
}

func (e *executor) GetAssignments(ctx context.Context) (*dto.AssignmentListResponse, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	assignments, err := e.store.GetAssignments(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get assignments: %v", err))
	}

	assignmentDTOs := make([]dto.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		assignmentDTOs[i] = *dto.MapAssignmentToDTO(assignment)
	}

	return &dto.AssignmentListResponse{
		Assignments: assignmentDTOs,
		Count:       len(assignmentDTOs),
	}, nil
}

func (e *executor) GetAssignment(ctx context.Context, phone string) (*dto.AssignmentResponse, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	assignment, err := e.store.GetAssignmentByPhone(ctx, domain.NormalizePhone(phone))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get assignment: %v", err))
	}

	if assignment == nil {
		return nil, nil
	}

	return dto.MapAssignmentToDTO(assignment), nil
}

func (e *executor) GetAssignmentChanges(ctx context.Context, phone string, limit *int, offset *uint64) (*dto.AssignmentChangeListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_CHANGES_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	changes, total, err := e.store.GetAssignmentChanges(ctx, domain.NormalizePhone(phone), *limit, *offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get assignment changes: %v", err))
	}

	changeDTOs := make([]dto.AssignmentChangeResponse, len(changes))
	for i, change := range changes {
		changeDTOs[i] = *dto.MapAssignmentChangeToDTO(change)
	}

	return &dto.AssignmentChangeListResponse{
		Changes: changeDTOs,
		Total:   total,
	}, nil
}

func (e *executor) CheckReadiness(ctx context.Context) error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	if err := e.store.Ping(ctx); err != nil {
		return apierrors.NewServiceUnavailableError(constants.MSG_DATABASE_NOT_READY, err.Error())
	}
	return nil
}
