package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-assignment/internal/adapter"
	"github.com/feral-file/ff-assignment/internal/domain"
	"github.com/feral-file/ff-assignment/internal/logger"
	"github.com/feral-file/ff-assignment/internal/store/schema"
)

const (
	// upsertRetryInitialInterval is the first wait after a contended upsert
	upsertRetryInitialInterval = 20 * time.Millisecond
	// upsertRetryMaxInterval caps the wait between upsert attempts
	upsertRetryMaxInterval = 500 * time.Millisecond
	// upsertRetryMaxElapsedTime bounds the total time spent retrying one upsert
	upsertRetryMaxElapsedTime = 5 * time.Second
)

type sqlStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewSQLStore creates a store on top of a PostgreSQL or SQLite connection
func NewSQLStore(db *gorm.DB, clock adapter.Clock) Store {
	return &sqlStore{db: db, clock: clock}
}

// UpsertAssignment creates or updates the assignment of a phone number.
//
// The row is inserted with ON CONFLICT (customer_phone) DO NOTHING inside a transaction.
// When nothing was inserted the row already exists and its assignee is replaced instead.
// Lock contention and unique violations raised by concurrent writers are retried with backoff.
func (s *sqlStore) UpsertAssignment(ctx context.Context, input UpsertAssignmentInput) (*UpsertAssignmentResult, error) {
	if input.CustomerPhone == "" {
		return nil, domain.ErrPhoneRequired
	}

	var result *UpsertAssignmentResult
	attempt := 0
	operation := func() error {
		attempt++
		r, err := s.upsertAssignment(ctx, input)
		if err != nil {
			if isRetryableError(err) {
				logger.WarnCtx(ctx, "Retrying contended assignment upsert",
					zap.String("phone", input.CustomerPhone),
					zap.Int("attempt", attempt),
					zap.Error(err))
				return err
			}
			return backoff.Permanent(err)
		}
		result = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = upsertRetryInitialInterval
	b.MaxInterval = upsertRetryMaxInterval
	b.MaxElapsedTime = upsertRetryMaxElapsedTime

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *sqlStore) upsertAssignment(ctx context.Context, input UpsertAssignmentInput) (*UpsertAssignmentResult, error) {
	now := s.clock.Now().UTC()

	var result UpsertAssignmentResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Insert the row unless the phone number is already taken
		assignment := schema.Assignment{
			CustomerPhone: input.CustomerPhone,
			Assignee:      input.Assignee,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_phone"}},
			DoNothing: true,
		}).Create(&assignment)
		if res.Error != nil {
			return fmt.Errorf("failed to create assignment: %w", res.Error)
		}
		result.Created = res.RowsAffected == 1

		// 2. Replace the assignee of the existing row
		if !result.Created {
			var assignee interface{}
			if input.Assignee != nil {
				assignee = *input.Assignee
			}
			if err := tx.Model(&schema.Assignment{}).
				Where("customer_phone = ?", input.CustomerPhone).
				Updates(map[string]interface{}{
					"assignee":   assignee,
					"updated_at": now,
				}).Error; err != nil {
				return fmt.Errorf("failed to update assignment: %w", err)
			}
		}

		// 3. Read back the committed shape of the row
		var stored schema.Assignment
		if err := tx.Where("customer_phone = ?", input.CustomerPhone).First(&stored).Error; err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		result.Assignment = &stored

		// 4. Record the change
		change := schema.AssignmentChange{
			AssignmentID:  stored.ID,
			CustomerPhone: stored.CustomerPhone,
			Action:        string(domain.ActionFor(result.Created)),
			Assignee:      stored.Assignee,
			EventType:     input.EventType,
			CreatedAt:     now,
		}
		if payload, ok := journalPayload(input.Payload); ok {
			change.Payload = payload
		} else if len(input.Payload) > 0 {
			logger.WarnCtx(ctx, "Webhook payload is not valid JSON, journaling without it",
				zap.String("phone", input.CustomerPhone))
		}
		if err := tx.Create(&change).Error; err != nil {
			return fmt.Errorf("failed to create assignment change: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetAssignments retrieves all assignments ordered by ID
func (s *sqlStore) GetAssignments(ctx context.Context) ([]*schema.Assignment, error) {
	var assignments []*schema.Assignment
	err := s.db.WithContext(ctx).Order("id ASC").Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	return assignments, nil
}

// GetAssignmentByPhone retrieves an assignment by its exact phone number
func (s *sqlStore) GetAssignmentByPhone(ctx context.Context, phone string) (*schema.Assignment, error) {
	var assignment schema.Assignment
	err := s.db.WithContext(ctx).Where("customer_phone = ?", phone).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return &assignment, nil
}

// GetAssignmentChanges retrieves the change journal of a phone number, newest first
func (s *sqlStore) GetAssignmentChanges(ctx context.Context, phone string, limit int, offset uint64) ([]*schema.AssignmentChange, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.AssignmentChange{}).Where("customer_phone = ?", phone)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assignment changes: %w", err)
	}

	var changes []*schema.AssignmentChange
	err := query.
		Order("id DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&changes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get assignment changes: %w", err)
	}

	return changes, uint64(total), nil //nolint:gosec,G115
}

// SeedAssignments inserts sample assignments, skipping phone numbers that already exist
func (s *sqlStore) SeedAssignments(ctx context.Context, assignments []SeedAssignment) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := s.clock.Now().UTC()
		for _, seed := range assignments {
			assignee := seed.Assignee
			assignment := schema.Assignment{
				CustomerPhone: seed.CustomerPhone,
				Assignee:      &assignee,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "customer_phone"}},
				DoNothing: true,
			}).Create(&assignment)
			if res.Error != nil {
				return fmt.Errorf("failed to seed assignment %s: %w", seed.CustomerPhone, res.Error)
			}
			inserted += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// Ping checks that the database is reachable
func (s *sqlStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
