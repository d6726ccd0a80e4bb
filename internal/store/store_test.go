package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-assignment/internal/adapter"
	"github.com/feral-file/ff-assignment/internal/domain"
)

// =============================================================================
// Test Helpers
// =============================================================================

// baseTime is aligned to the second so every backend stores it without rounding
var baseTime = time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

// fixedClock reports a settable instant so stored timestamps are predictable
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ adapter.Clock = (*fixedClock)(nil)

func newFixedClock(t time.Time) *fixedClock {
	return &fixedClock{now: t}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func stringPtr(s string) *string {
	return &s
}

// assertSameInstant compares timestamps regardless of the location the driver returns them in
func assertSameInstant(t *testing.T, expected, actual time.Time) {
	t.Helper()
	assert.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}

// =============================================================================
// Tests
// =============================================================================

func testUpsertAssignmentCreatesThenUpdates(t *testing.T, store Store, clock *fixedClock) {
	ctx := context.Background()

	first, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{
		CustomerPhone: "+60123456789",
		Assignee:      stringPtr("269"),
	})
	require.NoError(t, err)
	assert.True(t, first.Created)
	require.NotNil(t, first.Assignment)
	assert.NotZero(t, first.Assignment.ID)
	assert.Equal(t, "+60123456789", first.Assignment.CustomerPhone)
	require.NotNil(t, first.Assignment.Assignee)
	assert.Equal(t, "269", *first.Assignment.Assignee)
	assertSameInstant(t, baseTime, first.Assignment.CreatedAt)
	assertSameInstant(t, baseTime, first.Assignment.UpdatedAt)

	clock.Set(baseTime.Add(time.Hour))

	second, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{
		CustomerPhone: "+60123456789",
		Assignee:      stringPtr("Jane Roe"),
	})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Assignment.ID, second.Assignment.ID)
	require.NotNil(t, second.Assignment.Assignee)
	assert.Equal(t, "Jane Roe", *second.Assignment.Assignee)
	assertSameInstant(t, baseTime, second.Assignment.CreatedAt)
	assertSameInstant(t, baseTime.Add(time.Hour), second.Assignment.UpdatedAt)

	assignments, err := store.GetAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func testUpsertAssignmentIsIdempotent(t *testing.T, store Store, _ *fixedClock) {
	ctx := context.Background()
	input := UpsertAssignmentInput{CustomerPhone: "+60123456789", Assignee: stringPtr("291")}

	for i := range 3 {
		result, err := store.UpsertAssignment(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, i == 0, result.Created)
		assert.Equal(t, "291", *result.Assignment.Assignee)
	}

	assignments, err := store.GetAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "291", *assignments[0].Assignee)
}

func testUpsertAssignmentClearsAssignee(t *testing.T, store Store, _ *fixedClock) {
	ctx := context.Background()

	_, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{CustomerPhone: "+60123456789", Assignee: stringPtr("110")})
	require.NoError(t, err)

	result, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{CustomerPhone: "+60123456789"})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Nil(t, result.Assignment.Assignee)

	stored, err := store.GetAssignmentByPhone(ctx, "+60123456789")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.Assignee)
}

func testUpsertAssignmentRequiresPhone(t *testing.T, store Store, _ *fixedClock) {
	result, err := store.UpsertAssignment(context.Background(), UpsertAssignmentInput{Assignee: stringPtr("269")})
	assert.ErrorIs(t, err, domain.ErrPhoneRequired)
	assert.Nil(t, result)
}

func testConcurrentUpsertsKeepOneRow(t *testing.T, store Store, _ *fixedClock) {
	ctx := context.Background()
	const workers = 16

	var wg sync.WaitGroup
	results := make([]*UpsertAssignmentResult, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.UpsertAssignment(ctx, UpsertAssignmentInput{
				CustomerPhone: "+60111111111",
				Assignee:      stringPtr(fmt.Sprintf("Agent %d", i)),
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for i := range workers {
		require.NoError(t, errs[i], "worker %d", i)
		if results[i].Created {
			created++
		}
	}
	assert.Equal(t, 1, created)

	assignments, err := store.GetAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "+60111111111", assignments[0].CustomerPhone)

	_, total, err := store.GetAssignmentChanges(ctx, "+60111111111", 100, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(workers), total)
}

func testGetAssignments(t *testing.T, store Store, _ *fixedClock) {
	ctx := context.Background()

	empty, err := store.GetAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	phones := []string{"+3", "+1", "+2"}
	for _, phone := range phones {
		_, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{CustomerPhone: phone})
		require.NoError(t, err)
	}

	assignments, err := store.GetAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 3)
	for i, assignment := range assignments {
		assert.Equal(t, phones[i], assignment.CustomerPhone)
		if i > 0 {
			assert.Greater(t, assignment.ID, assignments[i-1].ID)
		}
	}
}

func testGetAssignmentByPhone(t *testing.T, store Store, _ *fixedClock) {
	ctx := context.Background()

	_, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{CustomerPhone: "+60123456789", Assignee: stringPtr("269")})
	require.NoError(t, err)

	found, err := store.GetAssignmentByPhone(ctx, "+60123456789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "269", *found.Assignee)

	// Lookups are exact; normalization happens before the store
	missing, err := store.GetAssignmentByPhone(ctx, "60123456789")
	require.NoError(t, err)
	assert.Nil(t, missing)

	unknown, err := store.GetAssignmentByPhone(ctx, "+1000")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func testGetAssignmentChanges(t *testing.T, store Store, clock *fixedClock) {
	ctx := context.Background()

	writes := []UpsertAssignmentInput{
		{CustomerPhone: "+60123456789", Assignee: stringPtr("269"), EventType: stringPtr("contact.created"), Payload: []byte(`{"contact":{"phone":"+60123456789"}}`)},
		{CustomerPhone: "+60123456789", Assignee: stringPtr("Jane Roe"), EventType: stringPtr("contact.assignee.updated")},
		{CustomerPhone: "+60123456789"},
		{CustomerPhone: "+60198765432", Assignee: stringPtr("110")},
	}
	for i, input := range writes {
		clock.Set(baseTime.Add(time.Duration(i) * time.Minute))
		_, err := store.UpsertAssignment(ctx, input)
		require.NoError(t, err)
	}

	changes, total, err := store.GetAssignmentChanges(ctx, "+60123456789", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, changes, 3)

	// Newest first
	assert.Equal(t, string(domain.AssignmentActionUpdated), changes[0].Action)
	assert.Nil(t, changes[0].Assignee)
	assert.Nil(t, changes[0].EventType)
	assert.Empty(t, changes[0].Payload)

	assert.Equal(t, string(domain.AssignmentActionUpdated), changes[1].Action)
	assert.Equal(t, "Jane Roe", *changes[1].Assignee)
	assert.Equal(t, "contact.assignee.updated", *changes[1].EventType)

	assert.Equal(t, string(domain.AssignmentActionCreated), changes[2].Action)
	assert.Equal(t, "269", *changes[2].Assignee)
	assert.JSONEq(t, `{"contact":{"phone":"+60123456789"}}`, string(changes[2].Payload))
	assertSameInstant(t, baseTime, changes[2].CreatedAt)

	for _, change := range changes {
		assert.Equal(t, changes[2].AssignmentID, change.AssignmentID)
		assert.Equal(t, "+60123456789", change.CustomerPhone)
	}

	page, total, err := store.GetAssignmentChanges(ctx, "+60123456789", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, changes[1].ID, page[0].ID)

	none, total, err := store.GetAssignmentChanges(ctx, "+1000", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total)
	assert.Empty(t, none)
}

func testUpsertAssignmentJournalsUnusualWebhooks(t *testing.T, store Store, _ *fixedClock) {
	ctx := context.Background()
	eventType := strings.Repeat("contact.assignee.updated.", 12)

	result, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{
		CustomerPhone: "+60123456789",
		Assignee:      stringPtr("269"),
		EventType:     &eventType,
		Payload:       []byte(`{"event_type":"x","contact":{"phone":"+60123456789","note":"a\u0000b"},"extra":"\ud800"}`),
	})
	require.NoError(t, err)
	assert.True(t, result.Created)

	_, err = store.UpsertAssignment(ctx, UpsertAssignmentInput{
		CustomerPhone: "+60123456789",
		Payload:       []byte("not json"),
	})
	require.NoError(t, err)

	changes, total, err := store.GetAssignmentChanges(ctx, "+60123456789", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, changes, 2)

	assert.Empty(t, changes[0].Payload)

	require.NotNil(t, changes[1].EventType)
	assert.Equal(t, eventType, *changes[1].EventType)
	assert.JSONEq(t,
		`{"event_type":"x","contact":{"phone":"+60123456789","note":"ab"},"extra":"\ufffd"}`,
		string(changes[1].Payload))
}

func testSeedAssignments(t *testing.T, store Store, _ *fixedClock) {
	ctx := context.Background()

	// An existing row is left untouched by seeding
	_, err := store.UpsertAssignment(ctx, UpsertAssignmentInput{CustomerPhone: "+60198765432", Assignee: stringPtr("271")})
	require.NoError(t, err)

	seeds := []SeedAssignment{
		{CustomerPhone: "+60123456789", Assignee: "John Doe"},
		{CustomerPhone: "+60198765432", Assignee: "Jane Smith"},
	}

	inserted, err := store.SeedAssignments(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	inserted, err = store.SeedAssignments(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	john, err := store.GetAssignmentByPhone(ctx, "+60123456789")
	require.NoError(t, err)
	require.NotNil(t, john)
	assert.Equal(t, "John Doe", *john.Assignee)

	existing, err := store.GetAssignmentByPhone(ctx, "+60198765432")
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "271", *existing.Assignee)
}

func testPing(t *testing.T, store Store, _ *fixedClock) {
	assert.NoError(t, store.Ping(context.Background()))
}

// RunStoreTests runs the store suite against a backend.
// initDB must return an empty store that reads time from the given clock.
func RunStoreTests(t *testing.T, initDB func(t *testing.T, clock adapter.Clock) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store, *fixedClock)
	}{
		{"UpsertAssignmentCreatesThenUpdates", testUpsertAssignmentCreatesThenUpdates},
		{"UpsertAssignmentIsIdempotent", testUpsertAssignmentIsIdempotent},
		{"UpsertAssignmentClearsAssignee", testUpsertAssignmentClearsAssignee},
		{"UpsertAssignmentRequiresPhone", testUpsertAssignmentRequiresPhone},
		{"ConcurrentUpsertsKeepOneRow", testConcurrentUpsertsKeepOneRow},
		{"GetAssignments", testGetAssignments},
		{"GetAssignmentByPhone", testGetAssignmentByPhone},
		{"GetAssignmentChanges", testGetAssignmentChanges},
		{"UpsertAssignmentJournalsUnusualWebhooks", testUpsertAssignmentJournalsUnusualWebhooks},
		{"SeedAssignments", testSeedAssignments},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFixedClock(baseTime)
			store := initDB(t, clock)
			defer cleanupDB(t)
			tt.fn(t, store, clock)
		})
	}
}
