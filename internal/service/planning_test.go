package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festiconf/billetterie-api/internal/domain"
)

// fakePlanningRepository enforces capacity and uniqueness under a mutex, the
// same guarantees the row lock gives the real one.
type fakePlanningRepository struct {
	mu         sync.Mutex
	capacity   int
	registered map[uint]bool
	nextID     uint
	entries    []domain.PlanningEntry
}

func newFakePlanningRepository(capacity int) *fakePlanningRepository {
	return &fakePlanningRepository{
		capacity:   capacity,
		registered: make(map[uint]bool),
		nextID:     1,
	}
}

func (f *fakePlanningRepository) Register(_ context.Context, userID, conferenceID uint) (domain.PlanningEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.registered) >= f.capacity {
		return domain.PlanningEntry{}, ErrConferenceFull
	}
	if f.registered[userID] {
		return domain.PlanningEntry{}, ErrAlreadyRegistered
	}

	entry := domain.PlanningEntry{ID: f.nextID, UserID: userID, ConferenceID: conferenceID}
	f.nextID++
	f.registered[userID] = true
	f.entries = append(f.entries, entry)

	return entry, nil
}

func (f *fakePlanningRepository) FindByUserID(_ context.Context, userID uint) ([]domain.PlanningEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var entries []domain.PlanningEntry
	for _, entry := range f.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func (f *fakePlanningRepository) DeleteOwned(_ context.Context, userID, entryID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, entry := range f.entries {
		if entry.ID == entryID && entry.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			delete(f.registered, userID)

			return nil
		}
	}

	return ErrPlanningEntryNotFound
}

type fakeTicketChecker struct {
	holders map[uint]bool
}

func (f *fakeTicketChecker) HasTicket(_ context.Context, userID uint) (bool, error) {
	return f.holders[userID], nil
}

func ticketHolders(userIDs ...uint) *fakeTicketChecker {
	holders := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		holders[id] = true
	}

	return &fakeTicketChecker{holders: holders}
}

func TestPlanningService_Register_NoTicket(t *testing.T) {
	s := NewPlanningService(newFakePlanningRepository(10), ticketHolders())

	_, err := s.Register(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrNoTicket)
}

func TestPlanningService_ListEntries_NoTicket(t *testing.T) {
	s := NewPlanningService(newFakePlanningRepository(10), ticketHolders())

	_, err := s.ListEntries(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNoTicket)
}

func TestPlanningService_Register_Success(t *testing.T) {
	s := NewPlanningService(newFakePlanningRepository(10), ticketHolders(1))

	entry, err := s.Register(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, uint(1), entry.UserID)
	assert.Equal(t, uint(7), entry.ConferenceID)

	entries, err := s.ListEntries(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPlanningService_Register_Duplicate(t *testing.T) {
	s := NewPlanningService(newFakePlanningRepository(10), ticketHolders(1))
	ctx := context.Background()

	_, err := s.Register(ctx, 1, 7)
	require.NoError(t, err)

	_, err = s.Register(ctx, 1, 7)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestPlanningService_Register_ConferenceFull(t *testing.T) {
	s := NewPlanningService(newFakePlanningRepository(1), ticketHolders(1, 2))
	ctx := context.Background()

	_, err := s.Register(ctx, 1, 7)
	require.NoError(t, err)

	_, err = s.Register(ctx, 2, 7)
	assert.ErrorIs(t, err, ErrConferenceFull)
}

func TestPlanningService_Register_LastSlotSingleWinner(t *testing.T) {
	s := NewPlanningService(newFakePlanningRepository(1), ticketHolders(1, 2))
	ctx := context.Background()

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, userID := range []uint{1, 2} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := s.Register(ctx, id, 7)
			errs <- err
		}(userID)
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrConferenceFull):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestPlanningService_Unregister_NotFound(t *testing.T) {
	s := NewPlanningService(newFakePlanningRepository(10), ticketHolders(1))

	err := s.Unregister(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrPlanningEntryNotFound)
}
