package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/mveu/events-api/internal/domain/entity"
	"github.com/mveu/events-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) (*usecase.RegistrationUsecase, *fakeUserRepo, *fakeEventRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	eventRepo := newFakeEventRepo()
	uc := usecase.NewRegistrationUsecase(userRepo, eventRepo, fakeIDGen{}, fakeLogger{})
	return uc, userRepo, eventRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo) *entity.User {
	t.Helper()
	user := &entity.User{
		ID:       uuid.New().String(),
		Login:    "alice",
		Email:    "alice@example.com",
		Roles:    []string{"user"},
		EventIDs: []string{},
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func seedEvent(t *testing.T, repo *fakeEventRepo) *entity.Event {
	t.Helper()
	event := &entity.Event{
		ID:          uuid.New().String(),
		Title:       "Demo",
		Description: "desc",
	}
	require.NoError(t, repo.CreateEvent(context.Background(), event))
	return event
}

func TestRegisterTwiceSignalsConflict(t *testing.T) {
	uc, userRepo, eventRepo := newLedger(t)
	user := seedUser(t, userRepo)
	event := seedEvent(t, eventRepo)

	ids, err := uc.Register(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{event.ID}, ids)

	_, err = uc.Register(context.Background(), user.ID, event.ID)
	assert.ErrorIs(t, err, usecase.ErrAlreadyRegistered)

	membership, err := uc.GetMembership(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, membership, 1, "membership set must grow by exactly one")
}

func TestUnregisterWithoutRegister(t *testing.T) {
	uc, userRepo, eventRepo := newLedger(t)
	user := seedUser(t, userRepo)
	event := seedEvent(t, eventRepo)

	_, err := uc.Unregister(context.Background(), user.ID, event.ID)
	assert.ErrorIs(t, err, usecase.ErrNotRegistered)

	membership, err := uc.GetMembership(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, membership)
}

func TestRegisterUnregisterRoundTrip(t *testing.T) {
	uc, userRepo, eventRepo := newLedger(t)
	user := seedUser(t, userRepo)
	event := seedEvent(t, eventRepo)

	before, err := uc.GetMembership(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), user.ID, event.ID)
	require.NoError(t, err)

	after, err := uc.Unregister(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRegisterValidatesEventID(t *testing.T) {
	uc, userRepo, _ := newLedger(t)
	user := seedUser(t, userRepo)

	_, err := uc.Register(context.Background(), user.ID, "")
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = uc.Register(context.Background(), user.ID, "not-a-uuid")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestRegisterUnknownEvent(t *testing.T) {
	uc, userRepo, _ := newLedger(t)
	user := seedUser(t, userRepo)

	_, err := uc.Register(context.Background(), user.ID, uuid.New().String())
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestRegisterUnknownUser(t *testing.T) {
	uc, _, eventRepo := newLedger(t)
	event := seedEvent(t, eventRepo)

	_, err := uc.Register(context.Background(), uuid.New().String(), event.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestConcurrentRegistrationSamePair(t *testing.T) {
	uc, userRepo, eventRepo := newLedger(t)
	user := seedUser(t, userRepo)
	event := seedEvent(t, eventRepo)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Register(context.Background(), user.ID, event.ID)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, usecase.ErrAlreadyRegistered):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes, "exactly one add must win")
	assert.Equal(t, attempts-1, conflicts)

	membership, err := uc.GetMembership(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, membership, 1)
}

func TestConcurrentRegistrationDistinctUsers(t *testing.T) {
	uc, userRepo, eventRepo := newLedger(t)
	event := seedEvent(t, eventRepo)

	alice := seedUser(t, userRepo)
	bob := &entity.User{
		ID:       uuid.New().String(),
		Login:    "bob",
		Email:    "bob@example.com",
		Roles:    []string{"user"},
		EventIDs: []string{},
	}
	require.NoError(t, userRepo.CreateUser(context.Background(), bob))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{alice.ID, bob.ID} {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			_, errs[i] = uc.Register(context.Background(), userID, event.ID)
		}(i, id)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	for _, id := range []string{alice.ID, bob.ID} {
		membership, err := uc.GetMembership(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, []string{event.ID}, membership)
	}
}

func TestGetEventsForUserDropsDanglingReferences(t *testing.T) {
	uc, userRepo, eventRepo := newLedger(t)
	user := seedUser(t, userRepo)
	kept := seedEvent(t, eventRepo)
	doomed := seedEvent(t, eventRepo)

	_, err := uc.Register(context.Background(), user.ID, kept.ID)
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), user.ID, doomed.ID)
	require.NoError(t, err)

	// Deleting an event does not cascade into membership sets; the dangling
	// reference must be filtered out on read.
	_, err = eventRepo.DeleteEvent(context.Background(), doomed.ID)
	require.NoError(t, err)

	events, err := uc.GetEventsForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, kept.ID, events[0].ID)

	// The membership set itself still carries both IDs.
	membership, err := uc.GetMembership(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, membership, 2)
}

func TestUnregisterFromPassedEventAllowed(t *testing.T) {
	uc, userRepo, eventRepo := newLedger(t)
	user := seedUser(t, userRepo)
	event := seedEvent(t, eventRepo)

	_, err := uc.Register(context.Background(), user.ID, event.ID)
	require.NoError(t, err)

	_, err = eventRepo.MarkPassed(context.Background(), event.ID)
	require.NoError(t, err)

	ids, err := uc.Unregister(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGetMembershipValidatesUserID(t *testing.T) {
	uc, _, _ := newLedger(t)

	_, err := uc.GetMembership(context.Background(), "bogus")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}
