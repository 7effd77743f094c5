package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mveu/events-api/internal/domain/contract"
	"github.com/mveu/events-api/internal/domain/entity"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// RegistrationUsecase owns the membership relation between users and events.
// All mutations go through single-document atomic set updates, so two
// concurrent register calls for the same pair resolve to exactly one success
// and one conflict signal.
type RegistrationUsecase struct {
	userRepo    contract.IUserRepository
	eventRepo   contract.IEventRepository
	idGenerator contract.IIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewRegistrationUsecase creates a new RegistrationUsecase instance.
func NewRegistrationUsecase(
	userRepo contract.IUserRepository,
	eventRepo contract.IEventRepository,
	idGenerator contract.IIDGenerator,
	logger usecasecontract.IAppLogger,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

var _ usecasecontract.IRegistrationUseCase = (*RegistrationUsecase)(nil)

// Register adds eventID to the user's membership set. The pair appears at
// most once: re-registering leaves the set unchanged and signals
// ErrAlreadyRegistered.
func (uc *RegistrationUsecase) Register(ctx context.Context, userID, eventID string) ([]string, error) {
	if err := uc.checkEventID(eventID); err != nil {
		return nil, err
	}

	if _, err := uc.eventRepo.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, contract.ErrEventNotFound) {
			return nil, fmt.Errorf("%w: event", ErrNotFound)
		}
		uc.logger.Errorf("failed to check event %s before registration: %v", eventID, err)
		return nil, ErrInternal
	}

	if !uc.idGenerator.IsValid(userID) {
		return nil, fmt.Errorf("%w: invalid user ID", ErrValidation)
	}

	added, err := uc.userRepo.AddEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		uc.logger.Errorf("failed to register user %s for event %s: %v", userID, eventID, err)
		return nil, ErrInternal
	}
	if !added {
		return nil, ErrAlreadyRegistered
	}

	return uc.GetMembership(ctx, userID)
}

// Unregister removes eventID from the user's membership set. Removing a pair
// that does not exist signals ErrNotRegistered and leaves the set unchanged.
// Unregistering from a passed event stays allowed.
func (uc *RegistrationUsecase) Unregister(ctx context.Context, userID, eventID string) ([]string, error) {
	if err := uc.checkEventID(eventID); err != nil {
		return nil, err
	}
	if !uc.idGenerator.IsValid(userID) {
		return nil, fmt.Errorf("%w: invalid user ID", ErrValidation)
	}

	removed, err := uc.userRepo.RemoveEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		uc.logger.Errorf("failed to unregister user %s from event %s: %v", userID, eventID, err)
		return nil, ErrInternal
	}
	if !removed {
		return nil, ErrNotRegistered
	}

	return uc.GetMembership(ctx, userID)
}

// GetMembership returns the user's current membership list with empty
// entries filtered out.
func (uc *RegistrationUsecase) GetMembership(ctx context.Context, userID string) ([]string, error) {
	if !uc.idGenerator.IsValid(userID) {
		return nil, fmt.Errorf("%w: invalid user ID", ErrValidation)
	}

	ids, err := uc.userRepo.GetEventIDs(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		uc.logger.Errorf("failed to load membership for user %s: %v", userID, err)
		return nil, ErrInternal
	}

	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			result = append(result, id)
		}
	}
	return result, nil
}

// GetEventsForUser resolves membership to full event records. Dangling
// references left behind by deleted events are dropped here rather than
// cleaned up on delete.
func (uc *RegistrationUsecase) GetEventsForUser(ctx context.Context, userID string) ([]entity.Event, error) {
	ids, err := uc.GetMembership(ctx, userID)
	if err != nil {
		return nil, err
	}

	validIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if uc.idGenerator.IsValid(id) {
			validIDs = append(validIDs, id)
		}
	}
	if len(validIDs) == 0 {
		return []entity.Event{}, nil
	}

	events, err := uc.eventRepo.GetEventsByIDs(ctx, validIDs)
	if err != nil {
		uc.logger.Errorf("failed to resolve events for user %s: %v", userID, err)
		return nil, ErrInternal
	}
	return events, nil
}

func (uc *RegistrationUsecase) checkEventID(eventID string) error {
	if strings.TrimSpace(eventID) == "" {
		return fmt.Errorf("%w: eventId is required", ErrValidation)
	}
	if !uc.idGenerator.IsValid(eventID) {
		return fmt.Errorf("%w: invalid event ID", ErrValidation)
	}
	return nil
}
