package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mveu/events-api/internal/domain/contract"
	"github.com/mveu/events-api/internal/domain/entity"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// EventUsecase implements the event catalog: listing, lookup, creation and
// the admin lifecycle transitions.
type EventUsecase struct {
	eventRepo   contract.IEventRepository
	imageStore  contract.IImageStore
	idGenerator contract.IIDGenerator
	logger      usecasecontract.IAppLogger
	config      usecasecontract.IConfigProvider
	eventCache  contract.IEventCache
}

// NewEventUsecase creates a new EventUsecase instance.
func NewEventUsecase(
	eventRepo contract.IEventRepository,
	imageStore contract.IImageStore,
	idGenerator contract.IIDGenerator,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *EventUsecase {
	return &EventUsecase{
		eventRepo:   eventRepo,
		imageStore:  imageStore,
		idGenerator: idGenerator,
		logger:      logger,
		config:      config,
	}
}

var _ usecasecontract.IEventUseCase = (*EventUsecase)(nil)

// SetEventCache attaches an optional list cache.
func (uc *EventUsecase) SetEventCache(cache contract.IEventCache) {
	uc.eventCache = cache
}

// ListEvents returns all events sorted by date descending.
func (uc *EventUsecase) ListEvents(ctx context.Context) ([]entity.Event, error) {
	if uc.eventCache != nil {
		if cached, ok, err := uc.eventCache.GetEventList(ctx); err == nil && ok {
			return cached, nil
		}
	}

	events, err := uc.eventRepo.ListEvents(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list events: %v", err)
		return nil, ErrInternal
	}

	if uc.eventCache != nil {
		if err := uc.eventCache.SetEventList(ctx, events); err != nil {
			uc.logger.Warnf("failed to cache event list: %v", err)
		}
	}
	return events, nil
}

// GetEvent retrieves a single event by ID.
func (uc *EventUsecase) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	if !uc.idGenerator.IsValid(id) {
		return nil, fmt.Errorf("%w: invalid event ID", ErrValidation)
	}
	event, err := uc.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrEventNotFound) {
			return nil, fmt.Errorf("%w: event", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve event %s: %v", id, err)
		return nil, ErrInternal
	}
	return event, nil
}

// CreateEvent validates and persists a new event with its uploaded images.
// Authorization is intentionally open, matching the observed behavior of the
// admin UI that calls it.
func (uc *EventUsecase) CreateEvent(ctx context.Context, input usecasecontract.CreateEventInput) (*entity.Event, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	if max := uc.config.GetMaxUploadFiles(); len(input.Images) > max {
		return nil, fmt.Errorf("%w: at most %d images per event", ErrValidation, max)
	}

	imageURLs := []string{}
	if len(input.Images) > 0 {
		urls, err := uc.imageStore.SaveAll(input.Images)
		if err != nil {
			if errors.Is(err, contract.ErrNotAnImage) || errors.Is(err, contract.ErrImageTooLarge) {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			uc.logger.Errorf("failed to store event images: %v", err)
			return nil, ErrInternal
		}
		imageURLs = urls
	}

	if len(imageURLs) > entity.MaxEventImages {
		return nil, fmt.Errorf("%w: at most %d image references per event", ErrValidation, entity.MaxEventImages)
	}
	for _, u := range imageURLs {
		if strings.TrimSpace(u) == "" {
			return nil, fmt.Errorf("%w: image references must be non-empty", ErrValidation)
		}
	}

	event := &entity.Event{
		ID:          uc.idGenerator.NewID(),
		Title:       title,
		Description: description,
		Date:        input.Date,
		Location:    strings.TrimSpace(input.Location),
		ImageURLs:   imageURLs,
		Passed:      false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.eventRepo.CreateEvent(ctx, event); err != nil {
		uc.logger.Errorf("failed to create event: %v", err)
		return nil, ErrInternal
	}
	uc.invalidateListCache(ctx)
	return event, nil
}

// MarkPassed sets passed=true. The transition is one-way and idempotent:
// marking an already passed event returns the same state without error.
func (uc *EventUsecase) MarkPassed(ctx context.Context, id string, actorRole entity.UserRole) (*entity.Event, error) {
	if !actorRole.IsAdmin() {
		return nil, ErrForbidden
	}
	if !uc.idGenerator.IsValid(id) {
		return nil, fmt.Errorf("%w: invalid event ID", ErrValidation)
	}

	event, err := uc.eventRepo.MarkPassed(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrEventNotFound) {
			return nil, fmt.Errorf("%w: event", ErrNotFound)
		}
		uc.logger.Errorf("failed to mark event %s as passed: %v", id, err)
		return nil, ErrInternal
	}
	uc.invalidateListCache(ctx)
	return event, nil
}

// DeleteEvent hard-deletes the event and returns the deleted snapshot.
// Membership references held by users are not cleaned up; reads filter them
// out defensively.
func (uc *EventUsecase) DeleteEvent(ctx context.Context, id string, actorRole entity.UserRole) (*entity.Event, error) {
	if !actorRole.IsAdmin() {
		return nil, ErrForbidden
	}
	if !uc.idGenerator.IsValid(id) {
		return nil, fmt.Errorf("%w: invalid event ID", ErrValidation)
	}

	event, err := uc.eventRepo.DeleteEvent(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrEventNotFound) {
			return nil, fmt.Errorf("%w: event", ErrNotFound)
		}
		uc.logger.Errorf("failed to delete event %s: %v", id, err)
		return nil, ErrInternal
	}
	uc.invalidateListCache(ctx)
	return event, nil
}

// GetEventsByIDs resolves a batch of IDs, silently dropping malformed ones.
// An empty or all-invalid input yields an empty list, never an error.
func (uc *EventUsecase) GetEventsByIDs(ctx context.Context, ids []string) ([]entity.Event, error) {
	validIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && uc.idGenerator.IsValid(id) {
			validIDs = append(validIDs, id)
		}
	}
	if len(validIDs) == 0 {
		return []entity.Event{}, nil
	}

	events, err := uc.eventRepo.GetEventsByIDs(ctx, validIDs)
	if err != nil {
		uc.logger.Errorf("failed to retrieve events by IDs: %v", err)
		return nil, ErrInternal
	}
	return events, nil
}

func (uc *EventUsecase) invalidateListCache(ctx context.Context) {
	if uc.eventCache == nil {
		return
	}
	if err := uc.eventCache.InvalidateEventList(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate event list cache: %v", err)
	}
}
