package mocks

import (
	"context"
	"fmt"

	"github.com/mveu/events-api/internal/domain/entity"
	"github.com/mveu/events-api/internal/usecase"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// MockEventUsecase is a mock implementation of the IEventUseCase interface
type MockEventUsecase struct {
	// Control mock behavior
	ShouldFailList     bool
	ShouldFailGet      bool
	ShouldFailCreate   bool
	ShouldFailNotFound bool

	// Return values
	MockEvent entity.Event
}

var _ usecasecontract.IEventUseCase = (*MockEventUsecase)(nil)

func NewMockEventUsecase() *MockEventUsecase {
	return &MockEventUsecase{
		MockEvent: entity.Event{
			ID:          "mock-event-id",
			Title:       "Demo",
			Description: "desc",
			ImageURLs:   []string{},
		},
	}
}

func (m *MockEventUsecase) ListEvents(ctx context.Context) ([]entity.Event, error) {
	if m.ShouldFailList {
		return nil, usecase.ErrInternal
	}
	return []entity.Event{m.MockEvent}, nil
}

func (m *MockEventUsecase) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	if m.ShouldFailGet || m.ShouldFailNotFound {
		return nil, fmt.Errorf("%w: event", usecase.ErrNotFound)
	}
	return &m.MockEvent, nil
}

func (m *MockEventUsecase) CreateEvent(ctx context.Context, input usecasecontract.CreateEventInput) (*entity.Event, error) {
	if m.ShouldFailCreate {
		return nil, fmt.Errorf("%w: title and description are required", usecase.ErrValidation)
	}
	return &m.MockEvent, nil
}

func (m *MockEventUsecase) MarkPassed(ctx context.Context, id string, actorRole entity.UserRole) (*entity.Event, error) {
	if !actorRole.IsAdmin() {
		return nil, usecase.ErrForbidden
	}
	if m.ShouldFailNotFound {
		return nil, fmt.Errorf("%w: event", usecase.ErrNotFound)
	}
	passed := m.MockEvent
	passed.Passed = true
	return &passed, nil
}

func (m *MockEventUsecase) DeleteEvent(ctx context.Context, id string, actorRole entity.UserRole) (*entity.Event, error) {
	if !actorRole.IsAdmin() {
		return nil, usecase.ErrForbidden
	}
	if m.ShouldFailNotFound {
		return nil, fmt.Errorf("%w: event", usecase.ErrNotFound)
	}
	return &m.MockEvent, nil
}

func (m *MockEventUsecase) GetEventsByIDs(ctx context.Context, ids []string) ([]entity.Event, error) {
	if len(ids) == 0 {
		return []entity.Event{}, nil
	}
	return []entity.Event{m.MockEvent}, nil
}
