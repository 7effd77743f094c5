package mocks

import (
	"context"

	"github.com/mveu/events-api/internal/domain/entity"
	"github.com/mveu/events-api/internal/usecase"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// MockRegistrationUsecase is a mock implementation of the
// IRegistrationUseCase interface
type MockRegistrationUsecase struct {
	// Control mock behavior
	ShouldFailAlreadyRegistered bool
	ShouldFailNotRegistered     bool
	ShouldFailNotFound          bool

	// Return values
	MockEventIDs []string
}

var _ usecasecontract.IRegistrationUseCase = (*MockRegistrationUsecase)(nil)

func NewMockRegistrationUsecase() *MockRegistrationUsecase {
	return &MockRegistrationUsecase{
		MockEventIDs: []string{"mock-event-id"},
	}
}

func (m *MockRegistrationUsecase) Register(ctx context.Context, userID, eventID string) ([]string, error) {
	if m.ShouldFailNotFound {
		return nil, usecase.ErrNotFound
	}
	if m.ShouldFailAlreadyRegistered {
		return nil, usecase.ErrAlreadyRegistered
	}
	return m.MockEventIDs, nil
}

func (m *MockRegistrationUsecase) Unregister(ctx context.Context, userID, eventID string) ([]string, error) {
	if m.ShouldFailNotFound {
		return nil, usecase.ErrNotFound
	}
	if m.ShouldFailNotRegistered {
		return nil, usecase.ErrNotRegistered
	}
	return []string{}, nil
}

func (m *MockRegistrationUsecase) GetMembership(ctx context.Context, userID string) ([]string, error) {
	if m.ShouldFailNotFound {
		return nil, usecase.ErrNotFound
	}
	return m.MockEventIDs, nil
}

func (m *MockRegistrationUsecase) GetEventsForUser(ctx context.Context, userID string) ([]entity.Event, error) {
	if m.ShouldFailNotFound {
		return nil, usecase.ErrNotFound
	}
	return []entity.Event{{ID: "mock-event-id", Title: "Demo", Description: "desc"}}, nil
}
