package mocks

import (
	"context"
	"fmt"

	"github.com/mveu/events-api/internal/domain/entity"
	"github.com/mveu/events-api/internal/usecase"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister  bool
	ShouldFailLogin     bool
	ShouldFailGetByID   bool
	ShouldFailListUsers bool

	// Return values
	MockUser      entity.User
	MockToken     string
	MockSummaries []entity.UserSummary
}

// Ensure MockUserUsecase implements the correct interface for the handlers
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:      "mock-user-id",
			Login:   "testuser",
			Email:   "test@example.com",
			Name:    "Test",
			Surname: "User",
			Roles:   []string{string(entity.UserRoleUser)},
		},
		MockToken: "mock_access_token",
		MockSummaries: []entity.UserSummary{
			{ID: "mock-user-id", FullName: "User Test", Email: "test@example.com", EventCount: 1, EventIDs: []string{"mock-event-id"}},
		},
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, login, name, surname, lastname, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, fmt.Errorf("%w: login already taken", usecase.ErrConflict)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, login, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", usecase.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, usecase.ErrNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, fmt.Errorf("%w: user", usecase.ErrNotFound)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ListUsersWithEventCounts(ctx context.Context, actorRole entity.UserRole) ([]entity.UserSummary, error) {
	if !actorRole.IsAdmin() {
		return nil, usecase.ErrForbidden
	}
	if m.ShouldFailListUsers {
		return nil, usecase.ErrInternal
	}
	return m.MockSummaries, nil
}
