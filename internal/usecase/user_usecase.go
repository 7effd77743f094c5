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

// UserUsecase implements account registration, login and the admin directory.
type UserUsecase struct {
	userRepo     contract.IUserRepository
	hasher       contract.IHasher
	tokenService TokenService
	logger       usecasecontract.IAppLogger
	validator    usecasecontract.IValidator
	idGenerator  contract.IIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	tokenService TokenService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	idGenerator contract.IIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		validator:    validator,
		idGenerator:  idGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles account creation.
func (uc *UserUsecase) Register(ctx context.Context, login, name, surname, lastname, email, password string) (*entity.User, error) {
	login = strings.TrimSpace(login)
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	lastname = strings.TrimSpace(lastname)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if login == "" {
		return nil, fmt.Errorf("%w: login is required", ErrValidation)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	existing, err := uc.userRepo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by login: %v", err)
		return nil, ErrInternal
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: login already taken", ErrConflict)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, ErrInternal
	}

	user := &entity.User{
		ID:           uc.idGenerator.NewID(),
		Login:        login,
		Name:         name,
		Surname:      surname,
		Lastname:     lastname,
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        []string{string(entity.DefaultRole())},
		EventIDs:     []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateUser) {
			return nil, fmt.Errorf("%w: email or login already in use", ErrConflict)
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, ErrInternal
	}

	return user, nil
}

// Login verifies credentials and issues an access token.
func (uc *UserUsecase) Login(ctx context.Context, login, password string) (*entity.User, string, error) {
	if login == "" || password == "" {
		return nil, "", fmt.Errorf("%w: login and password are required", ErrValidation)
	}

	user, err := uc.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", ErrInternal
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(user)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", ErrInternal
	}

	return user, accessToken, nil
}

// Authenticate resolves an access token to the current user record.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.tokenService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, ErrInternal
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (uc *UserUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		uc.logger.Errorf("failed to retrieve user %s: %v", id, err)
		return nil, ErrInternal
	}
	return user, nil
}

// ListUsersWithEventCounts projects all users to administrative summaries.
func (uc *UserUsecase) ListUsersWithEventCounts(ctx context.Context, actorRole entity.UserRole) ([]entity.UserSummary, error) {
	if !actorRole.IsAdmin() {
		return nil, ErrForbidden
	}

	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, ErrInternal
	}

	summaries := make([]entity.UserSummary, 0, len(users))
	for i := range users {
		u := &users[i]
		eventIDs := u.EventIDs
		if eventIDs == nil {
			eventIDs = []string{}
		}
		summaries = append(summaries, entity.UserSummary{
			ID:         u.ID,
			FullName:   u.FullName(),
			Email:      u.Email,
			EventCount: len(eventIDs),
			EventIDs:   eventIDs,
		})
	}
	return summaries, nil
}
