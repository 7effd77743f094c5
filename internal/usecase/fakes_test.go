package usecase_test

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mveu/events-api/internal/domain/contract"
	"github.com/mveu/events-api/internal/domain/entity"
)

// In-memory test doubles for the repository and service contracts. The user
// repo guards membership mutations with a mutex so the add-if-absent and
// remove-if-present checks stay atomic under concurrent tests, mirroring the
// single-document guarantees of the real store.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == user.Login || u.Email == user.Email {
			return contract.ErrDuplicateUser
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetUserByLogin(ctx context.Context, login string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == login {
			clone := *u
			return &clone, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) AddEvent(ctx context.Context, userID, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return false, contract.ErrUserNotFound
	}
	for _, id := range u.EventIDs {
		if id == eventID {
			return false, nil
		}
	}
	u.EventIDs = append(u.EventIDs, eventID)
	return true, nil
}

func (r *fakeUserRepo) RemoveEvent(ctx context.Context, userID, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return false, contract.ErrUserNotFound
	}
	for i, id := range u.EventIDs {
		if id == eventID {
			u.EventIDs = append(u.EventIDs[:i], u.EventIDs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetEventIDs(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	out := make([]string, len(u.EventIDs))
	copy(out, u.EventIDs)
	return out, nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*entity.Event)}
}

var _ contract.IEventRepository = (*fakeEventRepo)(nil)

func (r *fakeEventRepo) CreateEvent(ctx context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *event
	r.events[event.ID] = &clone
	return nil
}

func (r *fakeEventRepo) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, contract.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEventRepo) ListEvents(ctx context.Context) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEventRepo) GetEventsByIDs(ctx context.Context, ids []string) ([]entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Event{}
	for _, id := range ids {
		if e, ok := r.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) MarkPassed(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, contract.ErrEventNotFound
	}
	e.Passed = true
	clone := *e
	return &clone, nil
}

func (r *fakeEventRepo) DeleteEvent(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, contract.ErrEventNotFound
	}
	delete(r.events, id)
	return e, nil
}

func (r *fakeEventRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type fakeIDGen struct{}

func (fakeIDGen) NewID() string         { return uuid.New().String() }
func (fakeIDGen) IsValid(s string) bool { return uuid.Validate(s) == nil }

type fakeLogger struct{}

func (fakeLogger) Debugf(string, ...interface{}) {}
func (fakeLogger) Infof(string, ...interface{})  {}
func (fakeLogger) Warnf(string, ...interface{})  {}
func (fakeLogger) Errorf(string, ...interface{}) {}
func (fakeLogger) Fatalf(string, ...interface{}) {}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(user *entity.User) (string, error) {
	return "token-" + user.ID, nil
}

func (fakeTokenService) ParseAccessToken(token string) (*entity.Claims, error) {
	if !strings.HasPrefix(token, "token-") {
		return nil, fmt.Errorf("invalid or expired token")
	}
	return &entity.Claims{UserID: strings.TrimPrefix(token, "token-")}, nil
}

type fakeImageStore struct {
	urls []string
	err  error
}

func (s *fakeImageStore) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.urls != nil {
		return s.urls, nil
	}
	out := make([]string, len(files))
	for i := range files {
		out[i] = fmt.Sprintf("/uploads/test-%d.png", i)
	}
	return out, nil
}

type fakeConfig struct {
	maxUploadFiles int
}

func (c fakeConfig) GetMaxUploadFiles() int {
	if c.maxUploadFiles == 0 {
		return 5
	}
	return c.maxUploadFiles
}
