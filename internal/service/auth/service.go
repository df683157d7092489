package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

const apiKeyPrefix = "sk_dev_"

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	UserByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	Delete(ctx context.Context, userID string) error
}

type service struct {
	repo UserRepository
	now  func() time.Time

	mu     sync.Mutex
	lastID int64
}

func NewAuthService(repo UserRepository) *service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Signup(ctx context.Context, params model.SignupParams) (*model.User, error) {
	const op = "auth.service.Signup"
	log := logger.With(logger.String("email", params.Email))

	if strings.TrimSpace(params.Name) == "" ||
		strings.TrimSpace(params.Email) == "" ||
		params.Password == "" {
		log.Warn(ctx, "validation: incomplete signup")
		return nil, errors.Join(model.ErrValidation, errors.New("name, email and password are required"))
	}

	u := s.newUser(strings.TrimSpace(params.Name), params.Email)
	if err := s.repo.Create(ctx, u); err != nil {
		log.Warn(ctx, "repository create user", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Info(ctx, "user signed up", logger.String("user_id", u.ID))

	return u, nil
}

// Login returns the stored user for email, creating one named after the
// email's local part on first sight.
func (s *service) Login(ctx context.Context, params model.LoginParams) (*model.User, error) {
	const op = "auth.service.Login"
	log := logger.With(logger.String("email", params.Email))

	email := strings.TrimSpace(params.Email)
	if email == "" || params.Password == "" {
		log.Warn(ctx, "validation: incomplete login")
		return nil, errors.Join(model.ErrValidation, errors.New("email and password are required"))
	}

	u, err := s.repo.UserByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		log.Error(ctx, "repository user by email", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	name, _, _ := strings.Cut(email, "@")
	u = s.newUser(name, email)
	if err := s.repo.Create(ctx, u); err != nil {
		log.Error(ctx, "repository create user", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Info(ctx, "user created on login", logger.String("user_id", u.ID))

	return u, nil
}

// Logout forgets the user holding apiKey. The key stops resolving at once.
func (s *service) Logout(ctx context.Context, apiKey string) error {
	const op = "auth.service.Logout"

	u, err := s.Authenticate(ctx, apiKey)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, u.ID); err != nil {
		logger.Error(ctx, "repository delete user", logger.String("user_id", u.ID), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) Authenticate(ctx context.Context, apiKey string) (*model.User, error) {
	const op = "auth.service.Authenticate"

	if apiKey == "" {
		return nil, model.ErrMissingCredential
	}

	u, err := s.repo.UserByAPIKey(ctx, apiKey)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, model.ErrInvalidCredential
	}
	if err != nil {
		logger.Error(ctx, "repository user by api key", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *service) newUser(name, email string) *model.User {
	return &model.User{
		ID:     s.nextID(),
		Name:   name,
		Email:  email,
		APIKey: apiKeyPrefix + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
}

// nextID returns user-<unix millis>, bumped past the previous id when two
// users are created within the same millisecond.
func (s *service) nextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	return fmt.Sprintf("user-%d", id)
}
