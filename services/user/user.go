package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"hallApi/services"
	"hallApi/store"
)

const (
	Collection    = "users"
	UserNameField = "userName"

	// bcrypt rejects longer passwords outright.
	maxPasswordBytes = 72
	defaultHashCost  = 10
)

var (
	ErrUserNameTaken      = fmt.Errorf("%w: userName is already in use", services.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid userName or password", services.ErrUnauthorized)
)

type Service interface {
	GetUser(ctx context.Context, id string) (*User, error)
	// SignUp registers a new account. The password is hashed before it is stored and a
	// userName that already exists is rejected with ErrUserNameTaken.
	SignUp(ctx context.Context, req SignUp) (*User, error)
	// Login returns the user whose stored hash matches password, or ErrInvalidCredentials
	// for an unknown userName and a wrong password alike.
	Login(ctx context.Context, userName, password string) (*User, error)
}

type userService struct {
	users    store.Collection[User]
	hashCost int
	now      func() time.Time
}

var _ Service = (*userService)(nil)

func NewUserService(users store.Collection[User]) Service {
	return &userService{
		users:    users,
		hashCost: defaultHashCost,
		now:      time.Now,
	}
}

func (s *userService) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.users.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return u, nil
}

func (s *userService) SignUp(ctx context.Context, req SignUp) (*User, error) {
	userName := strings.TrimSpace(req.UserName)
	if userName == "" || req.Password == "" {
		return nil, services.Invalid("userName and password are required")
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, services.Invalid("password must be at most %d bytes", maxPasswordBytes)
	}

	_, err := s.users.FindBy(ctx, UserNameField, userName)
	switch {
	case err == nil:
		return nil, ErrUserNameTaken
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user %s: %w", userName, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	emails := make([]string, 0, len(req.EmailAddresses))
	for _, e := range req.EmailAddresses {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}

	user := &User{
		UserName:       userName,
		Password:       string(hash),
		EmailAddresses: emails,
		CreatedAt:      s.now().UTC(),
	}
	created, err := s.users.Create(ctx, user)
	if errors.Is(err, store.ErrDuplicate) {
		return nil, ErrUserNameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Info().Str("userName", created.UserName).Msg("user signed up")
	return created, nil
}

func (s *userService) Login(ctx context.Context, userName, password string) (*User, error) {
	u, err := s.users.FindBy(ctx, UserNameField, strings.TrimSpace(userName))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", userName, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		log.Debug().Str("userName", u.UserName).Msg("password mismatch")
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
