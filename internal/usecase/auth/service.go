package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"devconnect/internal/domain/user"
	"devconnect/internal/pkg/gravatar"
	"devconnect/internal/pkg/token"
)

var (
	ErrEmailTaken       = errors.New("email already exists")
	ErrEmailNotFound    = errors.New("user email not found")
	ErrPasswordMismatch = errors.New("password incorrect")
	ErrInternal         = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Usecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Current(ctx context.Context, id uuid.UUID) (user.User, error)
}

type Service struct {
	users  user.Repository
	tokens token.Service
	logger *zap.Logger

	now func() time.Time
}

func NewService(users user.Repository, tokens token.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, tokens: tokens, logger: logger, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user.User{}, ErrEmailTaken
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Avatar:    gravatar.URL(email),
		Password:  string(hash),
		CreatedAt: s.now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailTaken
		}
		s.logger.Error("create user", zap.Error(err))
		return user.User{}, ErrInternal
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID.String()))
	return u, nil
}

// Login verifies credentials and returns a signed bearer token. The caller
// distinguishes an unknown email (404 upstream) from a bad password (400).
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrEmailNotFound
		}
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", ErrPasswordMismatch
	}

	tok, err := s.tokens.Generate(u.ID, u.Name, u.Avatar)
	if err != nil {
		s.logger.Error("generate token", zap.Error(err))
		return "", ErrInternal
	}
	return tok, nil
}

func (s *Service) Current(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
