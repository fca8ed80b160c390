package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("profile not found")
	ErrHandleTaken = errors.New("handle already exists")
)

type Repository interface {
	Create(ctx context.Context, p Profile) error
	Update(ctx context.Context, p Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	GetByHandle(ctx context.Context, handle string) (Profile, error)
	ListAll(ctx context.Context) ([]Profile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
