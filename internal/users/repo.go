package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid email or password")
)

type Repo interface {
	Create(ctx context.Context, user User) error
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	SaveResumeText(ctx context.Context, userID, text string) error
	SaveTailoredResume(ctx context.Context, userID, text string) error
	SaveOnboarding(ctx context.Context, userID, onboardingJSON string) error
}
