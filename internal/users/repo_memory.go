package users

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryRepo backs local development and tests when no database is wired.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) Create(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user
	return nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
		if user.PasswordHash == "" {
			user.PasswordHash = existing.PasswordHash
		}
		if user.ResumeText == "" {
			user.ResumeText = existing.ResumeText
		}
		if user.TailoredResume == "" {
			user.TailoredResume = existing.TailoredResume
		}
		if user.Onboarding == "" {
			user.Onboarding = existing.Onboarding
		}
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.users[user.ID] = user
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) SaveResumeText(ctx context.Context, userID, text string) error {
	return r.updateField(ctx, userID, func(u *User) { u.ResumeText = text })
}

func (r *MemoryRepo) SaveTailoredResume(ctx context.Context, userID, text string) error {
	return r.updateField(ctx, userID, func(u *User) { u.TailoredResume = text })
}

func (r *MemoryRepo) SaveOnboarding(ctx context.Context, userID, onboardingJSON string) error {
	return r.updateField(ctx, userID, func(u *User) { u.Onboarding = onboardingJSON })
}

func (r *MemoryRepo) updateField(ctx context.Context, userID string, apply func(*User)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	apply(&user)
	user.UpdatedAt = time.Now().UTC()
	r.users[userID] = user
	return nil
}
