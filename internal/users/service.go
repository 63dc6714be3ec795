package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"careerai-backend/internal/shared/auth"
)

// Service owns signup, login, and per-user resume state.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Session is the token response for signup/login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s *Service) Signup(ctx context.Context, email, password, fullName string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return Session{}, errors.New("valid email is required")
	}
	if len(password) < 8 {
		return Session{}, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return Session{}, err
	}
	return s.issueSession(user)
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrBadCredentials
		}
		return Session{}, err
	}
	if user.PasswordHash == "" {
		// OAuth-only account.
		return Session{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrBadCredentials
	}
	return s.issueSession(user)
}

// UpsertFromOAuth persists an identity arriving through the Google flow so
// resume state has a stable owner row.
func (s *Service) UpsertFromOAuth(ctx context.Context, user User) error {
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) SaveResumeText(ctx context.Context, userID, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("resume text is required")
	}
	return s.Repo.SaveResumeText(ctx, userID, text)
}

func (s *Service) SaveTailoredResume(ctx context.Context, userID, text string) error {
	return s.Repo.SaveTailoredResume(ctx, userID, text)
}

// SaveOnboarding stores the preferences blob after checking it is valid JSON.
func (s *Service) SaveOnboarding(ctx context.Context, userID string, prefs json.RawMessage) error {
	if len(prefs) == 0 || !json.Valid(prefs) {
		return errors.New("onboarding payload must be valid JSON")
	}
	return s.Repo.SaveOnboarding(ctx, userID, string(prefs))
}

func (s *Service) issueSession(user User) (Session, error) {
	token, err := auth.SignJWT(auth.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Name:  user.FullName,
	})
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}
	user.PasswordHash = ""
	return Session{Token: token, User: user}, nil
}
