package users

import "time"

// User is the single persisted row per account. Resume and tailored text are
// overwritten in place, never versioned.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	PasswordHash   string    `json:"-"`
	ResumeText     string    `json:"resume_text,omitempty"`
	TailoredResume string    `json:"tailored_resume,omitempty"`
	Onboarding     string    `json:"onboarding,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
