package users

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo persists users in Postgres through the pgx stdlib driver.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, full_name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (email) DO NOTHING`
	res, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.FullName),
		nullableString(user.PasswordHash),
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEmailTaken
	}
	return nil
}

func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, full_name, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = COALESCE(EXCLUDED.full_name, users.full_name),
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.FullName),
	)
	return err
}

const selectColumns = `
SELECT id, email, full_name, password_hash, resume_text, tailored_resume, onboarding, created_at, updated_at
FROM users`

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	return r.getOne(ctx, selectColumns+` WHERE id = $1 LIMIT 1`, userID)
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.getOne(ctx, selectColumns+` WHERE lower(email) = lower($1) LIMIT 1`, email)
}

func (r *PGRepo) getOne(ctx context.Context, query string, arg any) (User, error) {
	var (
		user           User
		fullName       sql.NullString
		passwordHash   sql.NullString
		resumeText     sql.NullString
		tailoredResume sql.NullString
		onboarding     sql.NullString
		updatedAt      sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&fullName,
		&passwordHash,
		&resumeText,
		&tailoredResume,
		&onboarding,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.FullName = fullName.String
	user.PasswordHash = passwordHash.String
	user.ResumeText = resumeText.String
	user.TailoredResume = tailoredResume.String
	user.Onboarding = onboarding.String
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.Time
	} else {
		user.UpdatedAt = time.Now().UTC()
	}
	return user, nil
}

func (r *PGRepo) SaveResumeText(ctx context.Context, userID, text string) error {
	return r.updateColumn(ctx, `UPDATE users SET resume_text = $2, updated_at = now() WHERE id = $1`, userID, text)
}

func (r *PGRepo) SaveTailoredResume(ctx context.Context, userID, text string) error {
	return r.updateColumn(ctx, `UPDATE users SET tailored_resume = $2, updated_at = now() WHERE id = $1`, userID, text)
}

func (r *PGRepo) SaveOnboarding(ctx context.Context, userID, onboardingJSON string) error {
	return r.updateColumn(ctx, `UPDATE users SET onboarding = $2::jsonb, updated_at = now() WHERE id = $1`, userID, onboardingJSON)
}

func (r *PGRepo) updateColumn(ctx context.Context, query, userID, value string) error {
	res, err := r.DB.ExecContext(ctx, query, userID, value)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
