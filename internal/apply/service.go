package apply

import (
	"context"
	"fmt"
	"strings"

	"careerai-backend/internal/render"
	"careerai-backend/internal/shared/telemetry"
	"careerai-backend/internal/tailor"
)

// Notifier sends the completion SMS. Failures never fail the apply.
type Notifier interface {
	Configured() bool
	Send(ctx context.Context, toPhone, body string) error
}

// ArtifactStore persists the rendered resume bytes.
type ArtifactStore interface {
	Store(ctx context.Context, data []byte, role, company, fileType string) (string, error)
}

// Result reports the apply pipeline outcome.
type Result struct {
	Filename      string `json:"filename"`
	DownloadURL   string `json:"download_url"`
	OriginalMatch int    `json:"original_match"`
	TailoredMatch int    `json:"tailored_match"`
	Notified      bool   `json:"notified"`
}

// Service chains tailoring, rendering, vault storage, and notification.
type Service struct {
	tailor *tailor.Service
	store  ArtifactStore
	sms    Notifier
}

func NewService(tailorSvc *tailor.Service, store ArtifactStore, sms Notifier) *Service {
	return &Service{tailor: tailorSvc, store: store, sms: sms}
}

// Apply tailors the resume for the role, renders it to PDF, stores the
// artifact, and texts the caller a heads-up when a phone number is given.
func (s *Service) Apply(ctx context.Context, userID, resume, jd, role, company, phone string) (Result, error) {
	tailored, err := s.tailor.Tailor(ctx, userID, resume, jd, role, company)
	if err != nil {
		return Result{}, err
	}

	pdfBytes, err := render.PDF(tailored.TailoredResume)
	if err != nil {
		return Result{}, fmt.Errorf("apply: render: %w", err)
	}

	filename, err := s.store.Store(ctx, pdfBytes, role, company, "resume")
	if err != nil {
		return Result{}, fmt.Errorf("apply: store artifact: %w", err)
	}

	result := Result{
		Filename:      filename,
		DownloadURL:   "/api/v1/download/" + filename,
		OriginalMatch: tailored.OriginalMatch.BlendedScore,
		TailoredMatch: tailored.TailoredMatch.BlendedScore,
	}

	if phone = strings.TrimSpace(phone); phone != "" && s.sms != nil && s.sms.Configured() {
		body := fmt.Sprintf("Your tailored resume for %s at %s is ready. Match improved from %d%% to %d%%.",
			role, company, result.OriginalMatch, result.TailoredMatch)
		if err := s.sms.Send(ctx, phone, body); err != nil {
			telemetry.Warn("apply.notify.failed", map[string]any{"err": err.Error()})
		} else {
			result.Notified = true
		}
	}

	return result, nil
}
