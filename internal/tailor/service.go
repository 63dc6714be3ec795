package tailor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/match"
	"careerai-backend/internal/shared/telemetry"
)

// ErrTailoringFailed is returned when the model output is unusable as a
// resume. The caller gets the error, never a silently degraded rewrite.
var ErrTailoringFailed = errors.New("tailored resume rejected")

// ResumeSaver persists the tailored text for a signed-in user. Persistence is
// best effort; failures are logged and never fail the request.
type ResumeSaver interface {
	SaveTailoredResume(ctx context.Context, userID, text string) error
}

// Result carries the rewritten resume together with before/after match scores
// so the caller can see what the rewrite bought them.
type Result struct {
	TailoredResume string            `json:"tailored_resume"`
	OriginalMatch  match.MatchResult `json:"original_match"`
	TailoredMatch  match.MatchResult `json:"tailored_match"`
}

// Service orchestrates the tailoring flow.
type Service struct {
	llm       llm.Client
	agg       *match.Aggregator
	saver     ResumeSaver
	minLength int
}

// NewService builds a tailoring service. saver may be nil when user
// persistence is disabled. minLength guards against truncated or refusal
// outputs from the model.
func NewService(client llm.Client, agg *match.Aggregator, saver ResumeSaver, minLength int) *Service {
	if minLength <= 0 {
		minLength = 100
	}
	return &Service{llm: client, agg: agg, saver: saver, minLength: minLength}
}

// Tailor scores the original resume, rewrites it for the role, validates the
// rewrite, and scores it again. userID is empty for guests.
func (s *Service) Tailor(ctx context.Context, userID, resume, jd, role, company string) (Result, error) {
	resume = strings.TrimSpace(resume)
	jd = strings.TrimSpace(jd)
	if resume == "" || jd == "" {
		return Result{}, match.ErrEmptyInput
	}
	if s.llm == nil {
		return Result{}, fmt.Errorf("%w: no LLM configured", ErrTailoringFailed)
	}

	original, err := s.agg.Compute(ctx, resume, jd)
	if err != nil {
		return Result{}, err
	}

	raw, err := s.llm.Complete(ctx, llm.TailorPrompt(resume, jd, role, company))
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %v", ErrTailoringFailed, err)
	}

	tailored := strings.TrimSpace(raw)
	if len(tailored) < s.minLength {
		telemetry.Warn("tailor.rejected", map[string]any{"len": len(tailored), "min": s.minLength})
		return Result{}, fmt.Errorf("%w: output shorter than %d chars", ErrTailoringFailed, s.minLength)
	}

	after, err := s.agg.Compute(ctx, tailored, jd)
	if err != nil {
		return Result{}, err
	}

	if s.saver != nil && userID != "" {
		if err := s.saver.SaveTailoredResume(ctx, userID, tailored); err != nil {
			telemetry.Warn("tailor.persist.failed", map[string]any{"user_id": userID, "err": err.Error()})
		}
	}

	return Result{TailoredResume: tailored, OriginalMatch: original, TailoredMatch: after}, nil
}
