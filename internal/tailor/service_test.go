package tailor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/match"
)

// scriptedLLM returns replies in order, so the score calls and the rewrite
// call can be told apart.
type scriptedLLM struct {
	replies []string
	err     error
	i       int
}

func (s *scriptedLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.i >= len(s.replies) {
		return "", errors.New("no more replies scripted")
	}
	r := s.replies[s.i]
	s.i++
	return r, nil
}

type recordingSaver struct {
	userID string
	text   string
	err    error
}

func (r *recordingSaver) SaveTailoredResume(ctx context.Context, userID, text string) error {
	r.userID = userID
	r.text = text
	return r.err
}

func goodRewrite() string {
	return strings.Repeat("Led backend development with Python and SQL. ", 5)
}

func TestTailorSuccess(t *testing.T) {
	client := &scriptedLLM{replies: []string{"60", goodRewrite(), "90"}}
	saver := &recordingSaver{}
	svc := NewService(client, match.NewAggregator(client), saver, 100)

	res, err := svc.Tailor(context.Background(), "u1", "Python SQL engineer", "We need Python and SQL", "Engineer", "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TailoredResume != strings.TrimSpace(goodRewrite()) {
		t.Fatalf("tailored resume = %q", res.TailoredResume)
	}
	if res.OriginalMatch.SemanticScore != 60 || res.TailoredMatch.SemanticScore != 90 {
		t.Fatalf("scores = %d / %d, want 60 / 90", res.OriginalMatch.SemanticScore, res.TailoredMatch.SemanticScore)
	}
	if saver.userID != "u1" || saver.text != res.TailoredResume {
		t.Fatalf("tailored text not persisted: %+v", saver)
	}
}

func TestTailorShortOutputRejected(t *testing.T) {
	client := &scriptedLLM{replies: []string{"60", "Too short."}}
	svc := NewService(client, match.NewAggregator(client), nil, 100)

	_, err := svc.Tailor(context.Background(), "", "Python SQL engineer", "We need Python and SQL", "Engineer", "Acme")
	if !errors.Is(err, ErrTailoringFailed) {
		t.Fatalf("expected ErrTailoringFailed, got %v", err)
	}
}

func TestTailorEmptyInput(t *testing.T) {
	svc := NewService(&scriptedLLM{}, match.NewAggregator(nil), nil, 100)
	if _, err := svc.Tailor(context.Background(), "", "  ", "jd", "r", "c"); !errors.Is(err, match.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestTailorRateLimitPropagates(t *testing.T) {
	client := &scriptedLLM{err: llm.ErrRateLimited}
	svc := NewService(client, match.NewAggregator(client), nil, 100)
	if _, err := svc.Tailor(context.Background(), "", "resume text", "job text", "r", "c"); !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestTailorSaverFailureIsNonFatal(t *testing.T) {
	client := &scriptedLLM{replies: []string{"60", goodRewrite(), "90"}}
	saver := &recordingSaver{err: errors.New("db down")}
	svc := NewService(client, match.NewAggregator(client), saver, 100)

	if _, err := svc.Tailor(context.Background(), "u1", "Python SQL engineer", "We need Python and SQL", "Engineer", "Acme"); err != nil {
		t.Fatalf("saver failure should not fail the request: %v", err)
	}
}

func TestTailorGuestSkipsPersistence(t *testing.T) {
	client := &scriptedLLM{replies: []string{"60", goodRewrite(), "90"}}
	saver := &recordingSaver{}
	svc := NewService(client, match.NewAggregator(client), saver, 100)

	if _, err := svc.Tailor(context.Background(), "", "Python SQL engineer", "We need Python and SQL", "Engineer", "Acme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saver.userID != "" {
		t.Fatalf("guest request must not persist, saved for %q", saver.userID)
	}
}
