package match

import (
	"context"
	"errors"
	"testing"

	"careerai-backend/internal/llm"
)

func TestSemanticScoreParsesDigits(t *testing.T) {
	cases := []struct {
		reply string
		want  int
	}{
		{"85", 85},
		{"Score: 72 out of 100", 72},
		{" 100\n", 100},
		{"0", 0},
		{"150", 100}, // clamped
	}
	for _, tc := range cases {
		s := &SemanticScorer{LLM: &fakeLLM{reply: tc.reply}}
		got, err := s.Score(context.Background(), "resume", "jd")
		if err != nil {
			t.Fatalf("reply %q: unexpected error: %v", tc.reply, err)
		}
		if got != tc.want {
			t.Errorf("reply %q: score = %d, want %d", tc.reply, got, tc.want)
		}
	}
}

func TestSemanticScoreUnparseableFallsBack(t *testing.T) {
	s := &SemanticScorer{LLM: &fakeLLM{reply: "I cannot rate this resume."}}
	got, err := s.Score(context.Background(), "Python SQL", "We need Python and SQL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := KeywordScore("Python SQL", "We need Python and SQL"); got != want {
		t.Fatalf("score = %d, want keyword fallback %d", got, want)
	}
}

func TestSemanticScoreProviderErrorFallsBack(t *testing.T) {
	s := &SemanticScorer{LLM: &fakeLLM{err: errors.New("upstream timeout")}}
	got, err := s.Score(context.Background(), "Python SQL", "We need Python and SQL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Fatalf("score = %d, want keyword fallback 100", got)
	}
}

func TestSemanticScoreRateLimitPropagates(t *testing.T) {
	s := &SemanticScorer{LLM: &fakeLLM{err: llm.ErrRateLimited}}
	if _, err := s.Score(context.Background(), "resume", "jd"); !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestSemanticScoreNilClientUsesKeyword(t *testing.T) {
	s := &SemanticScorer{}
	got, err := s.Score(context.Background(), "Python SQL", "We need Python and SQL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Fatalf("score = %d, want 100", got)
	}
}
