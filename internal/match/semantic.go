package match

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/shared/metrics"
	"careerai-backend/internal/shared/telemetry"
)

var digitRun = regexp.MustCompile(`\d{1,3}`)

// SemanticScorer asks an LLM for a 0-100 fit estimate, degrading to the
// keyword score when the provider fails or returns unparseable output.
type SemanticScorer struct {
	LLM llm.Client
}

// Score returns the semantic fit score for the resume/JD pair. Provider
// failures and unparseable responses silently fall back to KeywordScore;
// quota exhaustion (llm.ErrRateLimited) is the one error that propagates,
// since fabricating a score over a quota failure would mislead the caller.
func (s *SemanticScorer) Score(ctx context.Context, resume, jd string) (int, error) {
	if s.LLM == nil {
		metrics.IncLLMFallbacks()
		return KeywordScore(resume, jd), nil
	}

	raw, err := s.LLM.Complete(ctx, llm.SemanticScorePrompt(resume, jd))
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			return 0, err
		}
		telemetry.Warn("match.semantic.fallback", map[string]any{"err": err.Error()})
		metrics.IncLLMFallbacks()
		return KeywordScore(resume, jd), nil
	}

	score, ok := parseScore(raw)
	if !ok {
		telemetry.Warn("match.semantic.fallback", map[string]any{"reason": "unparseable", "raw": truncate(raw, 80)})
		metrics.IncLLMFallbacks()
		return KeywordScore(resume, jd), nil
	}
	return clampScore(score), nil
}

// parseScore extracts the first run of digits from free-form model output.
// Modeled as an explicit parse-or-fallback branch rather than an error path.
func parseScore(text string) (int, bool) {
	m := digitRun.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
