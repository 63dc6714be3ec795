package match

import (
	"context"
	"errors"
	"math"
	"strings"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/shared/metrics"
)

// ErrEmptyInput is returned when resume or JD is blank after trimming.
var ErrEmptyInput = errors.New("resume and job description are required")

// MatchResult is the transient output of one resume/JD comparison. It is
// computed fresh per request and never persisted.
type MatchResult struct {
	KeywordScore  int    `json:"ats_score"`
	SemanticScore int    `json:"semantic_score"`
	BlendedScore  int    `json:"blended_score"`
	Explanation   string `json:"explanation"`
}

// Aggregator blends the keyword and semantic scores into one user-facing
// match percentage with an explanation band.
type Aggregator struct {
	Semantic *SemanticScorer
}

// NewAggregator builds an Aggregator over the given LLM client. A nil client
// degrades semantic scoring to the keyword path.
func NewAggregator(client llm.Client) *Aggregator {
	return &Aggregator{Semantic: &SemanticScorer{LLM: client}}
}

// Compute validates inputs, scores both ways, and blends. The only errors it
// returns are ErrEmptyInput and llm.ErrRateLimited propagated from the
// semantic scorer.
func (a *Aggregator) Compute(ctx context.Context, resume, jd string) (MatchResult, error) {
	resume = strings.TrimSpace(resume)
	jd = strings.TrimSpace(jd)
	if resume == "" || jd == "" {
		return MatchResult{}, ErrEmptyInput
	}
	metrics.IncMatchRequests()

	kw := KeywordScore(resume, jd)
	sem, err := a.Semantic.Score(ctx, resume, jd)
	if err != nil {
		return MatchResult{}, err
	}

	return MatchResult{
		KeywordScore:  kw,
		SemanticScore: sem,
		BlendedScore:  Blend(kw, sem),
		Explanation:   Explain(kw, sem),
	}, nil
}

// Blend is the rounded arithmetic mean of the two sub-scores.
func Blend(keyword, semantic int) int {
	return clampScore(int(math.Round(float64(keyword+semantic) / 2)))
}

// Explain picks the explanation band for a score pair. Bands are evaluated
// strictest first so boundary cases resolve deterministically.
func Explain(keyword, semantic int) string {
	switch {
	case keyword >= 80 && semantic >= 80:
		return "Excellent match! Both ATS and semantic fit are strong."
	case keyword >= 60 && semantic >= 60:
		return "Good match. Resume covers most key requirements."
	case keyword >= 40 || semantic >= 40:
		return "Partial match. Consider adding more relevant skills or experience."
	default:
		return "Weak match. Resume may not meet core requirements for this job."
	}
}
