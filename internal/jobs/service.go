package jobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/match"
	"careerai-backend/internal/shared/metrics"
	"careerai-backend/internal/shared/telemetry"
)

var (
	// ErrNoJobs means every provider and the fallback returned nothing.
	ErrNoJobs = errors.New("no jobs available")
	// ErrJobNotFound means the requested posting id is not in the current
	// listing set.
	ErrJobNotFound = errors.New("job not found")
)

// Provider is one upstream listing source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, keyword string) ([]Posting, error)
}

// Filters are the boolean listing filters, applied case-insensitively and
// strictly after normalization.
type Filters struct {
	H1BOnly      bool
	RemoteOnly   bool
	FulltimeOnly bool
}

// Service aggregates providers behind the keyword cache and attaches match
// scores when resume text is supplied.
type Service struct {
	providers   []Provider
	fallback    Provider
	cache       *Cache
	llm         llm.Client
	filterFirst bool
}

// NewService builds the aggregator. providers are tried in order; fallback
// only when all of them return empty. filterFirst selects whether filters run
// before scoring (cheaper) or after (scores every fetched posting).
func NewService(providers []Provider, fallback Provider, cache *Cache, client llm.Client, filterFirst bool) *Service {
	return &Service{
		providers:   providers,
		fallback:    fallback,
		cache:       cache,
		llm:         client,
		filterFirst: filterFirst,
	}
}

// fetch returns the raw normalized listing set for keyword, from cache when
// fresh. A single provider failure is logged and treated as empty.
func (s *Service) fetch(ctx context.Context, keyword string) ([]Posting, error) {
	if cached, ok := s.cache.Get(keyword); ok {
		metrics.IncJobCacheHits()
		return cached, nil
	}

	var all []Posting
	for _, p := range s.providers {
		postings, err := p.Fetch(ctx, keyword)
		if err != nil {
			telemetry.Warn("jobs.provider.failed", map[string]any{"provider": p.Name(), "err": err.Error()})
			metrics.IncJobProviderFailures()
			continue
		}
		all = append(all, postings...)
	}

	if len(all) == 0 && s.fallback != nil {
		postings, err := s.fallback.Fetch(ctx, keyword)
		if err != nil {
			telemetry.Warn("jobs.provider.failed", map[string]any{"provider": s.fallback.Name(), "err": err.Error()})
			metrics.IncJobProviderFailures()
		} else {
			all = postings
		}
	}

	if len(all) == 0 {
		return nil, ErrNoJobs
	}

	s.cache.Set(keyword, all)
	return all, nil
}

// Search runs the full pipeline: fetch, filter, score, sort, truncate.
func (s *Service) Search(ctx context.Context, keyword, resume string, f Filters, topN int) ([]Posting, error) {
	if strings.TrimSpace(keyword) == "" {
		keyword = "data scientist"
	}
	if topN < 1 {
		topN = 10
	}
	if topN > 50 {
		topN = 50
	}

	all, err := s.fetch(ctx, keyword)
	if err != nil {
		return nil, err
	}

	// Work on a copy; the cached slice must stay untouched.
	postings := make([]Posting, len(all))
	copy(postings, all)

	resume = strings.TrimSpace(resume)
	if s.filterFirst {
		postings = applyFilters(postings, f)
		scorePostings(postings, resume)
	} else {
		scorePostings(postings, resume)
		postings = applyFilters(postings, f)
	}

	sortPostings(postings, resume != "")

	if len(postings) > topN {
		postings = postings[:topN]
	}
	return postings, nil
}

// Detail finds one posting by id within the keyword's listing set and
// attaches an LLM match explanation when resume text is supplied.
func (s *Service) Detail(ctx context.Context, keyword, id, resume string) (Posting, string, error) {
	if strings.TrimSpace(keyword) == "" {
		keyword = "data scientist"
	}

	all, err := s.fetch(ctx, keyword)
	if err != nil {
		return Posting{}, "", err
	}

	for _, p := range all {
		if p.ID != id {
			continue
		}
		explanation, err := s.explain(ctx, resume, p.JDText)
		if err != nil {
			return Posting{}, "", err
		}
		return p, explanation, nil
	}
	return Posting{}, "", fmt.Errorf("%w: %s", ErrJobNotFound, id)
}

// explain produces the "<X>% Match - ..." line. Provider failure degrades to
// a keyword-overlap estimate; rate limiting propagates.
func (s *Service) explain(ctx context.Context, resume, jd string) (string, error) {
	resume = strings.TrimSpace(resume)
	if resume == "" {
		return "", nil
	}
	if s.llm != nil {
		out, err := s.llm.Complete(ctx, llm.JobExplainPrompt(resume, jd))
		if err == nil {
			return strings.TrimSpace(out), nil
		}
		if errors.Is(err, llm.ErrRateLimited) {
			return "", err
		}
		telemetry.Warn("jobs.explain.fallback", map[string]any{"err": err.Error()})
	}
	return fmt.Sprintf("%d%% Match - based on keyword overlap with the job description.",
		match.KeywordScore(resume, jd)), nil
}

func applyFilters(postings []Posting, f Filters) []Posting {
	out := postings[:0]
	for _, p := range postings {
		if f.H1BOnly && !p.H1BSponsor {
			continue
		}
		if f.RemoteOnly && !strings.Contains(strings.ToLower(p.Location), "remote") {
			continue
		}
		if f.FulltimeOnly && !isFulltime(p.Type) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isFulltime(jobType string) bool {
	t := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(jobType, "-", " "), "_", " "))
	return strings.Contains(t, "full time") || strings.Contains(t, "fulltime")
}

func scorePostings(postings []Posting, resume string) {
	if resume == "" {
		return
	}
	for i := range postings {
		postings[i].NumericScore = float64(match.KeywordScore(resume, postings[i].JDText))
	}
}

// sortPostings orders by score when scored, else by posting recency where
// timestamps exist, else keeps provider order.
func sortPostings(postings []Posting, scored bool) {
	if scored {
		sort.SliceStable(postings, func(i, j int) bool {
			return postings[i].NumericScore > postings[j].NumericScore
		})
		return
	}
	sort.SliceStable(postings, func(i, j int) bool {
		// ISO-8601 posting timestamps compare correctly as strings; empty
		// timestamps sink to the bottom.
		if postings[i].Posted == "" || postings[j].Posted == "" {
			return postings[j].Posted == "" && postings[i].Posted != ""
		}
		return postings[i].Posted > postings[j].Posted
	})
}
