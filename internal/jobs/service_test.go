package jobs

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type stubProvider struct {
	name     string
	postings []Posting
	err      error
	calls    int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Fetch(ctx context.Context, keyword string) ([]Posting, error) {
	s.calls++
	return s.postings, s.err
}

func samplePostings() []Posting {
	return []Posting{
		{ID: "jsearch_1", Title: "Data Engineer", Company: "Acme", Location: "Berlin, Germany",
			Type: "FULLTIME", JDText: "Python SQL pipelines", Posted: "2026-08-01T00:00:00Z", H1BSponsor: true},
		{ID: "jsearch_2", Title: "Frontend Developer", Company: "Globex", Location: "Remote",
			Type: "Contract", JDText: "React TypeScript", Posted: "2026-08-20T00:00:00Z"},
		{ID: "remotive_3", Title: "ML Engineer", Company: "Initech", Location: "Remote, Worldwide",
			Type: "full_time", JDText: "Python machine learning models", Posted: "2026-08-10T00:00:00Z"},
	}
}

func newTestService(p Provider, fallback Provider) *Service {
	return NewService([]Provider{p}, fallback, NewCache(10*time.Minute), nil, true)
}

func TestSearchScoresAndSorts(t *testing.T) {
	svc := newTestService(&stubProvider{name: "jsearch", postings: samplePostings()}, nil)

	got, err := svc.Search(context.Background(), "engineer", "Python SQL developer", Filters{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d postings, want 3", len(got))
	}
	// Data Engineer matches both keywords, ML Engineer one, Frontend none.
	if got[0].ID != "jsearch_1" || got[2].ID != "jsearch_2" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].NumericScore <= got[1].NumericScore {
		t.Fatalf("scores not descending: %v vs %v", got[0].NumericScore, got[1].NumericScore)
	}
}

func TestSearchNoResumeSortsByRecency(t *testing.T) {
	svc := newTestService(&stubProvider{name: "jsearch", postings: samplePostings()}, nil)

	got, err := svc.Search(context.Background(), "engineer", "", Filters{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "jsearch_2" || got[1].ID != "remotive_3" || got[2].ID != "jsearch_1" {
		t.Fatalf("unexpected recency order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSearchFilters(t *testing.T) {
	svc := newTestService(&stubProvider{name: "jsearch", postings: samplePostings()}, nil)

	remote, err := svc.Search(context.Background(), "engineer", "", Filters{RemoteOnly: true}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remote) != 2 {
		t.Fatalf("remote filter kept %d postings, want 2", len(remote))
	}

	fulltime, err := svc.Search(context.Background(), "engineer", "", Filters{FulltimeOnly: true}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// FULLTIME and full_time both normalize; Contract does not.
	if len(fulltime) != 2 {
		t.Fatalf("fulltime filter kept %d postings, want 2", len(fulltime))
	}

	h1b, err := svc.Search(context.Background(), "engineer", "", Filters{H1BOnly: true}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h1b) != 1 || h1b[0].ID != "jsearch_1" {
		t.Fatalf("h1b filter result: %+v", h1b)
	}
}

func TestSearchTruncatesTopN(t *testing.T) {
	svc := newTestService(&stubProvider{name: "jsearch", postings: samplePostings()}, nil)
	got, err := svc.Search(context.Background(), "engineer", "", Filters{}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d postings, want 2", len(got))
	}
}

func TestSearchCacheHitSkipsUpstream(t *testing.T) {
	p := &stubProvider{name: "jsearch", postings: samplePostings()}
	svc := newTestService(p, nil)

	first, err := svc.Search(context.Background(), "engineer", "", Filters{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Search(context.Background(), "engineer", "", Filters{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 1 {
		t.Fatalf("provider called %d times, want 1", p.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached results differ:\n%v\n%v", first, second)
	}
}

func TestSearchCacheExpires(t *testing.T) {
	p := &stubProvider{name: "jsearch", postings: samplePostings()}
	cache := NewCache(10 * time.Minute)
	base := time.Now()
	cache.now = func() time.Time { return base }
	svc := NewService([]Provider{p}, nil, cache, nil, true)

	if _, err := svc.Search(context.Background(), "engineer", "", Filters{}, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base = base.Add(11 * time.Minute)
	if _, err := svc.Search(context.Background(), "engineer", "", Filters{}, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 2 {
		t.Fatalf("provider called %d times after expiry, want 2", p.calls)
	}
}

func TestSearchProviderFailureFallsThrough(t *testing.T) {
	broken := &stubProvider{name: "jsearch", err: errors.New("boom")}
	fallback := &stubProvider{name: "llm", postings: samplePostings()[:1]}
	svc := NewService([]Provider{broken}, fallback, NewCache(10*time.Minute), nil, true)

	got, err := svc.Search(context.Background(), "engineer", "", Filters{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "jsearch_1" {
		t.Fatalf("fallback result: %+v", got)
	}
}

func TestSearchAllEmptyIsNoJobs(t *testing.T) {
	svc := NewService(
		[]Provider{&stubProvider{name: "jsearch"}, &stubProvider{name: "remotive"}},
		&stubProvider{name: "llm"},
		NewCache(10*time.Minute), nil, true)

	_, err := svc.Search(context.Background(), "Nonexistent Role XYZ123", "", Filters{}, 10)
	if !errors.Is(err, ErrNoJobs) {
		t.Fatalf("expected ErrNoJobs, got %v", err)
	}
}

func TestDetailNotFound(t *testing.T) {
	svc := newTestService(&stubProvider{name: "jsearch", postings: samplePostings()}, nil)
	_, _, err := svc.Detail(context.Background(), "engineer", "jsearch_999", "")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestDetailKeywordExplanationFallback(t *testing.T) {
	// No LLM configured: explanation degrades to the keyword estimate.
	svc := newTestService(&stubProvider{name: "jsearch", postings: samplePostings()}, nil)
	posting, explanation, err := svc.Detail(context.Background(), "engineer", "jsearch_1", "Python SQL developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posting.ID != "jsearch_1" {
		t.Fatalf("posting = %+v", posting)
	}
	if explanation == "" {
		t.Fatal("expected a keyword-based explanation")
	}
}
