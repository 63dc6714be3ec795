package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careerai-backend/internal/llm"
)

// LLMFallbackProvider asks the model to invent a plausible listing set. It is
// only consulted when every real provider came back empty, so users see
// candidate roles instead of a blank page.
type LLMFallbackProvider struct {
	LLM llm.Client
}

func (p *LLMFallbackProvider) Name() string { return "llm" }

type fallbackJob struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Company  string      `json:"company"`
	Location string      `json:"location"`
	JDText   string      `json:"jd_text"`
	URL      string      `json:"url"`
	Type     string      `json:"type"`
	PostedAt string      `json:"posted_at"`
}

func (p *LLMFallbackProvider) Fetch(ctx context.Context, keyword string) ([]Posting, error) {
	if p.LLM == nil {
		return nil, fmt.Errorf("llm fallback: no client configured")
	}

	raw, err := p.LLM.Complete(ctx, llm.JobFallbackPrompt(keyword))
	if err != nil {
		return nil, fmt.Errorf("llm fallback: %w", err)
	}

	var items []fallbackJob
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &items); err != nil {
		return nil, fmt.Errorf("llm fallback: decode listings: %w", err)
	}

	postings := make([]Posting, 0, len(items))
	for i, j := range items {
		id := j.ID.String()
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		postings = append(postings, Posting{
			ID:          "llm_" + id,
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Description: preview(j.JDText),
			JDText:      j.JDText,
			Link:        j.URL,
			Posted:      j.PostedAt,
			Type:        j.Type,
			Source:      p.Name(),
		})
	}
	return postings, nil
}

// stripCodeFence removes a surrounding ```json fence when the model adds one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
