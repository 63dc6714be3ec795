package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultRemotiveURL = "https://remotive.io/api/remote-jobs"

// RemotiveProvider queries the public Remotive remote-jobs API. No API key
// required, which makes it the natural secondary source.
type RemotiveProvider struct {
	BaseURL string
	HTTP    *http.Client
}

func NewRemotiveProvider() *RemotiveProvider {
	return &RemotiveProvider{
		BaseURL: defaultRemotiveURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *RemotiveProvider) Name() string { return "remotive" }

type remotiveJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo"`
	Location    string `json:"candidate_required_location"`
	JobType     string `json:"job_type"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	Publication string `json:"publication_date"`
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

func (p *RemotiveProvider) Fetch(ctx context.Context, keyword string) ([]Posting, error) {
	q := url.Values{}
	q.Set("search", keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("remotive: build request: %w", err)
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remotive: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remotive: unexpected status %d", resp.StatusCode)
	}

	var body remotiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("remotive: decode response: %w", err)
	}

	postings := make([]Posting, 0, len(body.Jobs))
	for _, j := range body.Jobs {
		postings = append(postings, Posting{
			ID:          "remotive_" + strconv.FormatInt(j.ID, 10),
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    j.Location,
			Salary:      j.Salary,
			Description: preview(j.Description),
			JDText:      j.Description,
			Link:        j.URL,
			Posted:      j.Publication,
			Type:        j.JobType,
			Logo:        j.CompanyLogo,
			Source:      p.Name(),
			// Remotive listings are remote by definition but carry no
			// sponsorship data.
			H1BSponsor: strings.Contains(strings.ToLower(j.Location), "remote"),
		})
	}
	return postings, nil
}
