package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultJSearchURL = "https://jsearch.p.rapidapi.com/search"

// JSearchProvider queries the JSearch API on RapidAPI. It is the primary
// listing source because it carries salary, logo, and posting timestamps.
type JSearchProvider struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewJSearchProvider(apiKey string) *JSearchProvider {
	return &JSearchProvider{
		APIKey:  apiKey,
		BaseURL: defaultJSearchURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *JSearchProvider) Name() string { return "jsearch" }

type jsearchJob struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"job_title"`
	Employer       string   `json:"employer_name"`
	EmployerLogo   string   `json:"employer_logo"`
	City           string   `json:"job_city"`
	State          string   `json:"job_state"`
	Country        string   `json:"job_country"`
	IsRemote       bool     `json:"job_is_remote"`
	EmploymentType string   `json:"job_employment_type"`
	ApplyLink      string   `json:"job_apply_link"`
	Description    string   `json:"job_description"`
	PostedAt       string   `json:"job_posted_at_datetime_utc"`
	MinSalary      *float64 `json:"job_min_salary"`
	MaxSalary      *float64 `json:"job_max_salary"`
	SalaryCurrency string   `json:"job_salary_currency"`
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// Fetch searches JSearch and normalizes the response. An unset API key is a
// provider failure, not a silent empty result, so the caller can log it.
func (p *JSearchProvider) Fetch(ctx context.Context, keyword string) ([]Posting, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("jsearch: api key not configured")
	}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch: build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", p.APIKey)
	req.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch: unexpected status %d", resp.StatusCode)
	}

	var body jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("jsearch: decode response: %w", err)
	}

	postings := make([]Posting, 0, len(body.Data))
	for _, j := range body.Data {
		postings = append(postings, Posting{
			ID:          "jsearch_" + j.JobID,
			Title:       j.Title,
			Company:     j.Employer,
			Location:    jsearchLocation(j),
			Salary:      jsearchSalary(j),
			Description: preview(j.Description),
			JDText:      j.Description,
			Link:        j.ApplyLink,
			Posted:      j.PostedAt,
			Type:        j.EmploymentType,
			Logo:        j.EmployerLogo,
			Source:      p.Name(),
			H1BSponsor:  strings.Contains(j.Description, "H1B"),
		})
	}
	return postings, nil
}

func jsearchLocation(j jsearchJob) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{j.City, j.State, j.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	loc := strings.Join(parts, ", ")
	if j.IsRemote {
		if loc == "" {
			return "Remote"
		}
		return loc + " (Remote)"
	}
	return loc
}

func jsearchSalary(j jsearchJob) string {
	switch {
	case j.MinSalary != nil && j.MaxSalary != nil:
		return fmt.Sprintf("%.0f-%.0f %s", *j.MinSalary, *j.MaxSalary, j.SalaryCurrency)
	case j.MinSalary != nil:
		return fmt.Sprintf("from %.0f %s", *j.MinSalary, j.SalaryCurrency)
	case j.MaxSalary != nil:
		return fmt.Sprintf("up to %.0f %s", *j.MaxSalary, j.SalaryCurrency)
	default:
		return ""
	}
}
