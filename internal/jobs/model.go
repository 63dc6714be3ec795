package jobs

import "strings"

const previewLen = 240

// Posting is the normalized job record shared by every provider. Postings are
// ephemeral; they are rebuilt from upstream responses and only live in the
// keyword cache.
type Posting struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Location     string  `json:"location"`
	Salary       string  `json:"salary,omitempty"`
	Description  string  `json:"description"`
	JDText       string  `json:"jd_text"`
	Link         string  `json:"link"`
	Posted       string  `json:"posted,omitempty"`
	Type         string  `json:"type"`
	Logo         string  `json:"logo,omitempty"`
	Source       string  `json:"source"`
	H1BSponsor   bool    `json:"h1b_sponsor"`
	NumericScore float64 `json:"numeric_score"`
}

// preview truncates full JD text into a card-sized description.
func preview(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= previewLen {
		return s
	}
	return s[:previewLen] + "..."
}
