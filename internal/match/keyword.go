package match

import (
	"math"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// stopWords are dropped from the JD keyword set before overlap scoring.
// Besides articles and prepositions it covers recruiting filler that appears
// in nearly every posting and would otherwise dilute the score.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "to": {},
	"of": {}, "a": {}, "for": {}, "on": {}, "with": {},
	"we": {}, "you": {}, "our": {}, "your": {}, "are": {},
	"need": {}, "needs": {}, "must": {}, "have": {}, "has": {},
	"will": {}, "skill": {}, "skills": {}, "experience": {},
	"required": {}, "requirements": {}, "candidate": {}, "ideal": {},
}

// KeywordScore computes the ATS overlap score: the percentage of the job
// description's significant keywords found verbatim in the resume.
// Deterministic, no I/O. Returns 0 when the JD yields no keywords.
func KeywordScore(resume, jd string) int {
	resumeWords := tokenize(resume)
	jdWords := tokenize(jd)

	jdKeywords := make(map[string]struct{}, len(jdWords))
	for w := range jdWords {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if len(w) <= 2 {
			continue
		}
		jdKeywords[w] = struct{}{}
	}
	if len(jdKeywords) == 0 {
		return 0
	}

	hits := 0
	for w := range jdKeywords {
		if _, ok := resumeWords[w]; ok {
			hits++
		}
	}

	score := int(math.Round(100 * float64(hits) / float64(len(jdKeywords))))
	return clampScore(score)
}

func tokenize(text string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
