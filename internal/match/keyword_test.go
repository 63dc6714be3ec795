package match

import "testing"

func TestKeywordScoreFullOverlap(t *testing.T) {
	// After filtering, the JD keyword set is {python, sql}; both appear in
	// the resume regardless of the extra Java token.
	resume := "Python Java SQL"
	jd := "We need Python and SQL skills"

	if got := KeywordScore(resume, jd); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestKeywordScorePartialOverlap(t *testing.T) {
	resume := "Python developer"
	jd := "We need Python and SQL"
	// 1 of 2 retained JD keywords appears in the resume.
	if got := KeywordScore(resume, jd); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestKeywordScoreCaseAndOrderInvariant(t *testing.T) {
	jd := "Kubernetes Terraform Golang"
	a := KeywordScore("golang kubernetes terraform", jd)
	b := KeywordScore("TERRAFORM Golang KUBERNETES", jd)
	if a != b || a != 100 {
		t.Fatalf("expected both 100, got %d and %d", a, b)
	}
}

func TestKeywordScoreEmptyJDKeywords(t *testing.T) {
	// Every JD token is a stop word or too short.
	if got := KeywordScore("anything at all", "the and is in to of a on"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestKeywordScoreEmptyInputs(t *testing.T) {
	if got := KeywordScore("", ""); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := KeywordScore("resume text", ""); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestKeywordScoreNoOverlap(t *testing.T) {
	if got := KeywordScore("painting sculpture", "kubernetes golang terraform"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
