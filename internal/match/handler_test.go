package match

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/llm"
)

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewAggregator(client)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestMatchEndpointSuccess(t *testing.T) {
	r := newTestRouter(&fakeLLM{reply: "90"})

	body := `{"resume": "Python SQL", "jd": "We need Python and SQL"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	for _, field := range []string{"ats_score", "semantic_score", "blended_score", "explanation"} {
		if !strings.Contains(w.Body.String(), field) {
			t.Errorf("response missing %q: %s", field, w.Body.String())
		}
	}
}

func TestMatchEndpointEmptyInput(t *testing.T) {
	r := newTestRouter(&fakeLLM{reply: "90"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(`{"resume": "", "jd": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_error") {
		t.Fatalf("expected validation_error code, got %s", w.Body.String())
	}
}

func TestMatchEndpointRateLimited(t *testing.T) {
	r := newTestRouter(&fakeLLM{err: llm.ErrRateLimited})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(`{"resume": "a b c", "jd": "d e f"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), "rate_limited") {
		t.Fatalf("expected rate_limited code, got %s", w.Body.String())
	}
}
