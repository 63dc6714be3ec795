package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"careerai-backend/internal/shared/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		Port:              "0",
		Env:               "dev",
		CORSAllowOrigin:   []string{"*"},
		VaultDir:          filepath.Join(dir, "working"),
		ArchiveDir:        filepath.Join(dir, "archive"),
		VaultExpiry:       48 * time.Hour,
		ArchiveExpiry:     60 * 24 * time.Hour,
		JobCacheTTL:       time.Minute,
		FilterBeforeScore: true,
	}
}

func TestBuildServesHealth(t *testing.T) {
	app, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}
}

func TestBuildMatchRequiresIdentity(t *testing.T) {
	app, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	body := `{"resume":"Python SQL","jd":"We need Python and SQL"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without identity = %d, want 401", w.Code)
	}
}

func TestBuildMatchAsGuest(t *testing.T) {
	// No OpenAI key configured, so the semantic score falls back to the
	// keyword path and the request succeeds end to end.
	app, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	body := `{"resume":"Python SQL","jd":"We need Python and SQL"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "guest-123")
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got struct {
		ATSScore     int    `json:"ats_score"`
		BlendedScore int    `json:"blended_score"`
		Explanation  string `json:"explanation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ATSScore != 100 || got.BlendedScore != 100 {
		t.Fatalf("scores = %d/%d, want 100/100", got.ATSScore, got.BlendedScore)
	}
	if got.Explanation == "" {
		t.Fatalf("explanation is empty")
	}
}

func TestBuildUsesMemoryRepoWithoutDatabase(t *testing.T) {
	app, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected nil DB in dev without DATABASE_URL")
	}
	if app.UsersRepo == nil {
		t.Fatalf("expected a users repo")
	}
}
