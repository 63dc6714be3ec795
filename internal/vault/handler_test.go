package vault

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newHandlerRouter(v *Vault) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(v).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestDownloadStreamsStoredArtifact(t *testing.T) {
	v := newTestVault(t, false)
	name, err := v.Store(context.Background(), []byte("pdf bytes"), "Engineer", "Acme", "resume")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	r := newHandlerRouter(v)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/download/"+name, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != "pdf bytes" {
		t.Fatalf("body = %q", w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), name) {
		t.Fatalf("Content-Disposition = %q", w.Header().Get("Content-Disposition"))
	}
}

func TestDownloadMissingIs404(t *testing.T) {
	r := newHandlerRouter(newTestVault(t, false))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/download/resume_X_Y_20260101000000.pdf", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not_found") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestArtifactsListsVault(t *testing.T) {
	v := newTestVault(t, false)
	name, err := v.Store(context.Background(), []byte("x"), "Engineer", "Acme", "resume")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	r := newHandlerRouter(v)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/artifacts", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), name) {
		t.Fatalf("artifact list missing %q: %s", name, w.Body.String())
	}
}
