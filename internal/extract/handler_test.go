package extract

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(nil).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func multipartUpload(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	hdr["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadResumeTxt(t *testing.T) {
	body, contentType := multipartUpload(t, "file", "resume.txt", "text/plain", []byte("Ten years of Go."))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Ten years of Go.") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestUploadResumeMissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-resume", strings.NewReader(""))
	w := httptest.NewRecorder()
	newUploadRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadResumeUnsupportedType(t *testing.T) {
	body, contentType := multipartUpload(t, "file", "photo.png", "image/png", []byte{0x89, 'P', 'N', 'G'})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-resume", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_error") {
		t.Fatalf("body = %s", w.Body.String())
	}
}
