package render

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPDFProducesDocument(t *testing.T) {
	data, err := PDF("Jane Doe\n\nSenior Engineer at Acme.\nPython, SQL, Go.")
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", data[:8])
	}
}

func TestPDFEmptyText(t *testing.T) {
	if _, err := PDF("   \n"); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestDOCXRoundTrip(t *testing.T) {
	data, err := DOCX("Jane Doe\nSenior <Engineer> & Architect")
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}

	var docXML string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		docXML = string(raw)
	}
	if docXML == "" {
		t.Fatal("word/document.xml missing from archive")
	}
	if !strings.Contains(docXML, "Jane Doe") {
		t.Fatalf("document.xml missing text: %s", docXML)
	}
	if !strings.Contains(docXML, "Senior &lt;Engineer&gt; &amp; Architect") {
		t.Fatalf("special characters not escaped: %s", docXML)
	}
}

func TestDownloadResumeEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/download-resume",
		strings.NewReader(`{"resume": "Jane Doe\nEngineer", "format": "pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF payload")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/download-resume",
		strings.NewReader(`{"resume": "Jane Doe", "format": "rtf"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}
