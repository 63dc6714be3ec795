package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendPostsForm(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody string
	var gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotFrom = r.PostForm.Get("From")
		gotTo = r.PostForm.Get("To")
		gotBody = r.PostForm.Get("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewSMSClient("AC123", "token", "+15550000000")
	c.BaseURL = srv.URL

	if err := c.Send(context.Background(), "+15551234567", "Your tailored resume is ready."); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotUser != "AC123" || gotPass != "token" {
		t.Fatalf("basic auth = %q/%q", gotUser, gotPass)
	}
	if gotFrom != "+15550000000" || gotTo != "+15551234567" || gotBody == "" {
		t.Fatalf("form = from %q to %q body %q", gotFrom, gotTo, gotBody)
	}
}

func TestSendUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "invalid number"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewSMSClient("AC123", "token", "+15550000000")
	c.BaseURL = srv.URL

	if err := c.Send(context.Background(), "+1555", "hi"); err == nil {
		t.Fatal("expected error on 400 response")
	}
}

func TestSendNotConfigured(t *testing.T) {
	c := NewSMSClient("", "", "")
	if err := c.Send(context.Background(), "+15551234567", "hi"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
