package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResendClientSend(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer srv.Close()

	client := NewResendClient(srv.Client(), "re_test", "Lion Lease <invites@lionlease.example>")
	client.baseURL = srv.URL

	err := client.Send(context.Background(), "friend@example.com", "Join my group", "<p>hi</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer re_test" {
		t.Errorf("auth header mismatch: %q", gotAuth)
	}
	if gotBody["subject"] != "Join my group" {
		t.Errorf("subject mismatch: %v", gotBody["subject"])
	}
	to, ok := gotBody["to"].([]any)
	if !ok || len(to) != 1 || to[0] != "friend@example.com" {
		t.Errorf("recipient mismatch: %v", gotBody["to"])
	}
}

func TestResendClientSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid from"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewResendClient(srv.Client(), "re_test", "bad-from")
	client.baseURL = srv.URL

	if err := client.Send(context.Background(), "friend@example.com", "s", "b"); err == nil {
		t.Fatal("expected error for failure status")
	}
}
