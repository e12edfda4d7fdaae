package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lionlease/internal/catalog"
	"lionlease/internal/models"
	"lionlease/internal/services"
)

type stubGenerativeClient struct {
	answer string
	err    error
}

func (s *stubGenerativeClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.answer, s.err
}

func assistantHandlerFixture(t *testing.T, client services.GenerativeClient) *AssistantHandler {
	t.Helper()
	cat := catalog.New([]models.Listing{
		{ID: "l1", Price: fptr(2100), Address: "12 Morningside Ave"},
	}, 1)
	return &AssistantHandler{
		Service: &services.AssistantService{Catalog: cat, Client: client},
	}
}

func TestAskAnswersAboutListing(t *testing.T) {
	h := assistantHandlerFixture(t, &stubGenerativeClient{answer: "The rent is $2100."})

	body := strings.NewReader(`{"question": "How much is rent?", "listing_id": "l1"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/ask-ai", body)
	w := httptest.NewRecorder()
	h.Ask(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp services.AskAnswer
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Answer != "The rent is $2100." {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestAskValidation(t *testing.T) {
	h := assistantHandlerFixture(t, &stubGenerativeClient{answer: "ignored"})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing question", `{"listing_id": "l1"}`, http.StatusBadRequest},
		{"missing listing id", `{"question": "hi"}`, http.StatusBadRequest},
		{"malformed body", `{`, http.StatusBadRequest},
		{"unknown listing", `{"question": "hi", "listing_id": "nope"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/ask-ai", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Ask(w, r)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAskUpstreamFailure(t *testing.T) {
	h := assistantHandlerFixture(t, &stubGenerativeClient{err: errors.New("model unavailable")})

	body := strings.NewReader(`{"question": "hi", "listing_id": "l1"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/ask-ai", body)
	w := httptest.NewRecorder()
	h.Ask(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
