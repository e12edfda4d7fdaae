package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiClientGenerateContent(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"The rent is $2000."}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(srv.Client(), "test-key", "gemini-1.5-flash")
	client.baseURL = srv.URL

	answer, err := client.GenerateContent(context.Background(), "What is the rent?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "The rent is $2000." {
		t.Errorf("answer mismatch: %q", answer)
	}
	if !strings.Contains(gotPath, "gemini-1.5-flash:generateContent") {
		t.Errorf("unexpected path: %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}
	if gotBody.Contents[0].Parts[0].Text != "What is the rent?" {
		t.Errorf("prompt mismatch: %q", gotBody.Contents[0].Parts[0].Text)
	}
}

func TestGeminiClientErrors(t *testing.T) {
	t.Run("empty api key", func(t *testing.T) {
		client := NewGeminiClient(nil, "", "gemini-1.5-flash")
		if _, err := client.GenerateContent(context.Background(), "hi"); err == nil {
			t.Fatal("expected error for empty api key")
		}
	})

	t.Run("api failure status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewGeminiClient(srv.Client(), "test-key", "gemini-1.5-flash")
		client.baseURL = srv.URL
		_, err := client.GenerateContent(context.Background(), "hi")
		if err == nil {
			t.Fatal("expected error for failure status")
		}
		if !strings.Contains(err.Error(), "429") {
			t.Errorf("error should carry the status code, got %v", err)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		client := NewGeminiClient(srv.Client(), "test-key", "gemini-1.5-flash")
		client.baseURL = srv.URL
		if _, err := client.GenerateContent(context.Background(), "hi"); err == nil {
			t.Fatal("expected error for empty candidates")
		}
	})
}
