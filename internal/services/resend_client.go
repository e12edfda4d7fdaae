package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendClient sends transactional email through the Resend REST API.
type ResendClient struct {
	httpClient *http.Client
	apiKey     string
	from       string
	baseURL    string
}

func NewResendClient(httpClient *http.Client, apiKey, from string) *ResendClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &ResendClient{
		httpClient: httpClient,
		apiKey:     apiKey,
		from:       from,
		baseURL:    defaultResendBaseURL,
	}
}

func (c *ResendClient) Send(ctx context.Context, to, subject, html string) error {
	if c == nil {
		return errors.New("resend client is not configured")
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return errors.New("resend api key is empty")
	}

	payload := map[string]interface{}{
		"from":    c.from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.baseURL, "/") + "/emails"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("resend error: status %d: %s", resp.StatusCode, string(data))
	}
	return nil
}
