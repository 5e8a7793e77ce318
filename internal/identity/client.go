// Package identity talks to the external identity provider that owns
// password recovery. It is independent of the platform API: recovery
// sessions use the provider's own tokens, never the platform bearer token.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the identity provider API client
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new identity provider client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProviderError is a non-2xx response from the identity provider. Message is
// the provider's own text, surfaced unmodified: this client never adds or
// removes account-existence information.
type ProviderError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("identity provider returned status %d", e.StatusCode)
}

// providerPayload covers the error body shapes the provider uses
type providerPayload struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (p providerPayload) text() string {
	for _, s := range []string{p.ErrorDescription, p.Msg, p.Message, p.ErrorField} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (c *Client) doRequest(ctx context.Context, method, path, token string, body interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("apikey", c.APIKey)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &ProviderError{StatusCode: resp.StatusCode}
		var payload providerPayload
		if err := json.Unmarshal(data, &payload); err == nil {
			perr.Message = payload.text()
		}
		return perr
	}

	return nil
}

// Recover asks the provider to email a password-reset link. The provider
// reports success for unknown accounts too; whatever it says is passed
// through as-is.
func (c *Client) Recover(ctx context.Context, email, redirectTo string) error {
	path := "/auth/v1/recover"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}

	body := map[string]string{"email": email}
	return c.doRequest(ctx, http.MethodPost, path, "", body)
}

// UpdatePassword sets a new password using the recovery session token from
// the emailed reset link
func (c *Client) UpdatePassword(ctx context.Context, recoveryToken, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.doRequest(ctx, http.MethodPut, "/auth/v1/user", recoveryToken, body)
}

// SignOut revokes the provider-side session for the given token
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.doRequest(ctx, http.MethodPost, "/auth/v1/logout", token, nil)
}
