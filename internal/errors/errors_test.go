package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeLoginFailed, "test error message")

	if err.Code != ErrCodeLoginFailed {
		t.Errorf("expected code %s, got %s", ErrCodeLoginFailed, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeSessionRead, "failed to read session", cause)

	if err.Code != ErrCodeSessionRead {
		t.Errorf("expected code %s, got %s", ErrCodeSessionRead, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *TybotError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeAPIRequest, "request failed"),
			wantCode: "API-001",
			wantMsg:  "request failed",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeSessionWrite, "write failed", fmt.Errorf("permission denied")),
			wantCode: "SESSION-003",
			wantMsg:  "write failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if !strings.Contains(msg, tt.wantCode) {
				t.Errorf("expected error string to contain code %s, got %q", tt.wantCode, msg)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("expected error string to contain %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config").
		WithSuggestion("check the yaml syntax").
		WithSuggestions("run 'tybotctl config view'", "delete and regenerate the file")

	if len(err.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	msg := err.Error()
	if !strings.Contains(msg, "Suggestions:") {
		t.Error("expected formatted error to include suggestions block")
	}
	if !strings.Contains(msg, "check the yaml syntax") {
		t.Error("expected formatted error to include first suggestion")
	}
}

func TestNewLoginFailedError(t *testing.T) {
	// Server-supplied message passes through verbatim.
	err := NewLoginFailedError("Invalid credentials", nil)
	if err.Message != "Invalid credentials" {
		t.Errorf("expected server message verbatim, got %q", err.Message)
	}

	// Empty server message falls back to a fixed string.
	err = NewLoginFailedError("", nil)
	if err.Message != "login failed" {
		t.Errorf("expected fallback message, got %q", err.Message)
	}
}

func TestNewNotLoggedInError(t *testing.T) {
	err := NewNotLoggedInError()
	if err.Code != ErrCodeSessionMissing {
		t.Errorf("expected code %s, got %s", ErrCodeSessionMissing, err.Code)
	}
	if !strings.Contains(err.Error(), "tybotctl auth login") {
		t.Error("expected suggestion pointing at the login entry point")
	}
}
