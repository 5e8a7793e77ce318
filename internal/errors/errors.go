package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeLoginFailed     ErrorCode = "AUTH-001"
	ErrCodeEmailInvalid    ErrorCode = "AUTH-002"
	ErrCodePasswordMissing ErrorCode = "AUTH-003"
	ErrCodeUnauthorized    ErrorCode = "AUTH-004"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionMissing ErrorCode = "SESSION-001"
	ErrCodeSessionRead    ErrorCode = "SESSION-002"
	ErrCodeSessionWrite   ErrorCode = "SESSION-003"

	// Platform API errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPIUnreachable ErrorCode = "API-003"

	// Identity provider errors (IDP-001 to IDP-099)
	ErrCodeIdentityProvider ErrorCode = "IDP-001"
	ErrCodeRecoveryFailed   ErrorCode = "IDP-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-001"
	ErrCodeConfigNotFound ErrorCode = "CONFIG-002"
	ErrCodeConfigWrite    ErrorCode = "CONFIG-003"
)

// TybotError represents an enhanced error with code, suggestions, and documentation
type TybotError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *TybotError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *TybotError) Unwrap() error {
	return e.Cause
}

// New creates a new TybotError
func New(code ErrorCode, message string) *TybotError {
	return &TybotError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new TybotError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *TybotError {
	return &TybotError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *TybotError) WithSuggestion(suggestion string) *TybotError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *TybotError) WithSuggestions(suggestions ...string) *TybotError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *TybotError) WithDocs(url string) *TybotError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates the error returned when a guarded command runs
// without a stored session
func NewNotLoggedInError() *TybotError {
	return New(ErrCodeSessionMissing, "not logged in").
		WithSuggestion("Run 'tybotctl auth login' to authenticate").
		WithSuggestion("Check that ~/.tybot/session.json exists and is readable")
}

// NewLoginFailedError creates a login failure error carrying the server's
// message verbatim
func NewLoginFailedError(serverMessage string, cause error) *TybotError {
	if serverMessage == "" {
		serverMessage = "login failed"
	}
	return Wrap(ErrCodeLoginFailed, serverMessage, cause).
		WithSuggestion("Verify your email and password").
		WithSuggestion("Use 'tybotctl auth recover' if you forgot your password")
}

// NewEmailInvalidError creates a client-side email validation error
func NewEmailInvalidError(email string) *TybotError {
	return New(ErrCodeEmailInvalid, fmt.Sprintf("invalid email address: %s", email)).
		WithSuggestion("Provide a syntactically valid email, e.g. user@example.com")
}

// NewAPIUnreachableError creates a transport-level failure error
func NewAPIUnreachableError(baseURL string, cause error) *TybotError {
	return Wrap(ErrCodeAPIUnreachable, fmt.Sprintf("platform API unreachable at %s", baseURL), cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the api_url in ~/.tybot/config.yaml or TYBOT_API_URL")
}

// NewUnauthorizedError creates the error surfaced after a 401 cleared the
// stored session
func NewUnauthorizedError() *TybotError {
	return New(ErrCodeUnauthorized, "session rejected by the platform (401)").
		WithSuggestion("Your session was cleared; run 'tybotctl auth login' again")
}
