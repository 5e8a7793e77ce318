package platform

import (
	"context"

	"github.com/tybotlabs/tybotctl/internal/session"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response. UserData is the profile the
// credential store persists next to the token.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	UserData    session.User `json:"userData"`
}

// Session converts the response into the persistable credential pair.
func (r *LoginResponse) Session() session.Session {
	return session.Session{
		AccessToken: r.AccessToken,
		User:        r.UserData,
	}
}

// Login authenticates with the platform. On failure the returned error is an
// *APIError whose message is the server's error text, untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	var loginResp LoginResponse
	if err := c.Post(ctx, "/auth/login", req, &loginResp); err != nil {
		return nil, err
	}

	return &loginResp, nil
}
