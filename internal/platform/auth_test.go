package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tybotlabs/tybotctl/internal/session"
)

func TestLogin_Success(t *testing.T) {
	var gotBody LoginRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-login",
			"userData": map[string]any{
				"user_id":     7,
				"full_name":   "Amina Berrada",
				"email":       "amina@example.com",
				"role":        "super_admin",
				"solde_total": 1200,
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Login(context.Background(), "amina@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "amina@example.com", gotBody.Email)
	assert.Equal(t, "s3cret", gotBody.Password)

	assert.Equal(t, "tok-login", resp.AccessToken)
	assert.Equal(t, int64(7), resp.UserData.ID)
	assert.Equal(t, session.RoleSuperAdmin, resp.UserData.Role)
	assert.Equal(t, "/superadmin/dashboard", resp.UserData.Role.DashboardPath())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Login(context.Background(), "amina@example.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, resp)

	// The server's error text comes through verbatim so the CLI can show
	// it untouched.
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}
