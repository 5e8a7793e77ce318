package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mutableToken lets a test swap the token between requests, mimicking a
// session store that changed after the client was constructed.
type mutableToken struct {
	token string
}

func (m *mutableToken) Token() string {
	return m.token
}

func TestClient_NoTokenSourceSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Get(context.Background(), "/users", nil))

	assert.False(t, hasAuth, "unauthenticated client must not send Authorization, got %q", gotAuth)
}

func TestClient_TokenSourceSendsBearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.Tokens = StaticToken("tok-xyz")
	require.NoError(t, c.Get(context.Background(), "/users", nil))

	assert.Equal(t, "Bearer tok-xyz", gotAuth)
}

func TestClient_TokenReReadPerRequest(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	source := &mutableToken{token: "first"}
	c := NewClient(srv.URL)
	c.Tokens = source

	require.NoError(t, c.Get(context.Background(), "/users", nil))

	// A token rotated after client construction is picked up on the next
	// request, and a cleared token drops the header entirely.
	source.token = "second"
	require.NoError(t, c.Get(context.Background(), "/users", nil))
	source.token = ""
	require.NoError(t, c.Get(context.Background(), "/users", nil))

	require.Len(t, gotAuth, 3)
	assert.Equal(t, "Bearer first", gotAuth[0])
	assert.Equal(t, "Bearer second", gotAuth[1])
	assert.Empty(t, gotAuth[2])
}

func TestClient_RequestHeaders(t *testing.T) {
	var contentType, requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Post(context.Background(), "/roles", map[string]string{"role_name": "viewer"}, nil))

	assert.Equal(t, "application/json", contentType)
	assert.NotEmpty(t, requestID)
}

func TestClient_APIErrorCarriesServerText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Échec de connexion"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/users", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Échec de connexion", apiErr.Message)
	assert.Equal(t, "Échec de connexion", apiErr.Error())
}

func TestClient_APIErrorFallsBackToMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"already exists"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/packages", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "already exists", apiErr.Message)
}

func TestClient_APIErrorWithoutPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/users", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Message)
	assert.Contains(t, apiErr.Error(), "500")
}

func TestClient_OnUnauthorizedFiresForAuthenticatedRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	cleared := 0
	c := NewClient(srv.URL)
	c.Tokens = StaticToken("stale-token")
	c.OnUnauthorized = func() { cleared++ }

	err := c.Get(context.Background(), "/users", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, 1, cleared)
}

func TestClient_OnUnauthorizedSkippedWithoutCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"login required"}`))
	}))
	defer srv.Close()

	cleared := 0
	c := NewClient(srv.URL)
	c.OnUnauthorized = func() { cleared++ }

	// A 401 on an unauthenticated call (e.g. bad login) must not clear
	// anything; there is no stale session to invalidate.
	err := c.Post(context.Background(), "/auth/login", LoginRequest{Email: "a@b.c", Password: "x"}, nil)
	require.Error(t, err)
	assert.Zero(t, cleared)
}

func TestClient_NetworkErrorSurfaces(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	err := c.Get(context.Background(), "/users", nil)

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not APIErrors")
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	err := c.Get(ctx, "/users", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
