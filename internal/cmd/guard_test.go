package cmd

import (
	"errors"
	"testing"

	tyboterrors "github.com/tybotlabs/tybotctl/internal/errors"
	"github.com/tybotlabs/tybotctl/internal/session"
)

func resetRuntime() {
	cfg = nil
	store = nil
	client = nil
	identityClient = nil
	logger = nil
}

// TestRequireSessionWithoutLogin tests that guarded commands fail before a
// login has happened
func TestRequireSessionWithoutLogin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetRuntime()
	t.Cleanup(resetRuntime)

	err := requireSession(usersListCmd, nil)
	if err == nil {
		t.Fatal("requireSession() should fail without a stored session")
	}

	var tErr *tyboterrors.TybotError
	if !errors.As(err, &tErr) {
		t.Fatalf("requireSession() error = %T, want *TybotError", err)
	}
	if tErr.Code != tyboterrors.ErrCodeSessionMissing {
		t.Errorf("error code = %s, want %s", tErr.Code, tyboterrors.ErrCodeSessionMissing)
	}
}

// TestRequireSessionWithLogin tests that a stored session passes the guard
func TestRequireSessionWithLogin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetRuntime()
	t.Cleanup(resetRuntime)

	if err := initRuntime(); err != nil {
		t.Fatalf("initRuntime() error = %v", err)
	}
	sess := session.Session{
		AccessToken: "tok-guard",
		User: session.User{
			ID:    1,
			Email: "admin@example.com",
			Role:  session.RoleAdmin,
		},
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := requireSession(usersListCmd, nil); err != nil {
		t.Errorf("requireSession() with a stored session returned error: %v", err)
	}
}
