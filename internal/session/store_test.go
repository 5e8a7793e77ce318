package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func testSession() Session {
	return Session{
		AccessToken: "tok-abc123",
		User: User{
			ID:         1,
			FullName:   "Amina Berrada",
			Email:      "amina@example.com",
			Role:       RoleSuperAdmin,
			SoldeTotal: 1500,
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Save(testSession()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-abc123", loaded.AccessToken)
	assert.Equal(t, "amina@example.com", loaded.User.Email)
	assert.Equal(t, RoleSuperAdmin, loaded.User.Role)
}

func TestStore_LoadAbsent(t *testing.T) {
	store := testStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_SaveRejectsPartialSession(t *testing.T) {
	store := testStore(t)

	// Token without profile.
	err := store.Save(Session{AccessToken: "tok"})
	require.Error(t, err)

	// Profile without token.
	err = store.Save(Session{User: User{Email: "amina@example.com"}})
	require.Error(t, err)

	// Nothing was written either way.
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestStore_Token(t *testing.T) {
	store := testStore(t)

	assert.Empty(t, store.Token())

	require.NoError(t, store.Save(testSession()))
	assert.Equal(t, "tok-abc123", store.Token())

	// A token cleared after the store handle was created is not served
	// from a stale snapshot.
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}

func TestStore_FileMode(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(testSession()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_Subscribe(t *testing.T) {
	store := testStore(t)
	events := store.Subscribe()

	require.NoError(t, store.Save(testSession()))
	require.NoError(t, store.Clear())

	assert.Equal(t, EventSaved, <-events)
	assert.Equal(t, EventCleared, <-events)
}

func TestStore_LoadTokenlessFileTreatedAsAbsent(t *testing.T) {
	store := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0700))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"userData":{"email":"x@y.z"}}`), 0600))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDashboardPath(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleSuperAdmin, "/superadmin/dashboard"},
		{RoleAdmin, "/admin/dashboard"},
		{RoleUser, "/user/dashboard"},
		{RoleLiveAgent, "/liveagent/dashboard"},
		{Role("intern"), "/dashboard"},
		{Role(""), "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.DashboardPath())
		})
	}
}
