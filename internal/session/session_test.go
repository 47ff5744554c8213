package session

import (
	"context"
	"testing"
	"time"

	"bookfinder/internal/auth"
	"bookfinder/internal/platform/crypto"
	"bookfinder/internal/platform/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestStore() (*Store, *localstore.MemoryKV, *localstore.MemoryKV) {
	durable := localstore.NewMemory()
	ephemeral := localstore.NewMemory()
	return NewStore(auth.NewService(), durable, ephemeral, testSecret), durable, ephemeral
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success transitions to authenticated", func(t *testing.T) {
		store, _, _ := newTestStore()

		user, err := store.Login(ctx, "alice", "password", false)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		st := store.State()
		assert.True(t, st.IsAuthenticated)
		require.NotNil(t, st.User)
		assert.Equal(t, "alice", st.User.Username)
	})

	t.Run("remember me persists to durable storage", func(t *testing.T) {
		store, durable, ephemeral := newTestStore()

		_, err := store.Login(ctx, "alice", "password", true)
		require.NoError(t, err)

		_, ok, _ := durable.Get("user")
		assert.True(t, ok)
		v, ok, _ := durable.Get("isAuthenticated")
		assert.True(t, ok)
		assert.Equal(t, "true", v)
		v, ok, _ = durable.Get("rememberMe")
		assert.True(t, ok)
		assert.Equal(t, "true", v)
		_, ok, _ = durable.Get("sessionToken")
		assert.True(t, ok)

		_, ok, _ = ephemeral.Get("user")
		assert.False(t, ok)
	})

	t.Run("without remember me the snapshot is ephemeral", func(t *testing.T) {
		store, durable, ephemeral := newTestStore()

		_, err := store.Login(ctx, "alice", "password", false)
		require.NoError(t, err)

		_, ok, _ := durable.Get("user")
		assert.False(t, ok)
		_, ok, _ = ephemeral.Get("user")
		assert.True(t, ok)
	})

	t.Run("invalid credentials stay anonymous and write nothing", func(t *testing.T) {
		store, durable, ephemeral := newTestStore()

		_, err := store.Login(ctx, "ab", "pw12", true)
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)

		st := store.State()
		assert.False(t, st.IsAuthenticated)
		assert.Nil(t, st.User)

		_, ok, _ := durable.Get("user")
		assert.False(t, ok)
		_, ok, _ = ephemeral.Get("user")
		assert.False(t, ok)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears state and durable keys", func(t *testing.T) {
		store, durable, _ := newTestStore()
		_, err := store.Login(ctx, "alice", "password", true)
		require.NoError(t, err)

		store.Logout()

		st := store.State()
		assert.False(t, st.IsAuthenticated)
		assert.Nil(t, st.User)
		for _, key := range []string{"user", "isAuthenticated", "rememberMe", "sessionToken"} {
			_, ok, _ := durable.Get(key)
			assert.False(t, ok, "key %s should be gone", key)
		}
	})

	t.Run("erases durable storage even for ephemeral sessions", func(t *testing.T) {
		store, durable, _ := newTestStore()
		require.NoError(t, durable.Set("user", `{"username":"stale"}`))

		_, err := store.Login(ctx, "alice", "password", false)
		require.NoError(t, err)
		store.Logout()

		_, ok, _ := durable.Get("user")
		assert.False(t, ok)
	})
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("repopulates a remembered session", func(t *testing.T) {
		first, durable, _ := newTestStore()
		_, err := first.Login(ctx, "alice", "password", true)
		require.NoError(t, err)

		second := NewStore(auth.NewService(), durable, localstore.NewMemory(), testSecret)
		second.Restore()

		st := second.State()
		assert.True(t, st.IsAuthenticated)
		require.NotNil(t, st.User)
		assert.Equal(t, "alice", st.User.Username)
		assert.True(t, st.RememberMe)
	})

	t.Run("ignores ephemeral snapshots", func(t *testing.T) {
		first, durable, ephemeral := newTestStore()
		_, err := first.Login(ctx, "alice", "password", false)
		require.NoError(t, err)

		second := NewStore(auth.NewService(), durable, ephemeral, testSecret)
		second.Restore()

		assert.False(t, second.State().IsAuthenticated)
	})

	t.Run("corrupt user JSON clears the snapshot", func(t *testing.T) {
		durable := localstore.NewMemory()
		require.NoError(t, durable.Set("user", `{not valid json`))
		require.NoError(t, durable.Set("isAuthenticated", "true"))
		require.NoError(t, durable.Set("rememberMe", "true"))

		store := NewStore(auth.NewService(), durable, localstore.NewMemory(), testSecret)
		store.Restore()

		assert.False(t, store.State().IsAuthenticated)
		for _, key := range []string{"user", "isAuthenticated", "rememberMe"} {
			_, ok, _ := durable.Get(key)
			assert.False(t, ok, "key %s should be cleared", key)
		}
	})

	t.Run("missing token counts as corruption", func(t *testing.T) {
		durable := localstore.NewMemory()
		require.NoError(t, durable.Set("user", `{"username":"alice","isAuthenticated":true}`))
		require.NoError(t, durable.Set("isAuthenticated", "true"))

		store := NewStore(auth.NewService(), durable, localstore.NewMemory(), testSecret)
		store.Restore()

		assert.False(t, store.State().IsAuthenticated)
		_, ok, _ := durable.Get("user")
		assert.False(t, ok)
	})

	t.Run("token signed with another secret counts as corruption", func(t *testing.T) {
		durable := localstore.NewMemory()
		token, err := crypto.GenerateToken("other-secret", "alice", time.Hour)
		require.NoError(t, err)
		require.NoError(t, durable.Set("user", `{"username":"alice","isAuthenticated":true}`))
		require.NoError(t, durable.Set("isAuthenticated", "true"))
		require.NoError(t, durable.Set("sessionToken", token))

		store := NewStore(auth.NewService(), durable, localstore.NewMemory(), testSecret)
		store.Restore()

		assert.False(t, store.State().IsAuthenticated)
	})

	t.Run("absent snapshot is a no-op", func(t *testing.T) {
		store, durable, _ := newTestStore()
		store.Restore()

		assert.False(t, store.State().IsAuthenticated)
		_, ok, _ := durable.Get("user")
		assert.False(t, ok)
	})
}
