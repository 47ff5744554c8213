package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	t.Run("accepts minimum lengths", func(t *testing.T) {
		user, err := svc.Login(ctx, "bob", "pass")
		assert.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.True(t, user.IsAuthenticated)
	})

	t.Run("rejects short username", func(t *testing.T) {
		_, err := svc.Login(ctx, "ab", "pw12")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
