package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenStore(t *testing.T) {
	t.Run("empty store reports absent", func(t *testing.T) {
		s := NewTokenStore()

		token, ok := s.Get()
		assert.False(t, ok)
		assert.Nil(t, token)
	})

	t.Run("set then get", func(t *testing.T) {
		s := NewTokenStore()
		tok := &oauth2.Token{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			Expiry:       time.Now().Add(time.Hour),
		}

		s.Set(tok)

		got, ok := s.Get()
		require.True(t, ok)
		assert.Equal(t, "access-1", got.AccessToken)
		assert.Equal(t, "refresh-1", got.RefreshToken)
	})

	t.Run("new exchange replaces previous credential", func(t *testing.T) {
		s := NewTokenStore()
		s.Set(&oauth2.Token{AccessToken: "old"})
		s.Set(&oauth2.Token{AccessToken: "new"})

		got, ok := s.Get()
		require.True(t, ok)
		assert.Equal(t, "new", got.AccessToken)
	})
}
