package store

import (
	"sync"

	"golang.org/x/oauth2"
)

// TokenStore holds the single live Google OAuth credential for the process.
// A successful code exchange overwrites whatever was stored before; nothing
// is ever written to disk.
type TokenStore struct {
	mu    sync.RWMutex
	token *oauth2.Token
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set replaces the stored credential.
func (s *TokenStore) Set(token *oauth2.Token) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Get returns the current credential, or false if none has been stored.
// Expiry is not checked here; the calendar client surfaces provider-side
// rejections instead.
func (s *TokenStore) Get() (*oauth2.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return nil, false
	}
	return s.token, true
}
