package gcal

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"github.com/procrastify/server/internal/store"
)

// Config holds the OAuth client settings for the Google Calendar integration.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Client brokers the Google OAuth flow and calendar reads. The live
// credential lives in the token store; the calendar service is rebuilt per
// call so a fresh exchange takes effect immediately.
type Client struct {
	config *oauth2.Config
	tokens *store.TokenStore
}

// NewClient creates a new Google Calendar client with read-only scope.
func NewClient(cfg Config, tokens *store.TokenStore) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{calendar.CalendarReadonlyScope},
			Endpoint:     google.Endpoint,
		},
		tokens: tokens,
	}
}

// AuthURL returns the OAuth authorization URL requesting offline access.
func (c *Client) AuthURL() string {
	return c.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// ExchangeCode exchanges an authorization code for a token and stores it as
// the process credential, replacing any previous one.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	c.tokens.Set(token)
	return token, nil
}

// IsAuthenticated returns true if a credential has been stored.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.tokens.Get()
	return ok
}
