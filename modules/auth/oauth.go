package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
)

// ErrNoCode is returned when the provider callback carries no authorization code.
var ErrNoCode = errors.New("authorization code is required")

// Profile is the identity the OAuth provider reports for a signed-in account.
type Profile struct {
	Sub   string `json:"sub"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AccountID returns the provider's stable account identifier.
func (p *Profile) AccountID() string {
	if p.Sub != "" {
		return p.Sub
	}
	return p.ID
}

// Provider abstracts the external OAuth identity provider. The provider's
// internals (consent screen, token issuance) are a black box; the system only
// needs a consent URL and a code-to-profile exchange.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Identity(ctx context.Context, code string) (*Profile, error)
}

// ProviderConfig holds the endpoints and credentials of the OAuth provider.
type ProviderConfig struct {
	Name         string
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

// ProviderConfigFromEnv loads the provider configuration from environment
// variables, defaulting to Google's endpoints.
func ProviderConfigFromEnv() ProviderConfig {
	cfg := ProviderConfig{
		Name:         getEnv("OAUTH_PROVIDER", "google"),
		ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		AuthURL:      getEnv("OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth"),
		TokenURL:     getEnv("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token"),
		UserInfoURL:  getEnv("OAUTH_USERINFO_URL", "https://openidconnect.googleapis.com/v1/userinfo"),
		RedirectURL:  getEnv("OAUTH_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		Scopes:       []string{"openid", "profile", "email"},
	}
	return cfg
}

// OAuthProvider implements Provider on top of golang.org/x/oauth2.
type OAuthProvider struct {
	name        string
	oauth       *oauth2.Config
	userInfoURL string
}

// NewOAuthProvider creates a provider client from the given configuration.
func NewOAuthProvider(cfg ProviderConfig) *OAuthProvider {
	return &OAuthProvider{
		name: cfg.Name,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: cfg.UserInfoURL,
	}
}

// Name returns the provider name recorded on user rows.
func (p *OAuthProvider) Name() string {
	return p.name
}

// AuthCodeURL returns the provider consent URL for the given state.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Identity exchanges the callback code for a token and fetches the profile
// from the provider's userinfo endpoint.
func (p *OAuthProvider) Identity(ctx context.Context, code string) (*Profile, error) {
	if code == "" {
		return nil, ErrNoCode
	}

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	resp, err := p.oauth.Client(ctx, token).Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed: %s", resp.Status)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if profile.AccountID() == "" {
		return nil, fmt.Errorf("userinfo response carries no account id")
	}

	return &profile, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
