// Package identity exchanges OAuth authorization codes with the identity provider.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
)

var (
	ErrExchangeFailed = errors.New("authorization code exchange failed")
	ErrProfileFailed  = errors.New("failed to fetch user profile")
)

// Profile is the identity provider's view of the signed-in user
type Profile struct {
	ExternalID string
	Email      string
	Name       string
}

type ClerkClient struct {
	cfg        *config.IdentityConfig
	oauth      *oauth2.Config
	httpClient *http.Client
}

func NewClerkClient(cfg *config.IdentityConfig, httpClient *http.Client) *ClerkClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &ClerkClient{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}
}

type userInfoResponse struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// Exchange trades the code for an access token and returns the user's profile
func (c *ClerkClient) Exchange(ctx context.Context, code string) (*Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}
	return c.fetchProfile(ctx, token)
}

func (c *ClerkClient) fetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProfileFailed, res.StatusCode)
	}

	var info userInfoResponse
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFailed, err)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: profile is missing sub or email", ErrProfileFailed)
	}

	name := info.Name
	if name == "" {
		name = strings.TrimSpace(info.GivenName + " " + info.FamilyName)
	}
	if name == "" {
		name = info.Email
	}

	return &Profile{ExternalID: info.Sub, Email: info.Email, Name: name}, nil
}
