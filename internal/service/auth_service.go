package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ieltsmaster/writing-api/config"
	"github.com/rs/zerolog/log"
)

// AuthService talks to the external identity provider. The service itself
// never issues or stores credentials; it only revokes the caller's session
// on logout (GoTrue-style POST /logout with the bearer token).
type AuthService interface {
	Logout(ctx context.Context, accessToken string) error
}

type authService struct {
	providerURL string
	httpClient  *http.Client
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{
		providerURL: cfg.Auth.ProviderURL,
		httpClient:  http.DefaultClient,
	}
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		// No session to revoke. Logout still succeeds so clients can always
		// clear their local state.
		return nil
	}
	if s.providerURL == "" {
		// No provider configured (local development with long-lived test
		// tokens): logout is a no-op on the server side.
		log.Warn().Msg("AUTH_URL is not set, logout is a no-op")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.providerURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build logout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logout request to identity provider failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("identity provider rejected logout (status %d)", resp.StatusCode)
	}
	return nil
}
