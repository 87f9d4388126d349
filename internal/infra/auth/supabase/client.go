// Package supabase implements the identity provider interface against a
// Supabase GoTrue-compatible REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"eventsathi/config"
	"eventsathi/internal/domain/service"
)

const defaultTimeout = 10 * time.Second

// Client talks to the provider's auth endpoints. Regular auth calls carry
// the anon key; account deletion uses the admin endpoint and needs the
// service role key.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config) (service.IdentityProvider, error) {
	if cfg.IdentityProvider == nil || cfg.IdentityProvider.BaseURL == "" {
		return nil, errors.New("identity provider base URL must be provided")
	}

	timeout := cfg.IdentityProvider.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    cfg.IdentityProvider.BaseURL,
		anonKey:    cfg.IdentityProvider.AnonKey,
		serviceKey: cfg.IdentityProvider.ServiceKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type signUpResponse struct {
	ID   string `json:"id"`
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordGrantResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type apiError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

// CreateAccount registers the credentials with the provider and returns the
// provider-assigned user ID.
func (c *Client) CreateAccount(ctx context.Context, email, password string, metadata map[string]any) (uuid.UUID, error) {
	body := signUpRequest{Email: email, Password: password, Data: metadata}

	var resp signUpResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", c.anonKey, "", body, &resp); err != nil {
		return uuid.Nil, errors.Wrap(err, "provider sign up request failed")
	}

	// Older GoTrue versions return the user at the top level, newer ones
	// nest it under "user".
	rawID := resp.ID
	if rawID == "" {
		rawID = resp.User.ID
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "provider returned an invalid user ID")
	}

	return id, nil
}

// VerifyCredentials exchanges the credentials for a provider session using
// the password grant.
func (c *Client) VerifyCredentials(ctx context.Context, email, password string) (*service.ProviderSession, error) {
	body := passwordGrantRequest{Email: email, Password: password}

	var resp passwordGrantResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", c.anonKey, "", body, &resp); err != nil {
		return nil, errors.Wrap(err, "provider password grant failed")
	}

	return &service.ProviderSession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}, nil
}

// InvalidateSession revokes the provider session behind the given access token.
func (c *Client) InvalidateSession(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/logout", c.anonKey, accessToken, nil, nil); err != nil {
		return errors.Wrap(err, "provider logout failed")
	}

	return nil
}

// DeleteAccount removes a provider account via the admin endpoint.
func (c *Client) DeleteAccount(ctx context.Context, providerUserID uuid.UUID) error {
	path := "/auth/v1/admin/users/" + providerUserID.String()
	if err := c.do(ctx, http.MethodDelete, path, c.serviceKey, c.serviceKey, nil, nil); err != nil {
		return errors.Wrap(err, "provider account deletion failed")
	}

	return nil
}

// do issues one request and decodes the response into out when non-nil.
// apiKey goes into the apikey header; bearer, when set, into Authorization.
func (c *Client) do(ctx context.Context, method, path, apiKey, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("apikey", apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

func decodeError(resp *http.Response) error {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr apiError
	if err := json.Unmarshal(payload, &apiErr); err == nil {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.ErrorDescription
		}
		if msg != "" {
			return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, msg)
		}
	}

	return fmt.Errorf("provider returned status %d", resp.StatusCode)
}
