package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsathi/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		IdentityProvider: &config.IdentityProviderConfig{
			BaseURL:    server.URL,
			AnonKey:    "anon-key",
			ServiceKey: "service-key",
		},
	}

	provider, err := NewClient(cfg)
	require.NoError(t, err)

	return provider.(*Client)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.Config{})
	assert.Error(t, err)

	_, err = NewClient(&config.Config{IdentityProvider: &config.IdentityProviderConfig{}})
	assert.Error(t, err)
}

func TestClient_CreateAccount_TopLevelID(t *testing.T) {
	providerID := uuid.New()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test@example.com", body["email"])
		assert.Equal(t, "customer", body["data"].(map[string]any)["role"])

		_ = json.NewEncoder(w).Encode(map[string]any{"id": providerID.String()})
	}))

	id, err := client.CreateAccount(context.Background(), "test@example.com", "Password123!", map[string]any{"role": "customer"})

	require.NoError(t, err)
	assert.Equal(t, providerID, id)
}

func TestClient_CreateAccount_NestedUserID(t *testing.T) {
	providerID := uuid.New()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"id": providerID.String()},
		})
	}))

	id, err := client.CreateAccount(context.Background(), "test@example.com", "Password123!", nil)

	require.NoError(t, err)
	assert.Equal(t, providerID, id)
}

func TestClient_CreateAccount_ProviderError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"msg": "User already registered"})
	}))

	_, err := client.CreateAccount(context.Background(), "test@example.com", "Password123!", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "User already registered")
}

func TestClient_CreateAccount_InvalidUserID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "not-a-uuid"})
	}))

	_, err := client.CreateAccount(context.Background(), "test@example.com", "Password123!", nil)

	assert.Error(t, err)
}

func TestClient_VerifyCredentials_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "provider-access",
			"refresh_token": "provider-refresh",
			"expires_in":    3600,
		})
	}))

	session, err := client.VerifyCredentials(context.Background(), "test@example.com", "Password123!")

	require.NoError(t, err)
	assert.Equal(t, "provider-access", session.AccessToken)
	assert.Equal(t, "provider-refresh", session.RefreshToken)
	assert.False(t, session.ExpiresAt.IsZero())
}

func TestClient_VerifyCredentials_BadCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"error_description": "Invalid login credentials"})
	}))

	session, err := client.VerifyCredentials(context.Background(), "test@example.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "Invalid login credentials")
}

func TestClient_InvalidateSession(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.InvalidateSession(context.Background(), "provider-access")

	require.NoError(t, err)
	assert.Equal(t, "Bearer provider-access", gotAuth)
}

func TestClient_InvalidateSession_EmptyTokenIsNoop(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty token")
	}))

	err := client.InvalidateSession(context.Background(), "")

	require.NoError(t, err)
}

func TestClient_DeleteAccount_UsesServiceKey(t *testing.T) {
	providerID := uuid.New()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/"+providerID.String(), r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))

	err := client.DeleteAccount(context.Background(), providerID)

	require.NoError(t, err)
}

func TestClient_DeleteAccount_Failure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	err := client.DeleteAccount(context.Background(), uuid.New())

	assert.Error(t, err)
}
