package identity_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"opsboard/internal/adapters/out/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPVerifier_Verify_Success(t *testing.T) {
	var receivedToken string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		receivedToken = body.Token

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"subject": "user_42",
			"email":   "ops@example.com",
		})
	}))
	defer provider.Close()

	verifier := identity.NewHTTPVerifier(provider.URL)

	principal, err := verifier.Verify(t.Context(), "session-token")

	require.NoError(t, err)
	assert.Equal(t, "session-token", receivedToken)
	assert.Equal(t, "user_42", principal.Subject)
	assert.Equal(t, "ops@example.com", principal.Email)
}

func TestHTTPVerifier_Verify_RejectedToken(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer provider.Close()

	verifier := identity.NewHTTPVerifier(provider.URL)

	_, err := verifier.Verify(t.Context(), "stale-token")

	assert.ErrorIs(t, err, identity.ErrTokenRejected)
}

func TestHTTPVerifier_Verify_ProviderFailure(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer provider.Close()

	verifier := identity.NewHTTPVerifier(provider.URL)

	_, err := verifier.Verify(t.Context(), "session-token")

	require.Error(t, err)
	assert.NotErrorIs(t, err, identity.ErrTokenRejected)
}

func TestHTTPVerifier_Verify_ProviderUnreachable(t *testing.T) {
	verifier := identity.NewHTTPVerifier("http://127.0.0.1:1/verify")

	_, err := verifier.Verify(t.Context(), "session-token")

	assert.Error(t, err)
}

func TestHTTPVerifier_Verify_MissingSubject(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "ops@example.com"})
	}))
	defer provider.Close()

	verifier := identity.NewHTTPVerifier(provider.URL)

	_, err := verifier.Verify(t.Context(), "session-token")

	assert.Error(t, err)
}
