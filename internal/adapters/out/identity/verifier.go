// Package identity talks to the external identity provider. The provider
// owns sessions and tokens; this adapter only asks "who is this token".
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"opsboard/internal/core/ports"
)

// ErrTokenRejected is returned when the provider answered and declined the
// token. Transport failures return their own errors.
var ErrTokenRejected = errors.New("identity provider rejected the token")

const defaultVerifyTimeout = 5 * time.Second

// HTTPVerifier verifies bearer tokens by posting them to the identity
// provider's verify endpoint.
type HTTPVerifier struct {
	verifyURL string
	client    *http.Client
}

// NewHTTPVerifier creates a verifier against the given verify endpoint.
func NewHTTPVerifier(verifyURL string) *HTTPVerifier {
	return &HTTPVerifier{
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: defaultVerifyTimeout},
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
}

// Verify posts the token to the provider. 200 yields the principal, 401 and
// 403 map to ErrTokenRejected, anything else is a provider failure.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (ports.Principal, error) {
	body, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return ports.Principal{}, fmt.Errorf("failed to encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return ports.Principal{}, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := v.client.Do(req)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return ports.Principal{}, ErrTokenRejected
	default:
		return ports.Principal{}, fmt.Errorf("identity provider returned status %d", res.StatusCode)
	}

	var payload verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return ports.Principal{}, fmt.Errorf("failed to decode verify response: %w", err)
	}
	if payload.Subject == "" {
		return ports.Principal{}, errors.New("verify response carries no subject")
	}

	return ports.Principal{
		Subject: payload.Subject,
		Email:   payload.Email,
	}, nil
}
