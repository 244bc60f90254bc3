package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	inhttp "opsboard/internal/adapters/in/http"
	"opsboard/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	principal ports.Principal
	err       error
}

func (v stubVerifier) Verify(_ context.Context, _ string) (ports.Principal, error) {
	return v.principal, v.err
}

func authTestServer(verifier ports.IdentityVerifier) *echo.Echo {
	e := echo.New()
	group := e.Group("/api/v1")
	group.Use(inhttp.BearerAuth(verifier, testLogger()))
	group.GET("/whoami", func(ctx echo.Context) error {
		principal, ok := inhttp.PrincipalFrom(ctx)
		if !ok {
			return ctx.NoContent(http.StatusInternalServerError)
		}
		return ctx.String(http.StatusOK, principal.Subject)
	})
	return e
}

func getWhoami(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBearerAuth_ValidToken(t *testing.T) {
	e := authTestServer(stubVerifier{
		principal: ports.Principal{Subject: "user_42", Email: "ops@example.com"},
	})

	rec := getWhoami(e, "Bearer session-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user_42", rec.Body.String())
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	e := authTestServer(stubVerifier{})

	rec := getWhoami(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	e := authTestServer(stubVerifier{})

	rec := getWhoami(e, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_EmptyToken(t *testing.T) {
	e := authTestServer(stubVerifier{})

	rec := getWhoami(e, "Bearer ")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_RejectedToken(t *testing.T) {
	e := authTestServer(stubVerifier{err: errors.New("token expired")})

	rec := getWhoami(e, "Bearer stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
