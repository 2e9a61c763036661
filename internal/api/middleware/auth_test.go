package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

type stubVerifier struct {
	verifyFn func(ctx context.Context, rawToken string) (string, error)
}

func (s *stubVerifier) Login(_ context.Context, _ validate.CredentialsPayload) (string, error) {
	panic("not used")
}

func (s *stubVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	return s.verifyFn(ctx, rawToken)
}

func invoke(t *testing.T, auth *stubVerifier, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(auth)(next)(c)
	return rec, c, err
}

func TestAuth_MissingHeader(t *testing.T) {
	stub := &stubVerifier{verifyFn: func(_ context.Context, _ string) (string, error) {
		t.Fatalf("verify must not be called without a header")
		return "", nil
	}}

	_, _, err := invoke(t, stub, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	stub := &stubVerifier{verifyFn: func(_ context.Context, _ string) (string, error) {
		return "", domain.ErrInvalidCredentials
	}}

	_, _, err := invoke(t, stub, "Bearer invalido")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	stub := &stubVerifier{verifyFn: func(_ context.Context, raw string) (string, error) {
		if raw != "Bearer valido" {
			t.Fatalf("header not forwarded: %q", raw)
		}
		return "user42", nil
	}}

	rec, c, err := invoke(t, stub, "Bearer valido")
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected next handler to run, got %d", rec.Code)
	}
	if c.Get("user_id") != "user42" {
		t.Fatalf("user id not injected: %v", c.Get("user_id"))
	}
}
