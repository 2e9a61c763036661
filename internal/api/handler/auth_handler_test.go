package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, payload validate.CredentialsPayload) (string, error)
	verifyFn func(ctx context.Context, rawToken string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, payload validate.CredentialsPayload) (string, error) {
	return s.loginFn(ctx, payload)
}

func (s *stubAuthService) Verify(ctx context.Context, rawToken string) (string, error) {
	return s.verifyFn(ctx, rawToken)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, payload validate.CredentialsPayload) (string, error) {
			if payload.Email == nil || *payload.Email != "fulano@qa.com" {
				t.Fatalf("payload not bound: %+v", payload)
			}
			return "Bearer um.jwt.qualquer", nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"fulano@qa.com","password":"teste"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp["message"] != "Login realizado com sucesso" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
	if resp["authorization"] != "Bearer um.jwt.qualquer" {
		t.Fatalf("unexpected authorization: %q", resp["authorization"])
	}
}

func TestAuthHandler_Login_PropagatesFailure(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _ validate.CredentialsPayload) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"fulano@qa.com","password":"errada"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials back, got %v", err)
	}
}
