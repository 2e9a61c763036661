package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serverest/usuarios-api/internal/api/metrics"
	"github.com/serverest/usuarios-api/internal/core/ports"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginResponse struct {
	Message       string `json:"message"`
	Authorization string `json:"authorization"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Realizar login
// @Tags         login
// @Accept       json
// @Produce      json
// @Param        body  body      validate.CredentialsPayload  true  "Credenciais"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req validate.CredentialsPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	token, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message:       "Login realizado com sucesso",
		Authorization: token,
	})
}
