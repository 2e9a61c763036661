package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serverest/usuarios-api/internal/api/metrics"
	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/ports"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

// UserHandler handles GET /usuarios and POST /usuarios. The GET path is the
// query gateway: raw query params are forwarded as filters and the service
// rejects any key outside the whitelist before touching directory data.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userResponse struct {
	ID            string `json:"_id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Administrador string `json:"administrador"`
}

type listUsersResponse struct {
	Quantidade int            `json:"quantidade"`
	Usuarios   []userResponse `json:"usuarios"`
}

type registerResponse struct {
	Message string `json:"message"`
	ID      string `json:"_id"`
}

// List handles GET /usuarios.
//
// @Summary      Listar usuários cadastrados
// @Tags         usuarios
// @Produce      json
// @Param        _id            query     string  false  "Filtrar por id"
// @Param        nome           query     string  false  "Filtrar por nome"
// @Param        email          query     string  false  "Filtrar por email"
// @Param        administrador  query     string  false  "Filtrar por administrador ('true' ou 'false')"
// @Success      200  {object}  listUsersResponse
// @Failure      400  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	filters := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	users, err := h.service.List(c.Request().Context(), filters)
	if err != nil {
		var pe *domain.ParamError
		if errors.As(err, &pe) {
			metrics.QueriesTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}
	metrics.QueriesTotal.WithLabelValues("ok").Inc()

	resp := listUsersResponse{
		Quantidade: len(users),
		Usuarios:   make([]userResponse, 0, len(users)),
	}
	for _, u := range users {
		resp.Usuarios = append(resp.Usuarios, userResponse{
			ID:            u.ID,
			Nome:          u.Nome,
			Email:         u.Email,
			Administrador: u.AdminString(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Register handles POST /usuarios.
//
// @Summary      Cadastrar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      validate.RegistrationPayload  true  "Dados do usuário"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /usuarios [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req validate.RegistrationPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	id, err := h.service.Register(c.Request().Context(), req)
	if err != nil {
		var fe *domain.FieldError
		switch {
		case errors.As(err, &fe):
			metrics.RegistrationErrorsTotal.WithLabelValues(fe.Field).Inc()
		case errors.Is(err, domain.ErrEmailInUse):
			metrics.RegistrationErrorsTotal.WithLabelValues("duplicate_email").Inc()
		}
		return err
	}
	metrics.RegistrationsTotal.Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "Cadastro realizado com sucesso",
		ID:      id,
	})
}
