package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/serverest/usuarios-api/internal/core/domain"
)

// messageResponse is the {"message": "..."} envelope used by business-rule
// conflicts and generic failures. Validation and filter errors use a
// single-key body keyed by the offending field instead, so they are rendered
// as plain maps.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders *domain.FieldError and *domain.ParamError as 400 with the
//     contract's single-key body, {<field>: <message>}.
//   - Maps known domain errors to their status codes and {"message": ...}.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var fe *domain.FieldError
		if errors.As(err, &fe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{fe.Field: fe.Message})
			return
		}

		var pe *domain.ParamError
		if errors.As(err, &pe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{pe.Param: pe.Error()})
			return
		}

		switch {
		case errors.Is(err, domain.ErrEmailInUse):
			_ = c.JSON(http.StatusBadRequest, messageResponse{Message: domain.ErrEmailInUse.Error()})
			return
		case errors.Is(err, domain.ErrInvalidCredentials):
			_ = c.JSON(http.StatusUnauthorized, messageResponse{Message: domain.ErrInvalidCredentials.Error()})
			return
		}

		// Echo's own errors (bind failures, 404 from router, etc.)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, messageResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
}
