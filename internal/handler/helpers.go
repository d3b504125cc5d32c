package handler

import (
	"errors"
	"net/http"

	"reservas/internal/apierror"
	"reservas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps domain sentinel errors onto HTTP status codes.
// Unknown errors are pushed onto the Gin error chain so the ErrorHandler
// middleware logs them and answers with a generic 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEscenarioNoEncontrado),
		errors.Is(err, service.ErrElementoNoEncontrado),
		errors.Is(err, service.ErrReservaNoEncontrada),
		errors.Is(err, service.ErrElementoNoAsociado),
		errors.Is(err, service.ErrUsuarioNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrFechaOcupada),
		errors.Is(err, service.ErrStockInsuficiente),
		errors.Is(err, service.ErrCorreoRegistrado):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.Is(err, service.ErrEstadoInvalido),
		errors.Is(err, service.ErrFechaInvalida),
		errors.Is(err, service.ErrEscenarioInactivo):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	case errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))

	case errors.Is(err, service.ErrCuentaBloqueada),
		errors.Is(err, service.ErrPermisosInsuficientes):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
