package handler

import (
	"net/http"

	"reservas/internal/dto"
	"reservas/internal/middleware"
	"reservas/internal/service"

	"github.com/gin-gonic/gin"
)

const rangoAdministrador = "administrador"

type ReservasHandler struct{ svc service.ReservaService }

func NewReservasHandler(svc service.ReservaService) *ReservasHandler {
	return &ReservasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear reserva
// @Description  Reserva un escenario para una fecha, opcionalmente con elementos adicionales. Descuenta stock de forma atomica.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearReservaRequest true "Detalle de la reserva"
// @Success      201  {object} dto.ReservaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/reservas [post]
func (h *ReservasHandler) Crear(c *gin.Context) {
	var req dto.CrearReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.CrearReserva(c.Request.Context(), claims.Correo, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReservasHandler) ListarMias(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListarMisReservas(c.Request.Context(), claims.Correo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservasHandler) Obtener(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ObtenerReserva(c.Request.Context(), id, claims.Correo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarElementos godoc
// @Summary      Agregar elementos a una reserva
// @Description  Suma cantidades a lineas existentes o crea lineas nuevas. Valida stock de todas las lineas antes de aplicar cambios.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID de la reserva"
// @Param        body body dto.AgregarElementosRequest true "Elementos a agregar"
// @Success      200  {object} dto.ReservaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/reservas/{id}/elementos [post]
func (h *ReservasHandler) AgregarElementos(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarElementosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.AgregarElementos(c.Request.Context(), id, claims.Correo, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservasHandler) QuitarElemento(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	codigo, ok := parseUintParam(c, "codigo")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.QuitarElemento(c.Request.Context(), id, codigo, claims.Correo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservasHandler) ActualizarEstado(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	esAdmin := claims.Rango == rangoAdministrador

	resp, err := h.svc.ActualizarEstado(c.Request.Context(), id, claims.Correo, esAdmin, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar godoc
// @Summary      Cancelar reserva
// @Description  Elimina la reserva y sus lineas, restaurando el stock de cada elemento.
// @Tags         reservas
// @Security     BearerAuth
// @Param        id path int true "ID de la reserva"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/reservas/{id} [delete]
func (h *ReservasHandler) Cancelar(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)

	if err := h.svc.CancelarReserva(c.Request.Context(), id, claims.Correo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
