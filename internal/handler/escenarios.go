package handler

import (
	"net/http"
	"strconv"

	"reservas/internal/apierror"
	"reservas/internal/dto"
	"reservas/internal/service"

	"github.com/gin-gonic/gin"
)

type EscenariosHandler struct{ svc service.EscenarioService }

func NewEscenariosHandler(svc service.EscenarioService) *EscenariosHandler {
	return &EscenariosHandler{svc: svc}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(v), true
}

// Crear godoc
// @Summary Crear escenario
// @Tags escenarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearEscenarioRequest true "Datos del escenario"
// @Success 201 {object} dto.EscenarioResponse
// @Router /v1/escenarios [post]
func (h *EscenariosHandler) Crear(c *gin.Context) {
	var req dto.CrearEscenarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EscenariosHandler) Listar(c *gin.Context) {
	var filter dto.EscenarioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EscenariosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EscenariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEscenarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EscenariosHandler) Eliminar(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
