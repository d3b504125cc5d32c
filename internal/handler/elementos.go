package handler

import (
	"net/http"

	"reservas/internal/apierror"
	"reservas/internal/dto"
	"reservas/internal/service"

	"github.com/gin-gonic/gin"
)

type ElementosHandler struct{ svc service.ElementoService }

func NewElementosHandler(svc service.ElementoService) *ElementosHandler {
	return &ElementosHandler{svc: svc}
}

// Crear godoc
// @Summary Crear elemento de inventario
// @Tags elementos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearElementoRequest true "Datos del elemento"
// @Success 201 {object} dto.ElementoResponse
// @Router /v1/elementos [post]
func (h *ElementosHandler) Crear(c *gin.Context) {
	var req dto.CrearElementoRequest
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

func (h *ElementosHandler) Listar(c *gin.Context) {
	var filter dto.ElementoFilter
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

func (h *ElementosHandler) ObtenerPorCodigo(c *gin.Context) {
	codigo, ok := parseUintParam(c, "codigo")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorCodigo(c.Request.Context(), codigo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ElementosHandler) Actualizar(c *gin.Context) {
	codigo, ok := parseUintParam(c, "codigo")
	if !ok {
		return
	}
	var req dto.ActualizarElementoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), codigo, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ElementosHandler) Eliminar(c *gin.Context) {
	codigo, ok := parseUintParam(c, "codigo")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), codigo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
