package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"reservas/internal/apierror"
	"reservas/internal/dto"
	"reservas/internal/model"
	"reservas/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const escenarioCacheTTL = 15 * time.Minute

// DisponibilidadHandler serves the public availability check.
// No authentication required — no side effects whatsoever.
type DisponibilidadHandler struct {
	escenarios repository.EscenarioRepository
	reservas   repository.ReservaRepository
	rdb        *redis.Client
}

func NewDisponibilidadHandler(escenarios repository.EscenarioRepository, reservas repository.ReservaRepository, rdb *redis.Client) *DisponibilidadHandler {
	return &DisponibilidadHandler{escenarios: escenarios, reservas: reservas, rdb: rdb}
}

// Consultar godoc
// @Summary Consulta de disponibilidad de un escenario (sin autenticacion)
// @Tags disponibilidad
// @Produce json
// @Param id    path  int    true "ID del escenario"
// @Param fecha query string true "Fecha YYYY-MM-DD"
// @Success 200 {object} dto.DisponibilidadResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/escenarios/{id}/disponibilidad [get]
func (h *DisponibilidadHandler) Consultar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	fecha, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, use el formato YYYY-MM-DD"))
		return
	}

	ctx := c.Request.Context()
	escenario, err := h.lookupEscenario(ctx, uint(id))
	if err != nil || !escenario.Activo {
		c.JSON(http.StatusNotFound, apierror.New("Escenario no encontrado"))
		return
	}

	// Occupancy is never cached: a stale "disponible" would invite a
	// booking doomed to a conflict.
	ocupado, err := h.reservas.ExisteParaEscenarioFecha(ctx, h.reservas.DB(), escenario.ID, fecha)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}

	c.JSON(http.StatusOK, dto.DisponibilidadResponse{
		IDEscenario: escenario.ID,
		Direccion:   escenario.Direccion,
		Fecha:       fecha.Format("2006-01-02"),
		Disponible:  !ocupado,
		Precio:      escenario.Precio,
	})
}

// lookupEscenario resolves an escenario through a Redis read-through cache.
// Cache failures fall back to the database silently.
func (h *DisponibilidadHandler) lookupEscenario(ctx context.Context, id uint) (*model.Escenario, error) {
	cacheKey := "escenario:" + strconv.FormatUint(uint64(id), 10)

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var e model.Escenario
		if jsonErr := json.Unmarshal(cached, &e); jsonErr == nil {
			return &e, nil
		}
	}

	escenario, err := h.escenarios.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, jsonErr := json.Marshal(escenario); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, escenarioCacheTTL).Err()
	}
	return escenario, nil
}
