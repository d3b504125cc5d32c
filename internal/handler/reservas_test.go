package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reservas/internal/dto"
	"reservas/internal/handler"
	"reservas/internal/middleware"
	"reservas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReservaService returns canned results so status mapping can be
// asserted without touching repositories.
type stubReservaService struct {
	resp *dto.ReservaResponse
	err  error
}

func (s *stubReservaService) CrearReserva(_ context.Context, _ string, _ dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	return s.resp, s.err
}
func (s *stubReservaService) ObtenerReserva(_ context.Context, _ uint, _ string) (*dto.ReservaResponse, error) {
	return s.resp, s.err
}
func (s *stubReservaService) ListarMisReservas(_ context.Context, _ string) ([]dto.ReservaResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []dto.ReservaResponse{}, nil
}
func (s *stubReservaService) AgregarElementos(_ context.Context, _ uint, _ string, _ dto.AgregarElementosRequest) (*dto.ReservaResponse, error) {
	return s.resp, s.err
}
func (s *stubReservaService) QuitarElemento(_ context.Context, _ uint, _ uint, _ string) (*dto.ReservaResponse, error) {
	return s.resp, s.err
}
func (s *stubReservaService) ActualizarEstado(_ context.Context, _ uint, _ string, _ bool, _ dto.ActualizarEstadoRequest) (*dto.ReservaResponse, error) {
	return s.resp, s.err
}
func (s *stubReservaService) CancelarReserva(_ context.Context, _ uint, _ string) error {
	return s.err
}

var _ service.ReservaService = (*stubReservaService)(nil)

// fakeAuth injects claims directly, skipping token verification.
func fakeAuth(correo, rango string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.JWTClaims{
			Correo:           correo,
			Rango:            rango,
			RegisteredClaims: jwt.RegisteredClaims{},
		})
		c.Next()
	}
}

func buildRouter(svc service.ReservaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReservasHandler(svc)

	auth := r.Group("/v1", fakeAuth("ana@mail.com", "usuario"))
	auth.POST("/reservas", h.Crear)
	auth.GET("/reservas/:id", h.Obtener)
	auth.POST("/reservas/:id/elementos", h.AgregarElementos)
	auth.DELETE("/reservas/:id", h.Cancelar)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCrearReserva_Creado(t *testing.T) {
	svc := &stubReservaService{resp: &dto.ReservaResponse{
		ID:          1,
		IDEscenario: 1,
		Fecha:       "2026-09-12",
		Estado:      "Pendiente",
		PrecioBase:  100000,
		PrecioTotal: 110000,
	}}
	r := buildRouter(svc)

	w := doRequest(r, http.MethodPost, "/v1/reservas",
		`{"id_escenario":1,"fecha":"2026-09-12","elementos":[{"codigo_elemento":7,"cantidad":2}]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ReservaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(110000), resp.PrecioTotal)
}

func TestCrearReserva_ValidacionFalla(t *testing.T) {
	r := buildRouter(&stubReservaService{})

	// missing fecha
	w := doRequest(r, http.MethodPost, "/v1/reservas", `{"id_escenario":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// quantity below 1
	w = doRequest(r, http.MethodPost, "/v1/reservas",
		`{"id_escenario":1,"fecha":"2026-09-12","elementos":[{"codigo_elemento":7,"cantidad":0}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// malformed JSON
	w = doRequest(r, http.MethodPost, "/v1/reservas", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrearReserva_Conflictos(t *testing.T) {
	casos := []struct {
		err    error
		status int
	}{
		{service.ErrFechaOcupada, http.StatusConflict},
		{service.ErrStockInsuficiente, http.StatusConflict},
		{service.ErrEscenarioNoEncontrado, http.StatusNotFound},
		{service.ErrElementoNoEncontrado, http.StatusNotFound},
		{service.ErrEscenarioInactivo, http.StatusBadRequest},
		{service.ErrFechaInvalida, http.StatusBadRequest},
	}
	for _, caso := range casos {
		r := buildRouter(&stubReservaService{err: caso.err})
		w := doRequest(r, http.MethodPost, "/v1/reservas",
			`{"id_escenario":1,"fecha":"2026-09-12"}`)
		assert.Equal(t, caso.status, w.Code, "error %v", caso.err)
	}
}

func TestObtenerReserva_NoEncontrada(t *testing.T) {
	r := buildRouter(&stubReservaService{err: service.ErrReservaNoEncontrada})
	w := doRequest(r, http.MethodGet, "/v1/reservas/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestObtenerReserva_IDInvalido(t *testing.T) {
	r := buildRouter(&stubReservaService{})
	w := doRequest(r, http.MethodGet, "/v1/reservas/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelarReserva_SinContenido(t *testing.T) {
	r := buildRouter(&stubReservaService{})
	w := doRequest(r, http.MethodDelete, "/v1/reservas/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAgregarElementos_RequiereLineas(t *testing.T) {
	r := buildRouter(&stubReservaService{resp: &dto.ReservaResponse{}})
	w := doRequest(r, http.MethodPost, "/v1/reservas/1/elementos", `{"elementos":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
