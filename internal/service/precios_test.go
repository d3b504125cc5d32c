package service_test

import (
	"testing"

	"reservas/internal/model"
	"reservas/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularPrecioTotal_SoloBase(t *testing.T) {
	r := &model.Reserva{
		PrecioBase: 100000,
		Escenario:  &model.Escenario{ID: 1, Precio: 100000},
	}
	total, err := service.CalcularPrecioTotal(r)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), total)
}

func TestCalcularPrecioTotal_ConLineas(t *testing.T) {
	r := &model.Reserva{
		PrecioBase: 100000,
		Escenario:  &model.Escenario{ID: 1},
		Elementos: []model.ReservaElemento{
			{Cantidad: 2, Elemento: &model.Elemento{Codigo: 7, Precio: 5000}},
			{Cantidad: 1, Elemento: &model.Elemento{Codigo: 8, Precio: 12000}},
		},
	}
	total, err := service.CalcularPrecioTotal(r)
	require.NoError(t, err)
	// 100000 + 5000×2 + 12000×1
	assert.Equal(t, int64(122000), total)
}

func TestCalcularPrecioTotal_SinEscenario(t *testing.T) {
	r := &model.Reserva{PrecioBase: 100000}
	_, err := service.CalcularPrecioTotal(r)
	assert.ErrorIs(t, err, service.ErrEscenarioNoEncontrado)
}

func TestCalcularPrecioTotal_LineaSinElemento(t *testing.T) {
	r := &model.Reserva{
		PrecioBase: 100000,
		Escenario:  &model.Escenario{ID: 1},
		Elementos:  []model.ReservaElemento{{Cantidad: 2}},
	}
	_, err := service.CalcularPrecioTotal(r)
	assert.ErrorIs(t, err, service.ErrElementoNoEncontrado)
}

func TestCalcularPrecioTotal_NoMutaLaReserva(t *testing.T) {
	r := &model.Reserva{
		PrecioBase: 100000,
		Escenario:  &model.Escenario{ID: 1},
		Elementos: []model.ReservaElemento{
			{Cantidad: 2, Elemento: &model.Elemento{Codigo: 7, Precio: 5000}},
		},
	}
	antes := *r
	_, err := service.CalcularPrecioTotal(r)
	require.NoError(t, err)
	assert.Equal(t, antes.PrecioBase, r.PrecioBase)
	assert.Equal(t, antes.Estado, r.Estado)
	assert.Len(t, r.Elementos, 1)
}
