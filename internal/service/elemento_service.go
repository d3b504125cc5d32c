package service

import (
	"context"
	"errors"
	"time"

	"reservas/internal/dto"
	"reservas/internal/model"
	"reservas/internal/repository"

	"gorm.io/gorm"
)

type ElementoService interface {
	Crear(ctx context.Context, req dto.CrearElementoRequest) (*dto.ElementoResponse, error)
	ObtenerPorCodigo(ctx context.Context, codigo uint) (*dto.ElementoResponse, error)
	Listar(ctx context.Context, filter dto.ElementoFilter) (*dto.ElementoListResponse, error)
	Actualizar(ctx context.Context, codigo uint, req dto.ActualizarElementoRequest) (*dto.ElementoResponse, error)
	Eliminar(ctx context.Context, codigo uint) error
}

type elementoService struct {
	repo repository.ElementoRepository
}

func NewElementoService(repo repository.ElementoRepository) ElementoService {
	return &elementoService{repo: repo}
}

func (s *elementoService) Crear(ctx context.Context, req dto.CrearElementoRequest) (*dto.ElementoResponse, error) {
	elemento := &model.Elemento{
		Codigo:        req.Codigo,
		Nombre:        req.Nombre,
		Precio:        req.Precio,
		Stock:         req.Stock,
		FechaCreacion: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, elemento); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("ya existe un elemento con ese código")
		}
		return nil, err
	}
	return elementoToResponse(elemento), nil
}

func (s *elementoService) ObtenerPorCodigo(ctx context.Context, codigo uint) (*dto.ElementoResponse, error) {
	elemento, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, ErrElementoNoEncontrado
	}
	return elementoToResponse(elemento), nil
}

func (s *elementoService) Listar(ctx context.Context, filter dto.ElementoFilter) (*dto.ElementoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	elementos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ElementoResponse, len(elementos))
	for i := range elementos {
		data[i] = *elementoToResponse(&elementos[i])
	}
	return &dto.ElementoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *elementoService) Actualizar(ctx context.Context, codigo uint, req dto.ActualizarElementoRequest) (*dto.ElementoResponse, error) {
	elemento, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, ErrElementoNoEncontrado
	}

	if req.Nombre != nil {
		elemento.Nombre = *req.Nombre
	}
	if req.Precio != nil {
		elemento.Precio = *req.Precio
	}
	if req.Stock != nil {
		elemento.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, elemento); err != nil {
		return nil, err
	}
	return elementoToResponse(elemento), nil
}

func (s *elementoService) Eliminar(ctx context.Context, codigo uint) error {
	if err := s.repo.Delete(ctx, codigo); err != nil {
		return ErrElementoNoEncontrado
	}
	return nil
}

func elementoToResponse(e *model.Elemento) *dto.ElementoResponse {
	return &dto.ElementoResponse{
		Codigo:        e.Codigo,
		Nombre:        e.Nombre,
		Precio:        e.Precio,
		Stock:         e.Stock,
		FechaCreacion: e.FechaCreacion.Format(time.RFC3339),
	}
}
