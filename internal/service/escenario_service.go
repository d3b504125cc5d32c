package service

import (
	"context"
	"time"

	"reservas/internal/dto"
	"reservas/internal/model"
	"reservas/internal/repository"
)

type EscenarioService interface {
	Crear(ctx context.Context, req dto.CrearEscenarioRequest) (*dto.EscenarioResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.EscenarioResponse, error)
	Listar(ctx context.Context, filter dto.EscenarioFilter) (*dto.EscenarioListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarEscenarioRequest) (*dto.EscenarioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type escenarioService struct {
	repo repository.EscenarioRepository
}

func NewEscenarioService(repo repository.EscenarioRepository) EscenarioService {
	return &escenarioService{repo: repo}
}

func (s *escenarioService) Crear(ctx context.Context, req dto.CrearEscenarioRequest) (*dto.EscenarioResponse, error) {
	escenario := &model.Escenario{
		Direccion:     req.Direccion,
		Capacidad:     req.Capacidad,
		Precio:        req.Precio,
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, escenario); err != nil {
		return nil, err
	}
	return escenarioToResponse(escenario), nil
}

func (s *escenarioService) ObtenerPorID(ctx context.Context, id uint) (*dto.EscenarioResponse, error) {
	escenario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEscenarioNoEncontrado
	}
	return escenarioToResponse(escenario), nil
}

func (s *escenarioService) Listar(ctx context.Context, filter dto.EscenarioFilter) (*dto.EscenarioListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	escenarios, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.EscenarioResponse, len(escenarios))
	for i := range escenarios {
		data[i] = *escenarioToResponse(&escenarios[i])
	}
	return &dto.EscenarioListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *escenarioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEscenarioRequest) (*dto.EscenarioResponse, error) {
	escenario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEscenarioNoEncontrado
	}

	if req.Direccion != nil {
		escenario.Direccion = *req.Direccion
	}
	if req.Capacidad != nil {
		escenario.Capacidad = *req.Capacidad
	}
	if req.Precio != nil {
		escenario.Precio = *req.Precio
	}
	if req.Activo != nil {
		escenario.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, escenario); err != nil {
		return nil, err
	}
	return escenarioToResponse(escenario), nil
}

func (s *escenarioService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrEscenarioNoEncontrado
	}
	return nil
}

func escenarioToResponse(e *model.Escenario) *dto.EscenarioResponse {
	return &dto.EscenarioResponse{
		ID:            e.ID,
		Direccion:     e.Direccion,
		Capacidad:     e.Capacidad,
		Precio:        e.Precio,
		Activo:        e.Activo,
		FechaCreacion: e.FechaCreacion.Format(time.RFC3339),
	}
}
