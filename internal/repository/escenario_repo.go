package repository

import (
	"context"

	"reservas/internal/dto"
	"reservas/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EscenarioRepository interface {
	Create(ctx context.Context, e *model.Escenario) error
	FindByID(ctx context.Context, id uint) (*model.Escenario, error)
	// FindByIDForUpdate takes a FOR UPDATE row lock — callers must pass a live
	// transaction. Serializes concurrent reservation attempts on one venue.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Escenario, error)
	List(ctx context.Context, filter dto.EscenarioFilter) ([]model.Escenario, int64, error)
	Update(ctx context.Context, e *model.Escenario) error
	Delete(ctx context.Context, id uint) error
}

type escenarioRepo struct{ db *gorm.DB }

func NewEscenarioRepository(db *gorm.DB) EscenarioRepository { return &escenarioRepo{db: db} }

func (r *escenarioRepo) Create(ctx context.Context, e *model.Escenario) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *escenarioRepo) FindByID(ctx context.Context, id uint) (*model.Escenario, error) {
	var e model.Escenario
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *escenarioRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Escenario, error) {
	var e model.Escenario
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *escenarioRepo) List(ctx context.Context, filter dto.EscenarioFilter) ([]model.Escenario, int64, error) {
	var escenarios []model.Escenario
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Escenario{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("id ASC").Limit(filter.Limit).Offset(offset).Find(&escenarios).Error
	return escenarios, total, err
}

func (r *escenarioRepo) Update(ctx context.Context, e *model.Escenario) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *escenarioRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Escenario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
