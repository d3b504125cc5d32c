package repository

import (
	"context"

	"reservas/internal/dto"
	"reservas/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ElementoRepository interface {
	Create(ctx context.Context, e *model.Elemento) error
	FindByCodigo(ctx context.Context, codigo uint) (*model.Elemento, error)
	// FindByCodigoForUpdate locks the element row inside a transaction so the
	// stock check and the decrement below it see a consistent value.
	FindByCodigoForUpdate(ctx context.Context, tx *gorm.DB, codigo uint) (*model.Elemento, error)
	List(ctx context.Context, filter dto.ElementoFilter) ([]model.Elemento, int64, error)
	Update(ctx context.Context, e *model.Elemento) error
	Delete(ctx context.Context, codigo uint) error

	// Used inside transactions — callers must pass the tx instance.
	// DescontarStockTx is conditional: it only decrements when enough stock
	// remains, and reports whether a row was updated.
	DescontarStockTx(tx *gorm.DB, codigo uint, cantidad int) (bool, error)
	RestaurarStockTx(tx *gorm.DB, codigo uint, cantidad int) error
}

type elementoRepo struct{ db *gorm.DB }

func NewElementoRepository(db *gorm.DB) ElementoRepository { return &elementoRepo{db: db} }

func (r *elementoRepo) Create(ctx context.Context, e *model.Elemento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *elementoRepo) FindByCodigo(ctx context.Context, codigo uint) (*model.Elemento, error) {
	var e model.Elemento
	err := r.db.WithContext(ctx).First(&e, codigo).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *elementoRepo) FindByCodigoForUpdate(ctx context.Context, tx *gorm.DB, codigo uint) (*model.Elemento, error) {
	var e model.Elemento
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, codigo).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *elementoRepo) List(ctx context.Context, filter dto.ElementoFilter) ([]model.Elemento, int64, error) {
	var elementos []model.Elemento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Elemento{})
	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("codigo ASC").Limit(filter.Limit).Offset(offset).Find(&elementos).Error
	return elementos, total, err
}

func (r *elementoRepo) Update(ctx context.Context, e *model.Elemento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *elementoRepo) Delete(ctx context.Context, codigo uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Elemento{}, codigo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *elementoRepo) DescontarStockTx(tx *gorm.DB, codigo uint, cantidad int) (bool, error) {
	res := tx.Model(&model.Elemento{}).
		Where("codigo = ? AND stock >= ?", codigo, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	return res.RowsAffected > 0, res.Error
}

func (r *elementoRepo) RestaurarStockTx(tx *gorm.DB, codigo uint, cantidad int) error {
	return tx.Model(&model.Elemento{}).
		Where("codigo = ?", codigo).
		Update("stock", gorm.Expr("stock + ?", cantidad)).Error
}
