package repository

import (
	"context"
	"time"

	"reservas/internal/model"

	"gorm.io/gorm"
)

type ReservaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, r *model.Reserva) error
	// FindByID eager-loads lines (with their elements) and the escenario so
	// the total price can be derived without further queries.
	FindByID(ctx context.Context, id uint) (*model.Reserva, error)
	// FindByIDTx loads the bare reservation row inside a transaction — used
	// for ownership checks before mutating lines.
	FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*model.Reserva, error)
	ExisteParaEscenarioFecha(ctx context.Context, tx *gorm.DB, idEscenario uint, fecha time.Time) (bool, error)
	ListByUsuario(ctx context.Context, correo string) ([]model.Reserva, error)
	UpdateEstado(ctx context.Context, id uint, estado model.EstadoReserva) error
	DeleteTx(tx *gorm.DB, id uint) error

	FindLineaTx(ctx context.Context, tx *gorm.DB, idReserva, codigo uint) (*model.ReservaElemento, error)
	ListLineasTx(ctx context.Context, tx *gorm.DB, idReserva uint) ([]model.ReservaElemento, error)
	CreateLineaTx(tx *gorm.DB, linea *model.ReservaElemento) error
	UpdateLineaCantidadTx(tx *gorm.DB, idReserva, codigo uint, cantidad int) error
	DeleteLineaTx(tx *gorm.DB, idReserva, codigo uint) error

	// DB exposes the underlying *gorm.DB so the service can open transactions.
	DB() *gorm.DB
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) DB() *gorm.DB { return r.db }

func (r *reservaRepo) Create(ctx context.Context, tx *gorm.DB, res *model.Reserva) error {
	return tx.WithContext(ctx).Create(res).Error
}

func (r *reservaRepo) FindByID(ctx context.Context, id uint) (*model.Reserva, error) {
	var res model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Elementos.Elemento").
		Preload("Escenario").
		First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservaRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*model.Reserva, error) {
	var res model.Reserva
	err := tx.WithContext(ctx).First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservaRepo) ExisteParaEscenarioFecha(ctx context.Context, tx *gorm.DB, idEscenario uint, fecha time.Time) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&model.Reserva{}).
		Where("id_escenario = ? AND fecha = ?", idEscenario, fecha).
		Count(&count).Error
	return count > 0, err
}

func (r *reservaRepo) ListByUsuario(ctx context.Context, correo string) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Elementos.Elemento").
		Preload("Escenario").
		Where("correo_usuario = ?", correo).
		Order("fecha ASC").
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) UpdateEstado(ctx context.Context, id uint, estado model.EstadoReserva) error {
	return r.db.WithContext(ctx).Model(&model.Reserva{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *reservaRepo) DeleteTx(tx *gorm.DB, id uint) error {
	// Lines first — the FK cascade covers Postgres, but deleting explicitly
	// keeps the stub-backed tests honest about what goes away.
	if err := tx.Where("id_reserva = ?", id).Delete(&model.ReservaElemento{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Reserva{}, id).Error
}

func (r *reservaRepo) FindLineaTx(ctx context.Context, tx *gorm.DB, idReserva, codigo uint) (*model.ReservaElemento, error) {
	var linea model.ReservaElemento
	err := tx.WithContext(ctx).
		Where("id_reserva = ? AND codigo_elemento = ?", idReserva, codigo).
		First(&linea).Error
	if err != nil {
		return nil, err
	}
	return &linea, nil
}

func (r *reservaRepo) ListLineasTx(ctx context.Context, tx *gorm.DB, idReserva uint) ([]model.ReservaElemento, error) {
	var lineas []model.ReservaElemento
	err := tx.WithContext(ctx).
		Where("id_reserva = ?", idReserva).
		Find(&lineas).Error
	return lineas, err
}

func (r *reservaRepo) CreateLineaTx(tx *gorm.DB, linea *model.ReservaElemento) error {
	return tx.Create(linea).Error
}

func (r *reservaRepo) UpdateLineaCantidadTx(tx *gorm.DB, idReserva, codigo uint, cantidad int) error {
	return tx.Model(&model.ReservaElemento{}).
		Where("id_reserva = ? AND codigo_elemento = ?", idReserva, codigo).
		Update("cantidad", cantidad).Error
}

func (r *reservaRepo) DeleteLineaTx(tx *gorm.DB, idReserva, codigo uint) error {
	res := tx.Where("id_reserva = ? AND codigo_elemento = ?", idReserva, codigo).
		Delete(&model.ReservaElemento{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
