package infra

import (
	"fmt"

	"reservas/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express on its own.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Escenario{},
		&model.Elemento{},
		&model.Reserva{},
		&model.ReservaElemento{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate does not emit
// reliably on an existing database. Safe to re-run on every startup.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// The double-booking guard. AutoMigrate creates it on a fresh DB;
		// this guarantees it on databases created before the index existed.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uq_reservas_escenario_fecha') THEN
		    CREATE UNIQUE INDEX uq_reservas_escenario_fecha
		        ON reservas (id_escenario, fecha);
		  END IF;
		END $$`,
		// Lookup index for the availability endpoint and the per-user listing.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_reservas_correo_usuario') THEN
		    CREATE INDEX idx_reservas_correo_usuario
		        ON reservas (correo_usuario);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
