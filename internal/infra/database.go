package infra

import (
	"fmt"

	"menuadmin/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewDatabase opens a GORM connection for the given driver and tunes the pool.
// SQLite is limited to a single connection so in-memory databases are shared
// by every caller and writers never contend for the file lock.
func NewDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres, "":
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
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
	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}
	return db, nil
}

// RunMigrations creates / updates every table, then applies the idempotent
// index patches AutoMigrate cannot express from struct tags.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Dish{},
		&model.DishFlavor{},
		&model.Setmeal{},
		&model.SetmealDish{},
		&model.Employee{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs composite index DDL. Each statement uses IF NOT EXISTS
// so re-running on an already-patched DB is safe, on postgres and sqlite alike.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// page queries filter by category and sale status together
		{"dish category/status index",
			`CREATE INDEX IF NOT EXISTS idx_dish_category_status ON dish (category_id, status)`},
		{"setmeal category/status index",
			`CREATE INDEX IF NOT EXISTS idx_setmeal_category_status ON setmeal (category_id, status)`},
		{"setmeal_dish pair index",
			`CREATE INDEX IF NOT EXISTS idx_setmeal_dish_pair ON setmeal_dish (setmeal_id, dish_id)`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
