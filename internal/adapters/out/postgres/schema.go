package postgres

import (
	"fmt"
	"time"

	"pharmacy/internal/adapters/out/postgres/catalogrepo"
	"pharmacy/internal/adapters/out/postgres/courierrepo"
	"pharmacy/internal/adapters/out/postgres/feedbackrepo"
	"pharmacy/internal/adapters/out/postgres/notificationrepo"
	"pharmacy/internal/adapters/out/postgres/orderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig sizes the connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL. Driver errors are translated so that unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string, pool PoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	return db, nil
}

type foreignKey struct {
	table, name, definition string
}

var foreignKeys = []foreignKey{
	{"medicines", "fk_medicines_category", "FOREIGN KEY (category_id) REFERENCES categories(id)"},
	{"orders", "fk_orders_medicine", "FOREIGN KEY (medicine_id) REFERENCES medicines(id)"},
	{"orders", "fk_orders_courier", "FOREIGN KEY (courier_id) REFERENCES couriers(id) ON DELETE SET NULL"},
	{"couriers", "fk_couriers_current_order", "FOREIGN KEY (current_order_id) REFERENCES orders(id) ON DELETE SET NULL"},
	{"feedbacks", "fk_feedbacks_order", "FOREIGN KEY (order_id) REFERENCES orders(id)"},
	{"feedbacks", "fk_feedbacks_courier", "FOREIGN KEY (courier_id) REFERENCES couriers(id)"},
}

// Migrate creates or updates every table and adds the foreign keys that
// the DTOs do not declare.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&catalogrepo.CategoryDTO{},
		&catalogrepo.MedicineDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&feedbackrepo.FeedbackDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		var exists bool
		err = db.Raw(
			"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)", fk.name,
		).Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("inspect constraint %s: %w", fk.name, err)
		}
		if exists {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", fk.table, fk.name, fk.definition)
		if err = db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	return nil
}
