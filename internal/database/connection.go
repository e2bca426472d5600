// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/collaboration-service/internal/config"
	"github.com/javajoker/collaboration-service/internal/models"
)

// Initialize connects to PostgreSQL with the pool settings from cfg.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.DSN()), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

// Open wraps gorm.Open with the settings every connection shares.
// Driver errors are translated so unique violations surface as
// gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(logLevel)),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

// Ping reports whether the database answers.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Seller{},
		&models.Product{},
		&models.Collaboration{},
		&models.B2BContract{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		createForeignKeys(db)
	}
	createIndexes(db)

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createForeignKeys(db *gorm.DB) {
	constraints := []struct {
		table, name, definition string
	}{
		{"collaborations", "fk_collaborations_seller", "FOREIGN KEY (seller_id) REFERENCES sellers(id)"},
		{"collaborations", "fk_collaborations_partner_seller", "FOREIGN KEY (partner_seller_id) REFERENCES sellers(id)"},
		{"collaborations", "fk_collaborations_product", "FOREIGN KEY (product_id) REFERENCES products(id)"},
		{"b2b_contracts", "fk_b2b_contracts_seller", "FOREIGN KEY (seller_id) REFERENCES sellers(id)"},
		{"b2b_contracts", "fk_b2b_contracts_partner_seller", "FOREIGN KEY (partner_seller_id) REFERENCES sellers(id)"},
		{"b2b_contracts", "fk_b2b_contracts_product", "FOREIGN KEY (product_id) REFERENCES products(id)"},
	}

	for _, fk := range constraints {
		if db.Migrator().HasConstraint(fk.table, fk.name) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", fk.table, fk.name, fk.definition)
		if err := db.Exec(stmt).Error; err != nil {
			logrus.WithError(err).WithField("constraint", fk.name).Warn("Failed to create foreign key")
		}
	}
}

func createIndexes(db *gorm.DB) {
	indexes := []string{
		// Collaboration indexes
		"CREATE INDEX IF NOT EXISTS idx_collaborations_seller_type ON collaborations(seller_id, collaboration_type)",
		"CREATE INDEX IF NOT EXISTS idx_collaborations_partner_type ON collaborations(partner_seller_id, collaboration_type)",

		// Contract indexes
		"CREATE INDEX IF NOT EXISTS idx_b2b_contracts_dates ON b2b_contracts(contract_start_date, contract_end_date)",

		// Seller indexes
		"CREATE INDEX IF NOT EXISTS idx_sellers_active ON sellers(is_active)",

		// Audit indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			// Continue with other indexes instead of failing completely
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}
}

// SeedDemoData inserts a small seller directory and product catalogue when
// the sellers table is empty.
func SeedDemoData(db *gorm.DB) error {
	var sellerCount int64
	if err := db.Model(&models.Seller{}).Count(&sellerCount).Error; err != nil {
		return fmt.Errorf("failed to count sellers: %w", err)
	}
	if sellerCount > 0 {
		logrus.Info("Demo data already present, skipping seed")
		return nil
	}

	logrus.Info("Seeding demo data...")

	sellers := []models.Seller{
		demoSeller("Vistula Homeware", "hello@vistula.example", "52.2297,21.0122", "B2B,B2C", 4.6),
		demoSeller("Wawel Crafts", "shop@wawel.example", "50.0647,19.9450", "B2C", 4.2),
		demoSeller("Praga Wholesale", "trade@praga.example", "52.2550,21.0350", "B2B", 3.9),
		demoSeller("Tevere Ceramiche", "info@tevere.example", "41.8919,12.5113", "B2B", 4.8),
	}
	products := []models.Product{
		{Name: "Stoneware mug", Price: 12.50, StockQuantity: 240},
		{Name: "Linen tea towel", Price: 8.90, StockQuantity: 500},
		{Name: "Oak serving board", Price: 34.00, StockQuantity: 60},
	}

	err := WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&sellers).Error; err != nil {
			return fmt.Errorf("failed to seed sellers: %w", err)
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"sellers":  len(sellers),
		"products": len(products),
	}).Info("Demo data seeding completed")
	return nil
}

func demoSeller(name, email, location, collaborationTypes string, rating float64) models.Seller {
	return models.Seller{
		Name:                        name,
		Email:                       email,
		WarehouseLocation:           &location,
		PreferredCollaborationTypes: &collaborationTypes,
		SellerRating:                rating,
		IsActive:                    true,
	}
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
