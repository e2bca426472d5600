package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/collaboration-service/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "open sqlite")

	// A second pooled connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Seller{},
		&models.Product{},
		&models.Collaboration{},
		&models.B2BContract{},
	))
	return db
}

func strPtr(s string) *string { return &s }

func createSeller(t *testing.T, db *gorm.DB, name, location string) *models.Seller {
	t.Helper()
	seller := &models.Seller{
		Name:              name,
		Email:             name + "@example.com",
		WarehouseLocation: strPtr(location),
		IsActive:          true,
	}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

func createCollaboration(t *testing.T, repo CollaborationRepository, sellerID, partnerID int64, typ models.CollaborationType) *models.Collaboration {
	t.Helper()
	c := &models.Collaboration{
		SellerID:               sellerID,
		PartnerSellerID:        partnerID,
		CollaborationType:      typ,
		AgreementDetails:       "initial terms",
		CollaborationStartDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}
