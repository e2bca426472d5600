package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/collaboration-service/internal/models"
)

type mockBrandRegistry struct {
	mock.Mock
}

func (m *mockBrandRegistry) GetBrand(ctx context.Context, id int64) (*models.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *mockBrandRegistry) CreateBrand(ctx context.Context, input *models.BrandInput) (*models.Brand, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *mockBrandRegistry) UpdateBrand(ctx context.Context, id int64, input *models.BrandInput) (*models.Brand, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *mockBrandRegistry) DeleteBrand(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRegistry struct {
	mock.Mock
}

func (m *mockCategoryRegistry) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRegistry) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRegistry) CreateCategory(ctx context.Context, input *models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRegistry) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Seller{}, &models.Product{}, &models.Collaboration{}, &models.B2BContract{}))
	return db
}

func seedSeller(t *testing.T, db *gorm.DB, name string, location *string) *models.Seller {
	t.Helper()
	seller := &models.Seller{Name: name, Email: name + "@example.com", WarehouseLocation: location, IsActive: true}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

func seedProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: 9.99, StockQuantity: 5}
	require.NoError(t, db.Create(product).Error)
	return product
}

func loc(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
