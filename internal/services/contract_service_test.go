package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/repository"
)

func newContractService(t *testing.T) (*ContractService, *models.Seller, *models.Seller, *models.Product) {
	db := setupTestDB(t)
	svc := NewContractService(
		repository.NewB2BContractRepository(db),
		repository.NewSellerRepository(db),
		repository.NewProductRepository(db),
	)
	a := seedSeller(t, db, "alpha", loc("52.0,21.0"))
	b := seedSeller(t, db, "beta", loc("50.0,19.9"))
	p := seedProduct(t, db, "linen")
	return svc, a, b, p
}

func TestContractService_CreateAndList(t *testing.T) {
	svc, a, b, p := newContractService(t)
	ctx := context.Background()

	contract, err := svc.CreateContract(ctx, &CreateContractRequest{
		SellerID:        a.ID,
		PartnerSellerID: b.ID,
		ProductID:       int64Ptr(p.ID),
		ContractTerms:   "net 30, FOB",
	})
	require.NoError(t, err)
	assert.NotZero(t, contract.ID)
	assert.False(t, contract.ContractStartDate.IsZero())

	forPartner, err := svc.ListContractsBySeller(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, forPartner, 1)
	assert.Equal(t, contract.ID, forPartner[0].ID)
}

func TestContractService_CreateValidation(t *testing.T) {
	svc, a, b, _ := newContractService(t)
	ctx := context.Background()

	_, err := svc.CreateContract(ctx, &CreateContractRequest{SellerID: a.ID, PartnerSellerID: b.ID})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.CreateContract(ctx, &CreateContractRequest{SellerID: a.ID, PartnerSellerID: 404, ContractTerms: "x"})
	assert.ErrorIs(t, err, apperror.ErrSellerNotFound)

	_, err = svc.CreateContract(ctx, &CreateContractRequest{SellerID: a.ID, PartnerSellerID: b.ID, ContractTerms: "x", ProductID: int64Ptr(404)})
	assert.ErrorIs(t, err, apperror.ErrProductNotFound)
}

func TestContractService_UpdateProductAndDates(t *testing.T) {
	svc, a, b, p := newContractService(t)
	ctx := context.Background()

	contract, err := svc.CreateContract(ctx, &CreateContractRequest{SellerID: a.ID, PartnerSellerID: b.ID, ContractTerms: "net 30"})
	require.NoError(t, err)

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateContract(ctx, contract.ID, models.B2BContractPatch{
		ProductID:         models.Some(p.ID),
		ContractStartDate: models.Some(start),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ProductID)
	assert.Equal(t, p.ID, *updated.ProductID)
	assert.True(t, start.Equal(updated.ContractStartDate))
	assert.Equal(t, "net 30", updated.ContractTerms)

	cleared, err := svc.UpdateContract(ctx, contract.ID, models.B2BContractPatch{ProductID: models.Null[int64]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.ProductID)

	_, err = svc.UpdateContract(ctx, contract.ID, models.B2BContractPatch{ProductID: models.Some(int64(9090))})
	assert.ErrorIs(t, err, apperror.ErrProductNotFound)

	_, err = svc.UpdateContract(ctx, contract.ID, models.B2BContractPatch{ContractTerms: models.Some("")})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestContractService_UpdateMissingContract(t *testing.T) {
	svc, _, _, _ := newContractService(t)

	_, err := svc.UpdateContract(context.Background(), 4242, models.B2BContractPatch{ProductID: models.Some(int64(9090))})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.NotErrorIs(t, err, apperror.ErrProductNotFound)
}

func TestContractService_Delete(t *testing.T) {
	svc, a, b, _ := newContractService(t)
	ctx := context.Background()

	contract, err := svc.CreateContract(ctx, &CreateContractRequest{SellerID: a.ID, PartnerSellerID: b.ID, ContractTerms: "net 30"})
	require.NoError(t, err)

	snapshot, err := svc.DeleteContract(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, "net 30", snapshot.ContractTerms)

	_, err = svc.DeleteContract(ctx, contract.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = svc.GetContract(ctx, contract.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
