package impl

import (
	"context"
	"testing"

	"congo/internal/domain/entity"
	domainerrors "congo/internal/domain/errors"
	"congo/internal/domain/repository"
	mockRepo "congo/internal/mocks/repository"
	"congo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return service, productRepo
}

func TestCatalogService_ListProducts_All(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Product{
		testProduct(1, "Mug", "10.00"),
		testProduct(2, "Coaster", "5.00"),
	}

	productRepo.EXPECT().Search(ctx, "").Return(catalog, nil)

	products, err := service.ListProducts(ctx, "")

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_ListProducts_Filtered(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()

	productRepo.EXPECT().
		Search(ctx, "mug").
		Return([]*entity.Product{testProduct(1, "Mug", "10.00")}, nil)

	products, err := service.ListProducts(ctx, "mug")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service, productRepo := createTestCatalogService(t)

	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}
