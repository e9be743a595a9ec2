package postgres

import (
	"context"

	"congo/internal/domain/entity"
	"congo/internal/domain/repository"
	"congo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Search returns products whose name contains the query substring, in id order.
func (repo *productRepository) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx).Order("id")
	if query != "" {
		tx = tx.Where("name ILIKE ?", "%"+query+"%")
	}

	var productsM []model.ProductModel
	if err := tx.Find(&productsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		products = append(products, toProductDomain(&productsM[i]))
	}

	return products, nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// toProductDomain maps the persistence model back to a pure domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          productM.ID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		Rating:      productM.Rating,
		PictureURL:  productM.PictureURL,
	}
}
