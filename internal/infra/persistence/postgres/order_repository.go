package postgres

import (
	"context"

	"congo/internal/domain/entity"
	domainerrors "congo/internal/domain/errors"
	"congo/internal/domain/repository"
	"congo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with all of its lines. Run it inside
// TransactionManager.Execute for all-or-nothing semantics.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("order references a missing user or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Propagate the generated identifiers back to the entity.
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i := range order.Lines {
		order.Lines[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its lines.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Preload("Lines").Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// fromOrderDomain maps a domain order (with lines) to its persistence model.
// GORM creates the order_products rows through the Lines association.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:         order.ID,
		UserID:     order.UserID,
		Address:    order.Address,
		TotalPrice: order.TotalPrice,
	}

	for _, line := range order.Lines {
		orderM.Lines = append(orderM.Lines, model.OrderProductModel{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return orderM
}

// toOrderDomain maps the persistence model back to a pure domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:         orderM.ID,
		UserID:     orderM.UserID,
		Address:    orderM.Address,
		TotalPrice: orderM.TotalPrice,
		CreatedAt:  orderM.CreatedAt,
	}

	for _, lineM := range orderM.Lines {
		order.Lines = append(order.Lines, entity.OrderLine{
			OrderID:   lineM.OrderID,
			ProductID: lineM.ProductID,
			Quantity:  lineM.Quantity,
		})
	}

	return order
}
