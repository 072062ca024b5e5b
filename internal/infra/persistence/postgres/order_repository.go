package postgres

import (
	"context"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/infra/persistence/model"

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

// Create persists a new order with its item snapshots. GORM writes the order
// row and its items together.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Items {
		if i < len(orderM.Items) {
			order.Items[i].ID = orderM.Items[i].ID
			order.Items[i].OrderID = orderM.Items[i].OrderID
		}
	}

	return nil
}

// FindByID retrieves a single order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns all orders, newest first.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var models []model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders, nil
}

// UpdateOrderStatus sets the fulfilment status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return repo.updateColumn(ctx, id, "order_status", status.String())
}

// UpdatePaymentStatus sets the payment status of an order.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return repo.updateColumn(ctx, id, "payment_status", status.String())
}

func (repo *orderRepository) updateColumn(ctx context.Context, id uuid.UUID, column, value string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update order %s", column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ID:         item.ID,
			OrderID:    item.OrderID,
			MedicineID: item.MedicineID,
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		PaymentIntentID: data.PaymentIntentID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		ShippingAddress: entity.Address{
			Street:  data.Street,
			City:    data.City,
			State:   data.State,
			Zip:     data.Zip,
			Country: data.Country,
		},
		Items:         items,
		TotalMinor:    data.TotalMinor,
		Currency:      data.Currency,
		OrderStatus:   entity.OrderStatus(data.OrderStatus),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			MedicineID: item.MedicineID,
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		PaymentIntentID: data.PaymentIntentID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		Street:          data.ShippingAddress.Street,
		City:            data.ShippingAddress.City,
		State:           data.ShippingAddress.State,
		Zip:             data.ShippingAddress.Zip,
		Country:         data.ShippingAddress.Country,
		Items:           items,
		TotalMinor:      data.TotalMinor,
		Currency:        data.Currency,
		OrderStatus:     data.OrderStatus.String(),
		PaymentStatus:   data.PaymentStatus.String(),
	}
}
