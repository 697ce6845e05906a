package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ardhimaulana/go-foodorder/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemWithProduct is an order line joined with its product's name and
// description, the shape the API exposes under an order's "items".
type OrderItemWithProduct struct {
	ID                 uint
	ProductID          uint
	Quantity           int
	UnitPrice          decimal.Decimal
	ProductName        *string
	ProductDescription *string
}

type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetItems(ctx context.Context, orderID uint) ([]OrderItemWithProduct, error)
	Create(ctx context.Context, totalPrice decimal.Decimal, items []models.OrderItem) (uint, error)
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type gormOrderRepository struct {
	db    *gorm.DB
	items OrderItemRepository
}

func NewOrderRepository(db *gorm.DB, items OrderItemRepository) OrderRepository {
	return &gormOrderRepository{db: db, items: items}
}

func (r *gormOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) GetItems(ctx context.Context, orderID uint) ([]OrderItemWithProduct, error) {
	var rows []OrderItemWithProduct
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("order_items.id, order_items.product_id, order_items.quantity, order_items.unit_price, products.name AS product_name, products.description AS product_description").
		Joins("LEFT JOIN products ON order_items.product_id = products.id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts the order row and all of its items as one transaction.
// The order number is COALESCE(MAX(order_number), 0) + 1, read inside the
// same transaction; numbers only grow and are never reused after deletes.
// If any item insert fails the whole order rolls back, so a half-written
// order can never be observed.
func (r *gormOrderRepository) Create(ctx context.Context, totalPrice decimal.Decimal, items []models.OrderItem) (uint, error) {
	var orderID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&models.Order{}).
			Select("COALESCE(MAX(order_number), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}

		order := models.Order{
			OrderNumber: next,
			Status:      models.OrderStatusPending,
			TotalPrice:  totalPrice,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := r.items.BulkCreate(ctx, tx, items); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *gormOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	return res.RowsAffected, res.Error
}

// Delete removes the order's items first and the order row second, in one
// transaction, so a failing order delete cannot leave orphaned items.
func (r *gormOrderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
