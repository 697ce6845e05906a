package repositories

import (
	"context"

	"github.com/ardhimaulana/go-foodorder/app/models"
	"gorm.io/gorm"
)

// OrderItemRepository only creates rows: items exist solely as part of an
// order, inside the order repository's transaction.
type OrderItemRepository interface {
	BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}
