package repositories

import (
	"context"
	"errors"

	"github.com/ardhimaulana/go-foodorder/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductWithCategory is the row shape of the product listing: every
// product joined with its category name. CategoryName stays a pointer so
// a dangling category_id scans as null instead of failing.
type ProductWithCategory struct {
	ID           uint
	Name         string
	Description  string
	Price        decimal.Decimal
	ImageURL     string
	CategoryID   uint
	CategoryName *string
}

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context) ([]ProductWithCategory, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uint, product *models.Product) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db: db}
}

func (r *productRepository) GetAll(ctx context.Context) ([]ProductWithCategory, error) {
	var rows []ProductWithCategory
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.id, products.name, products.description, products.price, products.image_url, products.category_id, categories.name AS category_name").
		Joins("LEFT JOIN categories ON products.category_id = categories.id").
		Order("categories.name, products.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *productRepository) GetByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, id uint, product *models.Product) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category_id": product.CategoryID,
		"image_url":   product.ImageURL,
	})
	return res.RowsAffected, res.Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
