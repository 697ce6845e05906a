package migrations

import (
	"github.com/ardhimaulana/go-foodorder/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{})
}
