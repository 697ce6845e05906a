package seeders

import (
	"github.com/ardhimaulana/go-foodorder/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type menuEntry struct {
	Category models.Category
	Products []models.Product
}

var menu = []menuEntry{
	{
		Category: models.Category{Name: "Pizza", Description: "Stone-baked pizzas"},
		Products: []models.Product{
			{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: decimal.NewFromFloat(7.50)},
			{Name: "Diavola", Description: "Spicy salami, chili oil", Price: decimal.NewFromFloat(9.00)},
			{Name: "Quattro Formaggi", Description: "Four cheese blend", Price: decimal.NewFromFloat(9.50)},
		},
	},
	{
		Category: models.Category{Name: "Burgers", Description: "Smashed beef burgers"},
		Products: []models.Product{
			{Name: "Classic Cheeseburger", Description: "Beef, cheddar, pickles", Price: decimal.NewFromFloat(8.00)},
			{Name: "BBQ Bacon Burger", Description: "Bacon, BBQ sauce, onion rings", Price: decimal.NewFromFloat(9.50)},
		},
	},
	{
		Category: models.Category{Name: "Drinks", Description: ""},
		Products: []models.Product{
			{Name: "Cola 33cl", Price: decimal.NewFromFloat(2.50)},
			{Name: "Sparkling Water 50cl", Price: decimal.NewFromFloat(1.80)},
		},
	},
	{
		Category: models.Category{Name: "Desserts", Description: "House-made desserts"},
		Products: []models.Product{
			{Name: "Tiramisu", Description: "Espresso-soaked savoiardi", Price: decimal.NewFromFloat(5.00)},
		},
	},
}

// DBSeed is idempotent: rerunning it never duplicates a category or
// product.
func DBSeed(db *gorm.DB) error {
	for _, entry := range menu {
		category := entry.Category
		if err := db.Where("name = ?", category.Name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
		for _, product := range entry.Products {
			product.CategoryID = category.ID
			if err := db.Where("name = ? AND category_id = ?", product.Name, category.ID).
				FirstOrCreate(&product).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
