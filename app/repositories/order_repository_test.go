package repositories

import (
	"testing"
	"time"

	"github.com/ardhimaulana/go-foodorder/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderRepo(db *gorm.DB) OrderRepository {
	return NewOrderRepository(db, NewOrderItemRepository(db))
}

func TestOrderNumberSequence(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	var ids []uint
	for i := 0; i < 3; i++ {
		id, err := repo.Create(testCtx(), decimal.NewFromFloat(10), nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	for i, id := range ids {
		order, err := repo.GetByID(testCtx(), id)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, i+1, order.OrderNumber)
	}

	// Deleting a non-latest order must not free its number.
	_, err := repo.Delete(testCtx(), ids[1])
	require.NoError(t, err)

	id, err := repo.Create(testCtx(), decimal.NewFromFloat(10), nil)
	require.NoError(t, err)
	order, err := repo.GetByID(testCtx(), id)
	require.NoError(t, err)
	assert.Equal(t, 4, order.OrderNumber)
}

func TestOrderCreateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	pizza := seedCategory(t, db, "Pizza")
	product := models.Product{Name: "Margherita", Description: "Tomato, mozzarella", Price: decimal.NewFromFloat(7.5), CategoryID: pizza.ID}
	require.NoError(t, db.Create(&product).Error)

	id, err := repo.Create(testCtx(), decimal.NewFromFloat(15), []models.OrderItem{
		{ProductID: product.ID, Quantity: 2, UnitPrice: decimal.NewFromFloat(7.5)},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	order, err := repo.GetByID(testCtx(), id)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 1, order.OrderNumber)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(15)))
	assert.False(t, order.CreatedAt.IsZero())

	items, err := repo.GetItems(testCtx(), id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromFloat(7.5)))
	require.NotNil(t, items[0].ProductName)
	assert.Equal(t, "Margherita", *items[0].ProductName)
	require.NotNil(t, items[0].ProductDescription)
	assert.Equal(t, "Tomato, mozzarella", *items[0].ProductDescription)
}

func TestOrderGetItemsSortedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	id, err := repo.Create(testCtx(), decimal.NewFromFloat(20), []models.OrderItem{
		{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromFloat(5)},
		{ProductID: 2, Quantity: 2, UnitPrice: decimal.NewFromFloat(7.5)},
	})
	require.NoError(t, err)

	items, err := repo.GetItems(testCtx(), id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Less(t, items[0].ID, items[1].ID)
	// Dangling product ids join to a null name rather than dropping the row.
	assert.Nil(t, items[0].ProductName)
}

func TestOrderGetAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	first, err := repo.Create(testCtx(), decimal.NewFromFloat(5), nil)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	second, err := repo.Create(testCtx(), decimal.NewFromFloat(10), nil)
	require.NoError(t, err)

	orders, err := repo.GetAll(testCtx())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
}

func TestOrderUpdateStatusAdvancesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	id, err := repo.Create(testCtx(), decimal.NewFromFloat(10), nil)
	require.NoError(t, err)

	before, err := repo.GetByID(testCtx(), id)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	rows, err := repo.UpdateStatus(testCtx(), id, "completed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	after, err := repo.GetByID(testCtx(), id)
	require.NoError(t, err)
	assert.Equal(t, "completed", after.Status)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestOrderUpdateStatusAbsentIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	rows, err := repo.UpdateStatus(testCtx(), 999999, "completed")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestOrderDeleteRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	id, err := repo.Create(testCtx(), decimal.NewFromFloat(15), []models.OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(7.5)},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(2.5)},
	})
	require.NoError(t, err)

	rows, err := repo.Delete(testCtx(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	items, err := repo.GetItems(testCtx(), id)
	require.NoError(t, err)
	assert.Len(t, items, 0)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)
}

func TestOrderDeleteAbsentIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := newOrderRepo(db)

	rows, err := repo.Delete(testCtx(), 999999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
