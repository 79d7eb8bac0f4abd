package repository_test

import (
	"fmt"
	"testing"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory SQLite database, named per test so
// state never leaks between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&order.Order{}, &order.Item{})
	assert.NoError(t, err)

	return db
}

func newOrder(customerID string, total float64) *order.Order {
	return &order.Order{
		CustomerID: customerID,
		Items: []order.Item{
			{ProductID: "P1", Quantity: 2, Price: total / 2},
		},
		TotalAmount: total,
	}
}

func TestOrderRepository_Save_AssignsID(t *testing.T) {
	repo := repository.NewOrderRepository(setupTestDB(t))

	saved, err := repo.Save(newOrder("CUST-1", 20))

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestOrderRepository_Save_PersistsItems(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)

	saved, err := repo.Save(newOrder("CUST-1", 20))
	assert.NoError(t, err)

	var fetched order.Order
	err = db.Preload("Items").First(&fetched, "id = ?", saved.ID).Error
	assert.NoError(t, err)
	assert.Equal(t, "CUST-1", fetched.CustomerID)
	assert.Len(t, fetched.Items, 1)
	assert.Equal(t, "P1", fetched.Items[0].ProductID)
}

func TestOrderRepository_FindAll_InsertionOrder(t *testing.T) {
	repo := repository.NewOrderRepository(setupTestDB(t))

	for i := 1; i <= 3; i++ {
		_, err := repo.Save(newOrder(fmt.Sprintf("CUST-%d", i), float64(i*10)))
		assert.NoError(t, err)
	}

	orders, err := repo.FindAll()

	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, "CUST-1", orders[0].CustomerID)
	assert.Equal(t, "CUST-2", orders[1].CustomerID)
	assert.Equal(t, "CUST-3", orders[2].CustomerID)
}

func TestOrderRepository_FindAll_ItemsKeepSubmissionOrder(t *testing.T) {
	repo := repository.NewOrderRepository(setupTestDB(t))

	multi := &order.Order{
		CustomerID: "CUST-1",
		Items: []order.Item{
			{ProductID: "P1", Quantity: 1, Price: 5},
			{ProductID: "P2", Quantity: 2, Price: 10},
			{ProductID: "P3", Quantity: 3, Price: 15},
		},
		TotalAmount: 70,
	}
	_, err := repo.Save(multi)
	assert.NoError(t, err)

	orders, err := repo.FindAll()

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 3)
	assert.Equal(t, "P1", orders[0].Items[0].ProductID)
	assert.Equal(t, "P2", orders[0].Items[1].ProductID)
	assert.Equal(t, "P3", orders[0].Items[2].ProductID)
}

func TestOrderRepository_FindAll_Empty(t *testing.T) {
	repo := repository.NewOrderRepository(setupTestDB(t))

	orders, err := repo.FindAll()

	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_DuplicatePayloadsGetDistinctIDs(t *testing.T) {
	repo := repository.NewOrderRepository(setupTestDB(t))

	first, err := repo.Save(newOrder("CUST-1", 20))
	assert.NoError(t, err)
	second, err := repo.Save(newOrder("CUST-1", 20))
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
