package repository

import (
	"fmt"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order"
	"gorm.io/gorm"
)

// OrderRepository is the only access path to stored orders. The store lives
// for the process lifetime; there is no update or delete.
type OrderRepository interface {
	Save(o *order.Order) (*order.Order, error)
	FindAll() ([]order.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Save(o *order.Order) (*order.Order, error) {
	if err := r.db.Create(o).Error; err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}
	return o, nil
}

// FindAll returns every stored order in insertion order, with each order's
// items in the order they were submitted.
func (r *orderRepository) FindAll() ([]order.Order, error) {
	var orders []order.Order
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") }).
		Order("seq asc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}
