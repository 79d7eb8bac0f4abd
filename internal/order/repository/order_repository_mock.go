package repository

import (
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a testify mock of OrderRepository for service tests.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(o *order.Order) (*order.Order, error) {
	args := m.Called(o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll() ([]order.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}
