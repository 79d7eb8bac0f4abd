package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order/repository"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

const (
	listCacheKey = "orders:all"
	listCacheTTL = time.Minute
)

// OrderService is the business contract exposed to the HTTP layer.
type OrderService interface {
	CreateOrder(req order.CreateOrderRequest) (*order.Order, error)
	ListOrders() ([]order.Order, error)
}

type orderService struct {
	repo   repository.OrderRepository
	rdb    *redis.Client // nil when no cache is configured
	pub    Publisher
	logger *slog.Logger
}

func NewOrderService(repo repository.OrderRepository, rdb *redis.Client, pub Publisher, logger *slog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		rdb:    rdb,
		pub:    pub,
		logger: logger,
	}
}

// CreateOrder stores the order, publishes order.created and drops the list
// cache. req must already have passed order.ValidateCreateOrder.
func (s *orderService) CreateOrder(req order.CreateOrderRequest) (*order.Order, error) {
	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     *it.Price,
		})
	}

	newOrder := &order.Order{
		CustomerID:  req.CustomerID,
		Items:       items,
		TotalAmount: *req.TotalAmount,
	}

	saved, err := s.repo.Save(newOrder)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	if err := s.publishOrderCreated(saved); err != nil {
		// The order is already stored; a lost event must not fail the request.
		s.logger.Warn("order stored but order.created publish failed",
			"orderId", saved.ID.String(),
			"error", err.Error(),
		)
	}

	if s.rdb != nil {
		s.rdb.Del(ctx, listCacheKey)
	}

	return saved, nil
}

// ListOrders returns every stored order in insertion order, going through
// the list cache when one is configured. Cache trouble degrades to a
// repository read, never to a failed request.
func (s *orderService) ListOrders() ([]order.Order, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var orders []order.Order
			if json.Unmarshal([]byte(val), &orders) == nil {
				return orders, nil
			}
		}
	}

	orders, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(orders); err == nil {
			s.rdb.Set(ctx, listCacheKey, data, listCacheTTL)
		}
	}

	return orders, nil
}

func (s *orderService) publishOrderCreated(o *order.Order) error {
	event := struct {
		OrderID     string  `json:"orderId"`
		CustomerID  string  `json:"customerId"`
		TotalAmount float64 `json:"totalAmount"`
		Timestamp   string  `json:"timestamp"`
	}{
		OrderID:     o.ID.String(),
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializing order.created event: %w", err)
	}
	return s.pub.Publish(OrdersExchange, OrderCreatedRouting, body)
}
