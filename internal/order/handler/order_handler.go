package handler

import (
	"net/http"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/httpx"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order component over HTTP.
type OrderHandler struct {
	Service service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// CreateOrder handles POST /orders: decode, validate, delegate. Validation
// failures carry every violation in one response; wrong-typed fields decode
// to their zero values and surface as field errors, so only a body that is
// not a JSON object gets the bare "Invalid request body" answer.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}

	if errs := order.ValidateCreateOrder(&req); len(errs) > 0 {
		httpx.ValidationFailed(c, errs)
		return
	}

	created, err := h.Service.CreateOrder(req)
	if err != nil {
		_ = c.Error(err)
		httpx.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListOrders handles GET /orders, returning stored orders in creation order.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.Service.ListOrders()
	if err != nil {
		_ = c.Error(err)
		httpx.Internal(c)
		return
	}

	if orders == nil {
		orders = []order.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
