package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-services/internal/usecase/order"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	uc  order.Usecase
	log *zap.Logger
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(uc order.Usecase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		uc:  uc,
		log: log,
	}
}

// OrderPayload represents the HTTP request body for creating or replacing an
// order.
type OrderPayload struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}

// OrderResponse represents the HTTP response for order data. UserName and
// ProductName are always populated: either the real name or a placeholder.
type OrderResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ProductID   int64  `json:"product_id"`
	UserName    string `json:"user_name"`
	ProductName string `json:"product_name"`
	CreatedAt   string `json:"created_at"`
}

func toOrderResponse(o *order.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		ProductID:   o.ProductID,
		UserName:    o.UserName,
		ProductName: o.ProductName,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req OrderPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create order request", zap.Error(err))
		bindError(c, err)
		return
	}

	resp, err := h.uc.CreateOrder(c.Request.Context(), order.CreateOrderRequest{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(resp))
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetOrder(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(resp))
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OrderPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update order request", zap.Error(err))
		bindError(c, err)
		return
	}

	resp, err := h.uc.UpdateOrder(c.Request.Context(), order.UpdateOrderRequest{
		ID:        id,
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(resp))
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteOrder(c.Request.Context(), id); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	resp, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	orders := make([]OrderResponse, len(resp))
	for i, o := range resp {
		orders[i] = toOrderResponse(&o)
	}

	c.JSON(http.StatusOK, orders)
}
