package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"stockgate/internal/core/apperror"
	"stockgate/internal/domain/orders"
	"stockgate/internal/infrastructure/http/v1/dto"
	"stockgate/internal/infrastructure/upstream"
)

// OrderBackend is the upstream surface used by order endpoints.
type OrderBackend interface {
	StockOrders(ctx context.Context, role string) ([]upstream.Order, error)
	StockOrder(ctx context.Context, id string) (*upstream.Order, error)
	ChangeOrderStatus(ctx context.Context, orderID string, status orders.Status) error
}

// OrderHandler handles stock order lifecycle endpoints.
type OrderHandler struct {
	*BaseHandler
	backend OrderBackend
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(base *BaseHandler, backend OrderBackend) *OrderHandler {
	return &OrderHandler{BaseHandler: base, backend: backend}
}

// List lists the session role's stock orders, optionally filtered by status
// via ?status=Processing|Completed|Returned.
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	all, err := h.backend.StockOrders(c.Request.Context(), string(h.GetRole(c)))
	if err != nil {
		h.Error(c, err)
		return
	}

	filter := c.Query("status")
	if filter == "" {
		h.OK(c, dto.FromOrders(all))
		return
	}

	status := orders.Status(filter)
	if !status.Valid() {
		h.Error(c, apperror.NewValidation("unknown order status").WithDetail("status", filter))
		return
	}

	filtered := make([]upstream.Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	h.OK(c, dto.FromOrders(filtered))
}

// Get fetches one order with its populated product lines.
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.backend.StockOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrder(*order))
}

// SetStatus advances an order's lifecycle. Only Processing orders can move,
// and only to Completed or Returned; the transition is checked against the
// current upstream state before the update is forwarded.
// PUT /api/v1/orders/:id/status
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	to := orders.Status(req.Status)
	if !to.Valid() {
		h.Error(c, apperror.NewValidation("unknown order status").WithDetail("status", req.Status))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	order, err := h.backend.StockOrder(ctx, id)
	if err != nil {
		h.Error(c, err)
		return
	}

	if !orders.CanTransition(order.Status, to) {
		h.Error(c, apperror.NewInvalidTransition(string(order.Status), string(to)))
		return
	}

	if err := h.backend.ChangeOrderStatus(ctx, id, to); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "order status updated")
}
