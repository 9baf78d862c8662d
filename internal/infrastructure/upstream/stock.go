package upstream

import (
	"context"

	"github.com/shopspring/decimal"

	"stockgate/internal/domain/orders"
	"stockgate/internal/domain/staging"
)

// The stock endpoints implement the accumulator's backend port.

// AddStockBatch posts a whole receiving batch to the warehouse.
func (c *Client) AddStockBatch(ctx context.Context, entries []staging.Entry) error {
	return c.do(ctx, "POST", "/inventory/stock/add", map[string]any{"product": entries}, nil)
}

// AddProductStock adjusts a single product's stock without going through a
// staged batch.
func (c *Client) AddProductStock(ctx context.Context, productID string, quantity decimal.Decimal) error {
	body := map[string]any{
		"productID":                productID,
		"inventoryProductQuantity": quantity,
	}
	return c.do(ctx, "POST", "/inventory/stock/product/add", body, nil)
}

// SendStock posts a dispatch or return batch and returns the created order's ID.
func (c *Client) SendStock(ctx context.Context, req staging.SendRequest) (string, error) {
	var envelope sendStockEnvelope
	if err := c.do(ctx, "POST", "/inventory/stock/send", req, &envelope); err != nil {
		return "", err
	}
	return envelope.OrderID, nil
}

// StockOrders lists the stock orders visible to a role.
func (c *Client) StockOrders(ctx context.Context, role string) ([]Order, error) {
	var envelope ordersEnvelope
	if err := c.do(ctx, "GET", "/inventory/stock/order/get/"+role, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Orders, nil
}

// StockOrder fetches one stock order by ID.
func (c *Client) StockOrder(ctx context.Context, id string) (*Order, error) {
	var envelope orderEnvelope
	if err := c.do(ctx, "GET", "/inventory/stock/get/"+id, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Order, nil
}

// ChangeOrderStatus requests an order status transition.
func (c *Client) ChangeOrderStatus(ctx context.Context, orderID string, status orders.Status) error {
	body := map[string]string{"orderStatus": string(status)}
	return c.do(ctx, "PUT", "/inventory/stock/status/"+orderID, body, nil)
}
