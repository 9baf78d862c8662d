package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockgate/internal/domain/staging"
	"stockgate/internal/infrastructure/upstream"
)

// StageRequest adds or updates one product line in a pending batch.
// Available is the product's last-fetched stock, echoed back by the client so
// the ceiling reflects what the operator was actually shown.
type StageRequest struct {
	ProductID   string          `json:"productId" binding:"required"`
	ProductName string          `json:"productName" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Available   decimal.Decimal `json:"available"`
}

// ToEntry maps to a staging entry. role is recorded on the line the way the
// send payload expects it.
func (r StageRequest) ToEntry(role string) staging.Entry {
	return staging.Entry{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Role:        role,
	}
}

// BatchResponse is the current pending batch for one slot.
type BatchResponse struct {
	Slot    string          `json:"slot"`
	Entries []staging.Entry `json:"entries"`
}

// NewBatchResponse builds a batch view, never with a nil entries array.
func NewBatchResponse(slot staging.Slot, entries []staging.Entry) BatchResponse {
	if entries == nil {
		entries = []staging.Entry{}
	}
	return BatchResponse{Slot: string(slot), Entries: entries}
}

// SubmitRequest submits a slot's whole batch. Store names the destination
// store for dispatch flows that require one.
type SubmitRequest struct {
	Store string `json:"store"`
}

// AddStockRequest adds stock for one product without staging a batch.
type AddStockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// StoreOwnerResponse is one destination store choice.
type StoreOwnerResponse struct {
	ID        string `json:"id"`
	StoreType string `json:"storeType"`
}

// FromStoreOwners maps the upstream directory list.
func FromStoreOwners(in []upstream.StoreOwner) []StoreOwnerResponse {
	out := make([]StoreOwnerResponse, len(in))
	for i, s := range in {
		out[i] = StoreOwnerResponse{ID: s.ID, StoreType: s.StoreType}
	}
	return out
}

// --- Orders ---

// OrderLineResponse is one product line of an order.
type OrderLineResponse struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Unit         string          `json:"unit,omitempty"`
	SendQuantity decimal.Decimal `json:"sendQuantity"`
}

// OrderResponse is a stock order as the console presents it.
type OrderResponse struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	StockType string              `json:"stockType,omitempty"`
	SentTo    string              `json:"sentTo,omitempty"`
	Store     string              `json:"store,omitempty"`
	Type      string              `json:"type,omitempty"`
	Lines     []OrderLineResponse `json:"lines"`
	CreatedAt time.Time           `json:"createdAt"`
}

// FromOrder maps an upstream order record.
func FromOrder(o upstream.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			ProductID:    l.Product.ID,
			ProductName:  l.Product.Name,
			Unit:         l.Product.Unit.Name,
			SendQuantity: l.SendQuantity,
		}
	}
	return OrderResponse{
		ID:        o.ID,
		Status:    string(o.Status),
		StockType: string(o.StockType),
		SentTo:    o.SentTo,
		Store:     o.Store,
		Type:      o.Type,
		Lines:     lines,
		CreatedAt: o.CreatedAt,
	}
}

// FromOrders maps an order list.
func FromOrders(in []upstream.Order) []OrderResponse {
	out := make([]OrderResponse, len(in))
	for i, o := range in {
		out[i] = FromOrder(o)
	}
	return out
}

// OrderStatusRequest requests an order status transition.
type OrderStatusRequest struct {
	Status string `json:"orderStatus" binding:"required"`
}
