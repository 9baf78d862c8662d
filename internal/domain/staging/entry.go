// Package staging implements the pending stock-batch accumulator: operators
// collect stock-movement line items per product across multiple actions and
// submit them to the inventory backend as one atomic batch.
package staging

import (
	"github.com/shopspring/decimal"

	"stockgate/internal/core/apperror"
)

// Slot names one persisted pending batch. The three flows never share a
// slot; the underlying storage keys match the original console's.
type Slot string

const (
	// SlotReceiving accumulates incoming stock before a bulk add.
	SlotReceiving Slot = "stockData"
	// SlotDispatch accumulates outgoing stock before a send.
	SlotDispatch Slot = "stock"
	// SlotReturn accumulates stock being sent back.
	SlotReturn Slot = "returnStock"
)

// Valid reports whether s is a known batch slot.
func (s Slot) Valid() bool {
	switch s {
	case SlotReceiving, SlotDispatch, SlotReturn:
		return true
	}
	return false
}

// ChecksAvailability reports whether entries staged into this slot must not
// exceed the product's last-fetched available quantity. Receiving adds new
// stock, so it has no ceiling.
func (s Slot) ChecksAvailability() bool {
	return s == SlotDispatch || s == SlotReturn
}

// Entry is one pending stock-movement line. Entries are unique per product
// within a batch; staging the same product again overwrites its quantity.
type Entry struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Role        string          `json:"role,omitempty"`
}

// minQuantity is the smallest stageable quantity.
var minQuantity = decimal.RequireFromString("0.1")

// NormalizeQuantity validates a staged quantity and rounds it to the
// two-decimal precision the backend stores. Zero, negative and sub-minimum
// values are rejected.
func NormalizeQuantity(qty decimal.Decimal) (decimal.Decimal, error) {
	qty = qty.Round(2)
	if qty.LessThan(minQuantity) {
		return decimal.Zero, apperror.NewInvalidQuantity(
			"Please enter a valid quantity greater than or equal to 0.1")
	}
	return qty, nil
}

// CheckAvailable rejects quantities above the product's last-known available
// quantity. The read is stale by design: the backend re-validates at
// submission, the console only fails fast.
func CheckAvailable(e Entry, available decimal.Decimal) error {
	if e.Quantity.GreaterThan(available) {
		return apperror.NewInsufficientStock(
			e.ProductID, e.Quantity.String(), available.String())
	}
	return nil
}
