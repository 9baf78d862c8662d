package upstream

import (
	"time"

	"github.com/shopspring/decimal"

	"stockgate/internal/domain/orders"
)

// Wire models mirror the inventory backend's field naming; the backend owns
// these shapes, the console only consumes them.

// Category is an inventory category record.
type Category struct {
	ID       string `json:"_id"`
	Name     string `json:"inventoryCategoryName"`
	Type     string `json:"inventoryType"`
	ImageURL string `json:"inventoryCategoryImageUrl,omitempty"`
	Status   string `json:"inventoryCategoryStatus"`
}

// Unit is an inventory measurement unit record.
type Unit struct {
	ID     string `json:"_id"`
	Name   string `json:"inventoryUnitName"`
	Type   string `json:"inventoryUnitType,omitempty"`
	Status string `json:"status,omitempty"`
}

// Product is an inventory product record. Quantity is the last-known
// available stock used by the dispatch/return ceilings.
type Product struct {
	ID           string          `json:"_id"`
	Name         string          `json:"inventoryProductName"`
	Description  string          `json:"inventoryProductDescription,omitempty"`
	SKUCode      string          `json:"inventoryProductSKUCode"`
	Category     string          `json:"inventoryCategory"`
	Quantity     decimal.Decimal `json:"inventoryProductQuantity"`
	Unit         Unit            `json:"inventoryProductUnit"`
	SellingPrice decimal.Decimal `json:"inventorySellingPrice,omitempty"`
	CostPrice    decimal.Decimal `json:"inventoryCostPrice,omitempty"`
	GSTPercent   decimal.Decimal `json:"gstPercent,omitempty"`
	ImageURL     string          `json:"inventoryProductImageUrl,omitempty"`
	BarcodeURL   string          `json:"barcode,omitempty"`
	Status       string          `json:"status,omitempty"`
}

// VendorDetails describes a product's supplier.
type VendorDetails struct {
	ID          string `json:"_id,omitempty"`
	VendorName  string `json:"vendorName"`
	VendorPhone string `json:"vendorPhone,omitempty"`
	VendorEmail string `json:"vendorEmail,omitempty"`
	VendorGST   string `json:"vendorGST,omitempty"`
}

// OrderLine is one product line of a stock order. The backend populates the
// referenced product.
type OrderLine struct {
	Product      Product         `json:"productID"`
	SendQuantity decimal.Decimal `json:"sendQuantity"`
}

// Order is a stock order record.
type Order struct {
	ID        string           `json:"_id"`
	Status    orders.Status    `json:"orderStatus"`
	StockType orders.StockType `json:"stockType,omitempty"`
	SentTo    string           `json:"sentTo,omitempty"`
	Store     string           `json:"store,omitempty"`
	Type      string           `json:"type,omitempty"`
	Lines     []OrderLine      `json:"products"`
	CreatedAt time.Time        `json:"createdAt"`
}

// StoreOwner is one destination store in the boutique/cafe directories.
type StoreOwner struct {
	ID        string `json:"_id"`
	StoreType string `json:"storeType"`
}

// loginUser is the account snapshot inside a login response.
type loginUser struct {
	ID      string `json:"_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	SubRole string `json:"subRole"`
}

// --- Response envelopes ---

type loginEnvelope struct {
	Result struct {
		Token        string    `json:"token"`
		ValidateUser loginUser `json:"validateUser"`
	} `json:"result"`
}

type categoriesEnvelope struct {
	Categories []Category `json:"categories"`
}

type categoryEnvelope struct {
	Category Category `json:"category"`
}

type unitsEnvelope struct {
	Units []Unit `json:"units"`
}

type unitEnvelope struct {
	Unit Unit `json:"unit"`
}

type productsEnvelope struct {
	Products []Product `json:"products"`
}

type productEnvelope struct {
	Product Product `json:"product"`
}

type ordersEnvelope struct {
	Orders []Order `json:"orders"`
}

type orderEnvelope struct {
	Order Order `json:"order"`
}

type sendStockEnvelope struct {
	OrderID string `json:"orderID"`
}

type boutiquesEnvelope struct {
	Boutiques []StoreOwner `json:"boutiques"`
}

type cafesEnvelope struct {
	Cafes []StoreOwner `json:"cafe"`
}
