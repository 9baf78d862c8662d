package dto

import (
	"github.com/shopspring/decimal"

	"stockgate/internal/infrastructure/upstream"
)

// --- Categories ---

// CategoryResponse is a category as the console presents it.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl,omitempty"`
	Status   string `json:"status"`
}

// FromCategory maps an upstream category record.
func FromCategory(c upstream.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Type:     c.Type,
		ImageURL: c.ImageURL,
		Status:   c.Status,
	}
}

// FromCategories maps a category list.
func FromCategories(in []upstream.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(in))
	for i, c := range in {
		out[i] = FromCategory(c)
	}
	return out
}

// --- Units ---

// CreateUnitRequest creates a measurement unit.
type CreateUnitRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
}

// ToInput maps to the upstream payload.
func (r CreateUnitRequest) ToInput() upstream.UnitInput {
	return upstream.UnitInput{Name: r.Name, Type: r.Type}
}

// UnitResponse is a measurement unit as the console presents it.
type UnitResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

// FromUnit maps an upstream unit record.
func FromUnit(u upstream.Unit) UnitResponse {
	return UnitResponse{ID: u.ID, Name: u.Name, Type: u.Type, Status: u.Status}
}

// FromUnits maps a unit list.
func FromUnits(in []upstream.Unit) []UnitResponse {
	out := make([]UnitResponse, len(in))
	for i, u := range in {
		out[i] = FromUnit(u)
	}
	return out
}

// --- Products ---

// ProductResponse is a product as the console presents it. Quantity is the
// last-fetched available stock, the ceiling for dispatch and return staging.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	SKUCode      string          `json:"skuCode,omitempty"`
	Category     string          `json:"category,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	SellingPrice decimal.Decimal `json:"sellingPrice,omitempty"`
	CostPrice    decimal.Decimal `json:"costPrice,omitempty"`
	GSTPercent   decimal.Decimal `json:"gstPercent,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	BarcodeURL   string          `json:"barcodeUrl,omitempty"`
	Status       string          `json:"status,omitempty"`
}

// FromProduct maps an upstream product record.
func FromProduct(p upstream.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SKUCode:      p.SKUCode,
		Category:     p.Category,
		Quantity:     p.Quantity,
		Unit:         p.Unit.Name,
		SellingPrice: p.SellingPrice,
		CostPrice:    p.CostPrice,
		GSTPercent:   p.GSTPercent,
		ImageURL:     p.ImageURL,
		BarcodeURL:   p.BarcodeURL,
		Status:       p.Status,
	}
}

// FromProducts maps a product list.
func FromProducts(in []upstream.Product) []ProductResponse {
	out := make([]ProductResponse, len(in))
	for i, p := range in {
		out[i] = FromProduct(p)
	}
	return out
}

// VendorRequest attaches or updates supplier details on a product.
type VendorRequest struct {
	VendorName  string `json:"vendorName" binding:"required"`
	VendorPhone string `json:"vendorPhone"`
	VendorEmail string `json:"vendorEmail" binding:"omitempty,email"`
	VendorGST   string `json:"vendorGST"`
}

// ToDetails maps to the upstream payload.
func (r VendorRequest) ToDetails() upstream.VendorDetails {
	return upstream.VendorDetails{
		VendorName:  r.VendorName,
		VendorPhone: r.VendorPhone,
		VendorEmail: r.VendorEmail,
		VendorGST:   r.VendorGST,
	}
}

// BulkProductsRequest imports many products in one call.
type BulkProductsRequest struct {
	Products []BulkProductRow `json:"products" binding:"required,min=1,dive"`
}

// BulkProductRow is one imported product.
type BulkProductRow struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	GSTPercent   decimal.Decimal `json:"gstPercent"`
	UnitID       string          `json:"unitId" binding:"required"`
	CategoryID   string          `json:"categoryId" binding:"required"`
}

// ToRows maps to the upstream payload.
func (r BulkProductsRequest) ToRows() []upstream.BulkProductRow {
	rows := make([]upstream.BulkProductRow, len(r.Products))
	for i, p := range r.Products {
		rows[i] = upstream.BulkProductRow{
			Name:         p.Name,
			Description:  p.Description,
			Quantity:     p.Quantity,
			SellingPrice: p.SellingPrice,
			CostPrice:    p.CostPrice,
			GSTPercent:   p.GSTPercent,
			UnitID:       p.UnitID,
			CategoryID:   p.CategoryID,
		}
	}
	return rows
}
