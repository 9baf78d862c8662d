package upstream

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductInput carries the writable product fields. The create and update
// endpoints are multipart because a product image may ride along.
type ProductInput struct {
	Name         string
	Description  string
	Quantity     decimal.Decimal
	SellingPrice decimal.Decimal
	CostPrice    decimal.Decimal
	GSTPercent   decimal.Decimal
	UnitID       string
	CategoryID   string
	Image        *FormFile
}

func (in ProductInput) fields() map[string]string {
	return map[string]string{
		"inventoryProductName":        in.Name,
		"inventoryProductDescription": in.Description,
		"inventoryProductQuantity":    in.Quantity.String(),
		"inventorySellingPrice":       in.SellingPrice.String(),
		"inventoryCostPrice":          in.CostPrice.String(),
		"gstPercent":                  in.GSTPercent.String(),
		"inventoryProductUnit":        in.UnitID,
		"inventoryCategory":           in.CategoryID,
	}
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) error {
	return c.doMultipart(ctx, "POST", "/inventory/product/add", in.fields(), in.Image, nil)
}

// BulkProductRow is one row of a bulk product import.
type BulkProductRow struct {
	Name         string          `json:"inventoryProductName"`
	Description  string          `json:"inventoryProductDescription,omitempty"`
	Quantity     decimal.Decimal `json:"inventoryProductQuantity"`
	SellingPrice decimal.Decimal `json:"inventorySellingPrice,omitempty"`
	CostPrice    decimal.Decimal `json:"inventoryCostPrice,omitempty"`
	GSTPercent   decimal.Decimal `json:"gstPercent,omitempty"`
	UnitID       string          `json:"inventoryProductUnit"`
	CategoryID   string          `json:"inventoryCategory"`
}

// BulkCreateProducts imports many products in one call.
func (c *Client) BulkCreateProducts(ctx context.Context, rows []BulkProductRow) error {
	return c.do(ctx, "POST", "/inventory/product/bulk/add", map[string]any{"products": rows}, nil)
}

// Products lists products visible to a role.
func (c *Client) Products(ctx context.Context, role string) ([]Product, error) {
	var envelope productsEnvelope
	if err := c.do(ctx, "GET", "/inventory/product/filter/"+role, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}

// Product fetches one product by ID.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var envelope productEnvelope
	if err := c.do(ctx, "GET", "/inventory/product/get/"+id, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Product, nil
}

// UpdateProduct updates a product's fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	return c.doMultipart(ctx, "PUT", "/inventory/product/update/"+id, in.fields(), in.Image, nil)
}

// SetProductStatus toggles a product between Active and Inactive.
func (c *Client) SetProductStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, "PUT", "/inventory/product/status/"+id, map[string]string{"status": status}, nil)
}

// AddVendorDetails attaches supplier details to a product.
func (c *Client) AddVendorDetails(ctx context.Context, productID string, in VendorDetails) error {
	return c.do(ctx, "POST", "/inventory/product/vendor/add/"+productID, in, nil)
}

// UpdateVendorDetails updates a product's supplier details.
func (c *Client) UpdateVendorDetails(ctx context.Context, vendorID, productID string, in VendorDetails) error {
	return c.do(ctx, "PUT", "/inventory/product/vendor/update/"+vendorID+"/"+productID, in, nil)
}
