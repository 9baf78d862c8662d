package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stockgate/internal/core/apperror"
	"stockgate/internal/infrastructure/http/v1/dto"
	"stockgate/internal/infrastructure/upstream"
)

// ProductBackend is the upstream surface used by product endpoints.
type ProductBackend interface {
	CreateProduct(ctx context.Context, in upstream.ProductInput) error
	BulkCreateProducts(ctx context.Context, rows []upstream.BulkProductRow) error
	Products(ctx context.Context, role string) ([]upstream.Product, error)
	Product(ctx context.Context, id string) (*upstream.Product, error)
	UpdateProduct(ctx context.Context, id string, in upstream.ProductInput) error
	SetProductStatus(ctx context.Context, id, status string) error
	AddVendorDetails(ctx context.Context, productID string, in upstream.VendorDetails) error
	UpdateVendorDetails(ctx context.Context, vendorID, productID string, in upstream.VendorDetails) error
}

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	backend ProductBackend
}

// NewProductHandler creates a product handler.
func NewProductHandler(base *BaseHandler, backend ProductBackend) *ProductHandler {
	return &ProductHandler{BaseHandler: base, backend: backend}
}

// productInput reads the multipart product form.
func (h *ProductHandler) productInput(c *gin.Context) (upstream.ProductInput, multipart.File, bool) {
	name := c.PostForm("name")
	if name == "" {
		h.Error(c, apperror.NewValidation("product name is required"))
		return upstream.ProductInput{}, nil, false
	}

	in := upstream.ProductInput{
		Name:        name,
		Description: c.PostForm("description"),
		UnitID:      c.PostForm("unitId"),
		CategoryID:  c.PostForm("categoryId"),
	}

	for _, field := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"quantity", &in.Quantity},
		{"sellingPrice", &in.SellingPrice},
		{"costPrice", &in.CostPrice},
		{"gstPercent", &in.GSTPercent},
	} {
		raw := c.PostForm(field.name)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid numeric field").WithDetail("field", field.name))
			return upstream.ProductInput{}, nil, false
		}
		*field.dst = value
	}

	file, err := formFile(c, "image", "InventoryProductFile")
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product image").WithDetail("error", err.Error()))
		return upstream.ProductInput{}, nil, false
	}
	if file != nil {
		in.Image = &file.FormFile
		return in, file.File, true
	}
	return in, nil, true
}

// Create creates a product.
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	in, closer, ok := h.productInput(c)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := h.backend.CreateProduct(c.Request.Context(), in); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "product created")
}

// BulkCreate imports many products in one call.
// POST /api/v1/products/bulk
func (h *ProductHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkProductsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.BulkCreateProducts(c.Request.Context(), req.ToRows()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "products imported")
}

// List lists products visible to the session's role.
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.backend.Products(c.Request.Context(), string(h.GetRole(c)))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(products))
}

// Get fetches one product.
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.backend.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(*product))
}

// Update updates a product.
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	in, closer, ok := h.productInput(c)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := h.backend.UpdateProduct(c.Request.Context(), c.Param("id"), in); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "product updated")
}

// SetStatus toggles a product between Active and Inactive.
// PUT /api/v1/products/:id/status
func (h *ProductHandler) SetStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.SetProductStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "product status updated")
}

// AddVendor attaches supplier details to a product.
// POST /api/v1/products/:id/vendor
func (h *ProductHandler) AddVendor(c *gin.Context) {
	var req dto.VendorRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.AddVendorDetails(c.Request.Context(), c.Param("id"), req.ToDetails()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "vendor details added")
}

// UpdateVendor updates a product's supplier details.
// PUT /api/v1/products/:id/vendor/:vendorId
func (h *ProductHandler) UpdateVendor(c *gin.Context) {
	var req dto.VendorRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.UpdateVendorDetails(c.Request.Context(), c.Param("vendorId"), c.Param("id"), req.ToDetails()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "vendor details updated")
}
