package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"stockgate/internal/core/apperror"
	"stockgate/internal/infrastructure/http/v1/dto"
	"stockgate/internal/infrastructure/upstream"
)

// CategoryBackend is the upstream surface used by category endpoints.
type CategoryBackend interface {
	CreateCategory(ctx context.Context, in upstream.CategoryInput) error
	Categories(ctx context.Context, role string) ([]upstream.Category, error)
	Category(ctx context.Context, id string) (*upstream.Category, error)
	UpdateCategory(ctx context.Context, id string, in upstream.CategoryInput) error
	SetCategoryStatus(ctx context.Context, id, status string) error
}

// CategoryHandler handles category catalog endpoints. Create and update are
// multipart because a category image may ride along; the file streams through
// to the backend without touching disk.
type CategoryHandler struct {
	*BaseHandler
	backend CategoryBackend
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(base *BaseHandler, backend CategoryBackend) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, backend: backend}
}

// categoryInput reads the multipart category form. The returned closer is nil
// when no image was attached.
func (h *CategoryHandler) categoryInput(c *gin.Context) (upstream.CategoryInput, multipart.File, bool) {
	name := c.PostForm("name")
	if name == "" {
		h.Error(c, apperror.NewValidation("category name is required"))
		return upstream.CategoryInput{}, nil, false
	}

	in := upstream.CategoryInput{
		Name: name,
		Type: c.PostForm("type"),
	}

	file, err := formFile(c, "image", "InventoryCategoryFile")
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid category image").WithDetail("error", err.Error()))
		return upstream.CategoryInput{}, nil, false
	}
	if file != nil {
		in.Image = &file.FormFile
		return in, file.File, true
	}
	return in, nil, true
}

// Create creates a category.
// POST /api/v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	in, closer, ok := h.categoryInput(c)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := h.backend.CreateCategory(c.Request.Context(), in); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "category created")
}

// List lists categories visible to the session's role.
// GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.backend.Categories(c.Request.Context(), string(h.GetRole(c)))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategories(categories))
}

// Get fetches one category.
// GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.backend.Category(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategory(*category))
}

// Update updates a category.
// PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	in, closer, ok := h.categoryInput(c)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := h.backend.UpdateCategory(c.Request.Context(), c.Param("id"), in); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "category updated")
}

// SetStatus toggles a category between Active and Inactive.
// PUT /api/v1/categories/:id/status
func (h *CategoryHandler) SetStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.SetCategoryStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "category status updated")
}
