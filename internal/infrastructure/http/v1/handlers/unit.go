package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"stockgate/internal/infrastructure/http/v1/dto"
	"stockgate/internal/infrastructure/upstream"
)

// UnitBackend is the upstream surface used by unit endpoints.
type UnitBackend interface {
	CreateUnit(ctx context.Context, in upstream.UnitInput) error
	Units(ctx context.Context, role string) ([]upstream.Unit, error)
	Unit(ctx context.Context, id string) (*upstream.Unit, error)
	UpdateUnit(ctx context.Context, id string, in upstream.UnitInput) error
	SetUnitStatus(ctx context.Context, id, status string) error
}

// UnitHandler handles measurement unit catalog endpoints.
type UnitHandler struct {
	*BaseHandler
	backend UnitBackend
}

// NewUnitHandler creates a unit handler.
func NewUnitHandler(base *BaseHandler, backend UnitBackend) *UnitHandler {
	return &UnitHandler{BaseHandler: base, backend: backend}
}

// Create creates a measurement unit.
// POST /api/v1/units
func (h *UnitHandler) Create(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.CreateUnit(c.Request.Context(), req.ToInput()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "unit created")
}

// List lists units visible to the session's role.
// GET /api/v1/units
func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.backend.Units(c.Request.Context(), string(h.GetRole(c)))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUnits(units))
}

// Get fetches one unit.
// GET /api/v1/units/:id
func (h *UnitHandler) Get(c *gin.Context) {
	unit, err := h.backend.Unit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUnit(*unit))
}

// Update updates a unit.
// PUT /api/v1/units/:id
func (h *UnitHandler) Update(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.UpdateUnit(c.Request.Context(), c.Param("id"), req.ToInput()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "unit updated")
}

// SetStatus toggles a unit between Active and Inactive.
// PUT /api/v1/units/:id/status
func (h *UnitHandler) SetStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.backend.SetUnitStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "unit status updated")
}
