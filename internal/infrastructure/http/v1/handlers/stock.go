package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stockgate/internal/core/apperror"
	"stockgate/internal/core/roles"
	"stockgate/internal/domain/staging"
	"stockgate/internal/infrastructure/http/v1/dto"
	"stockgate/internal/infrastructure/upstream"
)

// Stager is the pending-batch accumulator surface used by stock endpoints.
type Stager interface {
	Entries(ctx context.Context, userID string, slot staging.Slot) ([]staging.Entry, error)
	Add(ctx context.Context, userID string, slot staging.Slot, entry staging.Entry, available decimal.Decimal) error
	Remove(ctx context.Context, userID string, slot staging.Slot, index int) error
	Submit(ctx context.Context, userID string, slot staging.Slot, params staging.SubmitParams) (*staging.SubmitResult, error)
}

// StockDirectory lists destination stores for dispatch flows and exposes the
// direct stock operations that bypass the staged batches.
type StockDirectory interface {
	StoreOwners(ctx context.Context, path string) ([]upstream.StoreOwner, error)
	Products(ctx context.Context, role string) ([]upstream.Product, error)
	AddProductStock(ctx context.Context, productID string, quantity decimal.Decimal) error
}

// StockHandler handles batch staging and submission.
type StockHandler struct {
	*BaseHandler
	stager    Stager
	directory StockDirectory
}

// NewStockHandler creates a stock handler.
func NewStockHandler(base *BaseHandler, stager Stager, directory StockDirectory) *StockHandler {
	return &StockHandler{BaseHandler: base, stager: stager, directory: directory}
}

// slotNames maps URL slot segments to staging slots. Both the console-facing
// names and the raw slot keys are accepted.
var slotNames = map[string]staging.Slot{
	"receiving":                   staging.SlotReceiving,
	"dispatch":                    staging.SlotDispatch,
	"return":                      staging.SlotReturn,
	string(staging.SlotReceiving): staging.SlotReceiving,
	string(staging.SlotDispatch):  staging.SlotDispatch,
	string(staging.SlotReturn):    staging.SlotReturn,
}

func (h *StockHandler) slot(c *gin.Context) (staging.Slot, bool) {
	name := c.Param("slot")
	if slot, ok := slotNames[name]; ok {
		return slot, true
	}
	h.Error(c, apperror.NewValidation("unknown batch slot").WithDetail("slot", name))
	return "", false
}

// Batch returns the current pending batch for a slot.
// GET /api/v1/stock/batch/:slot
func (h *StockHandler) Batch(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}

	entries, err := h.stager.Entries(c.Request.Context(), h.GetUserID(c), slot)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewBatchResponse(slot, entries))
}

// Stage adds or updates one product line in a slot's pending batch.
// POST /api/v1/stock/batch/:slot
func (h *StockHandler) Stage(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}

	var req dto.StageRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	userID := h.GetUserID(c)
	entry := req.ToEntry(string(h.GetRole(c)))

	if err := h.stager.Add(ctx, userID, slot, entry, req.Available); err != nil {
		h.Error(c, err)
		return
	}

	entries, err := h.stager.Entries(ctx, userID, slot)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewBatchResponse(slot, entries))
}

// Unstage removes the entry at an index from a slot's pending batch.
// DELETE /api/v1/stock/batch/:slot/:index
func (h *StockHandler) Unstage(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid entry index").WithDetail("index", c.Param("index")))
		return
	}

	ctx := c.Request.Context()
	userID := h.GetUserID(c)

	if err := h.stager.Remove(ctx, userID, slot, index); err != nil {
		h.Error(c, err)
		return
	}

	entries, err := h.stager.Entries(ctx, userID, slot)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewBatchResponse(slot, entries))
}

// Submit sends a slot's whole pending batch to the inventory backend. On
// success the response carries the created order ID (when the flow creates
// one) and a fresh product list so the console sees updated availability
// without a second round trip.
// POST /api/v1/stock/batch/:slot/submit
func (h *StockHandler) Submit(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}

	var req dto.SubmitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	role := h.GetRole(c)
	var refreshed []upstream.Product

	params := staging.SubmitParams{
		Role:  role,
		Store: req.Store,
		Refresh: func(ctx context.Context) error {
			products, err := h.directory.Products(ctx, string(role))
			if err != nil {
				return err
			}
			refreshed = products
			return nil
		},
	}

	result, err := h.stager.Submit(c.Request.Context(), h.GetUserID(c), slot, params)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{
		"orderId":  result.OrderID,
		"entries":  result.Entries,
		"products": dto.FromProducts(refreshed),
	})
}

// Stores lists the destination stores the session's role can dispatch to.
// Roles with a fixed destination get an empty list.
// GET /api/v1/stock/stores
func (h *StockHandler) Stores(c *gin.Context) {
	cfg := roles.ConfigFor(h.GetRole(c))
	owners, err := h.directory.StoreOwners(c.Request.Context(), cfg.OwnersPath)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStoreOwners(owners))
}

// Products lists the products visible to the session's role, with the
// availability the staging ceilings are checked against.
// GET /api/v1/stock/products
func (h *StockHandler) Products(c *gin.Context) {
	products, err := h.directory.Products(c.Request.Context(), string(h.GetRole(c)))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(products))
}

// AddProductStock adds stock for a single product directly, without staging
// a batch. The same quantity rules apply as for staged entries.
// POST /api/v1/stock/products/:id/add
func (h *StockHandler) AddProductStock(c *gin.Context) {
	var req dto.AddStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	qty, err := staging.NormalizeQuantity(req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.directory.AddProductStock(c.Request.Context(), c.Param("id"), qty); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "stock added")
}
