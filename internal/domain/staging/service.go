package staging

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"stockgate/internal/core/apperror"
	"stockgate/internal/core/roles"
	"stockgate/internal/domain/orders"
	"stockgate/pkg/logger"
)

// SendRequest is the batch payload posted to the inventory backend's
// stock-send endpoint.
type SendRequest struct {
	Product   []Entry          `json:"product"`
	SentTo    string           `json:"sentTo"`
	Type      string           `json:"type,omitempty"`
	StockType orders.StockType `json:"stockType,omitempty"`
	Store     string           `json:"store,omitempty"`
}

// Backend is the outbound port to the inventory backend used by batch
// submission. The concrete implementation lives in the upstream client.
type Backend interface {
	// AddStockBatch posts a receiving batch to the stock-add endpoint.
	AddStockBatch(ctx context.Context, entries []Entry) error

	// SendStock posts a dispatch or return batch and returns the created
	// order's ID.
	SendStock(ctx context.Context, req SendRequest) (orderID string, err error)

	// ChangeOrderStatus requests an order status transition.
	ChangeOrderStatus(ctx context.Context, orderID string, status orders.Status) error
}

// Notifier is a one-way realtime notification capability. Emission is
// fire-and-forget: no acknowledgement is awaited and no delivery guarantee
// is assumed.
type Notifier interface {
	Emit(ctx context.Context, event string, payload any) error
}

// DispatchEvent is the payload emitted after a successful dispatch
// submission so connected store dashboards can react.
type DispatchEvent struct {
	OrderID string `json:"orderId"`
	Role    string `json:"role"`
	Store   string `json:"store"`
}

// SubmitParams carries the per-submission fields that are not part of the
// staged batch itself.
type SubmitParams struct {
	// Role is the operator's store role, read fresh from the session.
	Role roles.StoreRole

	// Store is the chosen destination store. Required for dispatch
	// submissions by roles whose configuration demands one.
	Store string

	// Refresh is invoked exactly once after a successful submission so the
	// caller can re-fetch whatever list the submission invalidated.
	// Optional; refresh failures are logged, never propagated.
	Refresh func(ctx context.Context) error
}

// SubmitResult reports a successful batch submission.
type SubmitResult struct {
	// OrderID of the created order. Empty for receiving batches, which add
	// stock without creating an order.
	OrderID string `json:"orderId,omitempty"`

	// Entries is the number of lines submitted.
	Entries int `json:"entries"`
}

// Service is the pending stock-batch accumulator. All state lives in the
// injected Store; the service itself only holds an in-flight submission
// guard so that double submits of the same slot are suppressed rather than
// racing.
type Service struct {
	store    Store
	backend  Backend
	notifier Notifier
	event    string

	inflight sync.Map // userID|slot -> struct{}
}

// NewService wires the accumulator. event is the realtime event name emitted
// after dispatch submissions.
func NewService(store Store, backend Backend, notifier Notifier, event string) *Service {
	return &Service{
		store:    store,
		backend:  backend,
		notifier: notifier,
		event:    event,
	}
}

// Entries returns the current batch for a slot, empty when nothing is staged.
func (s *Service) Entries(ctx context.Context, userID string, slot Slot) ([]Entry, error) {
	entries, err := s.store.Get(ctx, userID, slot)
	if err != nil {
		return nil, apperror.NewStorage(err)
	}
	return entries, nil
}

// Add validates an entry and upserts it into the slot's batch. An entry for
// a product already in the batch overwrites that product's quantity instead
// of duplicating the line. available is the product's last-fetched quantity
// and is only consulted for slots with an availability ceiling.
func (s *Service) Add(ctx context.Context, userID string, slot Slot, entry Entry, available decimal.Decimal) error {
	qty, err := NormalizeQuantity(entry.Quantity)
	if err != nil {
		return err
	}
	entry.Quantity = qty

	if slot.ChecksAvailability() {
		if err := CheckAvailable(entry, available); err != nil {
			return err
		}
	}

	entries, err := s.store.Get(ctx, userID, slot)
	if err != nil {
		return apperror.NewStorage(err)
	}

	updated := false
	for i := range entries {
		if entries[i].ProductID == entry.ProductID {
			entries[i].Quantity = entry.Quantity
			updated = true
			break
		}
	}
	if !updated {
		entries = append(entries, entry)
	}

	if err := s.store.Set(ctx, userID, slot, entries); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}

// Remove deletes the entry at index from the slot's batch, preserving the
// order of the remaining entries. Out-of-range indices are a no-op.
func (s *Service) Remove(ctx context.Context, userID string, slot Slot, index int) error {
	entries, err := s.store.Get(ctx, userID, slot)
	if err != nil {
		return apperror.NewStorage(err)
	}
	if index < 0 || index >= len(entries) {
		return nil
	}

	entries = append(entries[:index], entries[index+1:]...)
	if err := s.store.Set(ctx, userID, slot, entries); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}

// Submit sends the slot's whole batch to the backend in one request.
//
// An empty batch fails fast without any network call. On success the slot is
// cleared, the flow's follow-up runs (realtime event for dispatch, status
// update to Returned for returns) and params.Refresh is invoked once. On
// failure the batch is left intact so the operator can correct and resubmit.
// A second Submit for the same user and slot while one is in flight is
// rejected instead of racing.
func (s *Service) Submit(ctx context.Context, userID string, slot Slot, params SubmitParams) (*SubmitResult, error) {
	guard := userID + "|" + string(slot)
	if _, loaded := s.inflight.LoadOrStore(guard, struct{}{}); loaded {
		return nil, apperror.NewSubmitInFlight(string(slot))
	}
	defer s.inflight.Delete(guard)

	entries, err := s.store.Get(ctx, userID, slot)
	if err != nil {
		return nil, apperror.NewStorage(err)
	}
	if len(entries) == 0 {
		return nil, apperror.NewEmptyBatch(string(slot))
	}

	result := &SubmitResult{Entries: len(entries)}

	switch slot {
	case SlotReceiving:
		if err := s.backend.AddStockBatch(ctx, entries); err != nil {
			return nil, err
		}

	case SlotDispatch:
		cfg := roles.ConfigFor(params.Role)
		if cfg.RequiresStore && params.Store == "" {
			return nil, apperror.NewStoreRequired(string(params.Role))
		}

		orderID, err := s.backend.SendStock(ctx, SendRequest{
			Product:   entries,
			SentTo:    cfg.SentTo,
			Type:      string(params.Role),
			StockType: orders.StockOut,
			Store:     params.Store,
		})
		if err != nil {
			return nil, err
		}
		result.OrderID = orderID

	case SlotReturn:
		orderID, err := s.backend.SendStock(ctx, SendRequest{
			Product: entries,
			SentTo:  string(orders.StatusReturned),
		})
		if err != nil {
			return nil, err
		}
		result.OrderID = orderID

	default:
		return nil, apperror.NewValidation("unknown batch slot")
	}

	// The batch now exists upstream; clear the slot before any follow-up so
	// a follow-up failure cannot lead to a duplicate order on retry.
	if err := s.store.Clear(ctx, userID, slot); err != nil {
		logger.Error(ctx, "failed to clear submitted batch", "slot", slot, "error", err)
	}

	if err := s.followUp(ctx, slot, params, result); err != nil {
		return result, err
	}

	s.refresh(ctx, params, slot)
	return result, nil
}

// followUp runs the per-flow post-submission step.
func (s *Service) followUp(ctx context.Context, slot Slot, params SubmitParams, result *SubmitResult) error {
	switch slot {
	case SlotDispatch:
		cfg := roles.ConfigFor(params.Role)
		event := DispatchEvent{
			OrderID: result.OrderID,
			Role:    cfg.SentTo,
			Store:   params.Store,
		}
		if err := s.notifier.Emit(ctx, s.event, event); err != nil {
			// Fire-and-forget: a lost notification must not fail the
			// submission that already succeeded.
			logger.Warn(ctx, "dispatch notification failed",
				"order_id", result.OrderID, "error", err)
		}

	case SlotReturn:
		if err := s.backend.ChangeOrderStatus(ctx, result.OrderID, orders.StatusReturned); err != nil {
			// The order exists but is still Processing; surface that
			// distinctly instead of pretending the whole submit failed.
			if appErr, ok := apperror.AsAppError(err); ok {
				return appErr.WithDetail("orderId", result.OrderID).
					WithDetail("orderStatus", string(orders.StatusProcessing))
			}
			return err
		}
	}
	return nil
}

func (s *Service) refresh(ctx context.Context, params SubmitParams, slot Slot) {
	if params.Refresh == nil {
		return
	}
	if err := params.Refresh(ctx); err != nil {
		logger.Warn(ctx, "post-submit refresh failed", "slot", slot, "error", err)
	}
}
