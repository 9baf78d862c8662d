package staging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockgate/internal/core/apperror"
	"stockgate/internal/core/roles"
	"stockgate/internal/domain/orders"
)

// --- Mock collaborators ---

type mockBackend struct {
	mu sync.Mutex

	addCalls    int
	addEntries  []Entry
	addErr      error
	sendCalls   int
	sendReq     SendRequest
	sendOrderID string
	sendErr     error
	statusCalls int
	statusID    string
	statusTo    orders.Status
	statusErr   error

	// release blocks SendStock until closed, for concurrency tests.
	release chan struct{}
}

func (m *mockBackend) AddStockBatch(_ context.Context, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++
	m.addEntries = entries
	return m.addErr
}

func (m *mockBackend) SendStock(_ context.Context, req SendRequest) (string, error) {
	m.mu.Lock()
	m.sendCalls++
	m.sendReq = req
	m.mu.Unlock()
	if m.release != nil {
		<-m.release
	}
	return m.sendOrderID, m.sendErr
}

func (m *mockBackend) ChangeOrderStatus(_ context.Context, orderID string, status orders.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCalls++
	m.statusID = orderID
	m.statusTo = status
	return m.statusErr
}

type mockNotifier struct {
	mu      sync.Mutex
	calls   int
	event   string
	payload any
	err     error
}

func (m *mockNotifier) Emit(_ context.Context, event string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.event = event
	m.payload = payload
	return m.err
}

func newTestService(backend *mockBackend, notifier *mockNotifier) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, backend, notifier, "wareHouseAction"), store
}

func entry(productID, qty string) Entry {
	return Entry{
		ProductID:   productID,
		ProductName: "Product " + productID,
		Quantity:    decimal.RequireFromString(qty),
		Unit:        "kg",
	}
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- Add ---

func TestAddUpsertsByProduct(t *testing.T) {
	svc, _ := newTestService(&mockBackend{}, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry("A", "5"), decimal.Zero))
	require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry("B", "2"), decimal.Zero))
	require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry("A", "7"), decimal.Zero))

	entries, err := svc.Entries(ctx, "u1", SlotReceiving)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].ProductID)
	assert.Equal(t, "7", entries[0].Quantity.String())
	assert.Equal(t, "B", entries[1].ProductID)
	assert.Equal(t, "2", entries[1].Quantity.String())
}

func TestAddRejectsInvalidQuantityAndLeavesBatchUntouched(t *testing.T) {
	svc, _ := newTestService(&mockBackend{}, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry("A", "5"), decimal.Zero))

	err := svc.Add(ctx, "u1", SlotReceiving, entry("B", "0"), decimal.Zero)
	require.Error(t, err)

	entries, err := svc.Entries(ctx, "u1", SlotReceiving)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].ProductID)
}

func TestAddDispatchRejectsQuantityAboveAvailable(t *testing.T) {
	svc, _ := newTestService(&mockBackend{}, &mockNotifier{})
	ctx := context.Background()

	err := svc.Add(ctx, "u1", SlotDispatch, entry("A", "10"), qty("9.5"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)

	// Receiving has no availability ceiling.
	require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry("A", "10"), decimal.Zero))
}

func TestAddKeepsSlotsSeparate(t *testing.T) {
	svc, _ := newTestService(&mockBackend{}, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotDispatch, entry("A", "3"), qty("100")))
	require.NoError(t, svc.Add(ctx, "u1", SlotReturn, entry("B", "4"), qty("100")))

	dispatch, err := svc.Entries(ctx, "u1", SlotDispatch)
	require.NoError(t, err)
	ret, err := svc.Entries(ctx, "u1", SlotReturn)
	require.NoError(t, err)

	require.Len(t, dispatch, 1)
	require.Len(t, ret, 1)
	assert.Equal(t, "A", dispatch[0].ProductID)
	assert.Equal(t, "B", ret[0].ProductID)
}

// --- Remove ---

func TestRemovePreservesOrder(t *testing.T) {
	svc, _ := newTestService(&mockBackend{}, &mockNotifier{})
	ctx := context.Background()

	for _, p := range []string{"A", "B", "C"} {
		require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry(p, "1"), decimal.Zero))
	}

	require.NoError(t, svc.Remove(ctx, "u1", SlotReceiving, 1))

	entries, err := svc.Entries(ctx, "u1", SlotReceiving)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].ProductID)
	assert.Equal(t, "C", entries[1].ProductID)
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	svc, _ := newTestService(&mockBackend{}, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry("A", "1"), decimal.Zero))

	require.NoError(t, svc.Remove(ctx, "u1", SlotReceiving, 5))
	require.NoError(t, svc.Remove(ctx, "u1", SlotReceiving, -1))

	entries, err := svc.Entries(ctx, "u1", SlotReceiving)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// --- Submit ---

func TestSubmitEmptyBatchMakesNoNetworkCalls(t *testing.T) {
	backend := &mockBackend{}
	svc, _ := newTestService(backend, &mockNotifier{})

	_, err := svc.Submit(context.Background(), "u1", SlotDispatch, SubmitParams{Role: roles.Warehouse})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyBatch, appErr.Code)
	assert.Zero(t, backend.sendCalls)
	assert.Zero(t, backend.addCalls)
}

func TestSubmitDispatchClearsSlotAndNotifies(t *testing.T) {
	backend := &mockBackend{sendOrderID: "ord-42"}
	notifier := &mockNotifier{}
	svc, store := newTestService(backend, notifier)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotDispatch, entry("A", "5"), qty("50")))
	require.NoError(t, svc.Add(ctx, "u1", SlotDispatch, entry("B", "2"), qty("50")))

	refreshCalls := 0
	result, err := svc.Submit(ctx, "u1", SlotDispatch, SubmitParams{
		Role:  roles.Boutique,
		Store: "Downtown",
		Refresh: func(context.Context) error {
			refreshCalls++
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-42", result.OrderID)
	assert.Equal(t, 2, result.Entries)

	// The persisted slot is empty afterwards.
	entries, err := store.Get(ctx, "u1", SlotDispatch)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Equal(t, 1, refreshCalls)

	// Exactly one realtime event with the returned order id.
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "wareHouseAction", notifier.event)
	event, ok := notifier.payload.(DispatchEvent)
	require.True(t, ok)
	assert.Equal(t, "ord-42", event.OrderID)
	assert.Equal(t, "Boutique", event.Role)
	assert.Equal(t, "Downtown", event.Store)

	// The upstream request carried the role configuration.
	assert.Equal(t, "Boutique", backend.sendReq.SentTo)
	assert.Equal(t, orders.StockOut, backend.sendReq.StockType)
	assert.Equal(t, "Downtown", backend.sendReq.Store)
	require.Len(t, backend.sendReq.Product, 2)
}

func TestSubmitDispatchRequiresStoreForBoutiqueAndCafe(t *testing.T) {
	backend := &mockBackend{sendOrderID: "ord-1"}
	svc, _ := newTestService(backend, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotDispatch, entry("A", "5"), qty("50")))

	_, err := svc.Submit(ctx, "u1", SlotDispatch, SubmitParams{Role: roles.Cafe})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeStoreRequired, appErr.Code)
	assert.Zero(t, backend.sendCalls)

	// Batch survives the rejected submission.
	entries, err := svc.Entries(ctx, "u1", SlotDispatch)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Kitchen dispatches without a store.
	_, err = svc.Submit(ctx, "u1", SlotDispatch, SubmitParams{Role: roles.Kitchen})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", backend.sendReq.SentTo)
	assert.Empty(t, backend.sendReq.Store)
}

func TestSubmitFailureKeepsBatchIntact(t *testing.T) {
	backend := &mockBackend{sendErr: apperror.NewUpstream(422, "stock changed")}
	notifier := &mockNotifier{}
	svc, _ := newTestService(backend, notifier)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotDispatch, entry("A", "5"), qty("50")))

	refreshCalls := 0
	_, err := svc.Submit(ctx, "u1", SlotDispatch, SubmitParams{
		Role:    roles.Kitchen,
		Refresh: func(context.Context) error { refreshCalls++; return nil },
	})
	require.Error(t, err)

	entries, gerr := svc.Entries(ctx, "u1", SlotDispatch)
	require.NoError(t, gerr)
	assert.Len(t, entries, 1, "failed submission must keep the batch for retry")
	assert.Zero(t, refreshCalls)
	assert.Zero(t, notifier.calls)
}

func TestSubmitReceivingUsesStockAdd(t *testing.T) {
	backend := &mockBackend{}
	notifier := &mockNotifier{}
	svc, _ := newTestService(backend, notifier)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotReceiving, entry("A", "5"), decimal.Zero))

	result, err := svc.Submit(ctx, "u1", SlotReceiving, SubmitParams{Role: roles.Warehouse})
	require.NoError(t, err)
	assert.Empty(t, result.OrderID)
	assert.Equal(t, 1, backend.addCalls)
	assert.Zero(t, backend.sendCalls)
	assert.Zero(t, notifier.calls, "receiving emits no realtime event")

	entries, err := svc.Entries(ctx, "u1", SlotReceiving)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitReturnMarksOrderReturned(t *testing.T) {
	backend := &mockBackend{sendOrderID: "ord-9"}
	svc, store := newTestService(backend, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotReturn, entry("A", "2"), qty("10")))

	result, err := svc.Submit(ctx, "u1", SlotReturn, SubmitParams{Role: roles.Warehouse})
	require.NoError(t, err)
	assert.Equal(t, "ord-9", result.OrderID)

	assert.Equal(t, 1, backend.statusCalls)
	assert.Equal(t, "ord-9", backend.statusID)
	assert.Equal(t, orders.StatusReturned, backend.statusTo)
	assert.Equal(t, "Returned", backend.sendReq.SentTo)

	entries, err := store.Get(ctx, "u1", SlotReturn)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitReturnStatusUpdateFailureIsSurfacedDistinctly(t *testing.T) {
	backend := &mockBackend{
		sendOrderID: "ord-9",
		statusErr:   apperror.NewUpstream(500, "status update failed"),
	}
	svc, store := newTestService(backend, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotReturn, entry("A", "2"), qty("10")))

	result, err := svc.Submit(ctx, "u1", SlotReturn, SubmitParams{Role: roles.Warehouse})
	require.Error(t, err)
	require.NotNil(t, result, "the order was created even though the follow-up failed")
	assert.Equal(t, "ord-9", result.OrderID)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "ord-9", appErr.Details["orderId"])

	// The slot is cleared once the order exists upstream, so a retry cannot
	// create a duplicate order.
	entries, gerr := store.Get(ctx, "u1", SlotReturn)
	require.NoError(t, gerr)
	assert.Empty(t, entries)
}

func TestSubmitSecondCallWhileInFlightIsSuppressed(t *testing.T) {
	backend := &mockBackend{
		sendOrderID: "ord-1",
		release:     make(chan struct{}),
	}
	svc, _ := newTestService(backend, &mockNotifier{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotDispatch, entry("A", "5"), qty("50")))

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, "u1", SlotDispatch, SubmitParams{Role: roles.Kitchen})
		firstDone <- err
	}()

	// Wait until the first submit is inside SendStock.
	require.Eventually(t, func() bool {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		return backend.sendCalls == 1
	}, 2*time.Second, 5*time.Millisecond)

	_, err := svc.Submit(ctx, "u1", SlotDispatch, SubmitParams{Role: roles.Kitchen})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSubmitInFlight, appErr.Code)

	close(backend.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, backend.sendCalls)
}

func TestSubmitNotifierFailureDoesNotFailSubmission(t *testing.T) {
	backend := &mockBackend{sendOrderID: "ord-1"}
	notifier := &mockNotifier{err: errors.New("connection refused")}
	svc, store := newTestService(backend, notifier)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", SlotDispatch, entry("A", "5"), qty("50")))

	_, err := svc.Submit(ctx, "u1", SlotDispatch, SubmitParams{Role: roles.Kitchen})
	require.NoError(t, err)

	entries, gerr := store.Get(ctx, "u1", SlotDispatch)
	require.NoError(t, gerr)
	assert.Empty(t, entries)
}
