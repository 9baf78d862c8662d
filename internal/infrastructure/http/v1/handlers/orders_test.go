package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "stockgate/internal/core/context"
	"stockgate/internal/core/roles"
	"stockgate/internal/domain/orders"
	"stockgate/internal/infrastructure/http/v1/middleware"
	"stockgate/internal/infrastructure/upstream"
)

type fakeOrderBackend struct {
	orders []upstream.Order

	changedID     string
	changedStatus orders.Status
}

func (f *fakeOrderBackend) StockOrders(context.Context, string) ([]upstream.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderBackend) StockOrder(_ context.Context, id string) (*upstream.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, nil
}

func (f *fakeOrderBackend) ChangeOrderStatus(_ context.Context, id string, status orders.Status) error {
	f.changedID = id
	f.changedStatus = status
	return nil
}

func orderRouter(t *testing.T, backend OrderBackend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		session := &appctx.SessionContext{UserID: "u-1", Role: roles.Warehouse, Token: "tok"}
		c.Request = c.Request.WithContext(appctx.WithSession(c.Request.Context(), session))
	})

	h := NewOrderHandler(NewBaseHandler(), backend)
	router.GET("/orders", h.List)
	router.GET("/orders/:id", h.Get)
	router.PUT("/orders/:id/status", h.SetStatus)
	return router
}

func TestOrderListFiltersByStatus(t *testing.T) {
	backend := &fakeOrderBackend{orders: []upstream.Order{
		{ID: "o-1", Status: orders.StatusProcessing},
		{ID: "o-2", Status: orders.StatusCompleted},
		{ID: "o-3", Status: orders.StatusProcessing},
	}}
	router := orderRouter(t, backend)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders?status=Processing", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "o-1")
	assert.Contains(t, rec.Body.String(), "o-3")
	assert.NotContains(t, rec.Body.String(), "o-2")
}

func TestOrderListRejectsUnknownStatus(t *testing.T) {
	router := orderRouter(t, &fakeOrderBackend{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders?status=Pending", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderStatusAdvanceFromProcessing(t *testing.T) {
	backend := &fakeOrderBackend{orders: []upstream.Order{
		{ID: "o-1", Status: orders.StatusProcessing},
	}}
	router := orderRouter(t, backend)

	rec := postJSONMethod(t, router, http.MethodPut, "/orders/o-1/status", gin.H{"orderStatus": "Completed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "o-1", backend.changedID)
	assert.Equal(t, orders.StatusCompleted, backend.changedStatus)
}

func TestOrderStatusTerminalRejected(t *testing.T) {
	backend := &fakeOrderBackend{orders: []upstream.Order{
		{ID: "o-1", Status: orders.StatusCompleted},
	}}
	router := orderRouter(t, backend)

	rec := postJSONMethod(t, router, http.MethodPut, "/orders/o-1/status", gin.H{"orderStatus": "Returned"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATUS_TRANSITION")
	assert.Empty(t, backend.changedID)
}
