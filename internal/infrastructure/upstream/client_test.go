package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockgate/internal/core/apperror"
	"stockgate/internal/core/config"
	appctx "stockgate/internal/core/context"
	"stockgate/internal/domain/orders"
	"stockgate/internal/domain/staging"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.UpstreamConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func sessionCtx(token string) context.Context {
	return appctx.WithSession(context.Background(), &appctx.SessionContext{
		UserID: "user-1",
		Token:  token,
	})
}

func TestLoginDecodesResult(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ops@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"token": "tok-abc",
				"validateUser": map[string]any{
					"_id":     "u-9",
					"email":   "ops@example.com",
					"role":    "Admin",
					"subRole": "CafeWarehouse",
				},
			},
		})
	})

	result, err := client.Login(context.Background(), "ops@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", result.Token)
	assert.Equal(t, "u-9", result.UserID)
	assert.Equal(t, "CafeWarehouse", result.SubRole)
}

func TestAuthorizationForwardedVerbatim(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"products": []any{}})
	})

	_, err := client.Products(sessionCtx("raw-token-no-bearer"), "Warehouse")
	require.NoError(t, err)
	assert.Equal(t, "raw-token-no-bearer", gotAuth)
}

func TestUpstreamErrorKeepsMessageAndStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "duplicate unit"})
	})

	err := client.CreateUnit(sessionCtx("tok"), UnitInput{Name: "Kg"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUpstream, appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	assert.Equal(t, "duplicate unit", appErr.Message)
}

func TestSendStockPostsBatchAndReturnsOrderID(t *testing.T) {
	var got staging.SendRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inventory/stock/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"orderID": "ord-42"})
	})

	orderID, err := client.SendStock(sessionCtx("tok"), staging.SendRequest{
		Product: []staging.Entry{
			{ProductID: "p-1", ProductName: "Flour", Quantity: decimal.NewFromInt(3)},
		},
		SentTo:    "Cafe",
		StockType: orders.StockOut,
		Store:     "cafe-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-42", orderID)
	assert.Equal(t, "Cafe", got.SentTo)
	assert.Equal(t, orders.StockOut, got.StockType)
	require.Len(t, got.Product, 1)
	assert.Equal(t, "p-1", got.Product[0].ProductID)
}

func TestChangeOrderStatusPayload(t *testing.T) {
	var got map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/inventory/stock/status/ord-7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := client.ChangeOrderStatus(sessionCtx("tok"), "ord-7", orders.StatusReturned)
	require.NoError(t, err)
	assert.Equal(t, "Returned", got["orderStatus"])
}

func TestCreateCategoryMultipart(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Beverages", r.FormValue("inventoryCategoryName"))
		assert.Equal(t, "Cafe", r.FormValue("inventoryType"))

		file, header, err := r.FormFile("InventoryCategoryFile")
		require.NoError(t, err)
		defer file.Close()

		contents, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "imagebytes", string(contents))
		assert.Equal(t, "cat.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateCategory(sessionCtx("tok"), CategoryInput{
		Name: "Beverages",
		Type: "Cafe",
		Image: &FormFile{
			Field:    "InventoryCategoryFile",
			Name:     "cat.png",
			Contents: strings.NewReader("imagebytes"),
		},
	})
	require.NoError(t, err)
}
