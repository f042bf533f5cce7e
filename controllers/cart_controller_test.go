package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canteen/routes"
	"canteen/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopScheduler struct{}

func (nopScheduler) AfterFunc(d time.Duration, fn func()) {}

func newTestRouter() (*gin.Engine, *services.CartStore) {
	gin.SetMode(gin.TestMode)
	store := services.NewCartStore(nil, nopScheduler{}, services.DefaultTransitionDelays())
	r := gin.New()
	routes.RegisterRoutes(r, store)
	return r, store
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var samosaJSON = map[string]any{
	"id":       "1",
	"name":     "Crispy Samosa",
	"price":    25,
	"category": "snacks",
	"isVeg":    true,
}

func TestMenuEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := do(t, r, http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool              `json:"ok"`
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Len(t, body.Data, 12)
}

func TestAddAndReadCart(t *testing.T) {
	r, _ := newTestRouter()

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/cart/items", samosaJSON).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/cart/items", samosaJSON).Code)

	w := do(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Items      []json.RawMessage `json:"items"`
			TotalItems int               `json:"totalItems"`
			TotalPrice int64             `json:"totalPrice"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Items, 1)
	assert.Equal(t, 2, body.Data.TotalItems)
	assert.Equal(t, int64(50), body.Data.TotalPrice)
}

func TestAddCustomizedLine(t *testing.T) {
	r, store := newTestRouter()

	w := do(t, r, http.MethodPost, "/cart/items/customized", map[string]any{
		"item":           samosaJSON,
		"customizations": map[string]any{"addCheese": true},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].CustomizationPrice)
	assert.Equal(t, int64(35), store.TotalPrice())
}

func TestAddItemRequiresID(t *testing.T) {
	r, _ := newTestRouter()

	w := do(t, r, http.MethodPost, "/cart/items", map[string]any{"name": "nameless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuantityUpdateAndRemoveOverHTTP(t *testing.T) {
	r, store := newTestRouter()

	do(t, r, http.MethodPost, "/cart/items", samosaJSON)
	do(t, r, http.MethodPatch, "/cart/items/qty", map[string]any{"id": "1", "quantity": 5})
	assert.Equal(t, 5, store.TotalItems())

	do(t, r, http.MethodPatch, "/cart/items/qty", map[string]any{"id": "1", "quantity": 0})
	assert.Equal(t, 0, store.TotalItems())
}

func TestClearCartOverHTTP(t *testing.T) {
	r, store := newTestRouter()

	do(t, r, http.MethodPost, "/cart/items", samosaJSON)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/cart", nil).Code)
	assert.Empty(t, store.Items())
}

func TestPlaceOrderFlow(t *testing.T) {
	r, store := newTestRouter()

	// empty cart is rejected
	w := do(t, r, http.MethodPost, "/orders", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	do(t, r, http.MethodPost, "/cart/items", samosaJSON)

	w = do(t, r, http.MethodPost, "/orders", map[string]any{"paymentMethod": "cash"})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data struct {
			OrderID string `json:"orderId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Regexp(t, `^ORD[A-Z0-9]{9}$`, body.Data.OrderID)
	assert.Empty(t, store.Items())

	// detail round trip
	w = do(t, r, http.MethodGet, "/orders/"+body.Data.OrderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// unknown order is a 404
	w = do(t, r, http.MethodGet, "/orders/ORDMISSING11", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrderRejectsUnknownPaymentMethod(t *testing.T) {
	r, _ := newTestRouter()

	do(t, r, http.MethodPost, "/cart/items", samosaJSON)
	w := do(t, r, http.MethodPost, "/orders", map[string]any{"paymentMethod": "cheque"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestRouter()

	do(t, r, http.MethodPost, "/cart/items", samosaJSON)
	w := do(t, r, http.MethodPost, "/orders", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data struct {
			OrderID string `json:"orderId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	id := body.Data.OrderID

	assert.Equal(t, http.StatusOK,
		do(t, r, http.MethodPatch, "/orders/"+id+"/status", map[string]any{"status": "preparing"}).Code)
	assert.Equal(t, http.StatusOK,
		do(t, r, http.MethodPatch, "/orders/"+id+"/received", nil).Code)
	assert.Equal(t, http.StatusOK,
		do(t, r, http.MethodPost, "/orders/"+id+"/rating", map[string]any{"rating": 5, "feedback": "great"}).Code)
	assert.Equal(t, http.StatusOK,
		do(t, r, http.MethodPost, "/orders/"+id+"/reorder", nil).Code)

	// delivered orders cannot be cancelled
	assert.Equal(t, http.StatusBadRequest,
		do(t, r, http.MethodPatch, "/orders/"+id+"/cancel", nil).Code)

	// bad rating is rejected
	assert.Equal(t, http.StatusBadRequest,
		do(t, r, http.MethodPost, "/orders/"+id+"/rating", map[string]any{"rating": 9}).Code)
}
