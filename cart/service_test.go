package cart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/jrsteele09/go-shop-client/cart"
	"github.com/stretchr/testify/require"
)

// cartBackend keeps a single in-memory cart and answers the cart
// endpoints with the uniform envelope.
type cartBackend struct {
	items map[string]cart.Item
}

func newCartBackend() *cartBackend {
	return &cartBackend{items: map[string]cart.Item{}}
}

func (b *cartBackend) cart() cart.Cart {
	c := cart.Cart{ID: "cart-1", UserID: "user-1", Status: cart.StatusActive}
	for _, item := range b.items {
		c.Items = append(c.Items, item)
		c.Subtotal += float64(item.Quantity) * item.PriceAtAddition
	}
	c.Total = c.Subtotal
	return c
}

func (b *cartBackend) handler() http.Handler {
	writeCart := func(w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"cart": b.cart()},
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, _ *http.Request) {
		writeCart(w)
	})
	mux.HandleFunc("GET /cart/summary", func(w http.ResponseWriter, _ *http.Request) {
		c := b.cart()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": cart.Summary{
				ItemCount: c.ItemCount(),
				Subtotal:  c.Subtotal,
				Total:     c.Total,
			},
		})
	})
	mux.HandleFunc("POST /cart/items", func(w http.ResponseWriter, r *http.Request) {
		var data cart.AddItemData
		_ = json.NewDecoder(r.Body).Decode(&data)
		b.items[data.ProductID] = cart.Item{
			ID:              "item-" + data.ProductID,
			ProductID:       data.ProductID,
			Quantity:        data.Quantity,
			PriceAtAddition: 10,
		}
		writeCart(w)
	})
	mux.HandleFunc("PUT /cart/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		var data cart.UpdateItemData
		_ = json.NewDecoder(r.Body).Decode(&data)
		for productID, item := range b.items {
			if item.ID == r.PathValue("id") {
				item.Quantity = data.Quantity
				b.items[productID] = item
			}
		}
		writeCart(w)
	})
	mux.HandleFunc("DELETE /cart/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		for productID, item := range b.items {
			if item.ID == r.PathValue("id") {
				delete(b.items, productID)
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
	})
	mux.HandleFunc("DELETE /cart", func(w http.ResponseWriter, _ *http.Request) {
		b.items = map[string]cart.Item{}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
	})
	return mux
}

func setupCart(t *testing.T) (*cart.Service, *cartBackend) {
	t.Helper()
	backend := newCartBackend()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)
	service, err := cart.NewService(client)
	require.NoError(t, err)
	return service, backend
}

func TestAddItemUpdatesObservableCount(t *testing.T) {
	service, _ := setupCart(t)

	countCh, cancel := service.SubscribeItemCount()
	defer cancel()
	require.Equal(t, 0, <-countCh)

	updated, err := service.AddItem(context.Background(), cart.AddItemData{ProductID: "p-1", Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, 3, updated.ItemCount())
	require.Equal(t, 3, <-countCh)
	require.Equal(t, 3, service.ItemCount())
}

func TestItemCountSumsQuantities(t *testing.T) {
	service, _ := setupCart(t)

	_, err := service.AddItem(context.Background(), cart.AddItemData{ProductID: "p-1", Quantity: 2})
	require.NoError(t, err)
	_, err = service.AddItem(context.Background(), cart.AddItemData{ProductID: "p-2", Quantity: 5})
	require.NoError(t, err)

	require.Equal(t, 7, service.ItemCount())
}

func TestUpdateItemQuantity(t *testing.T) {
	service, _ := setupCart(t)

	added, err := service.AddItem(context.Background(), cart.AddItemData{ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)

	updated, err := service.UpdateItem(context.Background(), added.Items[0].ID, cart.UpdateItemData{Quantity: 4})
	require.NoError(t, err)
	require.Equal(t, 4, updated.ItemCount())
	require.Equal(t, 4, service.ItemCount())
}

func TestRemoveItemRefreshesCount(t *testing.T) {
	service, _ := setupCart(t)

	added, err := service.AddItem(context.Background(), cart.AddItemData{ProductID: "p-1", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, service.RemoveItem(context.Background(), added.Items[0].ID))
	require.Equal(t, 0, service.ItemCount())
}

func TestClearResetsCount(t *testing.T) {
	service, backend := setupCart(t)

	_, err := service.AddItem(context.Background(), cart.AddItemData{ProductID: "p-1", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, service.Clear(context.Background()))
	require.Equal(t, 0, service.ItemCount())
	require.Empty(t, backend.items)
}

func TestGetSummary(t *testing.T) {
	service, _ := setupCart(t)

	_, err := service.AddItem(context.Background(), cart.AddItemData{ProductID: "p-1", Quantity: 2})
	require.NoError(t, err)

	summary, err := service.GetSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, summary.ItemCount)
	require.Equal(t, 20.0, summary.Subtotal)
}
