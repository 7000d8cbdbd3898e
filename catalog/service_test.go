package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/jrsteele09/go-shop-client/catalog"
	"github.com/jrsteele09/go-shop-client/internal/utils"
	"github.com/stretchr/testify/require"
)

type catalogBackend struct {
	lock     sync.Mutex
	requests []*http.Request
}

func (b *catalogBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.lock.Lock()
		b.requests = append(b.requests, r.Clone(context.Background()))
		b.lock.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    []map[string]any{{"id": "p-1", "name": "Widget", "sku": "SKU-1"}},
				"meta": map[string]any{
					"pagination": map[string]any{"page": 1, "limit": 20, "total": 1, "totalPages": 1},
				},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/categories":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"categories": []map[string]any{{"id": "c-1", "name": "Tools"}}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/products":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"product": map[string]any{"id": "p-2", "name": "Gadget"}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   map[string]any{"message": "not found", "code": "NOT_FOUND"},
			})
		}
	})
}

func (b *catalogBackend) requestCount(path string) int {
	b.lock.Lock()
	defer b.lock.Unlock()
	n := 0
	for _, r := range b.requests {
		if r.URL.Path == path {
			n++
		}
	}
	return n
}

func (b *catalogBackend) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	b.lock.Lock()
	defer b.lock.Unlock()
	require.NotEmpty(t, b.requests)
	return b.requests[len(b.requests)-1]
}

func setupCatalog(t *testing.T) (*catalog.Service, *catalogBackend) {
	t.Helper()
	backend := &catalogBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)
	service, err := catalog.NewService(client)
	require.NoError(t, err)
	return service, backend
}

func TestProductsFilterQueryParams(t *testing.T) {
	service, backend := setupCatalog(t)

	_, err := service.Products(context.Background(), catalog.ProductFilters{
		Search:     "drill",
		CategoryID: "c-1",
		MinPrice:   utils.Ptr(9.5),
		MaxPrice:   utils.Ptr(100.0),
		InStock:    utils.Ptr(true),
		SortBy:     "price",
		Page:       2,
		Limit:      20,
	})
	require.NoError(t, err)

	query := backend.lastRequest(t).URL.Query()
	require.Equal(t, "drill", query.Get("search"))
	require.Equal(t, "c-1", query.Get("categoryId"))
	require.Equal(t, "9.5", query.Get("minPrice"))
	require.Equal(t, "100", query.Get("maxPrice"))
	require.Equal(t, "true", query.Get("inStock"))
	require.Equal(t, "price", query.Get("sortBy"))
	require.Equal(t, "2", query.Get("page"))
	require.Equal(t, "20", query.Get("limit"))
}

func TestProductsRepeatListingServedFromCache(t *testing.T) {
	service, backend := setupCatalog(t)
	filters := catalog.ProductFilters{Search: "drill"}

	first, err := service.Products(context.Background(), filters)
	require.NoError(t, err)
	second, err := service.Products(context.Background(), filters)
	require.NoError(t, err)

	require.Equal(t, 1, backend.requestCount("/products"))
	require.Equal(t, first.Products, second.Products)

	// A different filter set is a different cache key.
	_, err = service.Products(context.Background(), catalog.ProductFilters{Search: "saw"})
	require.NoError(t, err)
	require.Equal(t, 2, backend.requestCount("/products"))
}

func TestWriteOperationsInvalidateCache(t *testing.T) {
	service, backend := setupCatalog(t)
	filters := catalog.ProductFilters{}

	_, err := service.Products(context.Background(), filters)
	require.NoError(t, err)

	_, err = service.CreateProduct(context.Background(), catalog.ProductData{Name: "Gadget", SKU: "SKU-2", Price: 5})
	require.NoError(t, err)

	_, err = service.Products(context.Background(), filters)
	require.NoError(t, err)
	require.Equal(t, 2, backend.requestCount("/products"))
}

func TestCategoriesCached(t *testing.T) {
	service, backend := setupCatalog(t)

	categories, err := service.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "Tools", categories[0].Name)

	_, err = service.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, backend.requestCount("/categories"))
}

func TestProductsPaginationReturned(t *testing.T) {
	service, _ := setupCatalog(t)

	list, err := service.Products(context.Background(), catalog.ProductFilters{})
	require.NoError(t, err)
	require.NotNil(t, list.Pagination)
	require.Equal(t, 1, list.Pagination.TotalPages)
}
